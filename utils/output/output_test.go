package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrinter(quiet bool) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	p := NewPrinter(PrinterOptions{ColorMode: ColorNever, Quiet: quiet, Out: &out, Err: &errOut})
	return p, &out, &errOut
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "auto": ColorAuto, "always": ColorAlways, "never": ColorNever} {
		got, err := ParseColorMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseColorMode("rainbow")
	assert.Error(t, err)
}

func TestResolveColors_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ResolveColors(ColorAuto))
	assert.True(t, ResolveColors(ColorAlways))
}

func TestPrinter_PlainOutput(t *testing.T) {
	p, out, errOut := newTestPrinter(false)

	p.Info("fetched %d", 3)
	p.Success("saved")
	p.Warning("slow source %s", "reddit")
	p.Error("boom")
	p.Header("Feed")

	assert.Equal(t, "fetched 3\n[OK] saved\n\nFeed\n----\n", out.String())
	assert.Equal(t, "[WARN] slow source reddit\n[ERROR] boom\n", errOut.String())
	assert.Equal(t, "[hot]", p.HotBadge(true))
	assert.Empty(t, p.HotBadge(false))
}

func TestPrinter_QuietKeepsErrors(t *testing.T) {
	p, out, errOut := newTestPrinter(true)

	p.Info("hidden")
	p.Warning("hidden")
	p.Error("shown")

	assert.Empty(t, out.String())
	assert.Equal(t, "[ERROR] shown\n", errOut.String())
}

func TestFormatError(t *testing.T) {
	p, _, errOut := newTestPrinter(false)
	p.FormatError(&CLIError{
		Summary:    "ingestion failed",
		Detail:     "every source failed",
		Suggestion: "check SOURCES_FILE",
		ExitCode:   ExitUpstream,
	})

	s := errOut.String()
	assert.Contains(t, s, "[ERROR] ingestion failed")
	assert.Contains(t, s, "Cause: every source failed")
	assert.Contains(t, s, "Suggestion: check SOURCES_FILE")
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, []string{"ID", "Title"}, false)
	tbl.AddRow("hn-1", "Rust 2.0")
	tbl.AddRow("gh-2", "A repo")
	require.NoError(t, tbl.Render())

	s := buf.String()
	assert.Contains(t, s, "hn-1")
	assert.Contains(t, s, "Rust 2.0")
	assert.Contains(t, s, "gh-2")
	assert.Equal(t, 2, tbl.Len())

	var quiet bytes.Buffer
	q := NewTable(&quiet, []string{"ID"}, true)
	q.AddRow("x")
	require.NoError(t, q.Render())
	assert.Empty(t, quiet.String())
}
