package domain

import "strings"

// SourceKind enumerates the upstream platforms an article can originate from.
type SourceKind int

const (
	SourceHackerNews SourceKind = iota
	SourceGitHub
	SourceProductHunt
	SourceArXiv
	SourceReddit
	SourceCustom
)

const (
	shortCodeHackerNews  = "hn"
	shortCodeGitHub      = "gh"
	shortCodeProductHunt = "ph"
	shortCodeArXiv       = "arxiv"
	shortCodeReddit      = "rd"

	// IDSeparator joins the source short-code and the native id.
	IDSeparator = "-"
)

// ReservedShortCodes may not be used as Custom source names.
var ReservedShortCodes = []string{
	shortCodeHackerNews,
	shortCodeGitHub,
	shortCodeProductHunt,
	shortCodeArXiv,
	shortCodeReddit,
}

// Source identifies where an article came from. Reddit carries a subreddit,
// Custom carries a free-form name; the other kinds carry nothing.
type Source struct {
	kind  SourceKind
	param string
}

func HackerNews() Source  { return Source{kind: SourceHackerNews} }
func GitHub() Source      { return Source{kind: SourceGitHub} }
func ProductHunt() Source { return Source{kind: SourceProductHunt} }
func ArXiv() Source       { return Source{kind: SourceArXiv} }

func Reddit(subreddit string) Source {
	return Source{kind: SourceReddit, param: subreddit}
}

func Custom(name string) Source {
	return Source{kind: SourceCustom, param: name}
}

func (s Source) Kind() SourceKind { return s.kind }

// Param returns the subreddit for Reddit and the name for Custom sources.
func (s Source) Param() string { return s.param }

// String returns the canonical short-code used as the ArticleID namespace.
func (s Source) String() string {
	switch s.kind {
	case SourceHackerNews:
		return shortCodeHackerNews
	case SourceGitHub:
		return shortCodeGitHub
	case SourceProductHunt:
		return shortCodeProductHunt
	case SourceArXiv:
		return shortCodeArXiv
	case SourceReddit:
		return shortCodeReddit + IDSeparator + s.param
	case SourceCustom:
		return s.param
	default:
		return ""
	}
}

// Validate enforces the naming rules that keep short-codes unambiguous.
func (s Source) Validate() error {
	switch s.kind {
	case SourceCustom:
		if strings.TrimSpace(s.param) == "" {
			return newValidationError("source", "custom source name cannot be empty")
		}
		if strings.Contains(s.param, IDSeparator) {
			return newValidationError("source", "custom source name cannot contain %q", IDSeparator)
		}
		if IsReservedShortCode(s.param) {
			return newValidationError("source", "custom source cannot use reserved prefix %q", s.param)
		}
	case SourceReddit:
		if strings.Contains(s.param, IDSeparator) {
			return newValidationError("source", "subreddit name cannot contain %q", IDSeparator)
		}
	}
	return nil
}

func IsReservedShortCode(code string) bool {
	for _, reserved := range ReservedShortCodes {
		if code == reserved {
			return true
		}
	}
	return false
}

// ParseSource maps a stored short-code back to its Source. It performs no
// validation; unknown codes become Custom sources.
func ParseSource(code string) Source {
	switch {
	case code == shortCodeHackerNews:
		return HackerNews()
	case code == shortCodeGitHub:
		return GitHub()
	case code == shortCodeProductHunt:
		return ProductHunt()
	case code == shortCodeArXiv:
		return ArXiv()
	case strings.HasPrefix(code, shortCodeReddit+IDSeparator):
		return Reddit(strings.TrimPrefix(code, shortCodeReddit+IDSeparator))
	default:
		return Custom(code)
	}
}

func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Source) UnmarshalText(text []byte) error {
	*s = ParseSource(string(text))
	return nil
}
