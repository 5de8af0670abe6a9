package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimelineEvent(t *testing.T) {
	event, err := NewTimelineEvent("event1", "Launch", "2023-01-01", "Big launch", "Tech", 10)
	require.NoError(t, err)
	assert.Equal(t, 2023, event.Date.Year())
	assert.Equal(t, "2023-01-01", event.DateString())

	_, err = NewTimelineEvent("", "Launch", "2023-01-01", "", "", 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewTimelineEvent("event2", "Launch", "01/01/2023", "", "", 0)
	assert.ErrorIs(t, err, ErrValidation)
}
