package utility

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowISO8601(t *testing.T) {
	now := NowISO8601()
	parsed, err := time.Parse(time.RFC3339, now)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}

func TestNewUUID(t *testing.T) {
	a := NewUUID()
	b := NewUUID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}

func TestNewShortID(t *testing.T) {
	id := NewShortID("tp-")
	assert.True(t, strings.HasPrefix(id, "tp-"))
	assert.Len(t, id, 11)
	assert.NotEqual(t, id, NewShortID("tp-"))
}
