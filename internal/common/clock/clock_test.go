package clock

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNowIsUTC(t *testing.T) {
	now := New().Now()
	require.Equal(t, time.UTC, now.Location())
}

func TestNowSurvivesJSON(t *testing.T) {
	now := New().Now()

	data, err := json.Marshal(now)
	require.NoError(t, err)

	var decoded time.Time
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, now.Equal(decoded))
	require.Equal(t, now.UnixNano(), decoded.UnixNano())
}
