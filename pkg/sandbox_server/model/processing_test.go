package model_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessingStateTransition(t *testing.T) {
	state := model.Unprocessed()
	assert.False(t, state.IsProcessed())
	assert.Nil(t, state.Unix())

	first := time.Date(2025, 7, 22, 6, 0, 0, 0, time.UTC)
	state, changed := state.MarkProcessed(first)
	assert.True(t, changed)
	assert.True(t, state.IsProcessed())

	state, changed = state.MarkProcessed(first.Add(time.Hour))
	assert.False(t, changed)
	at, ok := state.At()
	assert.True(t, ok)
	assert.Equal(t, first, at)
	assert.Equal(t, first.Unix(), *state.Unix())
}

func TestProcessingStateJSON(t *testing.T) {
	type node struct {
		ProcessedAt model.ProcessingState `json:"processed_at"`
	}

	raw, err := json.Marshal(node{})
	require.NoError(t, err)
	assert.Equal(t, `{"processed_at":null}`, string(raw))

	ts := int64(1753164000)
	raw, err = json.Marshal(node{ProcessedAt: model.ProcessingStateFromUnix(&ts)})
	require.NoError(t, err)
	assert.Equal(t, `{"processed_at":"2025-07-22T06:00:00Z"}`, string(raw))

	var decoded node
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, ts, *decoded.ProcessedAt.Unix())

	require.NoError(t, json.Unmarshal([]byte(`{"processed_at":null}`), &decoded))
	assert.False(t, decoded.ProcessedAt.IsProcessed())
}
