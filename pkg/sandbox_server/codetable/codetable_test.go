package codetable_test

import (
	"testing"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/codetable"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackagingBijection(t *testing.T) {
	require.Len(t, codetable.Packaging.Keys(), 8)

	for _, q := range codetable.Packaging.Values() {
		p, err := codetable.PackageTypeOf(q)
		require.NoError(t, err)
		back, err := codetable.PackagingQualifierOf(p)
		require.NoError(t, err)
		assert.Equal(t, q, back)
	}
	for _, p := range codetable.Packaging.Keys() {
		q, err := codetable.PackagingQualifierOf(p)
		require.NoError(t, err)
		back, err := codetable.PackageTypeOf(q)
		require.NoError(t, err)
		assert.Equal(t, p, back)
	}
}

func TestEventTypeBijection(t *testing.T) {
	require.Len(t, codetable.EventTypes.Keys(), 6)

	for _, b := range codetable.EventTypes.Keys() {
		tms, err := codetable.TmsEventTypeOf(b)
		require.NoError(t, err)
		back, err := codetable.BrokerEventTypeOf(tms)
		require.NoError(t, err)
		assert.Equal(t, b, back)
	}

	tms, err := codetable.TmsEventTypeOf(model.BrokerEventOrderLoaded)
	require.NoError(t, err)
	assert.Equal(t, model.TmsEventPickedUp, tms)
}

func TestUnmappedCodeIsConfigurationGap(t *testing.T) {
	_, err := codetable.PackagingQualifierOf(model.PackageType("CONTAINER"))
	assert.ErrorIs(t, err, model.ErrConfigurationGap)

	_, err = codetable.BrokerEventTypeOf(model.TmsEventType("LOST"))
	assert.ErrorIs(t, err, model.ErrUnmappedCode)
}

func TestNewPanicsOnNonBijection(t *testing.T) {
	assert.Panics(t, func() {
		codetable.New("broken",
			codetable.Pair[string, string]{Key: "A", Value: "1"},
			codetable.Pair[string, string]{Key: "B", Value: "1"},
		)
	})
	assert.Panics(t, func() {
		codetable.New("broken",
			codetable.Pair[string, string]{Key: "A", Value: "1"},
			codetable.Pair[string, string]{Key: "A", Value: "2"},
		)
	})
}
