package compare_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/compare"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unit struct {
	Kind   string   `json:"kind"`
	Weight float64  `json:"weight"`
	Height *float64 `json:"height"`
}

type record map[string]any

func (r record) Fields() map[string]any {
	return r
}

func TestCanonicalizeNumbers(t *testing.T) {
	opts := compare.DefaultOptions

	assert.Empty(t, compare.Values(opts, 10.004, 10.001))
	assert.Empty(t, compare.Values(opts, 9, 9.0))
	assert.NotEmpty(t, compare.Values(opts, 10.004, 10.006))

	d := compare.Values(opts, 1.5, 2.5)
	require.Len(t, d, 1)
	assert.Equal(t, compare.ValuesChanged, d[0].Kind)
	assert.Equal(t, "root", d[0].Path)
}

func TestCanonicalizeTimestamps(t *testing.T) {
	opts := compare.DefaultOptions
	utc := model.NewDateTimeFromStringNoError("2025-07-22T12:00:00.750Z")
	offset := model.NewDateTimeFromStringNoError("2025-07-22T14:00:00+02:00")

	assert.Equal(t, "2025-07-22T12:00:00Z", compare.Canonicalize(opts, utc))
	assert.Empty(t, compare.Values(opts, utc, offset))

	later := model.NewDateTimeFromStringNoError("2025-07-22T12:00:01Z")
	assert.NotEmpty(t, compare.Values(opts, utc, later))
}

func TestCanonicalizeStruct(t *testing.T) {
	height := 1.234
	canonical := compare.Canonicalize(compare.DefaultOptions, unit{Kind: "PL", Weight: 10, Height: &height})

	m, ok := canonical.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "PL", m["kind"])
	assert.Equal(t, "1.23", m["height"].(model.Decimal).String())
	assert.Equal(t, "10", m["weight"].(model.Decimal).String())

	empty := compare.Canonicalize(compare.DefaultOptions, unit{Kind: "PL"}).(map[string]any)
	assert.Contains(t, empty, "height")
	assert.Nil(t, empty["height"])
}

func TestSequencesIgnoreOrder(t *testing.T) {
	opts := compare.DefaultOptions
	a := []unit{{Kind: "PL", Weight: 10}, {Kind: "BX", Weight: 2}, {Kind: "PL", Weight: 10}}
	b := []unit{{Kind: "PL", Weight: 10.001}, {Kind: "PL", Weight: 10}, {Kind: "BX", Weight: 2}}
	assert.Empty(t, compare.Values(opts, a, b))

	// multiplicity matters
	c := []unit{{Kind: "PL", Weight: 10}, {Kind: "BX", Weight: 2}, {Kind: "BX", Weight: 2}}
	d := compare.Values(opts, a, c)
	require.Len(t, d, 2)
	assert.Equal(t, compare.IterableItemRemoved, d[0].Kind)
	assert.Equal(t, "root[2]", d[0].Path)
	assert.Equal(t, compare.IterableItemAdded, d[1].Kind)
	assert.Equal(t, "root[2]", d[1].Path)
}

func TestSetsIgnoreOrder(t *testing.T) {
	opts := compare.DefaultOptions
	assert.Empty(t, compare.Values(opts, compare.NewSet("b", "a"), compare.NewSet("a", "b", "a")))

	d := compare.Values(opts, compare.NewSet("a", "b"), compare.NewSet("a", "c"))
	require.Len(t, d, 2)

	b, err := json.Marshal(compare.NewSet("pallets", "boxes"))
	require.NoError(t, err)
	assert.Equal(t, `["boxes","pallets"]`, string(b))
}

func TestDiffMaps(t *testing.T) {
	d := compare.Values(compare.DefaultOptions,
		map[string]any{"a": 1, "b": "x"},
		map[string]any{"b": "y", "c": true},
	)
	require.Len(t, d, 3)
	assert.Equal(t, "root['a']", d[0].Path)
	assert.Equal(t, compare.DictionaryItemRemoved, d[0].Kind)
	assert.Equal(t, compare.ValuesChanged, d[1].Kind)
	assert.Equal(t, "root['b']", d[1].Path)
	assert.Equal(t, compare.DictionaryItemAdded, d[2].Kind)
	assert.Equal(t, "root['c']", d[2].Path)
}

func TestDiffTypeChange(t *testing.T) {
	d := compare.Values(compare.DefaultOptions, "10", 10)
	require.Len(t, d, 1)
	assert.Equal(t, compare.TypeChanges, d[0].Kind)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type_changes":{"root":{"old_type":"string","new_type":"number","old_value":"10","new_value":10}}}`, string(b))
}

func TestRecords(t *testing.T) {
	expected := record{
		"shipment_reference": "SHP-1",
		"order_quantities":   map[string]any{"grossWeight": 10.004},
		"only_expected":      1,
	}
	actual := record{
		"shipment_reference": "SHP-2",
		"order_quantities":   map[string]any{"grossWeight": 10.001},
		"only_actual":        1,
	}

	result := compare.Records(compare.DefaultOptions, expected, actual)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 3)

	assert.Equal(t, "only_actual", result.Errors[0].Field)
	assert.Equal(t, compare.MissingInExpected, result.Errors[0].Error)
	assert.Equal(t, "only_expected", result.Errors[1].Field)
	assert.Equal(t, compare.MissingInActual, result.Errors[1].Error)
	assert.Equal(t, "shipment_reference", result.Errors[2].Field)
	assert.Equal(t, "SHP-1", result.Errors[2].Expected)
	assert.Equal(t, "SHP-2", result.Errors[2].Actual)

	// the same fields are reported in both directions
	reverse := compare.Records(compare.DefaultOptions, actual, expected)
	require.Len(t, reverse.Errors, 3)
	for i := range reverse.Errors {
		assert.Equal(t, result.Errors[i].Field, reverse.Errors[i].Field)
	}
	assert.Equal(t, compare.MissingInActual, reverse.Errors[0].Error)
}

func TestRecordsValid(t *testing.T) {
	ts := time.Date(2025, 7, 22, 6, 0, 0, 0, time.UTC)
	expected := record{"created_at": model.NewDateTime(ts), "tags": compare.NewSet("a", "b")}
	actual := record{"created_at": model.NewDateTime(ts.Add(300 * time.Millisecond)), "tags": compare.NewSet("b", "a")}

	result := compare.Records(compare.DefaultOptions, expected, actual)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}
