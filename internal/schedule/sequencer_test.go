package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioscast/helios/internal/model"
)

func TestSequenceOrdersByDisplayOrder(t *testing.T) {
	in := []model.ContentEntry{
		{ContentID: 1, DisplayOrder: 3},
		{ContentID: 2, DisplayOrder: 1},
		{ContentID: 3, DisplayOrder: 2},
	}

	out := Sequence(in)
	require.Len(t, out, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{out[0].ContentID, out[1].ContentID, out[2].ContentID})
}

func TestSequenceIsStableAndIdempotent(t *testing.T) {
	// two entries share display order 1; their input order must survive
	in := []model.ContentEntry{
		{ContentID: 5, DisplayOrder: 2},
		{ContentID: 1, DisplayOrder: 1, Name: "first"},
		{ContentID: 1, DisplayOrder: 1, Name: "second"},
	}

	first := Sequence(in)
	second := Sequence(in)

	assert.Equal(t, first, second, "same input yields identical output")
	assert.Equal(t, "first", first[0].Name)
	assert.Equal(t, "second", first[1].Name)
	assert.Equal(t, 5, first[2].ContentID)

	// input untouched
	assert.Equal(t, 5, in[0].ContentID)
}

func TestSequenceKeepsDuplicates(t *testing.T) {
	in := []model.ContentEntry{
		{ContentID: 9, DisplayOrder: 1},
		{ContentID: 9, DisplayOrder: 2},
	}
	out := Sequence(in)
	require.Len(t, out, 2, "no deduplication")
}

func TestSequenceEmpty(t *testing.T) {
	assert.Empty(t, Sequence(nil))
}
