package schedule

import (
	"sort"

	"github.com/helioscast/helios/internal/model"
)

// Sequence orders entries by display order ascending into the exact
// sequence a device plays. The sort is stable: entries sharing a display
// order keep their relative input order, which is the only defined
// tie-break. The input slice is not modified, and the same content id may
// appear more than once.
func Sequence(entries []model.ContentEntry) []model.ContentEntry {
	out := make([]model.ContentEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}
