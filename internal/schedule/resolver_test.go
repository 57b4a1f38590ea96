package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioscast/helios/internal/model"
)

func fixedClock() time.Time {
	return time.Date(2025, time.June, 11, 12, 0, 0, 0, time.UTC)
}

func TestResolveForPlayerScopeTierBeatsPriority(t *testing.T) {
	src := &fakeSource{candidates: map[int][]model.ScheduleCandidate{
		7: {
			candidate(1, 10, model.ScopePlayer, true),
			candidate(2, 90, model.ScopeSite, true),
		},
	}}
	r := NewResolverAt(src, fixedClock)

	got, err := r.ResolveForPlayer(7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.ID, "player-scope schedule wins despite lower priority")
}

func TestResolveForPlayerPriorityWithinTier(t *testing.T) {
	src := &fakeSource{candidates: map[int][]model.ScheduleCandidate{
		7: {
			candidate(1, 10, model.ScopeSite, true),
			candidate(2, 90, model.ScopeSite, true),
		},
	}}
	r := NewResolverAt(src, fixedClock)

	got, err := r.ResolveForPlayer(7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ID)
}

func TestResolveForPlayerTieBreakByID(t *testing.T) {
	src := &fakeSource{candidates: map[int][]model.ScheduleCandidate{
		7: {
			candidate(9, 50, model.ScopeCustomer, true),
			candidate(4, 50, model.ScopeCustomer, true),
		},
	}}
	r := NewResolverAt(src, fixedClock)

	// deterministic across repeated calls
	for i := 0; i < 5; i++ {
		got, err := r.ResolveForPlayer(7)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 4, got.ID, "lower schedule id wins the tie")
	}
}

func TestResolveForPlayerFiltersInactiveAndUnmatched(t *testing.T) {
	expired := candidate(1, 99, model.ScopePlayer, true)
	expired.EndDate = dateptr(2020, time.January, 1)

	src := &fakeSource{candidates: map[int][]model.ScheduleCandidate{
		7: {
			expired,
			candidate(2, 5, model.ScopeCustomer, false),
			candidate(3, 1, model.ScopeCustomer, true),
		},
	}}
	r := NewResolverAt(src, fixedClock)

	got, err := r.ResolveForPlayer(7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.ID)
}

func TestResolveForPlayerNoCandidates(t *testing.T) {
	src := &fakeSource{candidates: map[int][]model.ScheduleCandidate{}}
	r := NewResolverAt(src, fixedClock)

	got, err := r.ResolveForPlayer(7)
	require.NoError(t, err)
	assert.Nil(t, got, "empty result is not an error")
}

func TestResolveForPlayerStoreFailurePropagates(t *testing.T) {
	boom := errors.New("connection refused")
	src := &fakeSource{err: boom}
	r := NewResolverAt(src, fixedClock)

	_, err := r.ResolveForPlayer(7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}
