package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/helioscast/helios/internal/model"
)

// CandidateSource is the single store call the resolver depends on: every
// schedule reachable from a player through any assignment scope, tagged
// with its scope tier.
type CandidateSource interface {
	CandidateSchedulesForPlayer(playerID int) ([]model.ScheduleCandidate, error)
}

// Resolver picks the schedule a player should be showing right now.
type Resolver struct {
	source CandidateSource
	now    func() time.Time
}

func NewResolver(source CandidateSource) *Resolver {
	return &Resolver{source: source, now: time.Now}
}

// NewResolverAt pins the resolver's clock; tests use it to make temporal
// matching deterministic.
func NewResolverAt(source CandidateSource, now func() time.Time) *Resolver {
	return &Resolver{source: source, now: now}
}

// ResolveForPlayer returns the winning schedule for a player, or nil when
// no schedule is active. Candidates surviving the temporal filter are
// ranked by scope tier ascending (player beats site beats customer), then
// schedule priority descending, then schedule id ascending so repeated
// calls with the same inputs always agree.
//
// The caller is expected to have verified the player exists; an unknown
// player simply resolves to no candidates here.
func (r *Resolver) ResolveForPlayer(playerID int) (*model.ScheduleCandidate, error) {
	candidates, err := r.source.CandidateSchedulesForPlayer(playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching candidate schedules for player %d: %w", playerID, err)
	}

	now := r.now()
	active := make([]model.ScheduleCandidate, 0, len(candidates))
	for _, c := range candidates {
		if IsActiveAt(c.Schedule, now) {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		return nil, nil
	}

	sort.Slice(active, func(i, j int) bool {
		if active[i].ScopeTier != active[j].ScopeTier {
			return active[i].ScopeTier < active[j].ScopeTier
		}
		if active[i].Priority != active[j].Priority {
			return active[i].Priority > active[j].Priority
		}
		return active[i].ID < active[j].ID
	})

	best := active[0]
	return &best, nil
}
