package schedule

import (
	"errors"
	"time"

	"github.com/helioscast/helios/internal/model"
)

// ErrNoActiveSchedule marks the legitimate empty state: the player exists
// but nothing is scheduled for it right now.
var ErrNoActiveSchedule = errors.New("no active schedule for player")

// Source is the read-only store surface the engine consumes.
type Source interface {
	CandidateSource
	LayoutSource
	PlaylistSource
}

// Payload is the full answer to "what should this player display".
type Payload struct {
	Schedule model.ScheduleCandidate `json:"schedule"`
	Layout   model.Layout            `json:"layout"`
	Content  []model.ContentEntry    `json:"content"`
}

// Engine wires resolver, expander and sequencer into the one call the
// device API makes. Each invocation is independent and idempotent; the
// engine holds no state beyond its collaborators.
type Engine struct {
	resolver *Resolver
	expander *Expander
}

func NewEngine(source Source) *Engine {
	return &Engine{
		resolver: NewResolver(source),
		expander: NewExpander(source, source),
	}
}

// NewEngineAt pins the engine's clock for tests.
func NewEngineAt(source Source, now func() time.Time) *Engine {
	return &Engine{
		resolver: NewResolverAt(source, now),
		expander: NewExpander(source, source),
	}
}

// CurrentPayload resolves the winning schedule for a player and expands
// it into the ordered content sequence. Returns ErrNoActiveSchedule when
// nothing matches; store failures propagate unchanged.
func (e *Engine) CurrentPayload(player model.Player) (*Payload, error) {
	winner, err := e.resolver.ResolveForPlayer(player.ID)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, ErrNoActiveSchedule
	}

	layout, entries, err := e.expander.Expand(winner.LayoutID, player.CustomerID)
	if err != nil {
		return nil, err
	}

	return &Payload{
		Schedule: *winner,
		Layout:   layout,
		Content:  Sequence(entries),
	}, nil
}
