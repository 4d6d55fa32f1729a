package projection

import (
	"context"
	"sync"

	"rifq-petcare/internal/domain/event"
)

// ProfileStats are the counters shown on the profile screen
type ProfileStats struct {
	Orders       int `json:"orders"`
	Appointments int `json:"appointments"`
}

// ProfileStatsProjection keeps per-user activity counters, fed by the event
// bus. Counters are rebuilt on restart from the persisted collections,
// so in-memory state is sufficient.
type ProfileStatsProjection struct {
	mu    sync.RWMutex
	stats map[string]ProfileStats
}

// NewProfileStatsProjection creates an empty projection
func NewProfileStatsProjection() *ProfileStatsProjection {
	return &ProfileStatsProjection{stats: make(map[string]ProfileStats)}
}

// HandleOrderPlaced increments the user's order counter
func (p *ProfileStatsProjection) HandleOrderPlaced(ctx context.Context, e *event.OrderPlaced) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.stats[e.UserID]
	s.Orders++
	p.stats[e.UserID] = s
	return nil
}

// HandleAppointmentBooked increments the user's appointment counter
func (p *ProfileStatsProjection) HandleAppointmentBooked(ctx context.Context, e *event.AppointmentBooked) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.stats[e.UserID]
	s.Appointments++
	p.stats[e.UserID] = s
	return nil
}

// HandleAppointmentCancelled decrements the user's appointment counter
func (p *ProfileStatsProjection) HandleAppointmentCancelled(ctx context.Context, e *event.AppointmentCancelled) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.stats[e.UserID]
	if s.Appointments > 0 {
		s.Appointments--
	}
	p.stats[e.UserID] = s
	return nil
}

// Seed installs counters rebuilt from the persisted collections
func (p *ProfileStatsProjection) Seed(userID string, stats ProfileStats) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats[userID] = stats
}

// Known reports whether counters exist for the user yet
func (p *ProfileStatsProjection) Known(userID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.stats[userID]
	return ok
}

// Get returns the counters for a user
func (p *ProfileStatsProjection) Get(userID string) ProfileStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stats[userID]
}
