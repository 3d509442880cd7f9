// Package memory provides an in-memory EventRepository. It implements
// the same contract as the postgres repository and serves as the
// interchangeable test double: state is owned by the repository value,
// created with it, mutated only through its methods, and gone when the
// value is dropped.
package memory

import (
	"context"
	"sync"
	"time"

	"campuscal/internal/domain"
)

// EventRepository is an in-memory implementation of domain.EventRepository.
type EventRepository struct {
	mu     sync.Mutex
	nextID int64
	// events is kept newest-first, matching the list contract.
	events []domain.Event
}

// NewEventRepository returns an empty in-memory repository.
func NewEventRepository() *EventRepository {
	return &EventRepository{nextID: 1}
}

// NewSeededEventRepository returns a repository pre-loaded with a few
// demo events anchored to the given day, mirroring the seed data the
// UI mock served.
func NewSeededEventRepository(today domain.Date) *EventRepository {
	r := NewEventRepository()
	base := time.Date(today.Year, today.Month, today.Day, 0, 0, 0, 0, time.UTC)
	seeds := []struct {
		title     string
		offset    int
		startTime string
		location  string
		eventType string
	}{
		{title: "Orientation Briefing", offset: 0, startTime: "10:00", location: "Main Hall", eventType: domain.EventTypeAcademic},
		{title: "Soccer Practice", offset: 1, startTime: "16:30", location: "Athletics Field", eventType: domain.EventTypeSports},
		{title: "Robotics Club Meetup", offset: 2, startTime: "18:00", location: "Lab 3", eventType: domain.EventTypeClub},
	}
	for _, s := range seeds {
		start, loc := s.startTime, s.location
		e := domain.NewEvent(s.title, domain.DateOf(base.AddDate(0, 0, s.offset)), s.eventType)
		e.StartTime = &start
		e.Location = &loc
		_ = r.Insert(context.Background(), e)
	}
	return r
}

func (r *EventRepository) Insert(_ context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	// Prepend so ListAll stays newest-id-first without sorting.
	r.events = append([]domain.Event{*e}, r.events...)
	return nil
}

func (r *EventRepository) ListAll(_ context.Context) ([]*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Event, len(r.events))
	for i := range r.events {
		copied := r.events[i]
		out[i] = &copied
	}
	return out, nil
}

// Update overwrites the stored event with the same ID. Missing IDs are
// a silent no-op, matching the persistent repository.
func (r *EventRepository) Update(_ context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == e.ID {
			r.events[i] = *e
			return nil
		}
	}
	return nil
}

// Delete removes the event with the given ID. Missing IDs are a silent
// no-op.
func (r *EventRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return nil
}
