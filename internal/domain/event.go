package domain

import (
	"context"
	"errors"
)

// Event categories. Anything outside this set is stored as-is; the
// calendar view-model resolves unknown categories into the club-styled
// bucket (see calendar.CategoryBucket).
const (
	EventTypeAcademic = "academic"
	EventTypeSports   = "sports"
	EventTypeClub     = "club"
)

// DefaultEventType is applied when a create or update omits event_type.
const DefaultEventType = EventTypeAcademic

// Sentinel errors shared across services and repositories.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Event is a single calendar entry.
type Event struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Date        Date    `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	EventType   string  `json:"event_type"`
}

// NewEvent returns an Event with the given required fields. ID is set
// by the repository on insert.
func NewEvent(title string, date Date, eventType string) *Event {
	if eventType == "" {
		eventType = DefaultEventType
	}
	return &Event{
		Title:     title,
		Date:      date,
		EventType: eventType,
	}
}

// EventRepository defines the interface for event storage. The postgres
// implementation owns durability; the memory implementation is the
// interchangeable test double behind the same contract.
type EventRepository interface {
	// Insert stores a new event and sets its ID.
	Insert(ctx context.Context, event *Event) error
	// ListAll returns every event, newest-id-first.
	ListAll(ctx context.Context) ([]*Event, error)
	// Update overwrites all mutable fields of the event with the given
	// ID. Updating an ID that does not exist is a silent no-op.
	Update(ctx context.Context, event *Event) error
	// Delete removes the event with the given ID. Deleting an ID that
	// does not exist is a silent no-op.
	Delete(ctx context.Context, id int64) error
}

// EventService defines the business logic for the event calendar.
type EventService interface {
	List(ctx context.Context) ([]*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int64) error
}
