// Package events publishes product analytics events (profile completion,
// swipes, matches) to a configurable sink.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Name string

const (
	NameProfileCompleted Name = "profile_completed"
	NameDeckSwiped       Name = "deck_swiped"
	NameMatchCreated     Name = "match_created"
)

// Swipe directions carried in deck_swiped payloads
const (
	DirectionLike = "like"
	DirectionPass = "pass"
)

// maxPayloadBytes caps the encoded payload size
const maxPayloadBytes = 64 * 1024

var knownNames = map[Name]bool{
	NameProfileCompleted: true,
	NameDeckSwiped:       true,
	NameMatchCreated:     true,
}

// Event is one analytics record
type Event struct {
	ID        uuid.UUID      `json:"id"`
	Name      Name           `json:"name"`
	UserID    string         `json:"userId"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// New builds an event with a fresh ID and timestamp
func New(name Name, userID string, payload map[string]any) Event {
	return Event{
		ID:        uuid.New(),
		Name:      name,
		UserID:    userID,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks the fields every sink relies on
func (e Event) Validate() error {
	if e.ID == uuid.Nil {
		return errors.New("event id cannot be nil")
	}
	if !knownNames[e.Name] {
		return fmt.Errorf("unknown event name %q", e.Name)
	}
	if strings.TrimSpace(e.UserID) == "" {
		return errors.New("event user_id is required")
	}
	return nil
}

// Publisher delivers events to a sink
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Emit publishes and only logs failures. Analytics never fails a request.
func Emit(ctx context.Context, p Publisher, e Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		log.Printf("analytics: publish %s failed: %v (user_id=%s)", e.Name, err, e.UserID)
	}
}

// ---------- log sink ----------

type logPublisher struct{}

// NewLogPublisher writes events to the standard logger
func NewLogPublisher() Publisher {
	return logPublisher{}
}

func (logPublisher) Publish(ctx context.Context, e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	log.Printf("[analytics] %s user=%s payload=%s", e.Name, e.UserID, payload)
	return nil
}

// ---------- discard sink ----------

type nopPublisher struct{}

// NewNopPublisher drops every event
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(ctx context.Context, e Event) error { return nil }

// ---------- in-memory sink ----------

// Recorder keeps published events in memory, in publish order
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(ctx context.Context, e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// Events returns a copy of everything recorded so far
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Names returns the recorded event names in order
func (r *Recorder) Names() []Name {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Name, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

// ---------- postgres sink ----------

type postgresPublisher struct {
	db *pgxpool.Pool
}

// NewPostgresPublisher inserts events into the analytics_events table
func NewPostgresPublisher(db *pgxpool.Pool) Publisher {
	return &postgresPublisher{db: db}
}

func (p *postgresPublisher) Publish(ctx context.Context, e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	var payload any
	if len(e.Payload) > 0 {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("failed to marshal event payload: %w", err)
		}
		if len(b) > maxPayloadBytes {
			return fmt.Errorf("event payload exceeds maximum size of %d bytes", maxPayloadBytes)
		}
		payload = string(b)
	}

	insertCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	cmdTag, err := p.db.Exec(insertCtx, `
		INSERT INTO analytics_events (id, name, user_id, payload, created_at)
		VALUES ($1, $2, $3, $4::jsonb, $5)
	`, e.ID, string(e.Name), e.UserID, payload, e.CreatedAt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("event insert timeout: %w", err)
		}
		return fmt.Errorf("failed to insert event: %w", err)
	}
	if cmdTag.RowsAffected() != 1 {
		return fmt.Errorf("unexpected number of rows affected: %d", cmdTag.RowsAffected())
	}
	return nil
}
