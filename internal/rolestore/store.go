// Package rolestore holds the current session's role: who the UI is
// acting as (admin, student, or nobody). The store is an owned object
// created at session start and torn down at session end; the role is
// never ambient state. Persistence is pluggable so the browser
// local-storage behavior (role survives a reload) carries over to a
// file on disk.
package rolestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"campuscal/internal/domain"
)

// Persister loads and saves the persisted role value.
type Persister interface {
	Load() (string, error)
	Save(role string) error
}

// Store holds the session role. Safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	role      string
	persister Persister
}

// New returns a Store initialized from the persister. A missing,
// empty, or unknown persisted value yields RoleNone.
func New(p Persister) (*Store, error) {
	raw, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("load persisted role: %w", err)
	}
	return &Store{role: normalize(raw), persister: p}, nil
}

// Role returns the current session role.
func (s *Store) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// SetRole updates the session role and persists it.
func (s *Store) SetRole(role string) error {
	role = normalize(role)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persister.Save(role); err != nil {
		return fmt.Errorf("persist role: %w", err)
	}
	s.role = role
	return nil
}

// Clear resets the session role to RoleNone and persists the reset.
// Used on logout and at session teardown.
func (s *Store) Clear() error {
	return s.SetRole(domain.RoleNone)
}

// CanWrite reports whether the current role may create, edit, or
// delete events.
func (s *Store) CanWrite() bool {
	return s.Role() == domain.RoleAdmin
}

func normalize(role string) string {
	switch role {
	case domain.RoleAdmin, domain.RoleStudent:
		return role
	default:
		return domain.RoleNone
	}
}

type fileState struct {
	Role string `json:"role"`
}

// filePersister stores the role as a small JSON file.
type filePersister struct {
	path string
}

// NewFilePersister returns a Persister backed by a JSON file at path.
// A missing file reads as no persisted role.
func NewFilePersister(path string) Persister {
	return &filePersister{path: path}
}

func (p *filePersister) Load() (string, error) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	var state fileState
	if err := json.Unmarshal(raw, &state); err != nil {
		// A corrupt state file is not fatal; the session starts over.
		return "", nil
	}
	return state.Role, nil
}

func (p *filePersister) Save(role string) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	raw, err := json.Marshal(fileState{Role: role})
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, raw, 0o644)
}

// memoryPersister keeps the role in memory. Used by tests and by
// sessions that opt out of persistence.
type memoryPersister struct {
	mu   sync.Mutex
	role string
}

// NewMemoryPersister returns a Persister with no durable backing.
func NewMemoryPersister() Persister {
	return &memoryPersister{}
}

func (p *memoryPersister) Load() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.role, nil
}

func (p *memoryPersister) Save(role string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.role = role
	return nil
}
