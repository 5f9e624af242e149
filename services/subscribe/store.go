package subscribe

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// ErrInvalidEmail is returned when a signup carries no email address.
var ErrInvalidEmail = errors.New("email is required")

// Subscriber is one alert signup.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists alert signups to a single JSON file. The filesystem is
// abstracted so tests run against an in-memory fs.
type Store struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

func NewStore(fs afero.Fs, path string) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs, path: path}
}

// Add records an email signup. Addresses are normalized to lower case and
// deduplicated; signing up twice returns the existing record.
func (s *Store) Add(email string) (Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return Subscriber{}, ErrInvalidEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.load()
	if err != nil {
		return Subscriber{}, err
	}
	for _, sub := range subs {
		if sub.Email == email {
			return sub, nil
		}
	}

	sub := Subscriber{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	subs = append(subs, sub)
	if err := s.save(subs); err != nil {
		return Subscriber{}, err
	}
	return sub, nil
}

// List returns all recorded signups.
func (s *Store) List() ([]Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]Subscriber, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read subscribers: %w", err)
	}
	var subs []Subscriber
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("decode subscribers: %w", err)
	}
	return subs, nil
}

func (s *Store) save(subs []Subscriber) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create subscriber dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode subscribers: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write subscribers: %w", err)
	}
	return s.fs.Rename(tmp, s.path)
}
