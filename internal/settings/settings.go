// Package settings holds the calculator constants and the two pricing
// formulas.
package settings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Simplici0/kalkulator/internal/formula"
)

const (
	defaultMwst          = 19
	defaultStundenlohn   = 60
	defaultSchnittpreis  = 60
	defaultEinkaufFormel = "{preis} * {anzahl}"
	defaultAufwandFormel = "{zeitaufwand} * {stundenlohn}"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Settings are the values the calculator reads at evaluation time.
type Settings struct {
	Mwst                float64 `json:"mwst"`
	Stundenlohn         float64 `json:"stundenlohn"`
	Schnittpreis        float64 `json:"schnittpreis"`
	EinkaufspreisFormel string  `json:"einkaufspreisFormel"`
	AufwandFormel       string  `json:"aufwandsentschaedigungFormel"`
}

// Defaults returns the factory settings.
func Defaults() Settings {
	return Settings{
		Mwst:                defaultMwst,
		Stundenlohn:         defaultStundenlohn,
		Schnittpreis:        defaultSchnittpreis,
		EinkaufspreisFormel: defaultEinkaufFormel,
		AufwandFormel:       defaultAufwandFormel,
	}
}

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Validate checks the ranges enforced on explicit save.
func (s Settings) Validate() error {
	if err := checkRange("mwst", s.Mwst, 0, 100); err != nil {
		return err
	}
	if err := checkRange("stundenlohn", s.Stundenlohn, 0, math.MaxFloat64); err != nil {
		return err
	}
	if err := checkRange("schnittpreis", s.Schnittpreis, 0, math.MaxFloat64); err != nil {
		return err
	}
	if err := formula.Check(s.EinkaufspreisFormel); err != nil {
		return &ValidationError{Field: "einkaufspreisFormel", Message: err.Error()}
	}
	if err := formula.Check(s.AufwandFormel); err != nil {
		return &ValidationError{Field: "aufwandsentschaedigungFormel", Message: err.Error()}
	}
	return nil
}

// Form carries the raw text of a settings form.
type Form struct {
	Mwst                string `json:"mwst"`
	Stundenlohn         string `json:"stundenlohn"`
	Schnittpreis        string `json:"schnittpreis"`
	EinkaufspreisFormel string `json:"einkaufspreisFormel"`
	AufwandFormel       string `json:"aufwandsentschaedigungFormel"`
}

// ParseForm converts raw form text into validated Settings. A comma is
// accepted as decimal separator.
func ParseForm(f Form) (Settings, error) {
	var (
		s   Settings
		err error
	)
	if s.Mwst, err = parseNumber(f.Mwst, "mwst"); err != nil {
		return s, err
	}
	if s.Stundenlohn, err = parseNumber(f.Stundenlohn, "stundenlohn"); err != nil {
		return s, err
	}
	if s.Schnittpreis, err = parseNumber(f.Schnittpreis, "schnittpreis"); err != nil {
		return s, err
	}
	s.EinkaufspreisFormel = strings.TrimSpace(f.EinkaufspreisFormel)
	s.AufwandFormel = strings.TrimSpace(f.AufwandFormel)

	return s, s.Validate()
}

func parseNumber(raw, field string) (float64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: field, Message: "muss numerisch sein"}
	}
	return v, nil
}

func checkRange(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Message: "muss numerisch sein"}
	}
	if v < lo {
		return &ValidationError{Field: field, Message: fmt.Sprintf("muss größer oder gleich %g sein", lo)}
	}
	if v > hi {
		return &ValidationError{Field: field, Message: fmt.Sprintf("muss zwischen %g und %g liegen", lo, hi)}
	}
	return nil
}

// Repository persists settings.
type Repository interface {
	GetSettings(ctx context.Context) (Settings, error)
	SaveSettings(ctx context.Context, s Settings) error
}

// Snapshot is a versioned, read-only copy of the settings.
type Snapshot struct {
	Version  uint64   `json:"version"`
	Settings Settings `json:"settings"`
}

// Store owns the current settings snapshot.
type Store struct {
	mu      sync.Mutex
	repo    Repository
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store holding the defaults. repo may be nil.
func NewStore(repo Repository) *Store {
	s := &Store{repo: repo}
	s.current.Store(&Snapshot{Settings: Defaults()})
	return s
}

// Load replaces the snapshot with the persisted settings.
func (s *Store) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.repo.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	s.publish(loaded)
	return nil
}

// Snapshot returns the current settings snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Save validates, persists and publishes next.
func (s *Store) Save(ctx context.Context, next Settings) (*Snapshot, error) {
	if err := next.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.SaveSettings(ctx, next); err != nil {
			return nil, fmt.Errorf("save settings: %w", err)
		}
	}
	return s.publish(next), nil
}

func (s *Store) publish(next Settings) *Snapshot {
	snap := &Snapshot{Version: s.current.Load().Version + 1, Settings: next}
	s.current.Store(snap)
	return snap
}
