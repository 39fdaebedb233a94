// Package store provides the persistence boundary: load and save of
// the full state snapshot as a JSON file, plus the theme preference.
// Both directions are fallible-safe - a missing, unparseable, or
// version-mismatched snapshot falls back to the default dataset, and
// save failures are logged and swallowed so the session continues
// in-memory.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"budgetdash/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Default file names inside the data directory.
const (
	StateFileName = "state.json"
	ThemeFileName = "theme"
	SeedFileName  = "seed.yaml"
)

// Store persists snapshots under a single data directory.
type Store struct {
	Dir string
}

// New creates a store rooted at the given data directory.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) statePath() string {
	return filepath.Join(s.Dir, StateFileName)
}

// StateExists reports whether a snapshot file is present, regardless
// of whether it will load cleanly.
func (s *Store) StateExists() bool {
	info, err := os.Stat(s.statePath())
	return err == nil && !info.IsDir()
}

// Load returns the previously saved snapshot if it is present,
// parseable, and tagged with the expected schema version; anything
// else silently yields the default dataset (overlaid with the seed
// file when one exists).
func (s *Store) Load() models.AppState {
	data, err := os.ReadFile(s.statePath())
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warn("Failed to read state snapshot, using defaults")
		}
		return s.seeded(models.DefaultState())
	}

	var st models.AppState
	if err := json.Unmarshal(data, &st); err != nil {
		log.WithError(err).Warn("Malformed state snapshot, using defaults")
		return s.seeded(models.DefaultState())
	}
	migrated, ok := migrate(st)
	if !ok {
		log.WithField("version", st.Version).Warn("Unsupported snapshot version, using defaults")
		return s.seeded(models.DefaultState())
	}
	return migrated
}

// Save serializes the full snapshot. Failures (unwritable directory,
// quota) are logged and ignored.
func (s *Store) Save(st models.AppState) {
	if err := os.MkdirAll(s.Dir, 0750); err != nil {
		log.WithError(err).Warn("Failed to create data directory, state not persisted")
		return
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		log.WithError(err).Warn("Failed to serialize state, not persisted")
		return
	}
	if err := os.WriteFile(s.statePath(), data, 0644); err != nil {
		log.WithError(err).Warn("Failed to write state snapshot, session continues in-memory")
	}
}

// LoadTheme returns the persisted theme preference, empty when none
// has been saved.
func (s *Store) LoadTheme() string {
	data, err := os.ReadFile(filepath.Join(s.Dir, ThemeFileName))
	if err != nil {
		return ""
	}
	return string(data)
}

// SaveTheme persists the theme preference under its own key. Failures
// are logged and ignored.
func (s *Store) SaveTheme(theme string) {
	if err := os.MkdirAll(s.Dir, 0750); err != nil {
		log.WithError(err).Warn("Failed to create data directory, theme not persisted")
		return
	}
	if err := os.WriteFile(filepath.Join(s.Dir, ThemeFileName), []byte(theme), 0644); err != nil {
		log.WithError(err).Warn("Failed to persist theme preference")
	}
}

// Seed is the optional YAML overlay a user can drop into the data
// directory to replace the starter categories, accounts, or rules.
type Seed struct {
	Categories []models.Category `yaml:"categories"`
	Accounts   []models.Account  `yaml:"accounts"`
	Rules      []models.Rule     `yaml:"rules"`
}

// seeded overlays the seed file onto a default dataset. A missing or
// malformed seed file leaves the defaults untouched.
func (s *Store) seeded(st models.AppState) models.AppState {
	data, err := os.ReadFile(filepath.Join(s.Dir, SeedFileName))
	if err != nil {
		return st
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		log.WithError(err).Warn("Malformed seed file, ignoring")
		return st
	}
	if len(seed.Categories) > 0 {
		st.Categories = seed.Categories
	}
	if len(seed.Accounts) > 0 {
		st.Accounts = seed.Accounts
	}
	if len(seed.Rules) > 0 {
		st.Rules = seed.Rules
	}
	log.WithFields(logrus.Fields{
		"categories": len(seed.Categories),
		"accounts":   len(seed.Accounts),
		"rules":      len(seed.Rules),
	}).Debug("Applied seed overlay to default dataset")
	return st
}

// migrate upgrades a snapshot to the current schema version. Only the
// identity migration exists today; the switch is the extension point
// for future versions.
func migrate(st models.AppState) (models.AppState, bool) {
	switch st.Version {
	case models.SchemaVersion:
		return st, true
	default:
		return models.AppState{}, false
	}
}
