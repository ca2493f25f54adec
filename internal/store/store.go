// Package store persists plan-state snapshots as YAML. The core never
// touches it; hosts load a snapshot, run operations and save the result.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sudat/cf-simu/internal/logging"
	"github.com/sudat/cf-simu/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// StateStore reads and writes one snapshot file.
type StateStore struct {
	File string
}

// NewStateStore creates a store over the given snapshot file path.
func NewStateStore(file string) *StateStore {
	return &StateStore{File: file}
}

// Load reads the snapshot. A missing file yields an empty initial state,
// not an error, so first runs need no setup step.
func (s *StateStore) Load() (*models.PlanState, error) {
	data, err := os.ReadFile(s.File)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField(logging.FieldFile, s.File).Debug("state file not found, starting empty")
			return models.NewPlanState(), nil
		}
		return nil, fmt.Errorf("error reading state file: %w", err)
	}

	state := models.NewPlanState()
	if err := yaml.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("error parsing state file: %w", err)
	}
	state.Normalize()

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.File},
		logging.Field{Key: logging.FieldCount, Value: len(state.Plans)},
	).Debug("state loaded")
	return state, nil
}

// Save writes the snapshot, creating the parent directory if needed.
func (s *StateStore) Save(state *models.PlanState) error {
	dir := filepath.Dir(s.File)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("error marshaling state: %w", err)
	}

	if err := os.WriteFile(s.File, data, 0644); err != nil {
		return fmt.Errorf("error writing state file: %w", err)
	}

	log.WithField(logging.FieldFile, s.File).Debug("state saved")
	return nil
}
