// Package common provides shared helpers for commands that load and save
// the plan-state snapshot.
package common

import (
	"github.com/sirupsen/logrus"

	"github.com/sudat/cf-simu/internal/planstate"
	"github.com/sudat/cf-simu/internal/store"
)

// LoadStore loads the snapshot from the given file into a mutable store.
func LoadStore(stateFile string, log *logrus.Logger) (*planstate.Store, *store.StateStore) {
	fileStore := store.NewStateStore(stateFile)
	state, err := fileStore.Load()
	if err != nil {
		log.Fatalf("Failed to load state from %s: %v", stateFile, err)
	}
	return planstate.NewStoreWithState(state), fileStore
}

// SaveStore writes the store's snapshot back to its file.
func SaveStore(st *planstate.Store, fileStore *store.StateStore, log *logrus.Logger) {
	if err := fileStore.Save(st.State()); err != nil {
		log.Fatalf("Failed to save state: %v", err)
	}
}
