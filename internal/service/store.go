package service

import (
	"sync"

	"github.com/pitchlab/mocap-backend-go/internal/models"
)

// DatasetStore holds the active MotionDataset. Datasets are immutable;
// a new upload swaps the pointer, so concurrent readers (playback
// streams, dashboard queries) keep working on their snapshot.
type DatasetStore struct {
	mu      sync.RWMutex
	current *models.MotionDataset
	session models.IngestSession
}

// NewDatasetStore returns an empty store.
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{}
}

// Replace installs a new dataset and its session record.
func (s *DatasetStore) Replace(ds *models.MotionDataset, session models.IngestSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ds
	s.session = session
}

// Current returns the active dataset and its session, or ok=false when
// nothing has been ingested yet.
func (s *DatasetStore) Current() (*models.MotionDataset, models.IngestSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.session, s.current != nil
}
