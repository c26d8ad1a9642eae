package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchlab/mocap-backend-go/internal/database"
	"github.com/pitchlab/mocap-backend-go/internal/models"
)

func newTestRepo(t *testing.T) *SessionRepository {
	t.Helper()
	db, err := database.Open(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSessionRepository(db)
}

func sampleSession(id, createdAt string) models.IngestSession {
	return models.IngestSession{
		ID:                  id,
		CreatedAt:           createdAt,
		CentersFile:         "centers.csv",
		RotationsFile:       "rotations.csv",
		FrameCount:          1200,
		JointCount:          models.NumJoints,
		DurationSeconds:     4.0,
		DroppedRows:         2,
		RepairedQuaternions: 5,
		UsingFallback:       true,
		MeanBoneLength:      0.31,
	}
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	want := sampleSession("s-1", "2026-08-30T10:00:00Z")
	require.NoError(t, repo.Create(&want))

	got, err := repo.GetByID("s-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestSessionRepositoryGetMissing(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetByID("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRepositoryList(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(ptr(sampleSession("s-1", "2026-08-30T10:00:00Z"))))
	require.NoError(t, repo.Create(ptr(sampleSession("s-2", "2026-08-30T11:00:00Z"))))
	require.NoError(t, repo.Create(ptr(sampleSession("s-3", "2026-08-30T12:00:00Z"))))

	sessions, total, err := repo.List(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, sessions, 2)
	// Newest first.
	assert.Equal(t, "s-3", sessions[0].ID)
	assert.Equal(t, "s-2", sessions[1].ID)

	sessions, _, err = repo.List(2, 2)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "s-1", sessions[0].ID)
}

func ptr(s models.IngestSession) *models.IngestSession {
	return &s
}
