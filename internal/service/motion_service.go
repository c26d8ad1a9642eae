// Package service orchestrates the ingestion pipeline: detect and parse
// the three capture exports, extract joints, derive or adopt metrics, and
// combine everything into one MotionDataset.
package service

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pitchlab/mocap-backend-go/internal/biomech"
	"github.com/pitchlab/mocap-backend-go/internal/ingest"
	"github.com/pitchlab/mocap-backend-go/internal/models"
	"github.com/pitchlab/mocap-backend-go/internal/monitoring"
	"github.com/pitchlab/mocap-backend-go/internal/parser"
	"github.com/pitchlab/mocap-backend-go/internal/spatial"
)

// IngestInput carries the three raw payloads of one upload. MetricsText
// is optional; when empty the biomechanics deriver runs instead.
type IngestInput struct {
	CentersText   string
	RotationsText string
	MetricsText   string

	// Original filenames, recorded on the audit session.
	CentersFile   string
	RotationsFile string
	MetricsFile   string
}

// MotionService runs the ingestion pipeline and keeps the active dataset.
type MotionService struct {
	obs   monitoring.Observer
	rng   *rand.Rand
	store *DatasetStore
}

// NewMotionService builds the service. The observer receives pipeline
// diagnostics; the random source drives fallback jitter (nil seeds from
// the clock).
func NewMotionService(obs monitoring.Observer, rng *rand.Rand, store *DatasetStore) *MotionService {
	if obs == nil {
		obs = monitoring.NewLogObserver()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if store == nil {
		store = NewDatasetStore()
	}
	return &MotionService{obs: obs, rng: rng, store: store}
}

// Store exposes the dataset store for handlers.
func (s *MotionService) Store() *DatasetStore {
	return s.store
}

// Ingest processes one complete upload end to end and replaces the active
// dataset. The pipeline is total: malformed content degrades to fewer
// frames (possibly zero), never an error.
func (s *MotionService) Ingest(input IngestInput) (*models.MotionDataset, models.IngestSession) {
	// Tee diagnostics so the audit record can count drops and repairs
	// without taking them away from the configured observer.
	rec := &monitoring.Recorder{}
	obs := teeObserver{s.obs, rec}

	centers := ingest.ExtractJointCenters(parseExport(input.CentersText, "centers", obs), obs)
	rotations := ingest.ExtractJointRotations(parseExport(input.RotationsText, "rotations", obs), obs)

	var metrics map[int]models.BiomechanicalMetrics
	if input.MetricsText != "" {
		metrics = ingest.ExtractMetricRecords(parseExport(input.MetricsText, "metrics", obs), obs)
	}

	deriver := biomech.NewDeriver(obs, s.rng)
	dataset := Combine(centers, rotations, metrics, deriver)

	session := models.IngestSession{
		ID:                  uuid.NewString(),
		CreatedAt:           time.Now().UTC().Format(time.RFC3339),
		CentersFile:         input.CentersFile,
		RotationsFile:       input.RotationsFile,
		MetricsFile:         input.MetricsFile,
		FrameCount:          len(dataset.Frames),
		JointCount:          models.NumJoints,
		DurationSeconds:     dataset.Duration,
		DroppedRows:         rec.Count(monitoring.EventRowDropped),
		RepairedQuaternions: rec.Count(monitoring.EventQuaternionRepaired),
		UsingFallback:       dataset.UsingFallback,
		MeanBoneLength:      spatial.MeanBoneLength(dataset.Frames),
	}

	s.store.Replace(dataset, session)
	return dataset, session
}

// Combine merges joint centers, rotations and metrics into one ordered
// dataset. The joint-center map is the authoritative frame index set;
// missing rotations default to an empty joint map and missing metrics to
// a zero record with only the timestamp filled in. When metrics is nil
// the deriver computes them from the rotations.
func Combine(
	centers map[int]map[models.JointName]models.JointPosition,
	rotations map[int]map[models.JointName]models.JointOrientation,
	metrics map[int]models.BiomechanicalMetrics,
	deriver *biomech.Deriver,
) *models.MotionDataset {
	usingFallback := false
	if metrics == nil {
		res := deriver.Derive(rotations)
		metrics = res.Metrics
		usingFallback = res.UsingFallback
	}

	frameNumbers := make([]int, 0, len(centers))
	for frame := range centers {
		frameNumbers = append(frameNumbers, frame)
	}
	sort.Ints(frameNumbers)

	frames := make([]models.FrameRecord, 0, len(frameNumbers))
	for _, frame := range frameNumbers {
		rot, ok := rotations[frame]
		if !ok {
			rot = map[models.JointName]models.JointOrientation{}
		}
		m, ok := metrics[frame]
		if !ok {
			m = models.BiomechanicalMetrics{Timestamp: float64(frame) * models.FrameInterval}
		}
		frames = append(frames, models.FrameRecord{
			FrameNumber:    frame,
			JointCenters:   centers[frame],
			JointRotations: rot,
			Metrics:        m,
		})
	}

	return models.NewMotionDataset(frames, usingFallback)
}

// parseExport parses one raw export and reports a skipped header row.
func parseExport(text, label string, obs monitoring.Observer) [][]string {
	rows, hadHeader := parser.ParseRows(text, parser.Detect(text))
	if hadHeader {
		obs.Observe(monitoring.Event{Kind: monitoring.EventHeaderSkipped, Frame: -1, Message: label})
	}
	return rows
}

// teeObserver forwards every event to both sinks.
type teeObserver struct {
	a, b monitoring.Observer
}

func (t teeObserver) Observe(e monitoring.Event) {
	t.a.Observe(e)
	t.b.Observe(e)
}
