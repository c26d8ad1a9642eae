package models

// FrameRate is the fixed capture rate of the optical system in Hz.
// It is a property of the hardware, not of the files, so it is never
// read from input.
const FrameRate = 300.0

// FrameInterval is the fixed time step between successive frames.
const FrameInterval = 1.0 / FrameRate

// FrameRecord is one synchronized sample of the capture sequence.
// Joint coverage may be partial; the combiner fills missing entries with
// empty maps and zero metrics.
type FrameRecord struct {
	FrameNumber    int                            `json:"frameNumber"`
	JointCenters   map[JointName]JointPosition    `json:"jointCenters"`
	JointRotations map[JointName]JointOrientation `json:"jointRotations"`
	Metrics        BiomechanicalMetrics           `json:"metrics"`
}

// MotionDataset is the complete synchronized result of one ingestion,
// sorted ascending by frame number. It is immutable once built; a new
// upload replaces the whole dataset by reference.
type MotionDataset struct {
	Frames        []FrameRecord `json:"frames"`
	FrameRate     float64       `json:"frameRate"`
	Duration      float64       `json:"duration"` // seconds
	JointNames    []JointName   `json:"jointNames"`
	UsingFallback bool          `json:"usingFallback"` // metrics are synthetic demonstration data
}

// NewMotionDataset builds a dataset from ordered frames, stamping the
// fixed frame rate and derived duration.
func NewMotionDataset(frames []FrameRecord, usingFallback bool) *MotionDataset {
	return &MotionDataset{
		Frames:        frames,
		FrameRate:     FrameRate,
		Duration:      float64(len(frames)) / FrameRate,
		JointNames:    JointNames,
		UsingFallback: usingFallback,
	}
}
