package models

// IngestSession is the persisted audit record of one ingestion run.
// Only bookkeeping is stored; parsed frames stay in memory.
type IngestSession struct {
	ID                  string  `json:"id" db:"id"`
	CreatedAt           string  `json:"createdAt" db:"created_at"`
	CentersFile         string  `json:"centersFile" db:"centers_file"`
	RotationsFile       string  `json:"rotationsFile" db:"rotations_file"`
	MetricsFile         string  `json:"metricsFile,omitempty" db:"metrics_file"`
	FrameCount          int     `json:"frameCount" db:"frame_count"`
	JointCount          int     `json:"jointCount" db:"joint_count"`
	DurationSeconds     float64 `json:"durationSeconds" db:"duration_seconds"`
	DroppedRows         int     `json:"droppedRows" db:"dropped_rows"`
	RepairedQuaternions int     `json:"repairedQuaternions" db:"repaired_quaternions"`
	UsingFallback       bool    `json:"usingFallback" db:"using_fallback"`
	MeanBoneLength      float64 `json:"meanBoneLength" db:"mean_bone_length"` // meters, skeleton scale sanity figure
}

// SessionsResponse is the paginated envelope for the session history API.
type SessionsResponse struct {
	Data       []IngestSession `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// FrameFilter is the query-parameter filter for the frames API.
type FrameFilter struct {
	StartFrame int `form:"startFrame"`
	EndFrame   int `form:"endFrame"`
	Page       int `form:"page"`
	PageSize   int `form:"pageSize"`
}

// FramesResponse is the paginated envelope for the frames API.
type FramesResponse struct {
	Data       []FrameRecord `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}
