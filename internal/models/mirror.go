package models

// Failure kinds recorded per blob during a mirror run.
const (
	FailureExists    = "already_exists"
	FailureTransport = "transport"
	FailureError     = "error"
)

type MirrorItem struct {
	RemotePath string `json:"remote_path"`
	LocalPath  string `json:"local_path"`
	Size       int64  `json:"size"`
}

type MirrorFailure struct {
	RemotePath string `json:"remote_path"`
	Kind       string `json:"kind"`
	Error      string `json:"error"`
}

type MirrorResult struct {
	ContainerName   string          `json:"container_name"`
	OutputRoot      string          `json:"output_root"`
	Downloaded      []MirrorItem    `json:"downloaded"`
	Failures        []MirrorFailure `json:"failures"`
	DownloadedCount int             `json:"downloaded_count"`
	SkippedCount    int             `json:"skipped_count"`
	FailedCount     int             `json:"failed_count"`
	TotalSizeBytes  int64           `json:"total_size_bytes"`
	TotalSizeHuman  string          `json:"total_size_human"`
	OperationTime   string          `json:"operation_time"`
	MirrorDuration  string          `json:"mirror_duration"`
}
