package models

import "time"

type ContainerInfo struct {
	ContainerName  string    `json:"container_name"`
	ObjectCount    int64     `json:"object_count"`
	TotalSizeBytes int64     `json:"total_size_bytes"`
	TotalSizeHuman string    `json:"total_size_human"`
	LastModified   time.Time `json:"last_modified"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	Command   string `json:"command"`
}
