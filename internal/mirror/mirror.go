package mirror

import (
	"blobmirror/internal/models"
	"blobmirror/pkg/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ErrOutputRootIsFile is returned when the output path points at an
// existing regular file.
var ErrOutputRootIsFile = errors.New("output path exists and is a regular file")

// Object describes one remote blob as reported by the listing.
type Object struct {
	Name string
	Size int64
}

// ObjectLister yields the container's blobs page by page. The sequence is
// lazy and single-pass: once More reports false the listing is exhausted.
type ObjectLister interface {
	More() bool
	NextPage(ctx context.Context) ([]Object, error)
}

// ObjectFetcher writes one blob's content to destPath.
type ObjectFetcher interface {
	Fetch(ctx context.Context, name, destPath string) error
}

// Engine mirrors every listed blob under OutputRoot, one at a time, in
// listing order. It never overwrites an existing file and never deletes
// anything; a failure on one blob is recorded and the next blob is
// processed.
type Engine struct {
	OutputRoot string
	Lister     ObjectLister
	Fetcher    ObjectFetcher

	// Container is used for reporting only.
	Container string

	// Progress receives one line per processed blob.
	Progress io.Writer
}

func NewEngine(outputRoot string, lister ObjectLister, fetcher ObjectFetcher) *Engine {
	return &Engine{
		OutputRoot: outputRoot,
		Lister:     lister,
		Fetcher:    fetcher,
		Progress:   io.Discard,
	}
}

// Run validates the output root, then downloads every listed blob whose
// sanitized path does not already exist. Per-blob failures are collected
// in the result; only output-root validation and listing failures are
// returned as errors.
func (e *Engine) Run(ctx context.Context) (*models.MirrorResult, error) {
	startTime := time.Now()

	root, err := filepath.Abs(e.OutputRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}

	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrOutputRootIsFile, root)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &models.MirrorResult{
		ContainerName: e.Container,
		OutputRoot:    root,
	}

	for e.Lister.More() {
		page, err := e.Lister.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list blobs: %w", err)
		}
		for _, obj := range page {
			e.processObject(ctx, root, obj, result)
		}
	}

	result.DownloadedCount = len(result.Downloaded)
	result.FailedCount = len(result.Failures)
	result.TotalSizeHuman = utils.FormatBytes(result.TotalSizeBytes)
	result.OperationTime = utils.FormatTime(startTime)
	result.MirrorDuration = time.Since(startTime).String()

	return result, nil
}

func (e *Engine) processObject(ctx context.Context, root string, obj Object, result *models.MirrorResult) {
	rel, ok := SanitizeBlobName(obj.Name)
	if !ok {
		result.SkippedCount++
		return
	}

	localPath := filepath.Join(root, filepath.FromSlash(rel))
	fmt.Fprintf(e.Progress, "%s -> %s\n", obj.Name, localPath)

	if _, err := os.Stat(localPath); err == nil {
		e.recordFailure(result, obj, models.FailureExists,
			fmt.Errorf("destination already exists: %s", localPath))
		return
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		e.recordFailure(result, obj, models.FailureError, err)
		return
	}

	if err := e.Fetcher.Fetch(ctx, obj.Name, localPath); err != nil {
		e.recordFailure(result, obj, models.FailureTransport, err)
		return
	}

	fmt.Fprintf(e.Progress, "  ok\n")
	result.Downloaded = append(result.Downloaded, models.MirrorItem{
		RemotePath: obj.Name,
		LocalPath:  localPath,
		Size:       obj.Size,
	})
	result.TotalSizeBytes += obj.Size
}

func (e *Engine) recordFailure(result *models.MirrorResult, obj Object, kind string, err error) {
	fmt.Fprintf(e.Progress, "  failed (%s): %v\n", kind, err)
	result.Failures = append(result.Failures, models.MirrorFailure{
		RemotePath: obj.Name,
		Kind:       kind,
		Error:      err.Error(),
	})
}
