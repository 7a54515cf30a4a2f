package blobclient

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	appConfig "blobmirror/config"
	"blobmirror/internal/mirror"
	"blobmirror/internal/models"
	"blobmirror/pkg/utils"
)

type Client struct {
	azClient *azblob.Client
	config   *appConfig.Config
}

func New(cfg *appConfig.Config) (*Client, error) {
	azClient, err := azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	return &Client{
		azClient: azClient,
		config:   cfg,
	}, nil
}

// ListPager adapts the flat blob listing of the configured container to the
// mirror engine's lister. The returned pager is single-pass.
func (c *Client) ListPager() mirror.ObjectLister {
	return &listPager{
		pager: c.azClient.NewListBlobsFlatPager(c.config.ContainerName, nil),
	}
}

type listPager struct {
	pager *runtime.Pager[azblob.ListBlobsFlatResponse]
}

func (p *listPager) More() bool {
	return p.pager.More()
}

func (p *listPager) NextPage(ctx context.Context) ([]mirror.Object, error) {
	page, err := p.pager.NextPage(ctx)
	if err != nil {
		if bloberror.HasCode(err, bloberror.ContainerNotFound) {
			return nil, fmt.Errorf("container not found: %w", err)
		}
		return nil, err
	}

	objects := make([]mirror.Object, 0, len(page.Segment.BlobItems))
	for _, item := range page.Segment.BlobItems {
		obj := mirror.Object{Name: *item.Name}
		if item.Properties != nil && item.Properties.ContentLength != nil {
			obj.Size = *item.Properties.ContentLength
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// Fetch streams one blob's content into a newly created file at destPath.
func (c *Client) Fetch(ctx context.Context, name, destPath string) error {
	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}
	// Best-effort close for cleanup - Close error returned for checking below.
	defer f.Close() //nolint:errcheck

	if _, err := c.azClient.DownloadFile(ctx, c.config.ContainerName, name, f, nil); err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return fmt.Errorf("blob %s not found: %w", name, err)
		}
		return fmt.Errorf("failed to download blob %s: %w", name, err)
	}

	return f.Close()
}

// ContainerInfo walks the container listing and aggregates object count,
// total size and the most recent modification time.
func (c *Client) ContainerInfo(ctx context.Context) (*models.ContainerInfo, error) {
	var objectCount int64
	var totalSize int64
	var lastModified time.Time

	pager := c.azClient.NewListBlobsFlatPager(c.config.ContainerName, nil)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			if bloberror.HasCode(err, bloberror.ContainerNotFound) {
				return nil, fmt.Errorf("container not found: %w", err)
			}
			return nil, fmt.Errorf("failed to list blobs: %w", err)
		}

		for _, item := range page.Segment.BlobItems {
			objectCount++
			if item.Properties == nil {
				continue
			}
			if item.Properties.ContentLength != nil {
				totalSize += *item.Properties.ContentLength
			}
			if item.Properties.LastModified != nil && item.Properties.LastModified.After(lastModified) {
				lastModified = *item.Properties.LastModified
			}
		}
	}

	return &models.ContainerInfo{
		ContainerName:  c.config.ContainerName,
		ObjectCount:    objectCount,
		TotalSizeBytes: totalSize,
		TotalSizeHuman: utils.FormatBytes(totalSize),
		LastModified:   lastModified,
	}, nil
}
