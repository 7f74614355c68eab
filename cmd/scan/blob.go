package scan

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Azure/azure-storage-blob-go/azblob"
	"go.uber.org/zap"
)

// segmentLister is the part of azblob.ContainerURL used for listing.
type segmentLister interface {
	ListBlobsFlatSegment(ctx context.Context, marker azblob.Marker, o azblob.ListBlobsSegmentOptions) (*azblob.ListBlobsFlatSegmentResponse, error)
}

// BlobSource lists the blob names of an Azure Storage container.
type BlobSource struct {
	Container string
	Prefix    string
	Log       *zap.Logger

	lister segmentLister
}

func NewBlobSource(storageAccount, container, storageAccountKey, prefix string, log *zap.Logger) (*BlobSource, error) {
	credential, err := azblob.NewSharedKeyCredential(storageAccount, storageAccountKey)
	if err != nil {
		return nil, fmt.Errorf("building storage credential: %w", err)
	}

	p := azblob.NewPipeline(credential, azblob.PipelineOptions{})

	u, err := url.Parse(fmt.Sprintf("https://%s.blob.core.windows.net/%s", storageAccount, container))
	if err != nil {
		return nil, fmt.Errorf("building container url: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}
	return &BlobSource{
		Container: container,
		Prefix:    prefix,
		Log:       log,
		lister:    azblob.NewContainerURL(*u, p),
	}, nil
}

// Walk visits every blob name, one listing segment at a time.
func (s *BlobSource) Walk(ctx context.Context, visit VisitFunc) (Stats, error) {
	var stats Stats
	for marker := (azblob.Marker{}); marker.NotDone(); {
		resp, err := s.lister.ListBlobsFlatSegment(ctx, marker, azblob.ListBlobsSegmentOptions{Prefix: s.Prefix})
		if err != nil {
			return stats, fmt.Errorf("listing container %s: %w", s.Container, err)
		}
		s.Log.Debug("listed segment", zap.String("container", s.Container), zap.Int("blobs", len(resp.Segment.BlobItems)))

		for _, blob := range resp.Segment.BlobItems {
			stats.Files++
			visit(blob.Name)
		}
		marker = resp.NextMarker
	}
	return stats, nil
}
