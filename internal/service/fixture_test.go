package service_test

import (
	"context"
	"testing"

	"github.com/alimikegami/content-service/internal/asset"
	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/internal/testutil"
)

type fixture struct {
	ctx       context.Context
	uploader  *testutil.Uploader
	orphans   *testutil.OrphanedAssetRepository
	publisher *testutil.Publisher
	assets    service.AssetService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		ctx:       context.Background(),
		uploader:  &testutil.Uploader{},
		orphans:   &testutil.OrphanedAssetRepository{},
		publisher: &testutil.Publisher{},
	}
	f.assets = service.CreateAssetService(f.uploader, f.orphans)
	return f
}

func hostedURL(publicID string) string {
	return "https://res.cloudinary.com/test/image/upload/v1/" + publicID + ".jpg"
}

func publicIDs(urls ...string) []string {
	ids := make([]string, 0, len(urls))
	for _, url := range urls {
		ids = append(ids, asset.PublicIDFromURL(url))
	}
	return ids
}

func ptr[T any](v T) *T {
	return &v
}
