package service_test

import (
	"context"
	"testing"

	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/internal/testutil"
	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreReturnsHostedURL(t *testing.T) {
	f := newFixture(t)
	upload := testutil.ImageUpload("thumbnail")
	require.NoError(t, f.assets.Prepare(f.ctx, upload))

	url, err := f.assets.Store(f.ctx, upload, "Thumbnail upload failed")

	require.NoError(t, err)
	require.Len(t, f.uploader.Uploaded, 1)
	assert.Equal(t, hostedURL(f.uploader.Uploaded[0]), url)
	assert.Equal(t, "image/jpeg", upload.ContentType())
}

func TestStoreFailureUsesCallerMessage(t *testing.T) {
	f := newFixture(t)
	f.uploader.UploadErr = testutil.ErrHostDown

	_, err := f.assets.Store(f.ctx, testutil.ImageUpload("detailImage"), "Detail image upload failed")

	assert.ErrorIs(t, err, errs.ErrUploadFailure)
	assert.EqualError(t, err, "Detail image upload failed")
}

func TestDiscardRecordsOrphansAndSweepRetries(t *testing.T) {
	f := newFixture(t)
	f.uploader.DestroyErr = testutil.ErrHostDown
	owner := service.AssetOwner{Collection: "blogs", ID: "65f1c0a2b3d4e5f607182930"}

	f.assets.Discard(f.ctx, owner, hostedURL("a"), "", hostedURL("b"))

	assert.Equal(t, []string{"a", "b"}, f.uploader.Destroyed, "empty urls are skipped")
	require.Len(t, f.orphans.Assets, 2)
	assert.Equal(t, "blogs", f.orphans.Assets[0].Collection)
	assert.Equal(t, testutil.ErrHostDown.Error(), f.orphans.Assets[0].Reason)

	require.NoError(t, f.assets.SweepOrphanedAssets(f.ctx))
	require.Len(t, f.orphans.Assets, 2)
	assert.Equal(t, 1, f.orphans.Assets[0].Attempts)

	f.uploader.DestroyErr = nil
	require.NoError(t, f.assets.SweepOrphanedAssets(f.ctx))
	assert.Empty(t, f.orphans.Assets)
}

func TestDiscardSurvivesCancelledRequest(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(f.ctx)
	cancel()

	f.assets.Discard(ctx, service.AssetOwner{Collection: "products"}, hostedURL("gone"))
	assert.Equal(t, []string{"gone"}, f.uploader.Destroyed)

	f.uploader.DestroyErr = testutil.ErrHostDown
	f.assets.Discard(ctx, service.AssetOwner{Collection: "products"}, hostedURL("stuck"))
	require.Len(t, f.orphans.Assets, 1)
	assert.Equal(t, "stuck", f.orphans.Assets[0].PublicID)
}
