package service_test

import (
	"testing"

	"github.com/alimikegami/content-service/internal/domain"
	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/internal/testutil"
	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBannerUpToLimit(t *testing.T) {
	f := newFixture(t)
	repo := &testutil.BannerRepository{}
	svc := service.CreateBannerService(repo, f.assets, f.publisher)

	for i := 0; i < domain.MaxBanners; i++ {
		require.NoError(t, svc.AddBanner(f.ctx, testutil.ImageUpload("image")))
	}

	err := svc.AddBanner(f.ctx, testutil.ImageUpload("image"))

	assert.ErrorIs(t, err, errs.ErrLimitExceeded)
	assert.EqualError(t, err, "Banner limit reached")
	assert.Equal(t, domain.MaxBanners, f.uploader.UploadCount())
	assert.Equal(t, domain.MaxBanners, repo.Slots)
}

func TestAddBannerAtLimitNeverUploads(t *testing.T) {
	f := newFixture(t)
	repo := &testutil.BannerRepository{}
	svc := service.CreateBannerService(repo, f.assets, f.publisher)
	for i := 0; i < domain.MaxBanners; i++ {
		repo.Seed(domain.Banner{Image: hostedURL("b")})
	}

	err := svc.AddBanner(f.ctx, testutil.ImageUpload("image"))

	assert.EqualError(t, err, "Banner limit reached")
	assert.Zero(t, f.uploader.UploadCount())
}

func TestAddBannerSlotRaceLoser(t *testing.T) {
	f := newFixture(t)
	repo := &testutil.BannerRepository{Slots: domain.MaxBanners}
	svc := service.CreateBannerService(repo, f.assets, f.publisher)

	err := svc.AddBanner(f.ctx, testutil.ImageUpload("image"))

	assert.ErrorIs(t, err, errs.ErrLimitExceeded)
	assert.Zero(t, f.uploader.UploadCount())
}

func TestAddBannerUploadFailureReleasesSlot(t *testing.T) {
	f := newFixture(t)
	f.uploader.UploadErr = testutil.ErrHostDown
	repo := &testutil.BannerRepository{}
	svc := service.CreateBannerService(repo, f.assets, f.publisher)

	err := svc.AddBanner(f.ctx, testutil.ImageUpload("image"))

	assert.EqualError(t, err, "Image upload failed")
	assert.Zero(t, repo.Slots)
	assert.Zero(t, repo.Inserts)
}

func TestAddBannerRequiresImage(t *testing.T) {
	f := newFixture(t)
	repo := &testutil.BannerRepository{}
	svc := service.CreateBannerService(repo, f.assets, f.publisher)

	assert.EqualError(t, svc.AddBanner(f.ctx, nil), "Image is required")
	assert.EqualError(t, svc.AddBanner(f.ctx, testutil.GIFUpload("image")), "Invalid image format")
	assert.Zero(t, repo.Slots)
}

func TestUpdateAndDeleteBanner(t *testing.T) {
	f := newFixture(t)
	repo := &testutil.BannerRepository{Slots: 1}
	svc := service.CreateBannerService(repo, f.assets, f.publisher)
	id := repo.Seed(domain.Banner{Image: hostedURL("oldBanner")})

	_, err := svc.UpdateBanner(f.ctx, id.Hex(), nil)
	assert.ErrorIs(t, err, errs.ErrNoOp)

	updated, err := svc.UpdateBanner(f.ctx, id.Hex(), testutil.ImageUpload("image"))
	require.NoError(t, err)
	assert.Equal(t, hostedURL(f.uploader.Uploaded[0]), updated.Image)
	assert.Equal(t, []string{"oldBanner"}, f.uploader.Destroyed)

	require.NoError(t, svc.DeleteBanner(f.ctx, id.Hex()))
	assert.Zero(t, repo.Slots)
	assert.Equal(t, 2, f.uploader.DestroyCount())

	banners, err := svc.GetBanners(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, banners)
}

func TestSyncBannerSlots(t *testing.T) {
	f := newFixture(t)
	repo := &testutil.BannerRepository{Slots: 3}
	svc := service.CreateBannerService(repo, f.assets, f.publisher)
	repo.Seed(domain.Banner{Image: hostedURL("only")})

	require.NoError(t, svc.SyncBannerSlots(f.ctx))

	assert.Equal(t, 1, repo.Slots)
}
