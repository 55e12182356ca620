package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alimikegami/content-service/internal/asset"
	"github.com/alimikegami/content-service/internal/domain"
	"github.com/alimikegami/content-service/internal/repository"
	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const orphanSweepBatch = 50

var assetOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "asset_operations_total",
	Help: "Image host operations by kind and outcome.",
}, []string{"operation", "outcome"})

// Uploader is the remote image host.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, publicID string) (url string, err error)
	Destroy(ctx context.Context, publicID string) (err error)
}

// AssetOwner identifies the document an asset belonged to, for the orphan ledger.
type AssetOwner struct {
	Collection string
	ID         string
}

type AssetService interface {
	// Prepare validates and normalizes a staged upload without contacting the host.
	Prepare(ctx context.Context, u asset.Upload) (err error)
	Store(ctx context.Context, u asset.Upload, failureMessage string) (url string, err error)
	// Discard deletes hosted assets best-effort. Failures are logged and
	// recorded for the reconciler, never returned.
	Discard(ctx context.Context, owner AssetOwner, urls ...string)
	SweepOrphanedAssets(ctx context.Context) (err error)
}

type AssetServiceImpl struct {
	uploader Uploader
	orphans  repository.OrphanedAssetRepository
}

func CreateAssetService(uploader Uploader, orphans repository.OrphanedAssetRepository) AssetService {
	return &AssetServiceImpl{uploader: uploader, orphans: orphans}
}

func (s *AssetServiceImpl) Prepare(ctx context.Context, u asset.Upload) (err error) {
	_, span := otel.Tracer("asset-pipeline").Start(ctx, "asset.Prepare")
	defer span.End()
	span.SetAttributes(attribute.String("asset.field", u.Field()), attribute.String("asset.content_type", u.ContentType()))

	if err = asset.Process(u); err != nil {
		span.SetStatus(codes.Error, err.Error())
		if !errors.Is(err, errs.ErrInvalidFormat) {
			log.Ctx(ctx).Error().Err(err).Str("component", "PrepareAsset").Msg("")
		}
		return err
	}

	return nil
}

func (s *AssetServiceImpl) Store(ctx context.Context, u asset.Upload, failureMessage string) (url string, err error) {
	ctx, span := otel.Tracer("asset-pipeline").Start(ctx, "asset.Store")
	defer span.End()

	publicID := ulid.Make().String()
	span.SetAttributes(attribute.String("asset.public_id", publicID))

	rc, err := u.Open()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "StoreAsset").Msg("")
		return "", errs.New(errs.ErrUploadFailure, failureMessage)
	}
	defer rc.Close()

	url, err = s.uploader.Upload(ctx, rc, publicID)
	if err == nil && url == "" {
		err = fmt.Errorf("upload of %s returned no url", publicID)
	}

	if err != nil {
		assetOperations.WithLabelValues("upload", "failure").Inc()
		span.SetStatus(codes.Error, err.Error())
		log.Ctx(ctx).Error().Err(err).Str("component", "StoreAsset").Str("field", u.Field()).Msg("")
		return "", errs.New(errs.ErrUploadFailure, failureMessage)
	}

	assetOperations.WithLabelValues("upload", "success").Inc()
	return url, nil
}

func (s *AssetServiceImpl) Discard(ctx context.Context, owner AssetOwner, urls ...string) {
	// the document write already happened, so a client hanging up must not
	// stop the cleanup or its ledger entry
	ctx = context.WithoutCancel(ctx)

	for _, url := range urls {
		if url == "" {
			continue
		}

		publicID := asset.PublicIDFromURL(url)
		err := s.uploader.Destroy(ctx, publicID)
		if err == nil {
			assetOperations.WithLabelValues("destroy", "success").Inc()
			continue
		}

		assetOperations.WithLabelValues("destroy", "failure").Inc()
		log.Ctx(ctx).Warn().Err(err).Str("component", "DiscardAsset").Str("public_id", publicID).Msg("asset left on host")

		orphan := domain.OrphanedAsset{
			PublicID:   publicID,
			URL:        url,
			Collection: owner.Collection,
			OwnerID:    owner.ID,
			Reason:     err.Error(),
		}
		if err := s.orphans.AddOrphanedAsset(ctx, orphan); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "DiscardAsset").Str("public_id", publicID).Msg("")
		}
	}
}

func (s *AssetServiceImpl) SweepOrphanedAssets(ctx context.Context) (err error) {
	orphans, err := s.orphans.GetOrphanedAssets(ctx, orphanSweepBatch)
	if err != nil {
		return err
	}

	var removed int
	for _, orphan := range orphans {
		if err := s.uploader.Destroy(ctx, orphan.PublicID); err != nil {
			assetOperations.WithLabelValues("sweep", "failure").Inc()
			if err := s.orphans.MarkOrphanedAssetAttempt(ctx, orphan.ID, err.Error()); err != nil {
				log.Ctx(ctx).Error().Err(err).Str("component", "SweepOrphanedAssets").Msg("")
			}
			continue
		}

		assetOperations.WithLabelValues("sweep", "success").Inc()
		if err := s.orphans.DeleteOrphanedAsset(ctx, orphan.ID); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "SweepOrphanedAssets").Msg("")
			continue
		}
		removed++
	}

	log.Ctx(ctx).Info().Int("pending", len(orphans)).Int("removed", removed).Str("component", "SweepOrphanedAssets").Msg("orphan sweep finished")

	return nil
}
