package service

import (
	"context"
	"errors"

	"github.com/alimikegami/content-service/internal/asset"
	"github.com/alimikegami/content-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
)

// imageSlot is one image field of a document together with the file sent to
// replace it and the messages used when that file is rejected.
type imageSlot struct {
	field    string
	upload   asset.Upload
	current  string
	required string
	invalid  string
	failed   string
}

func (s imageSlot) missing() error {
	if s.upload == nil && s.required != "" {
		return errs.New(errs.ErrValidation, s.required)
	}
	return nil
}

// prepareImages normalizes every provided file before any of them is uploaded.
func prepareImages(ctx context.Context, assets AssetService, slots ...imageSlot) error {
	for _, slot := range slots {
		if err := slot.missing(); err != nil {
			return err
		}
	}

	for _, slot := range slots {
		if slot.upload == nil {
			continue
		}

		if err := assets.Prepare(ctx, slot.upload); err != nil {
			if errors.Is(err, errs.ErrInvalidFormat) {
				return errs.New(errs.ErrInvalidFormat, slot.invalid)
			}
			return err
		}
	}

	return nil
}

// uploadImages stores every provided file and writes its URL into fields. It
// returns the new URLs and the URLs they replace. If any upload fails the ones
// already stored are discarded.
func uploadImages(ctx context.Context, assets AssetService, owner AssetOwner, fields bson.M, slots ...imageSlot) (fresh, stale []string, err error) {
	for _, slot := range slots {
		if slot.upload == nil {
			continue
		}

		url, err := assets.Store(ctx, slot.upload, slot.failed)
		if err != nil {
			assets.Discard(ctx, owner, fresh...)
			return nil, nil, err
		}

		fields[slot.field] = url
		fresh = append(fresh, url)
		if slot.current != "" {
			stale = append(stale, slot.current)
		}
	}

	return fresh, stale, nil
}

func setIfChanged[T comparable](fields bson.M, key string, next *T, current T) {
	if next != nil && *next != current {
		fields[key] = *next
	}
}

func stringField(fields bson.M, key string) string {
	value, _ := fields[key].(string)
	return value
}
