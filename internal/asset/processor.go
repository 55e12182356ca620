package asset

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"math"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/alimikegami/content-service/pkg/errs"
	"golang.org/x/image/draw"
)

const (
	MaxWidth    = 1440
	MaxHeight   = 1080
	JPEGQuality = 70
)

var supportedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

func IsSupportedType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return supportedTypes[strings.ToLower(mediaType)]
}

// TargetSize clamps the width first and then the height, keeping the
// aspect ratio. Images are never upscaled.
func TargetSize(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return width, height
	}

	ratio := float64(width) / float64(height)

	w := min(MaxWidth, width)
	h := int(math.Round(float64(w) / ratio))
	if h > MaxHeight {
		h = MaxHeight
		w = int(math.Round(float64(h) * ratio))
	}

	return max(w, 1), max(h, 1)
}

// Process validates the declared type of u, then scales it into the bounding
// box and re-encodes it as JPEG.
func Process(u Upload) error {
	if !IsSupportedType(u.ContentType()) {
		return errs.New(errs.ErrInvalidFormat, "Invalid image format")
	}

	rc, err := u.Open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", u.Field(), err)
	}
	defer rc.Close()

	src, _, err := image.Decode(rc)
	if err != nil {
		return errs.New(errs.ErrInvalidFormat, "Invalid image format")
	}

	bounds := src.Bounds()
	w, h := TargetSize(bounds.Dx(), bounds.Dy())

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return fmt.Errorf("encoding %s: %w", u.Field(), err)
	}

	name := strings.TrimSuffix(filepath.Base(u.Filename()), filepath.Ext(u.Filename()))
	filename := fmt.Sprintf("resized-%d-%s.jpeg", time.Now().UnixMilli(), name)

	return u.Replace(buf.Bytes(), filename, "image/jpeg")
}
