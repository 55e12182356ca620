package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/alimikegami/content-service/internal/asset"
)

// PNG returns a solid image encoded as PNG.
func PNG(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 120, B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ImageUpload(field string) asset.Upload {
	return asset.NewMemoryUpload(field, field+".png", "image/png", PNG(64, 48))
}

func GIFUpload(field string) asset.Upload {
	return asset.NewMemoryUpload(field, field+".gif", "image/gif", []byte("GIF89a"))
}
