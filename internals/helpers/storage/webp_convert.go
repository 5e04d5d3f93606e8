package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"ojtsystem_backend/internals/configs"
)

// Profile uploads are photos; recompressing to WebP keeps the bucket small.
// Gated by IMAGE_CONVERT_WEBP so deployments can keep originals.

func webpEnabled() bool {
	return configs.GetEnvBool("IMAGE_CONVERT_WEBP", true)
}

func webpMaxDim() int {
	return configs.GetEnvInt("IMAGE_WEBP_MAX_DIM", 1024)
}

func webpQuality() float32 {
	return float32(configs.GetEnvInt("IMAGE_WEBP_QUALITY", 80))
}

func decodeImage(data []byte) (image.Image, error) {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	if strings.Contains(ct, "webp") {
		return webp.Decode(bytes.NewReader(data))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// MaybeConvertWebP recompresses an uploaded image to WebP, downscaling to the
// configured max dimension. On any decode/encode failure the original bytes
// pass through untouched; a bad image should fail at the storage layer, not
// here.
func MaybeConvertWebP(key, contentType string, data []byte) (string, string, []byte) {
	if !webpEnabled() || strings.HasSuffix(key, ".webp") {
		return key, contentType, data
	}
	img, err := decodeImage(data)
	if err != nil {
		return key, contentType, data
	}

	if maxDim := webpMaxDim(); maxDim > 0 {
		b := img.Bounds()
		if b.Dx() > maxDim || b.Dy() > maxDim {
			img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality()}); err != nil {
		return key, contentType, data
	}

	dot := strings.LastIndex(key, ".")
	if dot < 0 {
		return key, contentType, data
	}
	return fmt.Sprintf("%s.webp", key[:dot]), "image/webp", buf.Bytes()
}
