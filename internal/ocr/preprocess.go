package ocr

import (
	"bytes"
	"image"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// PrepareImage decodes an uploaded photo, applies its EXIF orientation, fits
// it into maxDim and re-encodes it as JPEG. Undecodable input is returned
// unchanged with its sniffed content type.
func PrepareImage(data []byte, maxDim int) ([]byte, string) {
	ct := SniffContentType(data)
	img, err := DecodeImage(data)
	if err != nil {
		return data, ct
	}
	if b := img.Bounds(); maxDim > 0 && (b.Dx() > maxDim || b.Dy() > maxDim) {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(92)); err != nil {
		return data, ct
	}
	return buf.Bytes(), "image/jpeg"
}

func SniffContentType(data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}

// DecodeImage decodes JPEG, PNG, GIF, TIFF, BMP or WebP data with EXIF
// orientation applied.
func DecodeImage(data []byte) (image.Image, error) {
	if strings.Contains(SniffContentType(data), "webp") {
		return webp.Decode(bytes.NewReader(data))
	}
	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}
