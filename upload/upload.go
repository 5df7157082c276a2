// Package upload stores user-submitted images on local disk under
// server-generated names and normalizes avatars to small jpeg thumbnails.
package upload

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/wailsapp/mimetype"
)

// MaxImageBytes caps uploads at 5MB, same limit the web client enforces.
const MaxImageBytes = 5 << 20

var extByMime = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// SaveImage sniffs the MIME type of content, rejects anything that is not
// an image, and writes it to dir under a random filename. It returns the
// public URI of the stored file ("/uploads/<name>").
func SaveImage(dir string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("empty file")
	}
	if len(content) > MaxImageBytes {
		return "", fmt.Errorf("file exceeds the %d byte limit", MaxImageBytes)
	}

	mType := mimetype.Detect(content)
	if mType == nil {
		return "", fmt.Errorf("failed to detect file type")
	}

	ext, ok := extByMime[mType.String()]
	if !ok {
		return "", fmt.Errorf("unsupported image format: %s", mType.String())
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	filename := uuid.New().String() + ext
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/uploads/" + filename, nil
}

// Thumbnail resizes the image down to maxWidth (keeping aspect ratio) and
// re-encodes it as jpeg. Images already narrower than maxWidth are only
// re-encoded.
func Thumbnail(imgContent []byte, maxWidth uint) ([]byte, error) {
	mType := mimetype.Detect(imgContent)
	if mType == nil {
		return nil, fmt.Errorf("unknown image type")
	}

	var img image.Image
	var err error

	switch mType.String() {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(imgContent))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(imgContent))
	case "image/gif":
		img, err = gif.Decode(bytes.NewReader(imgContent))
	default:
		return nil, fmt.Errorf("unsupported image format: %s", mType.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	width := uint(img.Bounds().Dx())
	if width > maxWidth {
		width = maxWidth
	}

	resizedImg := resize.Resize(width, 0, img, resize.Lanczos3)

	var compressedImg bytes.Buffer
	err = jpeg.Encode(&compressedImg, resizedImg, &jpeg.Options{Quality: 85})
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return compressedImg.Bytes(), nil
}
