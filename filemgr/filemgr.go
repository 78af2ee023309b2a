// Package filemgr stores listing photos uploaded through the admin screens.
// Files land under static/servicepic with a 200px thumbnail next to each.
package filemgr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// MaxImageSize caps a single upload. Anything above is rejected outright,
// no partial file is left behind.
const MaxImageSize = 2 * 1024 * 1024 // 2MB

const (
	UploadDir = "static/servicepic"
	ThumbDir  = "static/servicepic/thumb"
)

var (
	ErrFileTooLarge = errors.New("file size exceeds limit")
	ErrInvalidMIME  = errors.New("invalid MIME type")
)

var allowedMIMEs = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// SaveServiceImage validates and writes one uploaded listing photo, returns
// the stored filename. The thumbnail write is best-effort; a listing photo
// without a thumb still renders.
func SaveServiceImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxImageSize {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, header.Size)
	}

	buf, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(buf)) > MaxImageSize {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, len(buf))
	}

	mimeType := http.DetectContentType(buf)
	ext, ok := allowedMIMEs[mimeType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidMIME, mimeType)
	}

	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", UploadDir, err)
	}

	filename := uuid.New().String() + ext
	fullPath := filepath.Join(UploadDir, filename)
	if err := os.WriteFile(fullPath, buf, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", fullPath, err)
	}

	if err := writeThumbnail(buf, filename); err != nil {
		// keep the original; thumbnails are cosmetic
		fmt.Fprintf(os.Stderr, "thumbnail for %s: %v\n", filename, err)
	}

	return filename, nil
}

func writeThumbnail(buf []byte, filename string) error {
	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	thumb := imaging.Resize(img, 200, 0, imaging.Lanczos)
	if err := os.MkdirAll(ThumbDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", ThumbDir, err)
	}
	name := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".jpg"
	return imaging.Save(thumb, filepath.Join(ThumbDir, name), imaging.JPEGQuality(80))
}

// RemoveServiceImage deletes a stored photo and its thumbnail. Missing files
// are ignored; listings can reference external URLs that were never stored.
func RemoveServiceImage(filename string) {
	base := filepath.Base(filename)
	os.Remove(filepath.Join(UploadDir, base))
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".jpg"
	os.Remove(filepath.Join(ThumbDir, name))
}
