package utils

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
)

// MaxUploadSize is the largest file accepted by the upload helpers (10MB).
const MaxUploadSize = 10 * 1024 * 1024

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// cleanFilename removes any potentially dangerous characters from the filename
func cleanFilename(filename string) string {
	filename = filepath.Base(filename)
	return unsafeFilenameChars.ReplaceAllString(filename, "")
}

// ImageTarget describes how an uploaded image is stored.
type ImageTarget struct {
	Ext         string
	Format      imaging.Format
	ContentType string
}

// ImageTargetFor picks the stored format from the uploaded file name.
// JPEG names stay JPEG; everything else is stored as PNG.
func ImageTargetFor(filename string) ImageTarget {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return ImageTarget{Ext: "jpg", Format: imaging.JPEG, ContentType: "image/jpeg"}
	default:
		return ImageTarget{Ext: "png", Format: imaging.PNG, ContentType: "image/png"}
	}
}

// ReencodeImage decodes any supported image and encodes it in the target format.
func ReencodeImage(r io.Reader, target ImageTarget) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, target.Format); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// SafeExtension returns the lower-cased extension of filename without the
// dot, or "bin" when there is none.
func SafeExtension(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(cleanFilename(filename))), ".")
	if ext == "" {
		return "bin"
	}
	return ext
}

// CleanFolder turns a user supplied folder into a safe object prefix.
func CleanFolder(folder, fallback string) string {
	parts := strings.Split(folder, "/")
	kept := parts[:0]
	for _, p := range parts {
		p = cleanFilename(p)
		if p == "" || p == "." || p == ".." {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return fallback
	}
	return strings.Join(kept, "/")
}
