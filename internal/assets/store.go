// Package assets implements the path-keyed blob store for card art and
// customization images. An accepted upload is written under a generated key
// and a bounded-size JPEG thumbnail is derived next to it; both are exposed
// through public URLs served from the asset directory.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"famand_admin/internal/models"
	"famand_admin/internal/pkg/logger"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// qualityThumb is the JPEG quality of derived thumbnails.
	qualityThumb = 60
	// maxSizeThumb bounds the longest thumbnail dimension in pixels.
	maxSizeThumb = 300
	// maxUploadBytes caps a single upload.
	maxUploadBytes = 10 << 20
)

// ErrNotAnImage is returned when an upload cannot be decoded as an image.
var ErrNotAnImage = errors.New("assets: uploaded file is not a decodable image")

// Store writes uploads into a local directory and maps them to public URLs.
type Store struct {
	dir     string
	baseURL string
	log     *logger.Logger
}

// NewStore ensures the asset directory exists and returns a store rooted
// there, with URLs built from baseURL.
func NewStore(dir, baseURL string, l *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("assets: failed to create asset directory: %w", err)
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), log: l}, nil
}

// Dir returns the directory uploads are written to, for the file server.
func (s *Store) Dir() string {
	return s.dir
}

// Save stores an uploaded image and its derived thumbnail, returning the
// public URLs of both. The original filename contributes only its extension;
// the stored key is generated.
func (s *Store) Save(originalName string, r io.Reader) (*models.UploadResponse, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("assets: failed to read upload: %w", err)
	}
	if len(data) > maxUploadBytes {
		return nil, errors.New("assets: upload exceeds size limit")
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotAnImage
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".png"
	}
	key := uuid.New().String()

	originalPath := filepath.Join(s.dir, key+ext)
	if err := os.WriteFile(originalPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("assets: failed to write upload: %w", err)
	}

	thumb := imaging.Fit(img, maxSizeThumb, maxSizeThumb, imaging.Lanczos)
	thumbPath := filepath.Join(s.dir, key+"_thumb.jpg")
	if err := imaging.Save(thumb, thumbPath, imaging.JPEGQuality(qualityThumb)); err != nil {
		// The original is already stored; remove it so a failed upload
		// leaves nothing behind.
		os.Remove(originalPath)
		return nil, fmt.Errorf("assets: failed to write thumbnail: %w", err)
	}

	s.log.Sugar().Infof("Stored asset %s (%d bytes)", key+ext, len(data))

	return &models.UploadResponse{
		URL:      s.baseURL + "/" + path.Base(originalPath),
		ThumbURL: s.baseURL + "/" + path.Base(thumbPath),
	}, nil
}
