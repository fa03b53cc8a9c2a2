// Package media stores uploaded game images on local disk.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// PublicPrefix is the URL prefix stored images are served under.
	PublicPrefix = "/uploads/"

	// MaxDimension bounds the stored image's width and height.
	MaxDimension = 1024

	// MaxUploadBytes bounds the size of an accepted upload.
	MaxUploadBytes = 10 << 20
)

// ErrUnsupportedImage is returned for payloads that cannot be decoded as an image.
var ErrUnsupportedImage = errors.New("unsupported image format")

// DefaultStore is used by the HTTP handlers.
var DefaultStore *Store

// Store writes images into a directory and hands back their public paths.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Init configures DefaultStore and makes sure its directory exists.
func Init(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	DefaultStore = NewStore(dir)
	return nil
}

// Dir returns the directory images are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save decodes the upload, shrinks it to fit MaxDimension and writes it under a
// fresh UUID file name. The returned path is relative to the server root.
func (s *Store) Save(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return "", fmt.Errorf("image exceeds %d bytes", MaxUploadBytes)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrUnsupportedImage
	}
	img = fit(img)

	format, err := imaging.FormatFromFilename(filename)
	if err != nil || format == imaging.TIFF || format == imaging.BMP {
		format = imaging.PNG
	}

	name := uuid.NewString() + extension(format)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := imaging.Save(img, filepath.Join(s.dir, name), imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return PublicPrefix + name, nil
}

// Remove deletes a previously saved image. Unknown or foreign paths are ignored.
func (s *Store) Remove(publicPath string) error {
	if !strings.HasPrefix(publicPath, PublicPrefix) {
		return nil
	}
	name := path.Base(publicPath)
	if name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func fit(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= MaxDimension && b.Dy() <= MaxDimension {
		return img
	}
	return imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)
}

func extension(format imaging.Format) string {
	switch format {
	case imaging.JPEG:
		return ".jpg"
	case imaging.GIF:
		return ".gif"
	default:
		return ".png"
	}
}
