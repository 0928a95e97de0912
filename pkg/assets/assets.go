// Package assets locates and decodes image assets referenced by markup.
//
// Paths resolve against an ordered list of base directories. Decoding
// supports PNG, JPEG and GIF from the standard library and BMP, TIFF and
// WebP from golang.org/x/image.
package assets

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/gtkml/pkg/errors"
)

// Resolver finds asset files.
type Resolver struct {
	// Bases are searched in order. For each base both base/src and
	// base/assets/src are tried. Empty entries are skipped.
	Bases []string
}

// Resolve returns the first existing file for src. An absolute src is
// tried first, as is.
func (r Resolver) Resolve(src string) (string, error) {
	if src == "" {
		return "", fmt.Errorf("empty asset path: %w", errors.ErrAssetNotFound)
	}
	for _, p := range r.Candidates(src) {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%s: %w", src, errors.ErrAssetNotFound)
}

// Candidates lists the paths Resolve tries for src, in order.
func (r Resolver) Candidates(src string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	if filepath.IsAbs(src) {
		add(src)
	}
	for _, base := range r.Bases {
		if base == "" {
			continue
		}
		add(filepath.Join(base, src))
		add(filepath.Join(base, "assets", src))
	}
	return out
}

// Decode reads and decodes the image at path.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// TargetSize completes a requested size from the source bounds. A zero
// dimension is derived from the other one keeping the aspect ratio; when
// both are zero the result is zero, meaning no scaling.
func TargetSize(src image.Rectangle, width, height int) (int, int) {
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 {
		return width, height
	}
	switch {
	case width > 0 && height <= 0:
		height = width * sh / sw
	case height > 0 && width <= 0:
		width = height * sw / sh
	}
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return width, height
}

// Scale resamples img to width x height.
func Scale(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// Load decodes the image at path, scaled to the requested size when one is
// given. See TargetSize for how partial sizes are completed.
func Load(path string, width, height int) (image.Image, error) {
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}
	w, h := TargetSize(img.Bounds(), width, height)
	if w == 0 || (w == img.Bounds().Dx() && h == img.Bounds().Dy()) {
		return img, nil
	}
	return Scale(img, w, h), nil
}

type cacheKey struct {
	path          string
	width, height int
}

// Cache memoizes Load results.
type Cache struct {
	mu    sync.Mutex
	items map[cacheKey]image.Image
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{items: make(map[cacheKey]image.Image)}
}

// Load returns a cached image or loads and caches it.
//
// If the cache is nil, Load is invoked directly. Failures are not cached.
func (c *Cache) Load(path string, width, height int) (image.Image, error) {
	if c == nil {
		return Load(path, width, height)
	}
	key := cacheKey{path, width, height}

	c.mu.Lock()
	if img := c.items[key]; img != nil {
		c.mu.Unlock()
		return img, nil
	}
	c.mu.Unlock()

	img, err := Load(path, width, height)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if existing := c.items[key]; existing != nil {
		c.mu.Unlock()
		return existing, nil
	}
	c.items[key] = img
	c.mu.Unlock()
	return img, nil
}
