package thumbs

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"

	// Register decoders for the formats YouTube serves thumbnails in
	_ "image/jpeg"
	_ "image/png"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache and sampling constants
const (
	// ColorCacheSize bounds how many thumbnail colors are remembered
	ColorCacheSize = 32

	// SampleStride controls downsampling: every Nth pixel on each axis
	SampleStride = 8

	// MinBrightness and MaxBrightness reject samples too dark or washed
	// out to make a usable accent color
	MinBrightness = 40
	MaxBrightness = 220
)

// Color is an opaque RGB accent color
type Color struct {
	R, G, B uint8
}

// GetterFunc fetches raw thumbnail bytes for a URL. Injected so color
// extraction is testable without the network.
type GetterFunc func(ctx context.Context, url string) ([]byte, error)

// ColorCache extracts and caches dominant colors of video thumbnails
type ColorCache struct {
	cache  *lru.Cache[string, Color]
	getter GetterFunc
	client *http.Client
}

// NewColorCache creates a color cache with the default HTTP getter
func NewColorCache() (*ColorCache, error) {
	cache, err := lru.New[string, Color](ColorCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create color cache: %w", err)
	}

	c := &ColorCache{cache: cache, client: http.DefaultClient}
	c.getter = c.httpGet
	return c, nil
}

// SetGetter overrides the thumbnail fetcher
func (c *ColorCache) SetGetter(getter GetterFunc) {
	c.getter = getter
}

// SetHTTPClient replaces the client the default getter fetches with,
// used to route thumbnail requests through the configured proxy
func (c *ColorCache) SetHTTPClient(client *http.Client) {
	if client != nil {
		c.client = client
	}
}

// DominantColor returns the dominant color for the thumbnail at url,
// fetching and decoding it on a cache miss
func (c *ColorCache) DominantColor(ctx context.Context, url string) (Color, error) {
	if cached, ok := c.cache.Get(url); ok {
		return cached, nil
	}

	data, err := c.getter(ctx, url)
	if err != nil {
		return Color{}, fmt.Errorf("failed to fetch thumbnail: %w", err)
	}

	color, err := ExtractDominant(data)
	if err != nil {
		return Color{}, err
	}

	c.cache.Add(url, color)
	log.Printf("Extracted dominant color #%02x%02x%02x for %s", color.R, color.G, color.B, url)
	return color, nil
}

// Len returns the number of cached colors
func (c *ColorCache) Len() int {
	return c.cache.Len()
}

// ExtractDominant computes the dominant color of an encoded image by
// averaging a downsampled grid of pixels, skipping extremes of brightness
func ExtractDominant(data []byte) (Color, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Color{}, fmt.Errorf("failed to decode thumbnail: %w", err)
	}

	bounds := img.Bounds()
	var sumR, sumG, sumB, count uint64

	for y := bounds.Min.Y; y < bounds.Max.Y; y += SampleStride {
		for x := bounds.Min.X; x < bounds.Max.X; x += SampleStride {
			r, g, b, _ := img.At(x, y).RGBA()
			r8, g8, b8 := uint64(r>>8), uint64(g>>8), uint64(b>>8)

			brightness := (r8 + g8 + b8) / 3
			if brightness < MinBrightness || brightness > MaxBrightness {
				continue
			}

			sumR += r8
			sumG += g8
			sumB += b8
			count++
		}
	}

	if count == 0 {
		// Uniformly dark or bright image, fall back to the raw average
		for y := bounds.Min.Y; y < bounds.Max.Y; y += SampleStride {
			for x := bounds.Min.X; x < bounds.Max.X; x += SampleStride {
				r, g, b, _ := img.At(x, y).RGBA()
				sumR += uint64(r >> 8)
				sumG += uint64(g >> 8)
				sumB += uint64(b >> 8)
				count++
			}
		}
	}

	if count == 0 {
		return Color{}, fmt.Errorf("thumbnail has no pixels")
	}

	return Color{
		R: uint8(sumR / count),
		G: uint8(sumG / count),
		B: uint8(sumB / count),
	}, nil
}

// httpGet is the default GetterFunc backed by the configured client
func (c *ColorCache) httpGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("thumbnail fetch failed: HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
