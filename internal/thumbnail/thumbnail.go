// Package thumbnail turns recipe thumbnail URLs into small terminal
// previews drawn with half-block characters.
//
// Each rendered cell is an upper half block whose foreground is the upper
// pixel and whose background is the lower pixel, so a preview N columns
// wide shows an image N pixels wide and twice as tall as its line count.
//
//	svc := thumbnail.NewService(httpClient, 32)
//	preview, err := svc.Preview(ctx, recipe.Thumbnail)
package thumbnail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"

	apphttp "github.com/handiism/recipe-browser/internal/http"
)

// PreviewSuffix selects the small rendition of a catalog image.
const PreviewSuffix = "/preview"

// DefaultWidth is the preview width in terminal columns.
const DefaultWidth = 32

const upperHalfBlock = "▀"

// ErrNoThumbnail is returned for recipes without a thumbnail URL.
var ErrNoThumbnail = errors.New("no thumbnail")

// Service downloads and renders thumbnails, caching rendered previews by URL.
type Service struct {
	http  *apphttp.Client
	width int

	mu    sync.Mutex
	cache map[string]string
}

// NewService creates a Service rendering previews width columns wide.
// A non-positive width falls back to DefaultWidth.
func NewService(client *apphttp.Client, width int) *Service {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Service{http: client, width: width, cache: make(map[string]string)}
}

// PreviewURL returns the URL of the small rendition of thumb. An empty
// thumb stays empty.
func PreviewURL(thumb string) string {
	thumb = strings.TrimSpace(thumb)
	if thumb == "" || strings.HasSuffix(thumb, PreviewSuffix) {
		return thumb
	}
	return strings.TrimRight(thumb, "/") + PreviewSuffix
}

// Preview returns the rendered preview of the thumbnail at thumb.
func (s *Service) Preview(ctx context.Context, thumb string) (string, error) {
	url := PreviewURL(thumb)
	if url == "" {
		return "", ErrNoThumbnail
	}

	s.mu.Lock()
	cached, ok := s.cache[url]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	data, err := s.http.DownloadBytes(ctx, url)
	if err != nil {
		return "", fmt.Errorf("download thumbnail: %w", err)
	}
	img, err := Decode(data)
	if err != nil {
		return "", err
	}
	out := Render(img, s.width)

	s.mu.Lock()
	s.cache[url] = out
	s.mu.Unlock()
	return out, nil
}

// Decode decodes JPEG or PNG image data.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode thumbnail: %w", err)
	}
	return img, nil
}

// Resize scales img to fit within maxWidth x maxHeight, keeping the aspect
// ratio. Images already inside the bounds keep their size.
func Resize(img image.Image, maxWidth, maxHeight int) *image.RGBA {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			width = int(float64(maxHeight) * ratio)
			height = maxHeight
		} else {
			height = int(float64(maxWidth) / ratio)
			width = maxWidth
		}
	}
	width = max(width, 1)
	height = max(height, 1)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// Render draws img as half-block lines at most width columns wide.
func Render(img image.Image, width int) string {
	// Terminal rows hold two pixels, so the height bound is generous.
	scaled := Resize(img, width, width*4)
	b := scaled.Bounds()

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(scaled, x, y))
			if y+1 < b.Max.Y {
				style = style.Background(hexColor(scaled, x, y+1))
			}
			sb.WriteString(style.Render(upperHalfBlock))
		}
	}
	return sb.String()
}

func hexColor(img *image.RGBA, x, y int) lipgloss.Color {
	c := img.RGBAAt(x, y)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
