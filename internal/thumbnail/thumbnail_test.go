package thumbnail

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/handiism/recipe-browser/internal/http"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPreviewURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://www.themealdb.com/images/media/meals/x.jpg", "https://www.themealdb.com/images/media/meals/x.jpg/preview"},
		{"https://www.themealdb.com/images/media/meals/x.jpg/preview", "https://www.themealdb.com/images/media/meals/x.jpg/preview"},
		{"  ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PreviewURL(tt.in), tt.in)
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"landscape", 1500, 1000, 1000, 1000, 1000, 666},
		{"portrait", 1000, 1500, 1000, 1000, 666, 1000},
		{"smaller stays", 800, 600, 1000, 1000, 800, 600},
		{"tiny target", 100, 1, 10, 10, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Resize(solid(tt.w, tt.h, color.White), tt.maxW, tt.maxH)
			assert.Equal(t, tt.wantW, out.Bounds().Dx())
			assert.Equal(t, tt.wantH, out.Bounds().Dy())
		})
	}
}

func TestRender(t *testing.T) {
	out := Render(solid(64, 64, color.RGBA{R: 200, A: 255}), 16)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 8)
	for _, line := range lines {
		assert.Equal(t, 16, lipgloss.Width(line))
		assert.Equal(t, 16, strings.Count(line, upperHalfBlock))
	}
}

func TestService_Preview(t *testing.T) {
	data := encodePNG(t, solid(20, 20, color.Black))
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if !strings.HasSuffix(r.URL.Path, PreviewSuffix) {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	svc := NewService(apphttp.NewClient(), 10)
	ctx := context.Background()

	first, err := svc.Preview(ctx, srv.URL+"/meal.png")
	require.NoError(t, err)
	assert.Len(t, strings.Split(first, "\n"), 5)

	second, err := svc.Preview(ctx, srv.URL+"/meal.png")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, hits.Load())
}

func TestService_PreviewErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/garbage") {
			w.Write([]byte("not an image"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	svc := NewService(apphttp.NewClient(), 0)
	ctx := context.Background()

	_, err := svc.Preview(ctx, "")
	assert.ErrorIs(t, err, ErrNoThumbnail)

	_, err = svc.Preview(ctx, srv.URL+"/missing.jpg")
	var statusErr *apphttp.StatusError
	assert.ErrorAs(t, err, &statusErr)

	_, err = svc.Preview(ctx, srv.URL+"/garbage.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode thumbnail")
}
