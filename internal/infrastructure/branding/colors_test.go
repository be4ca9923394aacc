package branding

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

// writeLogo renders a small gradient so the quantizer has more than one
// cluster to work with.
func writeLogo(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			img.Set(x, y, color.RGBA{R: uint8(60 + x*3), G: uint8(80 + y*2), B: 120, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	assert.NoError(t, err)
	defer f.Close()
	assert.NoError(t, png.Encode(f, img))
	return path
}

func TestExtractColors_ValidImage(t *testing.T) {
	extractor := NewColorExtractor(nopLogger{})

	colors := extractor.ExtractColors(writeLogo(t))
	hexPattern := `^#[0-9a-f]{6}$`
	assert.Regexp(t, hexPattern, colors.Primary)
	assert.Regexp(t, hexPattern, colors.Secondary)
	assert.Regexp(t, hexPattern, colors.Accent)
	assert.NotEqual(t, entity.DefaultBrandColors(), colors)
}

func TestExtractColors_MissingFileFallsBackToDefaults(t *testing.T) {
	extractor := NewColorExtractor(nopLogger{})
	assert.Equal(t, entity.DefaultBrandColors(), extractor.ExtractColors("uploads/does-not-exist.png"))
}

func TestExtractColors_CorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	assert.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	extractor := NewColorExtractor(nopLogger{})
	assert.Equal(t, entity.DefaultBrandColors(), extractor.ExtractColors(path))
}
