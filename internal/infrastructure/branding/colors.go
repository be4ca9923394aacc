// Package branding derives a brand color palette from an uploaded logo.
package branding

import (
	"fmt"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/disintegration/imaging"

	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

const paletteSize = 5

// ColorExtractor quantizes a logo image into the brand palette.
type ColorExtractor struct {
	logger usecasecontract.IAppLogger
}

var _ contract.IColorExtractor = (*ColorExtractor)(nil)

func NewColorExtractor(logger usecasecontract.IAppLogger) *ColorExtractor {
	return &ColorExtractor{logger: logger}
}

// ExtractColors computes a 5-entry kmeans palette and maps the dominant color
// to primary, the second to secondary and the fourth to accent. Any failure
// reading or quantizing the image yields the default palette.
func (e *ColorExtractor) ExtractColors(path string) entity.BrandColors {
	img, err := imaging.Open(path)
	if err != nil {
		e.logger.Warnf("failed to open logo %s, using default colors: %v", path, err)
		return entity.DefaultBrandColors()
	}
	// Shrink before quantizing; kmeans on full-size logos is needless work.
	img = imaging.Resize(img, 256, 0, imaging.Lanczos)

	palette, err := prominentcolor.KmeansWithAll(
		paletteSize, img,
		prominentcolor.ArgumentNoCropping,
		prominentcolor.DefaultSize,
		prominentcolor.GetDefaultMasks(),
	)
	if err != nil || len(palette) == 0 {
		e.logger.Warnf("failed to quantize logo %s, using default colors: %v", path, err)
		return entity.DefaultBrandColors()
	}

	colors := entity.DefaultBrandColors()
	colors.Primary = hexOf(palette[0])
	if len(palette) > 1 {
		colors.Secondary = hexOf(palette[1])
	}
	if len(palette) > 3 {
		colors.Accent = hexOf(palette[3])
	}
	return colors
}

func hexOf(item prominentcolor.ColorItem) string {
	return fmt.Sprintf("#%02x%02x%02x", item.Color.R, item.Color.G, item.Color.B)
}
