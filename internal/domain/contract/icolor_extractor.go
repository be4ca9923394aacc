package contract

import (
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

// IColorExtractor derives a brand palette from a stored logo image.
// Implementations never fail: extraction errors yield the default palette.
type IColorExtractor interface {
	ExtractColors(path string) entity.BrandColors
}
