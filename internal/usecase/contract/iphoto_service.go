package usecasecontract

import "context"

// StockPhoto is one result from the stock-photo provider.
type StockPhoto struct {
	ID          string
	Description string
	URL         string
	Attribution string
}

// IPhotoService is the outbound stock-photo search client.
type IPhotoService interface {
	SearchPhotos(ctx context.Context, query string, perPage int) ([]StockPhoto, error)
	Configured() bool
}
