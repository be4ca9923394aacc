package external_services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

const photoSearchURL = "https://api.unsplash.com/search/photos"

// UnsplashService searches the stock-photo catalog used to back templates.
type UnsplashService struct {
	accessKey string
	client    *http.Client
}

var _ usecasecontract.IPhotoService = (*UnsplashService)(nil)

func NewUnsplashService(accessKey string) *UnsplashService {
	return &UnsplashService{
		accessKey: accessKey,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether an access key is present.
func (s *UnsplashService) Configured() bool {
	return s.accessKey != ""
}

type photoSearchResponse struct {
	Results []struct {
		ID             string `json:"id"`
		Description    string `json:"description"`
		AltDescription string `json:"alt_description"`
		URLs           struct {
			Regular string `json:"regular"`
		} `json:"urls"`
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	} `json:"results"`
}

// SearchPhotos runs a keyword search and maps the results.
func (s *UnsplashService) SearchPhotos(ctx context.Context, query string, perPage int) ([]usecasecontract.StockPhoto, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("no photo service access key configured")
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photoSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build photo search request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("photo search request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photo search returned status %d: %s", resp.StatusCode, string(raw))
	}
	var parsed photoSearchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode photo search response: %w", err)
	}

	photos := make([]usecasecontract.StockPhoto, 0, len(parsed.Results))
	for _, result := range parsed.Results {
		description := result.Description
		if description == "" {
			description = result.AltDescription
		}
		photos = append(photos, usecasecontract.StockPhoto{
			ID:          result.ID,
			Description: description,
			URL:         result.URLs.Regular,
			Attribution: result.User.Name,
		})
	}
	return photos, nil
}
