package geocode

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/internal/utils"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultGeocodingURL = "https://api.geoapify.com/v1/geocode/autocomplete"

type (
	GeocodeService interface {
		Autocomplete(ctx context.Context, query string) (domain.AutocompleteResponse, error)
	}

	geocodeService struct {
		httpClient *http.Client
	}
)

func NewGeocodeService() GeocodeService {
	return &geocodeService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *geocodeService) Autocomplete(ctx context.Context, query string) (domain.AutocompleteResponse, error) {
	if strings.TrimSpace(query) == "" {
		return domain.AutocompleteResponse{}, domain.ErrGeocodeQueryRequired
	}

	apiKey := utils.GetConfig("GEOCODING_API_KEY")
	if apiKey == "" {
		// Missing key degrades the feature instead of failing the request.
		return domain.AutocompleteResponse{
			Suggestions: []domain.AddressSuggestion{},
			Warning:     "address autocomplete is not configured",
		}, nil
	}

	baseURL := utils.GetConfig("GEOCODING_URL")
	if baseURL == "" {
		baseURL = defaultGeocodingURL
	}

	requestURL := fmt.Sprintf("%s?text=%s&limit=5&apiKey=%s", baseURL, url.QueryEscape(query), apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return domain.AutocompleteResponse{}, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.AutocompleteResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.AutocompleteResponse{}, fmt.Errorf("geocoding API error: %s", resp.Status)
	}

	var geoResp struct {
		Features []struct {
			Properties struct {
				Formatted string  `json:"formatted"`
				Lat       float64 `json:"lat"`
				Lon       float64 `json:"lon"`
			} `json:"properties"`
		} `json:"features"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		return domain.AutocompleteResponse{}, err
	}

	response := domain.AutocompleteResponse{Suggestions: []domain.AddressSuggestion{}}
	for _, feature := range geoResp.Features {
		response.Suggestions = append(response.Suggestions, domain.AddressSuggestion{
			Label:     feature.Properties.Formatted,
			Latitude:  feature.Properties.Lat,
			Longitude: feature.Properties.Lon,
		})
	}

	return response, nil
}
