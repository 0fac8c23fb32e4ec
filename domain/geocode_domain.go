package domain

import "errors"

var (
	MessageSuccessAutocomplete = "address suggestions retrieved successfully"
	MessageFailedAutocomplete  = "failed to retrieve address suggestions"

	ErrGeocodeQueryRequired = errors.New("query is required")
)

type (
	AddressSuggestion struct {
		Label     string  `json:"label"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	AutocompleteResponse struct {
		Suggestions []AddressSuggestion `json:"suggestions"`
		Warning     string              `json:"warning,omitempty"`
	}
)
