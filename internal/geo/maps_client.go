package geo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/nurpe/contract-manager/internal/model"
)

var (
	ErrNotConfigured = errors.New("external service is not configured")
	ErrGeocodeFailed = errors.New("geocoding failed")
)

// StatusError is a non-OK status reported by the mapping service itself.
type StatusError struct {
	Endpoint string
	Status   string
	Message  string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %s: %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: status %s", e.Endpoint, e.Status)
}

// MapsClient talks to a Google Maps compatible web service.
type MapsClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewMapsClient(baseURL, apiKey string, timeout time.Duration) *MapsClient {
	return &MapsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type textValue struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

type distanceMatrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []struct {
			Status   string    `json:"status"`
			Distance textValue `json:"distance"`
			Duration textValue `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Distance returns the one-way driving distance and duration between two addresses.
func (c *MapsClient) Distance(ctx context.Context, origin, destination string) (model.DistanceResult, error) {
	var payload distanceMatrixResponse
	err := c.get(ctx, "/distancematrix/json", url.Values{
		"origins":      {origin},
		"destinations": {destination},
		"units":        {"metric"},
		"language":     {"pt-BR"},
	}, &payload)
	if err != nil {
		return model.DistanceResult{}, err
	}
	if payload.Status != "OK" {
		return model.DistanceResult{}, &StatusError{Endpoint: "distancematrix", Status: payload.Status, Message: payload.ErrorMessage}
	}
	if len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return model.DistanceResult{}, &StatusError{Endpoint: "distancematrix", Status: "EMPTY_RESULT"}
	}
	element := payload.Rows[0].Elements[0]
	if element.Status != "OK" {
		return model.DistanceResult{}, &StatusError{Endpoint: "distancematrix", Status: element.Status}
	}

	km := element.Distance.Value / 1000
	minutes := element.Duration.Value / 60
	return model.DistanceResult{
		DistanceText:    formatDistance(km),
		DistanceKm:      km,
		DurationText:    formatDuration(minutes),
		DurationMinutes: minutes,
		Source:          model.DataSourceLive,
	}, nil
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address to a map position. Failures are returned, never faked.
func (c *MapsClient) Geocode(ctx context.Context, address string) (model.GeoPoint, error) {
	var payload geocodeResponse
	if err := c.get(ctx, "/geocode/json", url.Values{"address": {address}, "region": {"br"}}, &payload); err != nil {
		return model.GeoPoint{}, fmt.Errorf("%w: %w", ErrGeocodeFailed, err)
	}
	if payload.Status != "OK" || len(payload.Results) == 0 {
		return model.GeoPoint{}, fmt.Errorf("%w: %w", ErrGeocodeFailed, &StatusError{Endpoint: "geocode", Status: payload.Status, Message: payload.ErrorMessage})
	}
	loc := payload.Results[0].Geometry.Location
	return model.GeoPoint{Lat: loc.Lat, Lng: loc.Lng}, nil
}

type autocompleteResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Predictions  []struct {
		PlaceID              string `json:"place_id"`
		Description          string `json:"description"`
		StructuredFormatting struct {
			MainText      string `json:"main_text"`
			SecondaryText string `json:"secondary_text"`
		} `json:"structured_formatting"`
	} `json:"predictions"`
}

// Autocomplete returns ranked address predictions for a partial input.
func (c *MapsClient) Autocomplete(ctx context.Context, input string) ([]model.AddressSuggestion, error) {
	var payload autocompleteResponse
	err := c.get(ctx, "/place/autocomplete/json", url.Values{
		"input":      {input},
		"language":   {"pt-BR"},
		"components": {"country:br"},
		"types":      {"address"},
	}, &payload)
	if err != nil {
		return nil, err
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, &StatusError{Endpoint: "autocomplete", Status: payload.Status, Message: payload.ErrorMessage}
	}
	items := make([]model.AddressSuggestion, 0, len(payload.Predictions))
	for _, p := range payload.Predictions {
		items = append(items, model.AddressSuggestion{
			ID:            p.PlaceID,
			Description:   p.Description,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}
	return items, nil
}

func (c *MapsClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if c == nil || c.baseURL == "" || c.apiKey == "" {
		return ErrNotConfigured
	}
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected http status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
