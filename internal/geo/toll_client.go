package geo

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/nurpe/contract-manager/internal/model"
)

// TollClient queries the toll-lookup service for the stations along a route.
type TollClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewTollClient(baseURL, apiKey string, timeout time.Duration) *TollClient {
	return &TollClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type tollRequest struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	DistanceKm  float64 `json:"distance_km"`
}

type tollResponse struct {
	TotalCost float64 `json:"total_cost"`
	Route     string  `json:"route"`
	Tolls     []struct {
		Name     string  `json:"name"`
		Cost     float64 `json:"cost"`
		Location string  `json:"location"`
	} `json:"tolls"`
}

// Lookup returns the one-way toll data, or nil when the service knows no tolls for the route.
func (c *TollClient) Lookup(ctx context.Context, origin, destination string, distanceKm float64) (*model.TollData, error) {
	if c == nil || c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(tollRequest{Origin: origin, Destination: destination, DistanceKm: distanceKm})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tolls", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tolls: unexpected http status %d", resp.StatusCode)
	}

	var payload tollResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.TotalCost <= 0 && len(payload.Tolls) == 0 {
		return nil, nil
	}

	data := &model.TollData{
		TotalCost: payload.TotalCost,
		Route:     payload.Route,
		Stations:  make([]model.TollStation, 0, len(payload.Tolls)),
	}
	for _, t := range payload.Tolls {
		data.Stations = append(data.Stations, model.TollStation{Name: t.Name, Cost: t.Cost, Location: t.Location})
	}
	return data, nil
}
