package model

import "github.com/google/uuid"

// DataSource tells live lookups apart from fallback values produced locally.
type DataSource string

const (
	DataSourceLive      DataSource = "live"
	DataSourceSimulated DataSource = "simulated"
)

type DistanceResult struct {
	DistanceText    string     `json:"distance_text"`
	DistanceKm      float64    `json:"distance_km"`
	DurationText    string     `json:"duration_text"`
	DurationMinutes float64    `json:"duration_minutes"`
	Source          DataSource `json:"source"`
}

func (d DistanceResult) IsSimulated() bool {
	return d.Source == DataSourceSimulated
}

type TollStation struct {
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Location string  `json:"location"`
}

type TollData struct {
	TotalCost float64       `json:"total_cost"`
	Stations  []TollStation `json:"stations"`
	Route     string        `json:"route"`
}

type Route struct {
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	RoundTrip   bool           `json:"round_trip"`
	Distance    DistanceResult `json:"distance"`
	Toll        *TollData      `json:"toll,omitempty"`
}

type ServiceRequest struct {
	ServiceID uuid.UUID `json:"service_id"`
	Quantity  int       `json:"quantity"`
}

type Destination struct {
	Label    string           `json:"label"`
	Address  string           `json:"address"`
	Services []ServiceRequest `json:"services"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type AddressSuggestion struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

type Suggestions struct {
	Items  []AddressSuggestion `json:"items"`
	Source DataSource          `json:"source"`
}
