package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nurpe/contract-manager/internal/geo"
	"github.com/nurpe/contract-manager/internal/model"
)

// AddressService backs address entry: validation, autocomplete and pin
// placement. Unlike route resolution, geocoding failures are reported to the
// caller.
type AddressService struct {
	suggester AddressSuggester
	geocoder  Geocoder
	log       zerolog.Logger
}

func NewAddressService(suggester AddressSuggester, geocoder Geocoder, log zerolog.Logger) *AddressService {
	return &AddressService{suggester: suggester, geocoder: geocoder, log: log}
}

func (s *AddressService) Validate(address string) error {
	if err := geo.ValidateAddress(address); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s *AddressService) Suggest(ctx context.Context, query string) model.Suggestions {
	return s.suggester.Suggest(ctx, query)
}

func (s *AddressService) Geocode(ctx context.Context, address string) (model.GeoPoint, error) {
	if err := s.Validate(address); err != nil {
		return model.GeoPoint{}, err
	}
	point, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		s.log.Warn().Err(err).Str("address", address).Msg("geocode failed")
		if errors.Is(err, geo.ErrNotConfigured) {
			return model.GeoPoint{}, fmt.Errorf("%w: maps provider is not configured", ErrUpstream)
		}
		return model.GeoPoint{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return point, nil
}
