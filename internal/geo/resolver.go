package geo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nurpe/contract-manager/internal/model"
)

type DistanceLookup interface {
	Distance(ctx context.Context, origin, destination string) (model.DistanceResult, error)
}

type TollLookup interface {
	Lookup(ctx context.Context, origin, destination string, distanceKm float64) (*model.TollData, error)
}

// Resolver turns an address pair into distance, duration and tolls. Lookup
// failures are absorbed: distance falls back to a simulated estimate and tolls
// to none. Only invalid addresses are reported as errors.
type Resolver struct {
	distance DistanceLookup
	tolls    TollLookup
	log      zerolog.Logger
}

func NewResolver(distance DistanceLookup, tolls TollLookup, log zerolog.Logger) *Resolver {
	return &Resolver{distance: distance, tolls: tolls, log: log}
}

func (r *Resolver) Resolve(ctx context.Context, origin, destination string, roundTrip bool) (model.Route, error) {
	if err := ValidateAddress(origin); err != nil {
		return model.Route{}, fmt.Errorf("origin: %w", err)
	}
	if err := ValidateAddress(destination); err != nil {
		return model.Route{}, fmt.Errorf("destination: %w", err)
	}
	return r.resolve(ctx, origin, destination, roundTrip), nil
}

// BatchItem is one resolved destination of a batch.
type BatchItem struct {
	Destination model.Destination
	Route       model.Route
}

// ResolveBatch validates every destination first and then resolves them one
// after the other, in submission order.
func (r *Resolver) ResolveBatch(ctx context.Context, origin string, destinations []model.Destination, roundTrip bool) ([]BatchItem, error) {
	if err := ValidateAddress(origin); err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	for i, dest := range destinations {
		if err := ValidateAddress(dest.Address); err != nil {
			return nil, fmt.Errorf("destination %d (%s): %w", i+1, dest.Label, err)
		}
	}

	items := make([]BatchItem, 0, len(destinations))
	for _, dest := range destinations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items = append(items, BatchItem{
			Destination: dest,
			Route:       r.resolve(ctx, origin, dest.Address, roundTrip),
		})
	}
	return items, nil
}

func (r *Resolver) resolve(ctx context.Context, origin, destination string, roundTrip bool) model.Route {
	route := model.Route{
		Origin:      origin,
		Destination: destination,
		RoundTrip:   roundTrip,
	}

	dist, err := r.lookupDistance(ctx, origin, destination)
	if err != nil {
		r.log.Warn().Err(err).Str("origin", origin).Str("destination", destination).Msg("distance lookup failed, using simulated estimate")
		dist = Simulate(origin, destination)
	}
	route.Distance = dist

	toll, err := r.lookupTolls(ctx, origin, destination, dist.DistanceKm)
	if err != nil {
		r.log.Warn().Err(err).Str("origin", origin).Str("destination", destination).Msg("toll lookup failed, assuming no tolls")
		toll = nil
	}
	route.Toll = toll

	if roundTrip {
		route = doubleRoute(route)
	}
	return route
}

func (r *Resolver) lookupDistance(ctx context.Context, origin, destination string) (model.DistanceResult, error) {
	if r.distance == nil {
		return model.DistanceResult{}, ErrNotConfigured
	}
	return r.distance.Distance(ctx, origin, destination)
}

func (r *Resolver) lookupTolls(ctx context.Context, origin, destination string, km float64) (*model.TollData, error) {
	if r.tolls == nil {
		return nil, ErrNotConfigured
	}
	return r.tolls.Lookup(ctx, origin, destination, km)
}

func doubleRoute(route model.Route) model.Route {
	d := route.Distance
	d.DistanceKm *= 2
	d.DurationMinutes *= 2
	d.DistanceText = formatDistance(d.DistanceKm)
	d.DurationText = formatDuration(d.DurationMinutes)
	route.Distance = d

	if route.Toll != nil {
		toll := &model.TollData{
			TotalCost: route.Toll.TotalCost * 2,
			Route:     route.Toll.Route,
			Stations:  make([]model.TollStation, len(route.Toll.Stations)),
		}
		for i, s := range route.Toll.Stations {
			s.Cost *= 2
			toll.Stations[i] = s
		}
		route.Toll = toll
	}
	return route
}
