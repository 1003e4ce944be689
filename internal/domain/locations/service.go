package locations

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	apperrors "github.com/fitbridge/studio-api/pkg/errors"
)

// Service ranks business locations by driving distance from a user address.
type Service interface {
	Nearest(ctx context.Context, req Request) (Response, error)
}

// Geocoder resolves a free-form address to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinate, error)
}

// LocationSource lists every business location. Implementations handle
// their own pagination.
type LocationSource interface {
	Locations(ctx context.Context) ([]Location, error)
}

// RouteMatrix returns one leg per destination, in destination order.
type RouteMatrix interface {
	Routes(ctx context.Context, origin Coordinate, destinations []Coordinate) ([]RouteLeg, error)
}

type service struct {
	cfg      Config
	geocoder Geocoder
	source   LocationSource
	matrix   RouteMatrix
	logger   *slog.Logger
}

// NewService wires up the nearest-locations domain.
func NewService(cfg Config, geocoder Geocoder, source LocationSource, matrix RouteMatrix, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		geocoder: geocoder,
		source:   source,
		matrix:   matrix,
		logger:   logger.With("component", "locations.service"),
	}
}

func (s *service) Nearest(ctx context.Context, req Request) (Response, error) {
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return Response{}, apperrors.Wrap("invalid_input", "address cannot be empty", nil)
	}
	limit := s.clampLimit(req.Limit)

	origin, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return Response{}, apperrors.Wrap("geocode_error", "failed to geocode address", err)
	}

	all, err := s.source.Locations(ctx)
	if err != nil {
		return Response{}, apperrors.Wrap("cms_error", "failed to fetch locations", err)
	}
	if len(all) == 0 {
		return Response{Origin: origin, Locations: []RankedLocation{}}, nil
	}

	candidates := preselect(origin, all, s.cfg.Preselect)

	destinations := make([]Coordinate, len(candidates))
	for i, c := range candidates {
		destinations[i] = Coordinate{Lat: c.Lat, Lng: c.Lng}
	}
	legs, err := s.matrix.Routes(ctx, origin, destinations)
	if err != nil {
		return Response{}, apperrors.Wrap("maps_error", "distance matrix request failed", err)
	}
	if len(legs) != len(candidates) {
		return Response{}, apperrors.Wrap("maps_error", "distance matrix returned wrong leg count", nil)
	}

	ranked := rank(candidates, legs)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	s.logger.Info("locations ranked", "address", address, "candidates", len(candidates), "returned", len(ranked))
	return Response{Origin: origin, Locations: ranked}, nil
}

// clampLimit applies the explicit limit policy: default when unset, hard cap
// at MaxLimit, floor at 1.
func (s *service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultLimit
	}
	if limit > s.cfg.MaxLimit {
		return s.cfg.MaxLimit
	}
	return limit
}

// preselect keeps the n straight-line-closest locations so the matrix call
// stays small no matter how many sites the CMS publishes.
func preselect(origin Coordinate, all []Location, n int) []RankedLocation {
	ranked := make([]RankedLocation, 0, len(all))
	for _, loc := range all {
		ranked = append(ranked, RankedLocation{
			Location:    loc,
			HaversineKm: haversineKm(origin, Coordinate{Lat: loc.Lat, Lng: loc.Lng}),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].HaversineKm < ranked[j].HaversineKm
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// rank merges matrix legs into the candidates and orders routed locations by
// driving duration, then driving distance. Unroutable locations sink below
// every routed one, ordered by straight-line distance.
func rank(candidates []RankedLocation, legs []RouteLeg) []RankedLocation {
	for i := range candidates {
		leg := legs[i]
		if !leg.OK {
			continue
		}
		candidates[i].Routed = true
		candidates[i].DistanceMeters = leg.DistanceMeters
		candidates[i].DistanceText = leg.DistanceText
		candidates[i].DurationSeconds = leg.DurationSeconds
		candidates[i].DurationText = leg.DurationText
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Routed != b.Routed {
			return a.Routed
		}
		if !a.Routed {
			return a.HaversineKm < b.HaversineKm
		}
		if a.DurationSeconds != b.DurationSeconds {
			return a.DurationSeconds < b.DurationSeconds
		}
		if a.DistanceMeters != b.DistanceMeters {
			return a.DistanceMeters < b.DistanceMeters
		}
		return a.HaversineKm < b.HaversineKm
	})
	return candidates
}
