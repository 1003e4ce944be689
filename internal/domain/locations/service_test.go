package locations

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/fitbridge/studio-api/pkg/errors"
)

type stubGeocoder struct {
	coord Coordinate
	err   error
}

func (s *stubGeocoder) Geocode(context.Context, string) (Coordinate, error) {
	return s.coord, s.err
}

type stubSource struct {
	locations []Location
	err       error
}

func (s *stubSource) Locations(context.Context) ([]Location, error) {
	return s.locations, s.err
}

type stubMatrix struct {
	legs    []RouteLeg
	err     error
	gotDest []Coordinate
}

func (s *stubMatrix) Routes(_ context.Context, _ Coordinate, destinations []Coordinate) ([]RouteLeg, error) {
	s.gotDest = destinations
	if s.err != nil {
		return nil, s.err
	}
	if s.legs != nil {
		return s.legs, nil
	}
	legs := make([]RouteLeg, len(destinations))
	for i := range legs {
		legs[i] = RouteLeg{OK: true, DistanceMeters: int64(1000 * (i + 1)), DurationSeconds: int64(60 * (i + 1))}
	}
	return legs, nil
}

func testConfig() Config {
	return Config{DefaultLimit: 3, MaxLimit: 10, Preselect: 10}
}

func newTestService(g Geocoder, src LocationSource, m RouteMatrix) Service {
	return NewService(testConfig(), g, src, m, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Origin in downtown Chicago with sites at increasing distance.
var chicago = Coordinate{Lat: 41.8781, Lng: -87.6298}

func siteAt(name string, lat, lng float64) Location {
	return Location{Name: name, Address: name + " Ave", Lat: lat, Lng: lng}
}

func TestNearest_RanksByDrivingDuration(t *testing.T) {
	source := &stubSource{locations: []Location{
		siteAt("near", 41.88, -87.63),
		siteAt("far", 42.00, -87.70),
	}}
	// Driving times invert the straight-line order.
	matrix := &stubMatrix{legs: []RouteLeg{
		{OK: true, DurationSeconds: 1800, DistanceMeters: 9000, DurationText: "30 mins", DistanceText: "9 km"},
		{OK: true, DurationSeconds: 600, DistanceMeters: 15000, DurationText: "10 mins", DistanceText: "15 km"},
	}}
	svc := newTestService(&stubGeocoder{coord: chicago}, source, matrix)

	resp, err := svc.Nearest(context.Background(), Request{Address: "200 N Michigan Ave"})
	require.NoError(t, err)
	require.Equal(t, chicago, resp.Origin)
	require.Len(t, resp.Locations, 2)
	require.Equal(t, "far", resp.Locations[0].Name)
	require.Equal(t, "10 mins", resp.Locations[0].DurationText)
	require.Equal(t, "near", resp.Locations[1].Name)
}

func TestNearest_DefaultLimitIsThree(t *testing.T) {
	source := &stubSource{locations: []Location{
		siteAt("a", 41.88, -87.63),
		siteAt("b", 41.89, -87.64),
		siteAt("c", 41.90, -87.65),
		siteAt("d", 41.91, -87.66),
		siteAt("e", 41.92, -87.67),
	}}
	svc := newTestService(&stubGeocoder{coord: chicago}, source, &stubMatrix{})

	resp, err := svc.Nearest(context.Background(), Request{Address: "somewhere"})
	require.NoError(t, err)
	require.Len(t, resp.Locations, 3)
}

func TestNearest_LimitClampedToMax(t *testing.T) {
	sites := make([]Location, 0, 12)
	for i := 0; i < 12; i++ {
		sites = append(sites, siteAt(string(rune('a'+i)), 41.88+float64(i)*0.01, -87.63))
	}
	matrix := &stubMatrix{}
	svc := NewService(Config{DefaultLimit: 3, MaxLimit: 10, Preselect: 20}, &stubGeocoder{coord: chicago}, &stubSource{locations: sites}, matrix, slog.New(slog.NewTextHandler(io.Discard, nil)))

	resp, err := svc.Nearest(context.Background(), Request{Address: "somewhere", Limit: 50})
	require.NoError(t, err)
	require.Len(t, resp.Locations, 10)
}

func TestNearest_PreselectBoundsMatrixCall(t *testing.T) {
	sites := make([]Location, 0, 30)
	for i := 0; i < 30; i++ {
		sites = append(sites, siteAt(string(rune('a'+i)), 41.88+float64(i)*0.01, -87.63))
	}
	matrix := &stubMatrix{}
	svc := NewService(Config{DefaultLimit: 3, MaxLimit: 10, Preselect: 10}, &stubGeocoder{coord: chicago}, &stubSource{locations: sites}, matrix, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.Nearest(context.Background(), Request{Address: "somewhere"})
	require.NoError(t, err)
	require.Len(t, matrix.gotDest, 10)
}

func TestNearest_UnroutedLocationsSinkToBottom(t *testing.T) {
	source := &stubSource{locations: []Location{
		siteAt("closest but unroutable", 41.879, -87.63),
		siteAt("routable", 42.00, -87.70),
	}}
	matrix := &stubMatrix{legs: []RouteLeg{
		{OK: false},
		{OK: true, DurationSeconds: 900, DistanceMeters: 14000},
	}}
	svc := newTestService(&stubGeocoder{coord: chicago}, source, matrix)

	resp, err := svc.Nearest(context.Background(), Request{Address: "somewhere"})
	require.NoError(t, err)
	require.Len(t, resp.Locations, 2)
	require.Equal(t, "routable", resp.Locations[0].Name)
	require.True(t, resp.Locations[0].Routed)
	require.False(t, resp.Locations[1].Routed)
	require.Zero(t, resp.Locations[1].DurationSeconds)
}

func TestNearest_EmptyAddress(t *testing.T) {
	svc := newTestService(&stubGeocoder{}, &stubSource{}, &stubMatrix{})

	_, err := svc.Nearest(context.Background(), Request{Address: "  "})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestNearest_GeocodeFailure(t *testing.T) {
	svc := newTestService(&stubGeocoder{err: errors.New("no match")}, &stubSource{}, &stubMatrix{})

	_, err := svc.Nearest(context.Background(), Request{Address: "nowhere"})
	require.True(t, apperrors.IsCode(err, "geocode_error"))
}

func TestNearest_SourceFailure(t *testing.T) {
	svc := newTestService(&stubGeocoder{coord: chicago}, &stubSource{err: errors.New("cms down")}, &stubMatrix{})

	_, err := svc.Nearest(context.Background(), Request{Address: "somewhere"})
	require.True(t, apperrors.IsCode(err, "cms_error"))
}

func TestNearest_MatrixFailure(t *testing.T) {
	source := &stubSource{locations: []Location{siteAt("a", 41.88, -87.63)}}
	svc := newTestService(&stubGeocoder{coord: chicago}, source, &stubMatrix{err: errors.New("matrix down")})

	_, err := svc.Nearest(context.Background(), Request{Address: "somewhere"})
	require.True(t, apperrors.IsCode(err, "maps_error"))
}

func TestNearest_NoLocations(t *testing.T) {
	svc := newTestService(&stubGeocoder{coord: chicago}, &stubSource{}, &stubMatrix{})

	resp, err := svc.Nearest(context.Background(), Request{Address: "somewhere"})
	require.NoError(t, err)
	require.Empty(t, resp.Locations)
}
