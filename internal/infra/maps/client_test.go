package maps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitbridge/studio-api/internal/domain/locations"
)

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/geocode", r.URL.Path)
		require.Equal(t, "200 N Michigan Ave, Chicago", r.URL.Query().Get("q"))
		require.Equal(t, "maps-key", r.URL.Query().Get("key"))
		fmt.Fprint(w, `{"results":[{"lat":41.8858,"lng":-87.6243},{"lat":40.0,"lng":-80.0}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "maps-key")
	coord, err := client.Geocode(context.Background(), "200 N Michigan Ave, Chicago")
	require.NoError(t, err)
	require.Equal(t, locations.Coordinate{Lat: 41.8858, Lng: -87.6243}, coord)
}

func TestGeocode_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Geocode(context.Background(), "nowhere at all")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no geocode match")
}

func TestRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/distance-matrix", r.URL.Path)
		require.Equal(t, "driving", r.URL.Query().Get("mode"))
		require.Equal(t, "41.878100,-87.629800", r.URL.Query().Get("origins"))
		fmt.Fprint(w, `{"rows":[{"elements":[
			{"status":"OK","distance":{"value":9000,"text":"9 km"},"duration":{"value":1200,"text":"20 mins"}},
			{"status":"ZERO_RESULTS"}
		]}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	legs, err := client.Routes(context.Background(), locations.Coordinate{Lat: 41.8781, Lng: -87.6298}, []locations.Coordinate{
		{Lat: 41.89, Lng: -87.65},
		{Lat: 42.04, Lng: -87.68},
	})
	require.NoError(t, err)
	require.Len(t, legs, 2)
	require.True(t, legs[0].OK)
	require.Equal(t, int64(9000), legs[0].DistanceMeters)
	require.Equal(t, "20 mins", legs[0].DurationText)
	require.False(t, legs[1].OK)
}

func TestRoutes_ElementCountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rows":[{"elements":[{"status":"OK"}]}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Routes(context.Background(), locations.Coordinate{}, []locations.Coordinate{{}, {}})
	require.Error(t, err)
}

func TestRoutes_NoDestinations(t *testing.T) {
	client := NewClient("http://unused.invalid", "")
	legs, err := client.Routes(context.Background(), locations.Coordinate{}, nil)
	require.NoError(t, err)
	require.Empty(t, legs)
}
