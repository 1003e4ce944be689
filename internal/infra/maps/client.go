package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fitbridge/studio-api/internal/domain/locations"
)

// Client talks to the mapping provider's geocoding and distance-matrix
// endpoints.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type geocodeResponse struct {
	Results []struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"results"`
}

// Geocode resolves a free-form address to its best-match coordinate.
func (c *Client) Geocode(ctx context.Context, address string) (locations.Coordinate, error) {
	query := url.Values{}
	query.Set("q", address)
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	body, err := c.get(ctx, "/geocode?"+query.Encode())
	if err != nil {
		return locations.Coordinate{}, err
	}

	var decoded geocodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return locations.Coordinate{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(decoded.Results) == 0 {
		return locations.Coordinate{}, fmt.Errorf("no geocode match for %q", address)
	}
	return locations.Coordinate{Lat: decoded.Results[0].Lat, Lng: decoded.Results[0].Lng}, nil
}

type matrixResponse struct {
	Rows []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int64  `json:"value"`
				Text  string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Value int64  `json:"value"`
				Text  string `json:"text"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Routes returns one driving leg per destination, in destination order.
// Destinations the provider cannot route come back with OK=false instead of
// failing the whole call.
func (c *Client) Routes(ctx context.Context, origin locations.Coordinate, destinations []locations.Coordinate) ([]locations.RouteLeg, error) {
	if len(destinations) == 0 {
		return nil, nil
	}

	dests := make([]string, len(destinations))
	for i, d := range destinations {
		dests[i] = formatCoordinate(d)
	}
	query := url.Values{}
	query.Set("origins", formatCoordinate(origin))
	query.Set("destinations", strings.Join(dests, ";"))
	query.Set("mode", "driving")
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	body, err := c.get(ctx, "/distance-matrix?"+query.Encode())
	if err != nil {
		return nil, err
	}

	var decoded matrixResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode distance matrix response: %w", err)
	}
	if len(decoded.Rows) == 0 {
		return nil, fmt.Errorf("distance matrix returned no rows")
	}

	elements := decoded.Rows[0].Elements
	if len(elements) != len(destinations) {
		return nil, fmt.Errorf("distance matrix returned %d elements for %d destinations", len(elements), len(destinations))
	}

	legs := make([]locations.RouteLeg, len(elements))
	for i, el := range elements {
		if !strings.EqualFold(el.Status, "OK") {
			continue
		}
		legs[i] = locations.RouteLeg{
			OK:              true,
			DistanceMeters:  el.Distance.Value,
			DistanceText:    el.Distance.Text,
			DurationSeconds: el.Duration.Value,
			DurationText:    el.Duration.Text,
		}
	}
	return legs, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build maps request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("maps request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("maps request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read maps response: %w", err)
	}
	return body, nil
}

func formatCoordinate(c locations.Coordinate) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}
