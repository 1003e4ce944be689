package cms

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fitbridge/studio-api/internal/domain/locations"
)

// maxPages bounds the pagination loop against a CMS that keeps reporting
// full pages.
const maxPages = 50

// Client lists business locations from the headless CMS, walking its
// paginated collection endpoint until a short page.
type Client struct {
	http     *resty.Client
	pageSize int
}

// NewClient builds a CMS client. The API key is optional; when set it is
// sent as a bearer token.
func NewClient(baseURL, apiKey string, pageSize int) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(strings.TrimSpace(baseURL), "/")).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")
	if strings.TrimSpace(apiKey) != "" {
		client.SetAuthToken(apiKey)
	}
	return &Client{http: client, pageSize: pageSize}
}

type entry struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	Phone       string     `json:"phone"`
	Coordinates coordinate `json:"coordinates"`
}

type coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type page struct {
	Entries []entry `json:"entries"`
	Total   int     `json:"total"`
}

// Locations fetches every published location.
func (c *Client) Locations(ctx context.Context) ([]locations.Location, error) {
	var all []locations.Location

	for pageNum := 1; pageNum <= maxPages; pageNum++ {
		var body page
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"page":     strconv.Itoa(pageNum),
				"pageSize": strconv.Itoa(c.pageSize),
			}).
			SetResult(&body).
			Get("/locations")
		if err != nil {
			return nil, fmt.Errorf("cms request failed: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("cms request error: status=%d body=%s", resp.StatusCode(), snippet(resp.Body()))
		}

		for _, e := range body.Entries {
			all = append(all, locations.Location{
				ID:      e.ID,
				Name:    e.Name,
				Address: e.Address,
				City:    e.City,
				State:   e.State,
				Phone:   e.Phone,
				Lat:     e.Coordinates.Lat,
				Lng:     e.Coordinates.Lng,
			})
		}
		if len(body.Entries) < c.pageSize {
			break
		}
	}
	return all, nil
}

func snippet(body []byte) string {
	const max = 512
	if len(body) > max {
		body = body[:max]
	}
	return string(body)
}
