package locations

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is one business site as published by the CMS.
type Location struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city,omitempty"`
	State   string  `json:"state,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Request asks for the locations nearest to a free-form address. Limit is
// optional; zero means the configured default.
type Request struct {
	Address string `json:"address"`
	Limit   int    `json:"limit"`
}

// RankedLocation is a location annotated with driving metrics. Routed
// locations carry the matrix values; unroutable ones fall back to the
// straight-line estimate with zeroed driving fields.
type RankedLocation struct {
	Location
	HaversineKm     float64 `json:"haversineKm"`
	DistanceMeters  int64   `json:"distanceMeters,omitempty"`
	DistanceText    string  `json:"distanceText,omitempty"`
	DurationSeconds int64   `json:"durationSeconds,omitempty"`
	DurationText    string  `json:"durationText,omitempty"`
	Routed          bool    `json:"routed"`
}

// Response is the ranked result set together with the geocoded origin.
type Response struct {
	Origin    Coordinate       `json:"origin"`
	Locations []RankedLocation `json:"locations"`
}

// RouteLeg is one origin-to-destination entry of a distance matrix row.
type RouteLeg struct {
	DistanceMeters  int64
	DistanceText    string
	DurationSeconds int64
	DurationText    string
	OK              bool
}

// Config controls result sizing. Limits out of [1, MaxLimit] are clamped,
// never rejected.
type Config struct {
	DefaultLimit int
	MaxLimit     int
	Preselect    int
}
