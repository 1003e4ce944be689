package main

import (
	"github.com/fitbridge/studio-api/internal/domain/locations"
	"github.com/fitbridge/studio-api/internal/infra/booking"
	"github.com/fitbridge/studio-api/internal/infra/cms"
	"github.com/fitbridge/studio-api/internal/infra/config"
	"github.com/fitbridge/studio-api/internal/infra/maps"
)

func provideBookingClient(cfg *config.Config) *booking.Client {
	return booking.NewClient(cfg.Booking.BaseURL, cfg.Booking.APIKey)
}

func provideCMSClient(cfg *config.Config) *cms.Client {
	return cms.NewClient(cfg.CMS.BaseURL, cfg.CMS.APIKey, cfg.CMS.PageSize)
}

func provideMapsClient(cfg *config.Config) *maps.Client {
	return maps.NewClient(cfg.Maps.BaseURL, cfg.Maps.APIKey)
}

func provideLocationsConfig(cfg *config.Config) locations.Config {
	return locations.Config{
		DefaultLimit: cfg.Locations.DefaultLimit,
		MaxLimit:     cfg.Locations.MaxLimit,
		Preselect:    cfg.Locations.Preselect,
	}
}
