//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/fitbridge/studio-api/internal/bootstrap"
	"github.com/fitbridge/studio-api/internal/domain/locations"
	"github.com/fitbridge/studio-api/internal/domain/schedule"
	"github.com/fitbridge/studio-api/internal/infra/booking"
	"github.com/fitbridge/studio-api/internal/infra/cms"
	"github.com/fitbridge/studio-api/internal/infra/config"
	"github.com/fitbridge/studio-api/internal/infra/maps"
	httpiface "github.com/fitbridge/studio-api/internal/interface/http"
	"github.com/fitbridge/studio-api/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideBookingClient,
		provideCMSClient,
		provideMapsClient,
		provideLocationsConfig,
		schedule.NewService,
		locations.NewService,
		wire.Bind(new(schedule.BookingClient), new(*booking.Client)),
		wire.Bind(new(locations.Geocoder), new(*maps.Client)),
		wire.Bind(new(locations.RouteMatrix), new(*maps.Client)),
		wire.Bind(new(locations.LocationSource), new(*cms.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
