package usecases

import (
	"context"
	"time"

	"trip-booking-service/internal/module/trip/models/response"
	"trip-booking-service/internal/module/trip/repositories"
	"trip-booking-service/internal/pkg/log"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	SearchTrips(ctx context.Context, routeFrom, routeTo string, date time.Time) ([]response.Trip, error)
}

func New(repo repositories.Repositories, logger log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  logger,
	}
}

func (u *usecase) SearchTrips(ctx context.Context, routeFrom, routeTo string, date time.Time) ([]response.Trip, error) {
	return u.repo.SearchTrips(ctx, routeFrom, routeTo, date)
}
