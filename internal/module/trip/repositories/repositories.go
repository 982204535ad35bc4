package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"trip-booking-service/internal/module/booking/models/entity"
	"trip-booking-service/internal/module/trip/models/response"
	"trip-booking-service/internal/pkg/errors"
	"trip-booking-service/internal/pkg/log"
)

const searchCacheTTL = 30 * time.Second

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	redisClient *redis.Client
}

type Repositories interface {
	SearchTrips(ctx context.Context, routeFrom, routeTo string, date time.Time) ([]response.Trip, error)
}

func New(db *sqlx.DB, logger log.Logger, redisClient *redis.Client) Repositories {
	return &repositories{
		db:          db,
		log:         logger,
		redisClient: redisClient,
	}
}

// SearchTrips implements Repositories. Results are short-lived cached; trips
// serve reads only here, the booking module owns all counter writes.
func (r *repositories) SearchTrips(ctx context.Context, routeFrom, routeTo string, date time.Time) ([]response.Trip, error) {
	cacheKey := searchCacheKey(routeFrom, routeTo, date)
	if data, err := r.redisClient.Get(ctx, cacheKey).Bytes(); err == nil {
		var cached []response.Trip
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	var trips []entity.Trip
	err := r.db.SelectContext(ctx, &trips, `
		SELECT * FROM trips
		WHERE route_from = $1 AND route_to = $2
		  AND departure_time >= $3 AND departure_time < $4
		  AND is_active = true AND status = 'scheduled'
		ORDER BY departure_time
	`, routeFrom, routeTo, date, date.AddDate(0, 0, 1))
	if err != nil {
		return nil, errors.InternalServerError("error search trips")
	}

	result := make([]response.Trip, 0, len(trips))
	for _, trip := range trips {
		var fares []entity.TripFare
		err := r.db.SelectContext(ctx, &fares, `
			SELECT * FROM trip_fares WHERE trip_id = $1 ORDER BY price
		`, trip.ID)
		if err != nil {
			return nil, errors.InternalServerError("error load trip fares")
		}

		respTrip := response.Trip{
			ID:             trip.ID,
			RouteFrom:      trip.RouteFrom,
			RouteTo:        trip.RouteTo,
			CompanyID:      trip.CompanyID,
			DepartureTime:  trip.DepartureTime.Format("2006-01-02 15:04:05"),
			ArrivalTime:    trip.ArrivalTime.Format("2006-01-02 15:04:05"),
			SeatsAvailable: trip.SeatsAvailable,
		}
		for _, fare := range fares {
			respTrip.Fares = append(respTrip.Fares, response.Fare{
				FareCategory:   fare.FareCategory,
				BookingOption:  fare.BookingOption,
				Price:          fare.Price,
				Currency:       fare.Currency,
				SeatsAvailable: fare.SeatsAvailable,
			})
		}
		result = append(result, respTrip)
	}

	if data, err := json.Marshal(result); err == nil {
		if err := r.redisClient.Set(ctx, cacheKey, data, searchCacheTTL).Err(); err != nil {
			r.log.Warn(ctx, "error caching trip search", err)
		}
	}

	return result, nil
}

func searchCacheKey(routeFrom, routeTo string, date time.Time) string {
	return fmt.Sprintf("trips:search:%s:%s:%s", routeFrom, routeTo, date.Format("2006-01-02"))
}
