package main

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"

	"trip-booking-service/config"
	bookinghandler "trip-booking-service/internal/module/booking/handler"
	bookingrepositories "trip-booking-service/internal/module/booking/repositories"
	bookingusecases "trip-booking-service/internal/module/booking/usecases"
	triphandler "trip-booking-service/internal/module/trip/handler"
	triprepositories "trip-booking-service/internal/module/trip/repositories"
	tripusecases "trip-booking-service/internal/module/trip/usecases"
	"trip-booking-service/internal/pkg/database"
	"trip-booking-service/internal/pkg/http"
	"trip-booking-service/internal/pkg/httpclient"
	log_internal "trip-booking-service/internal/pkg/log"
	"trip-booking-service/internal/pkg/messagestream"
	"trip-booking-service/internal/pkg/middleware"
	"trip-booking-service/internal/pkg/redis"
	"trip-booking-service/internal/pkg/scheduler"
	router "trip-booking-service/internal/route"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, r := range messageRouters {
		ctx := context.Background()
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				log.Fatal(err)
			}
		}(r)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init scheduler
	sched := &scheduler.Scheduler{Log: logger}
	schedulerClient := sched.InitClient(&cfg.Redis)

	bookingRepo := bookingrepositories.New(db, logger, httpClient, &cfg.UserService, redisClient, schedulerClient)
	bookingUsecase := bookingusecases.New(bookingRepo, logger, publisher, &cfg.Booking)

	tripRepo := triprepositories.New(db, logger, redisClient)
	tripUsecase := tripusecases.New(tripRepo, logger)

	m := &middleware.Middleware{
		Log:  logger,
		Repo: bookingRepo,
	}

	v := validator.New()
	bookingHandler := &bookinghandler.BookingHandler{
		Log:       logger,
		Validator: v,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}
	tripHandler := &triphandler.TripHandler{
		Log:     logger,
		Usecase: tripUsecase,
	}

	var messageRouters []*message.Router

	lifecycleRouter, err := messagestream.NewRouter(
		publisher,
		bookingusecases.TopicLifecyclePoison,
		"booking_lifecycle_handler",
		bookingusecases.TopicLifecycleEvents,
		subscriber,
		bookingHandler.ConsumeLifecycleQueue,
	)
	if err != nil {
		logger.Error(ctx, "Failed to create booking_lifecycle router", err)
	}

	messageRouters = append(messageRouters, lifecycleRouter)

	// departure reminder worker + monitoring ui
	go sched.StartHandler(
		&cfg.Redis,
		[]string{scheduler.TypeDepartureReminder},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.SendDepartureReminder},
	)
	go sched.StartMonitoring(&cfg.Redis)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, bookingHandler, tripHandler, m)

	return r, messageRouters

}
