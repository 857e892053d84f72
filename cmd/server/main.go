package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/famtivity/famtivity-api/internal/config"
	"github.com/famtivity/famtivity-api/internal/handler"
	"github.com/famtivity/famtivity-api/internal/queue"
	"github.com/famtivity/famtivity-api/internal/repository"
	"github.com/famtivity/famtivity-api/internal/router"
	"github.com/famtivity/famtivity-api/internal/service"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

func main() {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()

	sb := supabase.New(cfg.SupabaseURL, cfg.SupabaseAnonKey)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}

	email, err := service.NewEmailService(cfg.SESRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("email service: %v", err)
	}

	waitlistRepo := repository.NewWaitlistRepo(sb)
	familyRepo := repository.NewFamilyRepo(sb)
	activityRepo := repository.NewActivityRepo(sb)
	recRepo := repository.NewRecommendationRepo(sb)
	bookingRepo := repository.NewBookingRepo(sb)
	feedbackRepo := repository.NewFeedbackRepo(sb)

	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(sb, cfg.Env),
		Waitlist:   handler.NewWaitlistHandler(service.NewWaitlistService(waitlistRepo, email)),
		Onboarding: handler.NewOnboardingHandler(service.NewOnboardingService(familyRepo, waitlistRepo)),
		Dashboard:  handler.NewDashboardHandler(service.NewDashboardService(familyRepo, recRepo, bookingRepo)),
		Search:     handler.NewSearchHandler(service.NewSearchService(activityRepo)),
		Booking:    handler.NewBookingHandler(service.NewBookingService(bookingRepo)),
		Feedback:   handler.NewFeedbackHandler(service.NewFeedbackService(feedbackRepo)),
	}

	// The event consumer only runs when a broker is configured; it keeps
	// its own reconnect loop.
	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		go func() {
			if err := queue.StartBookingConsumer(); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, handlers, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
