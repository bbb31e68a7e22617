package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/harism06/museum-db/internal/config"
	"github.com/harism06/museum-db/internal/database"
	"github.com/harism06/museum-db/internal/handler"
	"github.com/harism06/museum-db/internal/queue"
	"github.com/harism06/museum-db/internal/repository"
	"github.com/harism06/museum-db/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; caching and rate limiting disabled")
	}

	visitors := repository.NewVisitorRepo(db)
	staff := repository.NewStaffRepo(db)
	artists := repository.NewArtistRepo(db)
	artworks := repository.NewArtworkRepo(db)
	galleries := repository.NewGalleryRepo(db)
	exhibitions := repository.NewExhibitionRepo(db)
	events := repository.NewEventRepo(db)
	storeItems := repository.NewStoreItemRepo(db)
	orders := repository.NewOrderRepo(db)
	discounts := repository.NewDiscountRepo(db)
	reports := repository.NewReportRepo(db)
	notifications := repository.NewNotificationRepo(db)

	h := router.Handlers{
		Auth:          handler.NewAuthHandler(cfg, visitors),
		Staff:         handler.NewStaffHandler(staff),
		Catalog:       handler.NewCatalogHandler(artists, artworks, galleries, exhibitions, events, storeItems),
		Checkout:      handler.NewCheckoutHandler(orders, discounts, visitors),
		Reports:       handler.NewReportHandler(reports),
		Notifications: handler.NewNotificationHandler(notifications),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.Register(e, cfg, rdb, h, visitors)

	// Turns order.recorded events into notification rows; reconnects on
	// broker outages for the life of the process.
	go func() {
		if err := queue.StartOrderConsumer(notifications); err != nil {
			log.Printf("order consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
