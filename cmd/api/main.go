package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"spotrent/internal/database"
	"spotrent/internal/middleware"
	"spotrent/internal/modules/auth"
	"spotrent/internal/modules/booking"
	"spotrent/internal/modules/image"
	"spotrent/internal/modules/review"
	"spotrent/internal/modules/spot"
	jwtsvc "spotrent/internal/pkg/jwt"
	"spotrent/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "spotrent.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	spotRepo := repository.NewSpotRepository(db)
	imageRepo := repository.NewImageRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	spotHandler := spot.NewHandler(spot.NewService(spotRepo, reviewRepo, imageRepo, userRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, spotRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, spotRepo))
	imageHandler := image.NewHandler(image.NewService(imageRepo, spotRepo))

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")

	protected := api.Group("/")
	protected.Use(middleware.Auth(j))

	authHandler.RegisterRoutes(api)
	spotHandler.RegisterRoutes(api, protected)
	reviewHandler.RegisterRoutes(api, protected)
	bookingHandler.RegisterRoutes(protected)
	imageHandler.RegisterRoutes(protected)

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
