package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"spotrent/internal/database"
	"spotrent/internal/domain"
	"spotrent/internal/repository"
)

// Seeds a local database with a pair of users, a few spots, and some
// demo reviews, images, and bookings.
func main() {
	db, err := database.Connect("spotrent.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM spot_images")
	db.Exec("DELETE FROM spots")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	spots := repository.NewSpotRepository(db)
	images := repository.NewImageRepository(db)
	reviews := repository.NewReviewRepository(db)
	bookings := repository.NewBookingRepository(db)

	log.Println("Creating users...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	host := domain.User{
		FirstName:    "Hana",
		LastName:     "Ito",
		Email:        "host@spotrent.dev",
		PasswordHash: string(hash),
	}
	if err := users.Create(ctx, &host); err != nil {
		log.Fatal(err)
	}

	guest := domain.User{
		FirstName:    "Gabe",
		LastName:     "Ortiz",
		Email:        "guest@spotrent.dev",
		PasswordHash: string(hash),
	}
	if err := users.Create(ctx, &guest); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating spots...")
	cabin := domain.Spot{
		OwnerID:     host.ID,
		Address:     "1 Pine Ridge Rd",
		City:        "Lake Placid",
		State:       "NY",
		Country:     "USA",
		Lat:         44.2795,
		Lng:         -73.9799,
		Name:        "Lakeside Cabin",
		Description: "Quiet cabin with a dock and wood stove.",
		Price:       180,
	}
	if err := spots.Create(ctx, &cabin); err != nil {
		log.Fatal(err)
	}

	loft := domain.Spot{
		OwnerID:     host.ID,
		Address:     "88 Mercer St",
		City:        "New York",
		State:       "NY",
		Country:     "USA",
		Lat:         40.7223,
		Lng:         -74.0022,
		Name:        "SoHo Loft",
		Description: "Bright loft above the gallery district.",
		Price:       325,
	}
	if err := spots.Create(ctx, &loft); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating images, reviews, bookings...")
	if err := images.Create(ctx, &domain.SpotImage{
		SpotID:  cabin.ID,
		URL:     "https://images.spotrent.dev/cabin-front.jpg",
		Preview: true,
	}); err != nil {
		log.Fatal(err)
	}

	if err := reviews.Create(ctx, &domain.Review{
		SpotID: cabin.ID,
		UserID: guest.ID,
		Review: "Perfect weekend escape, the dock alone is worth it.",
		Stars:  5,
	}); err != nil {
		log.Fatal(err)
	}

	start := time.Date(time.Now().Year()+1, time.June, 1, 0, 0, 0, 0, time.UTC)
	if err := bookings.CreateIfFree(ctx, &domain.Booking{
		SpotID:    cabin.ID,
		UserID:    guest.ID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 4),
	}); err != nil {
		log.Fatal(err)
	}

	log.Println("Seed complete.")
}
