package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"shuttletrack/internal/config"
	"shuttletrack/internal/db"
	"shuttletrack/internal/model"
	"shuttletrack/internal/seed"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Stage{},
		&model.Skill{},
		&model.StageSkill{},
		&model.Progress{},
		&model.Invitation{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seed.Rubric(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed rubric: %v", err)
	}
	log.Println("Seeded 4 stages, 26 skills, and stage associations")

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		if err := seed.AdminUser(ctx, gormDB, "Head Coach", adminEmail, string(hash)); err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
		log.Printf("Seeded admin user %s", adminEmail)
	} else {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin user")
	}

	log.Println("Seed completed successfully!")
}
