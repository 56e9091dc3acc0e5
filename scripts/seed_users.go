package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/youapp/youapp-api/pkg/auth"
)

// Seeds two demo users so the messaging flow can be exercised right after
// a fresh migration.
func main() {
	fmt.Println("seeding demo users...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "secret123"
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (email) DO UPDATE SET password_hash = $4
	`
	now := time.Now().UTC()
	for _, u := range []struct{ email, username string }{
		{"jeffri@example.com", "jeffri"},
		{"user456@example.com", "user456"},
	} {
		if _, err := pool.Exec(context.Background(), query, uuid.New(), u.email, u.username, hash, now); err != nil {
			log.Fatalf("cannot add user %s: %v", u.username, err)
		}
		fmt.Printf("added or updated user '%s'\n", u.username)
	}
}
