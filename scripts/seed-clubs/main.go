package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/loganlanou/clubhub/storage"
	"github.com/loganlanou/clubhub/storage/db"
	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

var categories = []string{"academic", "arts", "athletics", "cultural", "general", "service", "technology"}

func main() {
	count := flag.Int("n", 20, "number of clubs to create")
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/clubhub.db"
	}

	sqlDB, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer sqlDB.Close()

	queries := db.New(sqlDB)
	ctx := context.Background()

	existing, err := queries.CountClubs(ctx)
	if err != nil {
		log.Fatalf("Failed to count clubs (start the server once so migrations run): %v", err)
	}

	// All clubs land together or not at all.
	created := 0
	err = storage.WithTransaction(ctx, sqlDB, func(q *db.Queries) error {
		for attempts := 0; created < *count && attempts < *count*5; attempts++ {
			club := fakeClub()
			if _, err := q.CreateClub(ctx, club); err != nil {
				if strings.Contains(err.Error(), "UNIQUE") {
					continue
				}
				return fmt.Errorf("failed to create club %q: %w", club.Name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to seed clubs: %v", err)
	}

	fmt.Printf("Seeded %d clubs (%d existed before)\n", created, existing)
}

func fakeClub() db.CreateClubParams {
	name := fmt.Sprintf("%s %s Club", gofakeit.Adjective(), gofakeit.Hobby())
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))

	params := db.CreateClubParams{
		ID:            ulid.Make().String(),
		Name:          name,
		Description:   sql.NullString{String: gofakeit.Phrase(), Valid: true},
		Category:      gofakeit.RandomString(categories),
		ContactEmail:  gofakeit.Email(),
		PresidentName: sql.NullString{String: gofakeit.Name(), Valid: true},
	}
	if gofakeit.Bool() {
		params.LogoPublicID = sql.NullString{String: "clubs/" + slug, Valid: true}
	}
	return params
}
