package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"library-catalog/internal/config"
	"library-catalog/internal/infrastructure/database"
)

// Lists every author with its id and book count, plus ready-to-paste
// URLs for poking the stats endpoint.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load database config: %v", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	rows, err := db.Pool.Query(ctx, `
		SELECT a.id, a.name, COUNT(b.id)
		FROM authors a
		LEFT JOIN books b ON b.author_id = a.id
		GROUP BY a.id, a.name
		ORDER BY a.name ASC`)
	if err != nil {
		log.Fatalf("❌ Failed to list authors: %v", err)
	}
	defer rows.Close()

	fmt.Println("🎭 AUTHORS:")
	fmt.Println("========================")

	i := 0
	for rows.Next() {
		var (
			id    uuid.UUID
			name  string
			count int
		)
		if err := rows.Scan(&id, &name, &count); err != nil {
			log.Fatalf("❌ Failed to scan author row: %v", err)
		}
		i++
		fmt.Printf("%d. %s\n", i, name)
		fmt.Printf("   ID: %s\n", id)
		fmt.Printf("   Books: %d\n", count)
		fmt.Printf("   Stats: http://localhost:8080/api/authors/%s/stats\n\n", id)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("❌ Failed reading author rows: %v", err)
	}

	if i == 0 {
		fmt.Println("(no authors, run cmd/seed first)")
	}
}
