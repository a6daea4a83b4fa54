package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"library-catalog/internal/config"
	"library-catalog/internal/infrastructure/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS authors (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    bio TEXT,
    nationality TEXT,
    birth_year INT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS books (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    title TEXT NOT NULL,
    description TEXT,
    isbn TEXT UNIQUE,
    published_year INT,
    genre TEXT,
    pages INT,
    author_id UUID NOT NULL REFERENCES authors(id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_books_author_id ON books(author_id);
CREATE INDEX IF NOT EXISTS idx_books_published_year ON books(published_year);
`

type seedAuthor struct {
	name        string
	email       string
	bio         string
	nationality string
	birthYear   int
}

type seedBook struct {
	title         string
	description   string
	isbn          string
	publishedYear int
	genre         string
	pages         int
	authorEmail   string
}

var authors = []seedAuthor{
	{"Gabriel García Márquez", "gabriel@example.com", "Escritor colombiano, Premio Nobel de Literatura", "Colombiano", 1927},
	{"Isabel Allende", "isabel@example.com", "Escritora chilena de renombre internacional", "Chilena", 1942},
	{"Mario Vargas Llosa", "mario@example.com", "Escritor peruano, Premio Nobel de Literatura", "Peruano", 1936},
}

var books = []seedBook{
	{"Cien años de soledad", "Una obra maestra del realismo mágico", "978-0307474728", 1967, "Novela", 448, "gabriel@example.com"},
	{"El amor en los tiempos del cólera", "Una historia de amor que trasciende el tiempo", "978-0307387351", 1985, "Novela", 348, "gabriel@example.com"},
	{"La casa de los espíritus", "Una saga familiar llena de magia y realidad", "978-0553383805", 1982, "Novela", 433, "isabel@example.com"},
	{"Eva Luna", "La historia de una mujer extraordinaria", "978-0553383812", 1987, "Novela", 271, "isabel@example.com"},
	{"La ciudad y los perros", "Una novela sobre la violencia y la corrupción", "978-0060732813", 1963, "Novela", 409, "mario@example.com"},
	{"Conversación en La Catedral", "Una crítica social de la dictadura peruana", "978-0060732820", 1969, "Novela", 601, "mario@example.com"},
	{"Manual del perfecto amor", "Guía completa para el romance moderno", "978-1234567890", 2020, "Romance", 250, "isabel@example.com"},
	{"Crónica de una muerte anunciada", "Un relato sobre el honor y la tragedia", "978-0307387368", 1981, "Novela", 120, "gabriel@example.com"},
}

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

	log.Println("🌱 Seeding sample data...")

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		log.Fatalf("❌ Failed to create schema: %v", err)
	}

	authorIDs := make(map[string]uuid.UUID, len(authors))
	for _, a := range authors {
		var id uuid.UUID
		err := db.Pool.QueryRow(ctx, `
			INSERT INTO authors (name, email, bio, nationality, birth_year)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`,
			a.name, a.email, a.bio, a.nationality, a.birthYear,
		).Scan(&id)
		if err != nil {
			log.Fatalf("❌ Failed to seed author %q: %v", a.name, err)
		}
		authorIDs[a.email] = id
	}

	for _, b := range books {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO books (title, description, isbn, published_year, genre, pages, author_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (isbn) DO NOTHING`,
			b.title, b.description, b.isbn, b.publishedYear, b.genre, b.pages, authorIDs[b.authorEmail],
		)
		if err != nil {
			log.Fatalf("❌ Failed to seed book %q: %v", b.title, err)
		}
	}

	log.Printf("✅ Seeded %d books across %d authors", len(books), len(authors))
}
