package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	sqliteadapter "github.com/csg33k/vin-decoder/internal/adapters/sqlite"
	"github.com/csg33k/vin-decoder/internal/handlers"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
	dsn := os.Getenv("DB_PATH")
	if dsn == "" {
		dsn = "vindecoder.db"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	repo, err := sqliteadapter.New(dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	h := handlers.New(repo)

	log.Printf("My Winter Car VIN Decoder running on http://localhost:%s", port)
	log.Printf("Database: %s", dsn)
	if err := http.ListenAndServe(":"+port, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
