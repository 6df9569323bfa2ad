package main

import (
	"context"
	"log"
	"os"

	"github.com/izaj/izaj-golang/internal/database"
	"github.com/izaj/izaj-golang/internal/email"
	"github.com/izaj/izaj-golang/internal/handlers"
	"github.com/izaj/izaj-golang/internal/kv"
	"github.com/izaj/izaj-golang/internal/psgc"
	"github.com/izaj/izaj-golang/internal/routes"
	"github.com/izaj/izaj-golang/internal/session"
	"github.com/joho/godotenv"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. --- Storage Scopes ---
	// The durable scope survives restarts (Redis when available, a local
	// file otherwise). The ephemeral scope is in-process only and is
	// gone when the server stops, like sessionStorage in a browser.
	durable, err := openDurableScope()
	if err != nil {
		log.Fatalf("Failed to open durable session scope: %v", err)
	}
	ephemeral := kv.NewMemoryStore()

	// 3. --- Session Store ---
	sessions := session.NewStore(durable, ephemeral)
	state := sessions.Rehydrate(context.Background())
	log.Printf("Session rehydrated: %s", state)

	// 4. --- Email Sender ---
	var mailer email.Sender
	if smtpSender, ok := email.NewSMTPSenderFromEnv(); ok {
		mailer = smtpSender
		log.Println("Email: using SMTP sender")
	} else {
		mailer = &email.LogSender{AppURL: os.Getenv("APP_URL")}
		log.Println("Email: no SMTP credentials, logging emails to console")
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		DB:       db,
		Sessions: sessions,
		Mailer:   mailer,
		PSGC:     psgc.NewClient(),
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	log.Println("Starting IZAJ API server on port 8080...")
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// openDurableScope picks the durable key-value backend: Redis when
// REDIS_ADDR is set, a local JSON file otherwise.
func openDurableScope() (kv.Store, error) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		store, err := kv.NewRedisStore(addr, "izaj:session:")
		if err != nil {
			return nil, err
		}
		log.Printf("Durable scope: Redis at %s", addr)
		return store, nil
	}

	path := os.Getenv("SESSION_FILE")
	if path == "" {
		path = "izaj_session.json"
	}
	store, err := kv.OpenFileStore(path)
	if err != nil {
		return nil, err
	}
	log.Printf("Durable scope: file at %s", path)
	return store, nil
}
