package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/farmdirect/farmdirect-golang/internal/auth"
	"github.com/farmdirect/farmdirect-golang/internal/database"
	"github.com/farmdirect/farmdirect-golang/internal/graph"
	"github.com/farmdirect/farmdirect-golang/internal/routes"
	"github.com/farmdirect/farmdirect-golang/internal/store"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Database Connection ---
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://127.0.0.1:27017"
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = database.DefaultDatabase
	}

	client, db, err := database.Connect(uri, dbName)
	if err != nil {
		log.Fatalf("MongoDB connection error: %v", err)
	}
	defer database.Disconnect(client)

	if err := database.EnsureIndexes(db); err != nil {
		log.Printf("WARNING: Could not create indexes: %v", err)
	}

	// 2. --- Token Signing ---
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("CRITICAL ERROR: JWT_SECRET environment variable is not set.")
	}

	// 3. --- Application Setup ---
	// All dependencies are injected into the Resolver struct.
	tokens := auth.NewTokenManager(secret)
	resolver := &graph.Resolver{
		Store:  store.New(db),
		Tokens: tokens,
	}

	schema, err := graph.NewSchema(resolver)
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	// --- Router Setup ---
	router := routes.SetupRouter(schema, tokens)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Printf("Starting FarmDirect API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
