package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/auralabs/aura-backend/internal/ai"
	"github.com/auralabs/aura-backend/internal/config"
	"github.com/auralabs/aura-backend/internal/database"
	"github.com/auralabs/aura-backend/internal/handlers"
	"github.com/auralabs/aura-backend/internal/middleware"
	"github.com/auralabs/aura-backend/internal/routes"
	"github.com/auralabs/aura-backend/internal/services"
	"github.com/auralabs/aura-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Record store: mongo (default), postgres or memory
	var repo store.UserRepository
	switch cfg.StoreBackend {
	case "postgres":
		log.Printf("Connecting to PostgreSQL...")
		if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
			log.Fatal("Failed to connect to PostgreSQL:", err)
		}
		defer database.DisconnectPostgres()
		if err := database.InitPostgresTables(); err != nil {
			log.Fatal("Failed to initialize PostgreSQL tables:", err)
		}
		repo = store.NewPostgresRepository(database.PostgresDB)

	case "memory":
		log.Println("⚠️  WARNING: STORE_BACKEND=memory keeps all records in process memory")
		repo = store.NewMemoryRepository()

	default:
		log.Printf("Connecting to MongoDB...")
		if err := database.Connect(cfg.MongoURI); err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer database.Disconnect()

		mongoRepo := store.NewMongoRepository(database.DB)
		if err := mongoRepo.EnsureIndexes(context.Background()); err != nil {
			log.Printf("⚠️  WARNING: failed to ensure MongoDB indexes: %v", err)
		} else {
			log.Println("✅ MongoDB indexes ensured")
		}
		repo = mongoRepo
	}

	// Redis backs sessions, rate limiting and the plan cache. Without it,
	// in-process sessions keep the API usable for local development.
	var sessions services.SessionStore
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Printf("⚠️  WARNING: Redis unavailable (%v); using in-memory sessions", err)
		sessions = services.NewMemorySessions()
	} else {
		defer database.DisconnectRedis()
		sessions = services.NewRedisSessions(database.RedisClient)
	}

	// Gemini client for plans, meal scanning, style advice and coach chat
	if cfg.GeminiAPIKey != "" {
		client, err := ai.New(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("Warning: Failed to initialize Gemini client: %v", err)
			log.Println("AI features will not be available")
		} else {
			handlers.AI = client
			log.Println("✅ Gemini client initialized")
		}
	} else {
		log.Println("Warning: GEMINI_API_KEY not set. AI features will not be available")
	}

	// Cloudinary for profile picture uploads
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		uploads, err := services.NewCloudinaryService(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("File uploads will not be available")
		} else {
			handlers.Uploads = uploads
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. File uploads will not be available")
	}

	handlers.Repo = repo
	handlers.Sessions = sessions
	handlers.AuthService = services.NewAuth(repo, sessions)
	handlers.PlanCache = services.NewPlanCache(database.RedisClient)

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit)

	// Health check (no auth)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r)

	log.Printf("🚀 Aura backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
