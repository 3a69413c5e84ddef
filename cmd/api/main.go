package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/sajid-dev/doctors-portal-api/internal/auth"
	"github.com/sajid-dev/doctors-portal-api/internal/config"
	"github.com/sajid-dev/doctors-portal-api/internal/handlers"
	"github.com/sajid-dev/doctors-portal-api/internal/logging"
	"github.com/sajid-dev/doctors-portal-api/internal/middleware"
	"github.com/sajid-dev/doctors-portal-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	st := store.NewMongo(client.Database(cfg.MongoDatabase))
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	h := handlers.NewHandler(st, tokens, logger)

	// --- Gin Router ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireAdmin(st.Users)

	// --- Routes ---
	r.GET("/", h.Health)

	r.GET("/services", h.GetServices)
	r.GET("/appointmentSpecialty", h.GetAppointmentSpecialties)

	r.GET("/bookings", requireAuth, h.GetBookings)
	r.POST("/bookings", h.CreateBooking)
	r.GET("/bookings/:id", h.GetBooking)
	r.DELETE("/bookings/:id", requireAuth, h.DeleteBooking)

	r.GET("/jwt", h.IssueToken)

	r.GET("/users", h.GetUsers)
	r.GET("/users/admin/:email", h.GetIsAdmin)
	r.POST("/users", h.CreateUser)
	r.PUT("/users/admin/:id", requireAuth, h.PromoteUser)
	r.DELETE("/users/:id", h.DeleteUser)

	doctors := r.Group("/doctors")
	doctors.Use(requireAuth, requireAdmin)
	{
		doctors.GET("", h.GetDoctors)
		doctors.POST("", h.CreateDoctor)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}

	logger.Info("Starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
