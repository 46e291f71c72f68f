package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wastetrack-be/config"
	"wastetrack-be/logging"
	"wastetrack-be/models"
	"wastetrack-be/routes"
	"wastetrack-be/services"
	"wastetrack-be/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	complaints, vehicles, err := openStores(ctx, cfg)
	if err != nil {
		slog.Error("failed to open stores", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}

	redisClient, err := config.ConnectRedis(ctx, cfg.RedisAddress, cfg.RedisPassword)
	if err != nil {
		slog.Error("failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	if redisClient == nil {
		slog.Warn("REDIS_ADDRESS not set, submission rate limit disabled")
	} else {
		defer redisClient.Close()
	}

	svc := services.NewComplaintService(complaints, vehicles, time.Now)
	r, err := routes.NewRouter(svc, routes.Options{
		CORSOrigins:      cfg.CORSAllowedOrigins,
		Redis:            redisClient,
		SubmitLimitQueue: cfg.SubmitLimitQueue,
		SubmitLimit:      cfg.SubmitLimit,
	})
	if err != nil {
		slog.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "backend", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

// openStores picks the repository backend. Both start from the sample data.
func openStores(ctx context.Context, cfg *config.Config) (store.ComplaintRepository, store.VehicleRepository, error) {
	switch cfg.StoreBackend {
	case config.BackendMongo:
		db, err := config.ConnectDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		complaints := store.NewMongoComplaintRepository(db)
		if err := complaints.Seed(ctx, models.SeedComplaints()); err != nil {
			return nil, nil, err
		}
		vehicles := store.NewMongoVehicleRepository(db)
		if err := vehicles.Seed(ctx, models.SeedVehicles()); err != nil {
			return nil, nil, err
		}
		return complaints, vehicles, nil
	case config.BackendMemory:
		return store.NewMemoryComplaintRepository(models.SeedComplaints()),
			store.NewMemoryVehicleRepository(models.SeedVehicles()), nil
	default:
		return nil, nil, errors.New("unknown STORE_BACKEND " + cfg.StoreBackend)
	}
}
