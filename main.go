package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"credit-estimator/config"
	httpLayer "credit-estimator/http"
	"credit-estimator/repository"
	"credit-estimator/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	var cache repository.CacheRepository
	if cfg.Cache.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.Cache.RedisAddr)
		log.Printf("Using Redis cache at %s", cfg.Cache.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	estimateRepo := repository.NewEstimateRepositoryMemory()

	var advisor *service.AdvisorService
	if cfg.Advisor.Enabled {
		advisor = service.NewAdvisorService()
	}

	estimatorService := service.NewEstimatorService(estimateRepo, cache, advisor)
	estimateHandler := httpLayer.NewEstimateHandler(estimatorService)
	annualizeHandler := httpLayer.NewAnnualizeHandler()

	rateLimiter := httpLayer.NewRateLimiter(
		cfg.Limits.RateBurst,
		time.Duration(cfg.Limits.RateWindowSeconds)*time.Second,
	)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/tax-credits/estimate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(estimateHandler.Estimate),
		),
	)

	mux.Handle(
		"/income/annualize",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(annualizeHandler.Annualize),
		),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Tax credit estimator listening on http://localhost:%d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
