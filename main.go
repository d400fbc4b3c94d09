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

	"devhub/config"
	"devhub/db"
	"devhub/events"
	"devhub/globals"
	"devhub/membership"
	"devhub/metrics"
	"devhub/projects"
	"devhub/ratelim"
	"devhub/rdx"
	"devhub/routes"
	"devhub/store"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware tags each request with an ID and logs method, path,
// remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)
		r = r.WithContext(context.WithValue(r.Context(), globals.RequestIDKey, reqID))
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s from %s – %v", reqID, r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// dataProvider builds the collection provider selected by cfg, wrapping it
// in the Redis cache when REDIS_URL is set. The returned func releases any
// connections.
func dataProvider(ctx context.Context, cfg *config.Config, rdb *redis.Client) (store.Provider, func(), error) {
	var (
		provider store.Provider
		closeFn  = func() {}
	)
	switch cfg.DataSource {
	case config.SourceYAML:
		f, err := store.LoadYAMLFile(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		provider = f
	case config.SourceMongo:
		m, err := db.Connect(ctx, cfg.MongoURI, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		seed := store.Seed{}
		evs, _ := seed.FetchEvents(ctx)
		prs, _ := seed.FetchProjects(ctx)
		if err := m.SeedIfEmpty(ctx, evs, prs); err != nil {
			log.Printf("Seeding MongoDB failed: %v", err)
		}
		provider = m
		closeFn = func() {
			if err := m.Close(context.Background()); err != nil {
				log.Printf("MongoDB disconnect error: %v", err)
			}
		}
	default:
		provider = store.Seed{}
	}

	if rdb != nil {
		provider = rdx.NewCache(rdb, provider, cfg.CacheTTL)
	}
	return provider, closeFn, nil
}

func setupRouter(h routes.Handlers, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	routes.RoutesWrapper(router, h, rateLimiter)
	return router
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	globals.JwtSecret = cfg.JWTSecret

	ctx := context.Background()

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisURL,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer rdb.Close()
	}

	provider, closeProvider, err := dataProvider(ctx, cfg, rdb)
	if err != nil {
		return fmt.Errorf("data provider: %w", err)
	}
	defer closeProvider()

	var joined membership.Source = membership.DefaultPlaceholder()
	if cfg.JoinedSource == config.JoinedRedis {
		joined = membership.RedisSource{Client: rdb}
	}

	m := metrics.New()
	rateLimiter := ratelim.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	stop := make(chan struct{})
	go rateLimiter.Run(stop)
	defer close(stop)

	router := setupRouter(routes.Handlers{
		Events:   &events.Handler{Events: provider, Joined: joined, Loc: cfg.DisplayTZ, Metrics: m},
		Projects: &projects.Handler{Projects: provider, Loc: cfg.DisplayTZ, Metrics: m},
		Metrics:  m,
	}, rateLimiter)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server listening on %s (data source: %s)", cfg.Port, cfg.DataSource)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-sigCh:
	}

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Println("✅ Server stopped cleanly")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
