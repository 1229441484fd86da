package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/exploro/maprando/pkg/logging"
)

// responseWriter wraps http.ResponseWriter to capture the status code for
// the access-logging middleware.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func main() {
	envFiles := []string{".env", ".env.local", "../.env"}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err == nil {
			break
		}
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logging.InitGlobalLogger(logging.Config{Level: level})

	gameDataPath := os.Getenv("GAMEDATA_PATH")
	mapPath := os.Getenv("MAP_PATH")
	if gameDataPath == "" || mapPath == "" {
		logging.Error("GAMEDATA_PATH and MAP_PATH environment variables are required")
		os.Exit(1)
	}

	svc, err := newService(gameDataPath, mapPath)
	if err != nil {
		logging.Error("failed to initialize randomizer service", "error", err.Error())
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/healthz", svc.handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/v1/randomize", svc.handleRandomize).Methods(http.MethodPost)

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logging.Info("randoserver listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("server failed to start", "error", err.Error())
			os.Exit(1)
		}
	}()

	<-quit
	logging.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error("forced shutdown", "error", err.Error())
		os.Exit(1)
	}
	logging.Info("server stopped")
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, req)
		logging.Info("request completed",
			"method", req.Method,
			"path", req.URL.Path,
			"status", wrapped.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
