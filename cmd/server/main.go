package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/paceup/paceup/backend-go/internal/article"
	"github.com/paceup/paceup/backend-go/internal/asset"
	"github.com/paceup/paceup/backend-go/internal/auth"
	"github.com/paceup/paceup/backend-go/internal/config"
	"github.com/paceup/paceup/backend-go/internal/db"
	"github.com/paceup/paceup/backend-go/internal/element"
	mw "github.com/paceup/paceup/backend-go/internal/middleware"
	"github.com/paceup/paceup/backend-go/internal/session"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := db.NewStore(pool)

	authService := auth.NewService(store, cfg.JWTSecret)
	authHandler := auth.NewHandler(authService)

	articleService := article.NewService(store)
	articleHandler := article.NewHandler(articleService)

	// Layout loader/saver for the session hub
	layoutLoader := func(articleID string) ([]element.Element, error) {
		// Background context: this runs in the hub goroutine
		return articleService.LoadLayoutElements(context.Background(), articleID)
	}
	layoutSaver := func(articleID string, elements []element.Element) error {
		data, err := json.Marshal(elements)
		if err != nil {
			return fmt.Errorf("marshal layout: %w", err)
		}
		return articleService.SaveLayoutUnchecked(context.Background(), articleID, data)
	}

	hub := session.NewHub(layoutLoader, layoutSaver)
	go hub.Run()

	assetHandler := asset.NewHandler(cfg.AssetDir)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.AllowedOrigins))

	// Auth routes (public)
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Asset endpoints (public, used by the playground and authenticated users)
	r.HandleFunc("/assets/upload", assetHandler.Upload).Methods("POST", "OPTIONS")
	r.PathPrefix("/assets/").Handler(assetHandler.Serve()).Methods("GET")

	// Protected API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authService.AuthMiddleware)

	api.HandleFunc("/articles", articleHandler.List).Methods("GET")
	api.HandleFunc("/articles", articleHandler.Create).Methods("POST")
	api.HandleFunc("/articles/{articleId}", articleHandler.Get).Methods("GET")
	api.HandleFunc("/articles/{articleId}", articleHandler.Delete).Methods("DELETE")
	api.HandleFunc("/articles/{articleId}/layout", articleHandler.GetLayout).Methods("GET")
	api.HandleFunc("/articles/{articleId}/layout", articleHandler.PutLayout).Methods("PUT")

	// WebSocket endpoint
	r.HandleFunc("/ws/articles/{articleId}", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, hub, authService, articleService)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		// Stop hub first to flush dirty layouts
		hub.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, hub *session.Hub, authSvc *auth.Service, articleSvc *article.Service) {
	vars := mux.Vars(r)
	articleID := vars["articleId"]

	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	userID, err := authSvc.ValidateToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	ok, err := articleSvc.IsOwner(r.Context(), articleID, userID)
	if err != nil || !ok {
		http.Error(w, "not the article owner", http.StatusForbidden)
		return
	}

	user, err := authSvc.GetUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "user not found", http.StatusInternalServerError)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"localhost:5173", "localhost:3000"},
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	clientID := uuid.New().String()
	client := session.NewClient(hub, conn, userID, user.DisplayName, articleID, clientID)

	hub.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}
