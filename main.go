package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"api/database"
	"api/email"
	"api/entities/admin"
	"api/entities/health"
	"api/entities/leads"
	"api/middlewares"
	"api/schemas"
	"api/utils"
)

const staticDir = "web/static"

func main() {
	utils.InitLogger("api")

	cfg, err := utils.LoadConfig()
	if err != nil {
		utils.Logger.WithError(err).Fatal("Invalid configuration")
	}

	if cfg.Env == utils.ENV_RELEASE {
		utils.Logger.Warn("Running in PRODUCTION environment")
	} else {
		utils.Logger.Infof("Environment: %s", cfg.Env)
	}

	store, err := database.ConnectMongo(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Could not connect to MongoDB")
	}

	rdb := database.ConnectRedis(cfg)
	mailer := email.NewMailer(cfg)
	feed := leads.NewFeed()

	leadsHandler := leads.NewHandler(store, mailer, feed)
	adminHandler := admin.NewHandler(store, cfg)
	healthHandler := health.NewHandler(store)

	auth := middlewares.Auth(cfg.JWTSecret)
	adminRole := middlewares.Authorize(schemas.RoleAdmin)

	protected := func(h http.HandlerFunc) http.Handler { return auth(h) }
	adminOnly := func(h http.HandlerFunc) http.Handler { return auth(adminRole(h)) }

	api := http.NewServeMux()

	api.HandleFunc("POST /api/leads", leadsHandler.CreateOne)
	api.Handle("GET /api/leads", protected(leadsHandler.GetAll))
	api.Handle("GET /api/leads/ws", protected(feed.Serve))
	api.Handle("GET /api/leads/stats/summary", protected(leadsHandler.Stats))
	api.Handle("GET /api/leads/{id}", protected(leadsHandler.GetOne))
	api.Handle("PATCH /api/leads/{id}/status", protected(leadsHandler.UpdateStatus))
	api.Handle("POST /api/leads/{id}/notes", protected(leadsHandler.AddNote))

	api.HandleFunc("POST /api/admin/login", adminHandler.Login)
	api.Handle("GET /api/admin/me", protected(adminHandler.Me))
	api.Handle("POST /api/admin/create", adminOnly(adminHandler.CreateOne))
	api.Handle("GET /api/admin/users", adminOnly(adminHandler.GetAll))
	api.Handle("POST /api/admin/change-password", protected(adminHandler.ChangePassword))
	api.Handle("PATCH /api/admin/{id}", protected(adminHandler.UpdateOne))

	api.HandleFunc("GET /api/health", healthHandler.GetHealth)

	api.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		utils.SendResponse(w, http.StatusNotFound, "API endpoint not found", nil)
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", middlewares.RateLimit(rdb, cfg.RateLimitMax, cfg.RateLimitWindow)(api))
	mux.HandleFunc("/", serveStatic)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middlewares.Cors(cfg)(mux),
	}

	go func() {
		utils.Logger.Infof("Server running on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.WithError(err).Fatal("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	utils.Logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		utils.Logger.WithError(err).Warn("Graceful shutdown failed")
	}
	if err := store.Close(ctx); err != nil {
		utils.Logger.WithError(err).Warn("MongoDB disconnect failed")
	}
}

// serveStatic serves the public site with an SPA-style fallback: any path
// without a matching file gets index.html.
func serveStatic(w http.ResponseWriter, r *http.Request) {
	// Clean rooted at "/" neutralizes traversal before the join.
	path := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
}
