package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"joblane-backend/internal/config"
	"joblane-backend/internal/database"
	"joblane-backend/internal/handlers"
	"joblane-backend/internal/logger"
	"joblane-backend/internal/middleware"
	"joblane-backend/internal/services"
	"joblane-backend/internal/store"
	"joblane-backend/internal/token"
)

func main() {
	log := logger.New(slog.LevelInfo)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "error", err)
	}

	db, err := database.Init(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("failed to connect to mongodb", "error", err)
	}
	defer db.Close()
	log.Info("connected to mongodb", "database", cfg.DBName)

	tokens := token.NewManager(cfg.JWTSecret)
	authMiddleware := middleware.NewAuth(tokens)

	authHandler := handlers.NewAuthHandler(services.NewAuthService(store.NewUsers(db), tokens))
	jobsHandler := handlers.NewJobsHandler(services.NewJobService(store.NewJobs(db)))
	internshipsHandler := handlers.NewInternshipsHandler(services.NewInternshipService(store.NewInternships(db)))
	contactHandler := handlers.NewContactHandler(services.NewContactService(store.NewContacts(db)))

	router := http.NewServeMux()

	router.HandleFunc("POST /users/register", authHandler.Register)
	router.HandleFunc("POST /users/login", authHandler.Login)
	router.Handle("GET /users/protected", authMiddleware.RequireAuth(http.HandlerFunc(authHandler.Protected)))
	router.Handle("GET /users/admin-dashboard", authMiddleware.RequireAdmin(http.HandlerFunc(authHandler.AdminDashboard)))

	router.HandleFunc("GET /jobs", jobsHandler.List)
	router.HandleFunc("GET /jobs/{id}", jobsHandler.Get)
	router.HandleFunc("POST /jobs", jobsHandler.Create)
	router.HandleFunc("PATCH /jobs/{id}", jobsHandler.Update)
	router.HandleFunc("DELETE /jobs/{id}", jobsHandler.Delete)

	router.HandleFunc("GET /internships", internshipsHandler.List)
	router.HandleFunc("GET /internships/{name}", internshipsHandler.Search)
	router.HandleFunc("POST /internships", internshipsHandler.Create)
	router.HandleFunc("PATCH /internships/{id}", internshipsHandler.Update)
	router.HandleFunc("DELETE /internships/{id}", internshipsHandler.Delete)

	router.HandleFunc("POST /contactus", contactHandler.Create)
	router.HandleFunc("GET /contactus", contactHandler.List)

	handler := middleware.Logging(log)(corsMiddleware(router))

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	log.Info("server starting", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
