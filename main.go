// main.go wiring and HTTP entrypoint
package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/patrickmn/go-cache"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

type server struct {
	cfg          Config
	db           *gorm.DB
	cache        *cache.Cache
	users        *userStore
	personalInfo *personalInfoService
	projects     *projectService
	experiences  *experienceService
}

func newServer(cfg Config, db *gorm.DB) *server {
	return &server{
		cfg:          cfg,
		db:           db,
		cache:        newCache(),
		users:        &userStore{db: db},
		personalInfo: &personalInfoService{db: db},
		projects:     &projectService{db: db},
		experiences:  &experienceService{db: db},
	}
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleWelcome)

	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)

	mux.HandleFunc("GET /api/public/personal-info", s.handleGetPersonalInfo)
	mux.HandleFunc("GET /api/public/projects", s.handleListProjects)
	mux.HandleFunc("GET /api/public/projects/featured", s.handleFeaturedProjects)
	mux.HandleFunc("GET /api/public/projects/{id}", s.handleGetProject)
	mux.HandleFunc("GET /api/public/experiences", s.handleListExperiences)
	mux.HandleFunc("GET /api/public/experiences/{id}", s.handleGetExperience)

	// Write routes require a valid admin token
	mux.HandleFunc("POST /api/admin/personal-info", s.adminOnly(s.handleSavePersonalInfo))
	mux.HandleFunc("POST /api/admin/projects", s.adminOnly(s.handleCreateProject))
	mux.HandleFunc("PUT /api/admin/projects/{id}", s.adminOnly(s.handleUpdateProject))
	mux.HandleFunc("DELETE /api/admin/projects/{id}", s.adminOnly(s.handleDeleteProject))
	mux.HandleFunc("POST /api/admin/experiences", s.adminOnly(s.handleCreateExperience))
	mux.HandleFunc("PUT /api/admin/experiences/{id}", s.adminOnly(s.handleUpdateExperience))
	mux.HandleFunc("DELETE /api/admin/experiences/{id}", s.adminOnly(s.handleDeleteExperience))

	return mux
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	cfg := loadConfig()

	db, err := openDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	srv := newServer(cfg, db)
	if err := srv.seedData(); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	// CORS: open to all origins, preflight cached for an hour
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         3600,
	})
	handler := c.Handler(srv.routes())

	log.Printf("Portfolio backend running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
