package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Luisfch1/CONTROL/internal/api"
	"github.com/Luisfch1/CONTROL/internal/config"
	"github.com/Luisfch1/CONTROL/internal/store"
)

// Server is the HTTP server wiring the API onto the store.
type Server struct {
	router *gin.Engine
	store  *store.Store
	api    *api.Handler
}

// NewServer builds the server from the loaded configuration.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "control.db")

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	s := &Server{
		router: gin.Default(),
		store:  st,
		api:    api.NewHandler(st),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// CORS: the UI runs from a local origin of its own.
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	group := s.router.Group("/api")
	{
		s.api.RegisterRoutes(group)
	}
}

// Run starts serving on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the store.
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore exposes the store for tests.
func (s *Server) GetStore() *store.Store {
	return s.store
}
