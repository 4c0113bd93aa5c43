package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"github.com/oumar782/Oumarbackend/config"
	"github.com/oumar782/Oumarbackend/database"
	"github.com/oumar782/Oumarbackend/handlers"
	"github.com/oumar782/Oumarbackend/logger"
	"github.com/oumar782/Oumarbackend/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	l, err := logger.New(cfg.LogFile)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer l.Sync()

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		l.Fatal("connecting to database", zap.Error(err))
	}
	defer database.Close(db, l)

	if cfg.DBMigrate {
		if err := database.CreateTables(db); err != nil {
			l.Fatal("creating tables", zap.Error(err))
		}
	}

	router := gin.New()
	router.Use(gin.Recovery(), logger.RequestLogger(l), corsMiddleware(cfg.CORSOrigins))
	ginprometheus.NewPrometheus("gin").Use(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "ok"})
	})

	contactHandler := handlers.NewContactHandler(store.NewContactStore(db), l)
	projectHandler := handlers.NewProjectHandler(store.NewProjectStore(db), l)

	contactRoutes := router.Group("/api/contacts")
	{
		contactHandler.Register(contactRoutes)
	}

	projectRoutes := router.Group("/api/projects")
	{
		projectHandler.Register(projectRoutes)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		l.Info("server listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal("starting server", zap.Error(err))
		}
	}()

	<-quit
	l.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		l.Fatal("shutting down server", zap.Error(err))
	}

	l.Info("server stopped")
}

// corsMiddleware echoes the request origin when it is on the configured
// list. An empty list allows any origin. Trailing slashes on configured
// origins are ignored.
func corsMiddleware(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[strings.TrimSuffix(strings.TrimSpace(o), "/")] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (len(allowed) == 0 || allowed[strings.TrimSuffix(origin, "/")]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
