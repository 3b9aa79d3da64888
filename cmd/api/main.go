package main

import (
	"net/http"

	"github.com/coder/quartz"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"bingo-arena-backend/internal/config"
	"bingo-arena-backend/internal/handlers"
	"bingo-arena-backend/internal/jobs"
	"bingo-arena-backend/internal/middleware"
	"bingo-arena-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Env == "production" {
		log.SetFormatter(&log.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.LedgerTestMode {
		log.Warn("Ledger test mode enabled: admission checks are bypassed")
	}

	redisService, err := services.NewRedisService(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisService.Close()

	clock := quartz.NewReal()

	jwtService := services.NewJWTService(cfg)
	registry := services.NewConfigRegistry()
	bots := services.NewBotPlayerGenerator()
	ledger := services.NewFinancialSafetyManager(redisService, clock, log.StandardLogger(), cfg.LedgerTestMode)
	manager := services.NewGameSessionManager(registry, bots, ledger, redisService, clock, log.StandardLogger())
	analytics := services.NewRevenueAnalytics(clock)

	hub := handlers.NewWebSocketHub(log.StandardLogger())
	manager.SetBroadcaster(hub)

	authHandler := handlers.NewAuthHandler(jwtService, cfg)
	sessionHandler := handlers.NewSessionHandler(manager, registry)
	ledgerHandler := handlers.NewLedgerHandler(ledger)
	reportsHandler := handlers.NewReportsHandler(analytics, manager)
	wsHandler := handlers.NewWebSocketHandler(hub)

	scheduler := jobs.NewScheduler(ledger, hub)
	scheduler.Start()
	defer scheduler.Stop()

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/auth/login", authHandler.Login)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.GET("/configs", sessionHandler.ListConfigs)
		protected.GET("/ws", wsHandler.HandleWebSocket)

		sessions := protected.Group("/sessions")
		{
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("", sessionHandler.ListSessions)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.POST("/:id/start", sessionHandler.StartSession)
			sessions.POST("/:id/finish", sessionHandler.FinishSession)
		}

		ledgerGroup := protected.Group("/ledger")
		{
			ledgerGroup.POST("/deposit", ledgerHandler.Deposit)
			ledgerGroup.POST("/withdraw", ledgerHandler.Withdraw)
			ledgerGroup.GET("/balance", ledgerHandler.GetBalance)
			ledgerGroup.GET("/transactions", ledgerHandler.GetTransactions)
			ledgerGroup.GET("/health", ledgerHandler.GetFundHealth)
		}

		reports := protected.Group("/reports")
		{
			reports.GET("/daily", reportsHandler.DailyRevenue)
			reports.GET("/players", reportsHandler.PlayerStats)
		}
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Infof("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
