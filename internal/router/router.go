package router

import (
	"net/http"
	"time"

	"github.com/DanRulev/kotoba.git/internal/config"
	"github.com/DanRulev/kotoba.git/internal/handler"
	"github.com/DanRulev/kotoba.git/internal/response"
	"github.com/DanRulev/kotoba.git/internal/storage/cache"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups the handler instances the routes dispatch to.
type Handlers struct {
	Session   *handler.SessionHandler
	Flashcard *handler.FlashcardHandler
	Quiz      *handler.QuizHandler
	Deck      *handler.DeckHandler
}

func NewHandlers(service handler.ServiceI, log *zap.Logger) *Handlers {
	return &Handlers{
		Session:   handler.NewSessionHandler(log),
		Flashcard: handler.NewFlashcardHandler(),
		Quiz:      handler.NewQuizHandler(),
		Deck:      handler.NewDeckHandler(service),
	}
}

// SetupRouter wires middleware and routes. Every /api/v1 route runs inside
// the caller's study session.
func SetupRouter(
	cfg config.HTTPConfig,
	sessionCfg config.SessionConfig,
	sessions *cache.Cache,
	service handler.ServiceI,
	handlers *Handlers,
	log *zap.Logger,
) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(requestLogger(log))

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok", "sessions": sessions.Len()})
	})

	router.GET("/api/v1/deck", handlers.Deck.GetDeck)

	api := router.Group("/api/v1")
	api.Use(handler.SessionMiddleware(sessions, service, sessionCfg.TTL, log))
	{
		api.GET("/session", handlers.Session.GetSession)
		api.PUT("/session/mode", handlers.Session.SetMode)
		api.POST("/session/remount", handlers.Session.Remount)

		cards := api.Group("/flashcards")
		cards.GET("", handlers.Flashcard.GetFlashcards)
		cards.POST("/next", handlers.Flashcard.Next)
		cards.POST("/prev", handlers.Flashcard.Prev)
		cards.POST("/reset", handlers.Flashcard.Reset)
		cards.POST("/flip", handlers.Flashcard.Flip)
		cards.POST("/shuffle", handlers.Flashcard.Shuffle)
		cards.POST("/reshuffle", handlers.Flashcard.Reshuffle)

		quiz := api.Group("/quiz")
		quiz.GET("", handlers.Quiz.GetQuiz)
		quiz.POST("/choose", handlers.Quiz.Choose)
		quiz.POST("/retry", handlers.Quiz.Retry)
		quiz.POST("/next", handlers.Quiz.Next)
		quiz.POST("/reset", handlers.Quiz.Reset)
		quiz.POST("/review", handlers.Quiz.Review)
		quiz.POST("/exit-review", handlers.Quiz.ExitReview)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	return router
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", response.RequestID(c)),
		)
	}
}
