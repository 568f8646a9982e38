package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/projeto-evento/evento-api/docs"
	v1 "github.com/projeto-evento/evento-api/internal/api/handler/v1"
	"github.com/projeto-evento/evento-api/internal/api/middleware"
	"github.com/projeto-evento/evento-api/internal/config"
	"github.com/projeto-evento/evento-api/internal/metrics"
	"github.com/projeto-evento/evento-api/internal/repository"
	"github.com/projeto-evento/evento-api/internal/repository/dao"
	"github.com/projeto-evento/evento-api/internal/service"
)

const loginRateLimitScope = "login"

type Server struct {
	Config  *config.AppConfig
	Router  *gin.Engine
	Metrics *metrics.Metrics

	limiter middleware.Limiter
}

type handlers struct {
	auth        *v1.AuthHandler
	participant *v1.ParticipantHandler
	gift        *v1.GiftHandler
	ledger      *v1.LedgerHandler
}

// NewServer wires every layer on top of db. limiter may be nil, which disables login rate limiting.
func NewServer(conf *config.AppConfig, db *gorm.DB, limiter middleware.Limiter) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:  conf,
		Router:  engine,
		Metrics: metrics.New(),
		limiter: limiter,
	}

	s.MountMiddlewares()
	s.MountHandlers(s.initHandlers(db))

	return s
}

func (s *Server) initHandlers(db *gorm.DB) handlers {
	policy := service.NewQueryPolicy(s.Config.Postgres)

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	participantRepo := repository.NewParticipantRepository(dao.NewParticipantDAO(db))
	giftRepo := repository.NewGiftRepository(dao.NewGiftDAO(db))
	ledgerRepo := repository.NewLedgerRepository(dao.NewLedgerDAO(db))

	return handlers{
		auth:        v1.NewAuthHandler(s.Config.API, service.NewAuthService(userRepo, policy)),
		participant: v1.NewParticipantHandler(service.NewParticipantService(participantRepo, ledgerRepo, policy)),
		gift:        v1.NewGiftHandler(service.NewGiftService(giftRepo, ledgerRepo, policy)),
		ledger:      v1.NewLedgerHandler(service.NewLedgerService(ledgerRepo, policy, s.Metrics)),
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Metrics(s.Metrics))
	s.Router.Use(middleware.Timeout(s.Config.API.RequestTimeout))
}

func (s *Server) MountHandlers(h handlers) {
	optionalAuth := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).OptionalJWT()

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.POST("/login", middleware.RateLimit(s.limiter, loginRateLimitScope), h.auth.HandleLogin)

	participants := s.Router.Group("/participantes")
	{
		participants.GET("", h.participant.HandleListParticipants)
		participants.POST("", optionalAuth, h.participant.HandleCreateParticipant)
		participants.GET("/:id", h.participant.HandleGetParticipant)
		participants.GET("/:id/historico", h.participant.HandleGetParticipantHistory)
	}

	gifts := s.Router.Group("/brindes")
	{
		gifts.GET("", h.gift.HandleListGifts)
		gifts.POST("", optionalAuth, h.gift.HandleCreateGift)
		gifts.POST("/resgatar", optionalAuth, h.ledger.HandleRedeemGift)
		gifts.GET("/:id", h.gift.HandleGetGift)
		gifts.GET("/:id/historico", h.gift.HandleGetGiftHistory)
	}

	ledger := s.Router.Group("", optionalAuth)
	{
		ledger.POST("/pontuacao", h.ledger.HandleAdjustPoints)
		ledger.POST("/resgatar", h.ledger.HandleRedeemPoints)
	}

	s.Router.GET("/metrics", gin.WrapH(s.Metrics.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "evento-api"
	docs.SwaggerInfo.Description = "Participants, loyalty points and gift redemption for events."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
