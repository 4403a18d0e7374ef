package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vietanh2810/hunt-api/docs"
	v1 "github.com/vietanh2810/hunt-api/internal/api/handler/v1"
	"github.com/vietanh2810/hunt-api/internal/api/middleware"
	"github.com/vietanh2810/hunt-api/internal/config"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, hunts v1.HuntService, participation v1.ParticipationService) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()
	s.MountHandlers(v1.NewHuntHandler(hunts), v1.NewParticipationHandler(participation))

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(huntHandler *v1.HuntHandler, participationHandler *v1.ParticipationHandler) {
	const basePath = "/api/v1"

	hunts := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		hunts.POST("/hunts", huntHandler.HandleCreateHunt)
		hunts.GET("/hunts/:huntID", huntHandler.HandleGetHunt)
		hunts.PATCH("/hunts/:huntID", huntHandler.HandleUpdateHunt)
		hunts.DELETE("/hunts/:huntID", huntHandler.HandleCancelHunt)
		hunts.GET("/hunts/:huntID/summary", huntHandler.HandleGetSummary)

		hunts.POST("/hunts/:huntID/join", participationHandler.HandleJoin)
		hunts.POST("/hunts/:huntID/leave", participationHandler.HandleLeave)
		hunts.POST("/hunts/:huntID/mark-paid", participationHandler.HandleMarkPaid)
		hunts.GET("/hunts/:huntID/access", participationHandler.HandleAccess)
		hunts.GET("/hunts/:huntID/participants", participationHandler.HandleListParticipants)
		hunts.GET("/hunts/:huntID/participants/me", participationHandler.HandleGetMyParticipation)
		hunts.POST("/hunts/:huntID/participants/:userID/approve", participationHandler.HandleApprove)
		hunts.POST("/hunts/:huntID/participants/:userID/reject", participationHandler.HandleReject)
		hunts.POST("/hunts/:huntID/participants/:userID/confirm-payment", participationHandler.HandleConfirmPayment)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Hunt API"
	docs.SwaggerInfo.Description = "Participation lifecycle of aurora hunting events."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
