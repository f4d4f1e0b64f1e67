package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/apexflow/apexflow/docs"
	v1 "github.com/apexflow/apexflow/internal/api/handler/v1"
	"github.com/apexflow/apexflow/internal/api/middleware"
	"github.com/apexflow/apexflow/internal/config"
	"github.com/apexflow/apexflow/internal/repository"
	"github.com/apexflow/apexflow/internal/repository/dao"
	"github.com/apexflow/apexflow/internal/service"
	"github.com/apexflow/apexflow/web"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	inventoryHandler := s.initInventoryHandler(db)
	s.MountHandlers(authHandler, inventoryHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initInventoryHandler(db *gorm.DB) *v1.InventoryHandler {
	inventoryDAO := dao.NewInventoryDAO(db)
	repo := repository.NewInventoryRepository(inventoryDAO)
	svc := service.NewInventoryService(repo)
	handler := v1.NewInventoryHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, inventoryHandler *v1.InventoryHandler) {
	const basePath = "/api"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	// The getter keeps the guard current across config reloads.
	authenticator := middleware.NewAuthenticator(func() string { return s.Config.API.JWTSigningKey })

	inventory := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		inventory.GET("/inventory", inventoryHandler.HandleListItems)
		inventory.POST("/inventory", inventoryHandler.HandleCreateItem)
		inventory.PATCH("/inventory/:itemID/adjust", inventoryHandler.HandleAdjustQuantity)
	}

	s.Router.GET("/health", v1.HandleHealthcheck)

	// Embedded dashboard client.
	staticFS := web.Static()
	s.Router.StaticFS("/static", staticFS)
	s.Router.GET("/", func(ctx *gin.Context) {
		ctx.FileFromFS("/", staticFS)
	})

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "ApexFlow API"
	docs.SwaggerInfo.Description = "Inventory management API with JWT authentication."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
