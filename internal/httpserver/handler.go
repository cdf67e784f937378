package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "weather-chatbot/internal/chat/delivery/http"
	"weather-chatbot/internal/middleware"
	"weather-chatbot/internal/model"

	_ "weather-chatbot/docs"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	if srv.staticDir != "" {
		srv.gin.StaticFile("/", srv.staticDir+"/index.html")
		srv.gin.Static("/static", srv.staticDir)
	}
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	srv.setupChatDomain(ctx, api)

	// Classifier test endpoint stays off production deployments.
	if srv.testHandler != nil && srv.environment != string(model.EnvironmentProduction) {
		api.POST("/test/classify", srv.testHandler.HandleClassify)
		srv.l.Infof(ctx, "Test classify route registered at POST /api/v1/test/classify")
	}

	return nil
}

func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Chat domain registered")
}
