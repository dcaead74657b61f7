package httpserver

import (
	"github.com/gin-gonic/gin"

	"taskhub/internal/middleware"
	taskHTTP "taskhub/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	mw := middleware.New(srv.l)
	srv.gin.Use(mw.RequestLogger())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

func (srv *HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")

	taskHTTP.RegisterRoutes(api.Group("/tasks"), srv.taskHandler)

	api.POST("/page/state", srv.updatePageState)

	settings := api.Group("/settings")
	{
		settings.GET("", srv.getSettings)
		settings.PUT("", srv.saveSettings)
	}

	auth := api.Group("/auth")
	{
		auth.GET("/status", srv.authStatus)
		auth.GET("/url", srv.authURL)
		auth.GET("/callback", srv.authCallback)
		auth.POST("/revoke", srv.authRevoke)
	}
}
