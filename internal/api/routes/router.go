package routes

import (
	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/gigboard/docs"
	"github.com/linskybing/gigboard/internal/api/handlers"
	"github.com/linskybing/gigboard/internal/api/middleware"
	"github.com/linskybing/gigboard/internal/application"
	"github.com/linskybing/gigboard/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes builds the handlers over svc and mounts every endpoint.
func RegisterRoutes(r *gin.Engine, svc *application.Services, repos *repository.Repos) *handlers.Handlers {
	h := handlers.New(svc, repos, r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", h.User.AuthStatus)

		me := auth.Group("/me")
		{
			me.GET("", h.User.GetMe)
			me.PUT("/onboarding", h.User.CompleteOnboarding)
			me.POST("/avatar", h.User.UploadAvatar)
		}

		JobRoutes(auth, h)

		auth.GET("/ws/rooms/:id", h.Message.StreamRoom)
		auth.GET("/audit/logs", h.Audit.GetAuditLogs)
	}
	return h
}
