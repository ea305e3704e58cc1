package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"courseadmin/internal/middleware"
)

type Handlers struct {
	Auth     *AuthHandler
	Courses  *CourseHandler
	Students *StudentHandler
}

func NewRouter(h Handlers, gate gin.HandlerFunc, limiter *middleware.RateLimiter, allowedOrigins []string, logger zerolog.Logger) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		config.AllowOrigins = allowedOrigins
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowCredentials = len(allowedOrigins) > 0
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(config))

	r.Use(middleware.WithLogger(logger))
	r.Use(gate)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", limiter.Limit("login", 5, 1*time.Minute), h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/user", h.Auth.CurrentUser)
		auth.POST("/password", h.Auth.ChangePassword)
		auth.POST("/email", h.Auth.ChangeEmail)
	}

	courses := r.Group("/courses")
	{
		courses.GET("", h.Courses.List)
		courses.POST("", h.Courses.Create)
		courses.GET("/:id", h.Courses.Get)
		courses.PUT("/:id", h.Courses.Replace)
		courses.DELETE("/:id", h.Courses.Delete)
	}

	students := r.Group("/students")
	{
		students.POST("/access", h.Students.Grant)
		students.GET("/access/:courseId", h.Students.List)
		students.DELETE("/access/:courseId/:email", h.Students.Revoke)
		students.PUT("/access/:courseId/:email/update", h.Students.Update)
	}

	return r
}
