package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/huxiang/config"
	"github.com/cppla/huxiang/controllers"
	"github.com/cppla/huxiang/middleware"
	"github.com/cppla/huxiang/services"
	"github.com/cppla/huxiang/utils"
)

// Deps groups what the router needs besides the database.
type Deps struct {
	JWT       *utils.JWTManager
	Blacklist *utils.TokenBlacklist
}

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB, cfg config.AppConfig, deps Deps) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(utils.Metrics())
	// Access log goes to its own rolling file; without a path it shares the app logger
	gl := utils.Logger
	if cfg.GinPath != "" {
		if l, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress); err == nil {
			gl = l
		} else {
			utils.Sugar.Warnf("gin log file unavailable, using app logger: %v", err)
		}
	}
	r.Use(utils.Ginzap(gl, time.RFC3339, true))
	r.Use(utils.RecoveryWithZap(gl, false))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	r.GET("/metrics", utils.MetricsHandler())

	auth := middleware.NewAuthenticator(deps.JWT, deps.Blacklist)
	users := services.NewUserService(db)

	authController := controllers.NewAuthController(users, deps.JWT, deps.Blacklist)
	resourceController := controllers.NewResourceController(db, services.NewResourceService(db))
	communityController := controllers.NewCommunityController(services.NewCommunityService(db))

	api := r.Group("/api")
	api.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/profile", auth.Required(), authController.Profile)
	authGroup.PUT("/profile", auth.Required(), authController.UpdateProfile)
	authGroup.POST("/logout", auth.Required(), authController.Logout)

	resources := api.Group("/resources")
	resources.GET("", resourceController.ListResources)
	resources.GET("/:id", auth.Optional(), resourceController.GetResource)
	resources.POST("", auth.Required(), middleware.AdminRequired(db), resourceController.CreateResource)
	resources.PUT("/:id", auth.Required(), middleware.AdminRequired(db), resourceController.UpdateResource)
	resources.POST("/:id/like", auth.Required(), resourceController.LikeResource)

	posts := api.Group("/community/posts")
	posts.GET("", communityController.ListPosts)
	posts.GET("/:id", auth.Optional(), communityController.GetPost)
	posts.POST("", auth.Required(), communityController.CreatePost)
	posts.POST("/:id/like", auth.Required(), communityController.LikePost)
	posts.POST("/:id/comments", auth.Required(), communityController.CreateComment)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
			return
		}
		utils.Error(ctx, http.StatusNotFound, 40400, "not found")
	})

	return r
}
