package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"userhub/internal/config"
	"userhub/internal/database"
	"userhub/internal/middleware"
	"userhub/internal/modules/auth"
	"userhub/internal/modules/users"
	jwtsvc "userhub/internal/pkg/jwt"
	"userhub/internal/pkg/password"
	"userhub/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	refreshRepo := repository.NewRefreshTokenRepository(db)

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	hasher := password.NewHasher(cfg.BcryptCost)

	authService := auth.NewService(userRepo, refreshRepo, jwtService, hasher)
	authHandler := auth.NewHandler(authService)

	userService := users.NewService(userRepo, hasher)
	userHandler := users.NewHandler(userService)

	apiLimiter := middleware.NewClientLimiter(100, 15*time.Minute,
		"Too many requests from this IP, please try again after 15 minutes")
	authLimiter := middleware.NewClientLimiter(5, time.Hour,
		"Too many login attempts from this IP, please try again after an hour")

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")
	api.Use(apiLimiter.Middleware())
	{
		// auth endpoints carry the stricter limiter on top of the general one
		authArea := api.Group("")
		authArea.Use(authLimiter.Middleware())
		authHandler.RegisterRoutes(authArea)

		userHandler.RegisterPublicRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(jwtService, userRepo))
		{
			userHandler.RegisterProtectedRoutes(protected)
		}
	}

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
