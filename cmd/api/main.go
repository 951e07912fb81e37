package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"festivalapi/internal/config"
	"festivalapi/internal/database"
	"festivalapi/internal/middleware"
	"festivalapi/internal/modules/auth"
	"festivalapi/internal/modules/comment"
	"festivalapi/internal/modules/festival"
	"festivalapi/internal/modules/rating"
	jwtsvc "festivalapi/internal/pkg/jwt"
	"festivalapi/internal/repository"
)

func main() {
	_ = godotenv.Load()

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
	sessionRepo := repository.NewSessionRepository(db)
	festivalRepo := repository.NewFestivalRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, sessionRepo, j, cfg.SessionTTL)
	authHandler := auth.NewHandler(authService)

	festivalService := festival.NewService(festivalRepo, ratingRepo, commentRepo)
	festivalHandler := festival.NewHandler(festivalService)

	commentService := comment.NewService(commentRepo, festivalRepo)
	commentHandler := comment.NewHandler(commentService)

	ratingService := rating.NewService(ratingRepo, festivalRepo)
	ratingHandler := rating.NewHandler(ratingService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	api := r.Group("/api")
	{
		anonymous := api.Group("")
		anonymous.Use(middleware.AnonymousOnly(j, sessionRepo))

		sessionBound := api.Group("")
		sessionBound.Use(middleware.AuthenticatedOnly(j, sessionRepo))

		authed := api.Group("")
		authed.Use(middleware.JWTAuth(j, sessionRepo))

		staff := authed.Group("")
		staff.Use(middleware.StaffOnly())

		authHandler.RegisterRoutes(anonymous, sessionBound)
		festivalHandler.RegisterRoutes(authed, staff)
		commentHandler.RegisterRoutes(authed)
		ratingHandler.RegisterRoutes(authed)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
