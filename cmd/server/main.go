package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/irku/blog-backend/internal/config"
	"github.com/irku/blog-backend/internal/domain"
	"github.com/irku/blog-backend/internal/handler"
	"github.com/irku/blog-backend/internal/repository"
	"github.com/irku/blog-backend/internal/seed"
	"github.com/irku/blog-backend/internal/service"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	conf := config.Load()

	// TranslateError turns duplicate-key violations into gorm.ErrDuplicatedKey,
	// which the repository maps to a conflict.
	db, err := gorm.Open(postgres.Open(conf.PostgreConnectionString), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect db")
	}
	if err := db.AutoMigrate(&domain.Blog{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate db")
	}

	repo := repository.NewBlogRepository(db)
	if conf.SeedData {
		if err := seed.Run(repo); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	blogHandler := handler.NewBlogHandler(service.NewBlogService(repo))
	contactHandler := handler.NewContactHandler(service.NewEmailService(
		conf.SMTPHost,
		conf.SMTPPort,
		conf.SMTPUsername,
		conf.SMTPPassword,
		conf.ContactFrom,
		conf.ContactTo,
		conf.AppName,
	))

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(conf.AllowedOrigins) == 1 && conf.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = conf.AllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	blogHandler.Register(r)
	contactHandler.Register(r)

	log.Info().Str("port", conf.ServerPort).Msg("blog backend listening")
	if err := r.Run(":" + conf.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}
