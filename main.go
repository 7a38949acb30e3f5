package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	api "posts-backend/cmd/api"
	"posts-backend/internal/auth/credential"
	authdomain "posts-backend/internal/auth/domain"
	authRepo "posts-backend/internal/auth/repository"
	authUsecase "posts-backend/internal/auth/usecase"
	postdomain "posts-backend/internal/post/domain"
	postRepo "posts-backend/internal/post/repository"
	postUsecase "posts-backend/internal/post/usecase"
	userUsecase "posts-backend/internal/user/usecase"
	"posts-backend/pkg/config"
	"posts-backend/pkg/database"
	"posts-backend/pkg/logger"
)

const usage = "usage: posts-backend [run|init_db]"

func main() {
	command := "run"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	if command != "run" && command != "init_db" {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}
	logger.Init(cfg.ProjectName, cfg.LogLevel, cfg.Debug)

	// Initialize database
	db, err := database.NewConnection(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	models := []interface{}{&authdomain.User{}, &postdomain.Post{}}

	if command == "init_db" {
		if err := database.Reset(db, models...); err != nil {
			logger.Fatal().Err(err).Msg("Failed to initialise database")
		}
		logger.Info().Msg("Database initialised")
		return
	}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, models...); err != nil {
			logger.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	postRepository := postRepo.NewPostRepository(db)

	hasher := credential.NewHasher(cfg.BcryptCost)
	tokens := credential.NewTokenManager(cfg.JWT.SecretKey, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, hasher, tokens)
	postUsecaseInstance := postUsecase.NewPostUsecase(postRepository)
	userUsecaseInstance := userUsecase.NewUserUsecase(userRepository, postRepository)

	handler := api.NewHandler(authUsecaseInstance, postUsecaseInstance, userUsecaseInstance, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := handler.Start(ctx, ":"+cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
	logger.Info().Msg("Server stopped")
}
