package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	authUsecase "posts-backend/internal/auth/usecase"
	postUsecase "posts-backend/internal/post/usecase"
	userUsecase "posts-backend/internal/user/usecase"
	"posts-backend/pkg/config"
	"posts-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	postUsecase postUsecase.PostUsecase
	userUsecase userUsecase.UserUsecase
	config      *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, postUc postUsecase.PostUsecase, userUc userUsecase.UserUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase: authUc,
		postUsecase: postUc,
		userUsecase: userUc,
		config:      cfg,
	}
}

// Start serves on addr until ctx is cancelled, then drains in-flight requests.
func (h *Handler) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
