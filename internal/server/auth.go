package server

import (
	"context"
	"fmt"
	"net/http"

	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/service/auth"
	"realty_analyzer/pkg/contextx"
	"realty_analyzer/pkg/httpx/reply"
	"realty_analyzer/pkg/httpx/req"
	"realty_analyzer/pkg/rest"
)

type authService interface {
	Register(ctx context.Context, in auth.RegisterInput) (entity.User, string, error)
	Login(ctx context.Context, email, password string) (entity.User, string, error)
	Me(ctx context.Context, id contextx.UserID) (entity.User, error)
	VerifyToken(ctx context.Context, token string) (contextx.UserID, error)
}

type AuthServer struct {
	authService authService
}

func NewAuthServer(authService authService) AuthServer {
	return AuthServer{
		authService: authService,
	}
}

// VerifyToken используется middlewarex.Auth.
func (s AuthServer) VerifyToken(ctx context.Context, token string) (contextx.UserID, error) {
	userID, err := s.authService.VerifyToken(ctx, token)
	if err != nil {
		return 0, toFailure(err)
	}

	return userID, nil
}

func (s AuthServer) postRegister(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.RegisterRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	user, token, err := s.authService.Register(ctx, auth.RegisterInput{
		Email:    request.Email,
		Password: request.Password,
		Name:     request.Name,
	})
	if err != nil {
		return fmt.Errorf("authService.Register: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, rest.AuthResponse{
		Success: true,
		Token:   token,
		User:    newRESTUser(user),
	})

	return nil
}

func (s AuthServer) postLogin(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.LoginRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	user, token, err := s.authService.Login(ctx, request.Email, request.Password)
	if err != nil {
		return fmt.Errorf("authService.Login: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.AuthResponse{
		Success: true,
		Token:   token,
		User:    newRESTUser(user),
	})

	return nil
}

func (s AuthServer) getMe(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	user, err := s.authService.Me(ctx, userID)
	if err != nil {
		return fmt.Errorf("authService.Me: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.UserResponse{
		Success: true,
		User:    newRESTUser(user),
	})

	return nil
}
