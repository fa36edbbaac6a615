package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"realty_analyzer/internal/domain"
	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/pkg/contextx"
	"realty_analyzer/pkg/errcodes"
	"realty_analyzer/pkg/logx"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

type UserRepository interface {
	Create(ctx context.Context, user entity.User) (entity.User, error)
	GetByEmail(ctx context.Context, email value.Email) (entity.User, error)
	GetByID(ctx context.Context, id int64) (entity.User, error)
}

type Options struct {
	Secret     string
	TTL        time.Duration
	Issuer     string
	BcryptCost int
}

type Service struct {
	users      UserRepository
	secret     []byte
	ttl        time.Duration
	issuer     string
	bcryptCost int
	now        func() time.Time
}

func NewService(users UserRepository, opts Options) *Service {
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &Service{
		users:      users,
		secret:     []byte(opts.Secret),
		ttl:        opts.TTL,
		issuer:     opts.Issuer,
		bcryptCost: cost,
		now:        time.Now,
	}
}

// WithClock подменяет источник времени (для тестов).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Register creates an account and returns it with a fresh access token.
func (s *Service) Register(ctx context.Context, in RegisterInput) (entity.User, string, error) {
	if err := validatePassword(in.Password); err != nil {
		return entity.User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return entity.User{}, "", fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	user, err := s.users.Create(ctx, entity.User{
		Email:        value.NewEmail(in.Email),
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return entity.User{}, "", fmt.Errorf("users.Create: %w", err)
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return entity.User{}, "", fmt.Errorf("s.IssueToken: %w", err)
	}

	logger(ctx).Info("user registered", slog.Int64(logx.FieldUserID, user.ID))

	return user, token, nil
}

// Login checks the credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (entity.User, string, error) {
	user, err := s.users.GetByEmail(ctx, value.NewEmail(email))
	if err != nil {
		if code, ok := domain.GetCode(err); ok && code == errcodes.UserNotFound {
			return entity.User{}, "", credentialsMismatch()
		}

		return entity.User{}, "", fmt.Errorf("users.GetByEmail: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger(ctx).Warn("password mismatch", slog.Int64(logx.FieldUserID, user.ID))

		return entity.User{}, "", credentialsMismatch()
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return entity.User{}, "", fmt.Errorf("s.IssueToken: %w", err)
	}

	return user, token, nil
}

func (s *Service) Me(ctx context.Context, id contextx.UserID) (entity.User, error) {
	user, err := s.users.GetByID(ctx, id.Int64())
	if err != nil {
		return entity.User{}, fmt.Errorf("users.GetByID: %w", err)
	}

	return user, nil
}

func (s *Service) IssueToken(user entity.User) (string, error) {
	now := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   contextx.UserID(user.ID).String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}

	return signed, nil
}

// VerifyToken resolves a bearer token to the user it was issued for.
func (s *Service) VerifyToken(_ context.Context, token string) (contextx.UserID, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domain.WrapError(err, errcodes.AccessTokenExpired, "access token expired")
		}

		return 0, domain.WrapError(err, errcodes.AccessTokenInvalid, "access token invalid")
	}

	userID, err := contextx.ParseUserID(claims.Subject)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.AccessTokenInvalid, "access token subject invalid")
	}

	return userID, nil
}

func validatePassword(password string) error {
	switch {
	case len([]rune(password)) < minPasswordLength:
		return domain.NewFieldError(
			errcodes.InvalidPasswordFormat,
			"password",
			fmt.Sprintf("must be at least %d characters", minPasswordLength),
		)
	case len(password) > maxPasswordBytes:
		return domain.NewFieldError(
			errcodes.InvalidPasswordFormat,
			"password",
			fmt.Sprintf("must be at most %d bytes", maxPasswordBytes),
		)
	}

	return nil
}

func credentialsMismatch() error {
	return domain.NewError(errcodes.CredentialsMismatch, "invalid email or password")
}
