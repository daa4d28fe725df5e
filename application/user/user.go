package user

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hoangtm/restaurant-ordering/cmd/config"
	"github.com/hoangtm/restaurant-ordering/constant"
	"github.com/hoangtm/restaurant-ordering/model"
	sessionrepo "github.com/hoangtm/restaurant-ordering/repository/session"
	userrepo "github.com/hoangtm/restaurant-ordering/repository/user"
	"github.com/hoangtm/restaurant-ordering/utils/errors"
	"github.com/hoangtm/restaurant-ordering/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserApp backs the web channel's session identity. Registration and profile
// management live in the admin backend, not here.
type UserApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}

type UserAppImpl struct {
	config      *config.Config
	userRepo    userrepo.UserRepository
	sessionRepo sessionrepo.SessionRepository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, sessionRepo sessionrepo.SessionRepository) UserApp {
	return &UserAppImpl{
		config:      config,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	// Find user by email or phone
	filter := &model.UserFilter{}
	if isEmail(req.Identifier) {
		filter.Email = req.Identifier
	} else {
		filter.Phone = req.Identifier
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.sessionRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}

// ValidateToken verifies the JWT and the redis session behind its jti, and
// returns the session's user id.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}

	userID := claims.Subject
	if userID == "" {
		return "", fmt.Errorf("token missing subject")
	}

	jti := claims.ID
	if jti == "" {
		return "", fmt.Errorf("token missing jti")
	}

	sessionUserID, err := s.sessionRepo.GetSession(ctx, jti)
	if err != nil || sessionUserID == "" {
		return "", fmt.Errorf("invalid or expired session")
	}
	if sessionUserID != userID {
		return "", fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) generateJWT(userID string) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.SessionExpTime)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

// isEmail checks if identifier looks like an email
func isEmail(identifier string) bool {
	for _, r := range identifier {
		if r == '@' {
			return true
		}
	}
	return false
}
