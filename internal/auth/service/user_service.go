package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/gatewarden/auth-service/internal/auth/domain UserRepository

import (
	"context"
	"log"
	"time"

	"github.com/gatewarden/auth-service/config"
	"github.com/gatewarden/auth-service/internal/auth/domain"
	"github.com/gatewarden/auth-service/internal/auth/dto"
	autherror "github.com/gatewarden/auth-service/internal/errors"
	"github.com/gatewarden/auth-service/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService owns the access/refresh token lifecycle. The token blacklist
// is reachable only through here, never handed out directly.
type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	guard        *BruteForceService
	blacklist    *TokenBlacklist
	cfg          *config.Config
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, guard *BruteForceService,
	blacklist *TokenBlacklist, cfg *config.Config) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		guard:        guard,
		blacklist:    blacklist,
		cfg:          cfg,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	existingUser, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         constant.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ValidateUser returns nil for an unknown email, a wrong password and a
// deactivated account alike. Callers must not be able to tell which.
func (s *UserService) ValidateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	if err := s.guard.CheckAndAdmit(ctx, input.Email, input.IPAddress); err != nil {
		return nil, err
	}

	user, err := s.ValidateUser(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if err := s.guard.Record(ctx, input.Email, input.IPAddress, false); err != nil {
			log.Printf("warn: failed to record login attempt for %s: %v", input.Email, err)
		}
		return nil, autherror.ErrInvalidCredentials
	}

	if err := s.guard.Record(ctx, input.Email, input.IPAddress, true); err != nil {
		log.Printf("warn: failed to record login attempt for %s: %v", input.Email, err)
	}

	return s.issuePair(ctx, user, input.IPAddress, input.UserAgent)
}

// Refresh rotates a refresh token: the presented record is revoked and a
// fresh pair issued. Revocation is a conditional update, so of two
// concurrent rotations with the same value at most one gets tokens.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	token, err := s.repo.GetRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if token == nil || token.Revoked || time.Now().After(token.ExpiresAt) {
		return nil, autherror.ErrInvalidCredentials
	}

	user, err := s.repo.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, autherror.ErrAccountInactive
	}

	revoked, err := s.repo.RevokeRefreshToken(ctx, token.ID)
	if err != nil {
		return nil, err
	}
	if !revoked {
		// Lost the race against a concurrent rotation of the same value.
		return nil, autherror.ErrInvalidCredentials
	}

	return s.issuePair(ctx, user, input.IPAddress, input.UserAgent)
}

// Logout shadows the access token in the blacklist for its remaining
// lifetime and, when a refresh token is supplied, revokes that one record.
// Other sessions of the same user keep their refresh tokens.
func (s *UserService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken != "" {
		if claims, err := s.tokenService.VerifyAccessToken(accessToken); err == nil && claims.ExpiresAt != nil {
			s.blacklist.Add(accessToken, claims.ExpiresAt.Time)
		}
	}

	if refreshToken != "" {
		stored, err := s.repo.GetRefreshToken(ctx, refreshToken)
		if err != nil {
			return err
		}
		if stored != nil {
			if _, err := s.repo.RevokeRefreshToken(ctx, stored.ID); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *UserService) IsTokenRevoked(token string) bool {
	return s.blacklist.Contains(token)
}

// Authenticate verifies a bearer access token for one request: signature,
// type discriminant, revocation, and that the subject is still an active,
// unlocked account. A token is only bearer-valid while the account stays in
// good standing.
func (s *UserService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	claims, err := s.tokenService.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	if s.blacklist.Contains(accessToken) {
		return nil, autherror.ErrTokenRevoked
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, autherror.ErrAccountInactive
	}
	if user.Locked(time.Now()) {
		return nil, autherror.ErrAccountLocked
	}

	return user, nil
}

func (s *UserService) issuePair(ctx context.Context, user *domain.User, ip, userAgent string) (*dto.TokenResponse, error) {
	accessToken, refreshToken, refreshExpiresAt, err := s.tokenService.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	refreshTokenObj := &domain.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     refreshToken,
		IPAddress: ip,
		UserAgent: userAgent,
		ExpiresAt: refreshExpiresAt,
		CreatedAt: now,
		Revoked:   false,
	}

	if err := s.repo.StoreRefreshToken(ctx, refreshTokenObj); err != nil {
		return nil, err
	}

	activeCount, err := s.repo.GetActiveCountByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if activeCount > s.cfg.MaxActiveTokensPerUser {
		if err := s.repo.DeleteOldestByUserID(ctx, user.ID); err != nil {
			log.Printf("warn: failed to delete oldest refresh token for user %s: %v", user.ID, err)
		}
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.tokenService.GetAccessTokenExpiry().Seconds()),
	}, nil
}
