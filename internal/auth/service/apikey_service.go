package service

//go:generate mockgen -destination=../../mocks/mock_apikey_repository.go -package=mocks github.com/gatewarden/auth-service/internal/auth/domain APIKeyRepository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"github.com/gatewarden/auth-service/internal/auth/domain"
	"github.com/gatewarden/auth-service/internal/auth/dto"
	autherror "github.com/gatewarden/auth-service/internal/errors"
	"github.com/gatewarden/auth-service/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type APIKeyService struct {
	repo       domain.APIKeyRepository
	users      domain.UserRepository
	marker     string
	bcryptCost int
}

func NewAPIKeyService(repo domain.APIKeyRepository, users domain.UserRepository, marker string, bcryptCost int) *APIKeyService {
	return &APIKeyService{
		repo:       repo,
		users:      users,
		marker:     marker,
		bcryptCost: bcryptCost,
	}
}

// Issue mints a new key for ownerID. The raw value appears in the returned
// output and nowhere else; only its bcrypt hash and a short prefix are
// stored.
func (s *APIKeyService) Issue(ctx context.Context, ownerID, name string) (*dto.NewAPIKeyOutput, error) {
	secret := make([]byte, constant.APIKeySecretBytes)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}

	rawKey := s.marker + hex.EncodeToString(secret)

	keyHash, err := bcrypt.GenerateFromPassword([]byte(rawKey), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	key := &domain.APIKey{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		Name:      name,
		KeyHash:   string(keyHash),
		KeyPrefix: s.prefixOf(rawKey),
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, key); err != nil {
		return nil, err
	}

	return &dto.NewAPIKeyOutput{
		ID:     key.ID,
		Name:   key.Name,
		APIKey: rawKey,
	}, nil
}

// Verify narrows candidates by the stored prefix and runs the bcrypt
// comparison against each until one matches. Prefix collisions are rare but
// legal, hence the loop. Returns the owning user, or nil when nothing
// matches or the owner is no longer in good standing.
func (s *APIKeyService) Verify(ctx context.Context, presentedKey string) (*domain.User, error) {
	if len(presentedKey) < len(s.marker)+constant.APIKeyPrefixLen {
		return nil, nil
	}

	candidates, err := s.repo.FindActiveByPrefix(ctx, s.prefixOf(presentedKey))
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		key := &candidates[i]
		if bcrypt.CompareHashAndPassword([]byte(key.KeyHash), []byte(presentedKey)) != nil {
			continue
		}

		if err := s.repo.TouchLastUsed(ctx, key.ID); err != nil {
			log.Printf("warn: failed to update last_used_at for api key %s: %v", key.ID, err)
		}

		user, err := s.users.GetByID(ctx, key.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil || !user.IsActive || user.Locked(time.Now()) {
			return nil, nil
		}

		return user, nil
	}

	return nil, nil
}

// Revoke soft-deletes the key. The ownership check is folded into the
// update predicate, so a key owned by someone else is indistinguishable
// from one that does not exist.
func (s *APIKeyService) Revoke(ctx context.Context, id, ownerID string) error {
	deactivated, err := s.repo.Deactivate(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deactivated {
		return autherror.ErrAPIKeyNotFound
	}

	return nil
}

// List returns key metadata only; the hash never leaves the repository.
func (s *APIKeyService) List(ctx context.Context, ownerID string) ([]dto.APIKeyOutput, error) {
	keys, err := s.repo.FindByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.APIKeyOutput, 0, len(keys))
	for _, key := range keys {
		out = append(out, dto.APIKeyOutput{
			ID:         key.ID,
			Name:       key.Name,
			KeyPrefix:  key.KeyPrefix,
			IsActive:   key.IsActive,
			LastUsedAt: key.LastUsedAt,
			CreatedAt:  key.CreatedAt,
		})
	}

	return out, nil
}

func (s *APIKeyService) prefixOf(rawKey string) string {
	return rawKey[:len(s.marker)+constant.APIKeyPrefixLen]
}
