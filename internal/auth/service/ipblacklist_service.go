package service

//go:generate mockgen -destination=../../mocks/mock_blockedip_repository.go -package=mocks github.com/gatewarden/auth-service/internal/auth/domain BlockedIPRepository

import (
	"context"
	"log"
	"time"

	"github.com/gatewarden/auth-service/internal/auth/domain"
	"github.com/gatewarden/auth-service/internal/auth/dto"
	"github.com/google/uuid"
)

type IPBlacklistService struct {
	repo domain.BlockedIPRepository
}

func NewIPBlacklistService(repo domain.BlockedIPRepository) *IPBlacklistService {
	return &IPBlacklistService{repo: repo}
}

// IsBlocked treats a lapsed temporary block as unblocked and removes it
// opportunistically on the way out.
func (s *IPBlacklistService) IsBlocked(ctx context.Context, ip string) (bool, error) {
	blocked, err := s.repo.GetByIP(ctx, ip)
	if err != nil {
		return false, err
	}
	if blocked == nil {
		return false, nil
	}

	if !blocked.Expired(time.Now()) {
		return true, nil
	}

	if err := s.repo.Delete(ctx, ip); err != nil {
		log.Printf("warn: failed to remove expired block for %s: %v", ip, err)
	}

	return false, nil
}

// Block upserts: re-blocking an already-blocked IP updates its reason,
// permanence and expiry instead of adding a duplicate row.
func (s *IPBlacklistService) Block(ctx context.Context, input dto.BlockIPInput) (*domain.BlockedIP, error) {
	blocked := &domain.BlockedIP{
		ID:          uuid.New().String(),
		IPAddress:   input.IPAddress,
		Reason:      input.Reason,
		IsPermanent: input.IsPermanent,
		CreatedAt:   time.Now(),
	}

	if !input.IsPermanent && input.ExpiresIn > 0 {
		expiresAt := time.Now().Add(time.Duration(input.ExpiresIn) * time.Second)
		blocked.ExpiresAt = &expiresAt
	}

	if err := s.repo.Upsert(ctx, blocked); err != nil {
		return nil, err
	}

	return blocked, nil
}

// Unblock is idempotent; removing an address that is not blocked is a no-op.
func (s *IPBlacklistService) Unblock(ctx context.Context, ip string) error {
	return s.repo.Delete(ctx, ip)
}

// SweepExpired removes every lapsed temporary block. Safe to run on any
// schedule or on demand.
func (s *IPBlacklistService) SweepExpired(ctx context.Context) error {
	return s.repo.DeleteExpired(ctx, time.Now())
}
