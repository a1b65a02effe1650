package service

import (
	"context"
	"log"
	"time"

	"github.com/gatewarden/auth-service/internal/auth/domain"
	autherror "github.com/gatewarden/auth-service/internal/errors"
)

// BruteForceService counts failed login attempts over a trailing window and
// locks accounts at the threshold. The count matches on identifier OR origin
// IP: that covers both one IP spraying many accounts and many IPs guessing
// one account. The cost is that anyone can lock a victim's account by
// failing enough attempts with the victim's email; that trade-off is
// accepted, not a bug.
type BruteForceService struct {
	repo        domain.UserRepository
	maxAttempts int
	lockout     time.Duration
}

func NewBruteForceService(repo domain.UserRepository, maxAttempts, lockoutSeconds int) *BruteForceService {
	return &BruteForceService{
		repo:        repo,
		maxAttempts: maxAttempts,
		lockout:     time.Duration(lockoutSeconds) * time.Second,
	}
}

// CheckAndAdmit fails with ErrAccountLocked when the identifier's account is
// currently locked or the failure count over the window has reached the
// threshold, in which case it also (re)locks the account. It must run before
// the password check so a locked account rejects even correct credentials.
func (s *BruteForceService) CheckAndAdmit(ctx context.Context, identifier, ip string) error {
	locked, err := s.IsLocked(ctx, identifier)
	if err != nil {
		return err
	}
	if locked {
		return autherror.ErrAccountLocked
	}

	cutoff := time.Now().Add(-s.lockout)
	failures, err := s.repo.CountRecentFailures(ctx, identifier, ip, cutoff)
	if err != nil {
		return err
	}

	if failures >= s.maxAttempts {
		if err := s.lockAccount(ctx, identifier); err != nil {
			log.Printf("warn: failed to lock account %s: %v", identifier, err)
		}
		return autherror.ErrAccountLocked
	}

	return nil
}

// Record appends one ledger row. It is called for successes too, so the
// window self-heals as old failures age out.
func (s *BruteForceService) Record(ctx context.Context, identifier, ip string, success bool) error {
	return s.repo.RecordLoginAttempt(ctx, identifier, ip, success)
}

// Clear is an administrative reset of the identifier's ledger rows.
func (s *BruteForceService) Clear(ctx context.Context, identifier string) error {
	return s.repo.DeleteLoginAttempts(ctx, identifier)
}

func (s *BruteForceService) IsLocked(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	return user.Locked(time.Now()), nil
}

// RemainingLockout reports how long until the identifier's lock lapses,
// zero when it is not locked.
func (s *BruteForceService) RemainingLockout(ctx context.Context, email string) (time.Duration, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if user == nil || user.LockedUntil == nil {
		return 0, nil
	}

	remaining := time.Until(*user.LockedUntil)
	if remaining < 0 {
		return 0, nil
	}

	return remaining, nil
}

// lockAccount annotates the user with a lockedUntil timestamp. Identifiers
// that match no account still count toward the IP side of the window, so a
// missing user is not an error.
func (s *BruteForceService) lockAccount(ctx context.Context, identifier string) error {
	user, err := s.repo.GetByEmail(ctx, identifier)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	return s.repo.SetLockedUntil(ctx, user.ID, time.Now().Add(s.lockout))
}
