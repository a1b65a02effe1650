package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gatewarden/auth-service/internal/auth/domain"
	"github.com/gatewarden/auth-service/internal/auth/service"
	autherror "github.com/gatewarden/auth-service/internal/errors"
	"github.com/gatewarden/auth-service/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmail = "victim@example.com"
	testIP    = "203.0.113.7"
)

func TestBruteForceService_CheckAndAdmit_UnderThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	guard := service.NewBruteForceService(mockRepo, 5, 900)

	mockRepo.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(&domain.User{ID: "u1", Email: testEmail}, nil)
	mockRepo.EXPECT().CountRecentFailures(gomock.Any(), testEmail, testIP, gomock.Any()).Return(4, nil)

	err := guard.CheckAndAdmit(context.Background(), testEmail, testIP)
	assert.NoError(t, err)
}

func TestBruteForceService_CheckAndAdmit_AtThresholdLocksAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	guard := service.NewBruteForceService(mockRepo, 5, 900)

	user := &domain.User{ID: "u1", Email: testEmail}
	mockRepo.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(user, nil).Times(2)
	mockRepo.EXPECT().CountRecentFailures(gomock.Any(), testEmail, testIP, gomock.Any()).Return(5, nil)
	mockRepo.EXPECT().SetLockedUntil(gomock.Any(), "u1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, until time.Time) error {
			assert.WithinDuration(t, time.Now().Add(900*time.Second), until, 5*time.Second)
			return nil
		})

	err := guard.CheckAndAdmit(context.Background(), testEmail, testIP)
	assert.ErrorIs(t, err, autherror.ErrAccountLocked)
}

func TestBruteForceService_CheckAndAdmit_AlreadyLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	guard := service.NewBruteForceService(mockRepo, 5, 900)

	lockedUntil := time.Now().Add(10 * time.Minute)
	mockRepo.EXPECT().GetByEmail(gomock.Any(), testEmail).
		Return(&domain.User{ID: "u1", Email: testEmail, LockedUntil: &lockedUntil}, nil)

	// No failure count is consulted; the lock alone rejects.
	err := guard.CheckAndAdmit(context.Background(), testEmail, testIP)
	assert.ErrorIs(t, err, autherror.ErrAccountLocked)
}

func TestBruteForceService_CheckAndAdmit_ExpiredLockAdmits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	guard := service.NewBruteForceService(mockRepo, 5, 900)

	lockedUntil := time.Now().Add(-time.Minute)
	mockRepo.EXPECT().GetByEmail(gomock.Any(), testEmail).
		Return(&domain.User{ID: "u1", Email: testEmail, LockedUntil: &lockedUntil}, nil)
	mockRepo.EXPECT().CountRecentFailures(gomock.Any(), testEmail, testIP, gomock.Any()).Return(0, nil)

	err := guard.CheckAndAdmit(context.Background(), testEmail, testIP)
	assert.NoError(t, err)
}

// An identifier with no matching account still counts toward the IP window
// and still fails at the threshold; locking is simply skipped.
func TestBruteForceService_CheckAndAdmit_UnknownIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	guard := service.NewBruteForceService(mockRepo, 5, 900)

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil).Times(2)
	mockRepo.EXPECT().CountRecentFailures(gomock.Any(), "ghost@example.com", testIP, gomock.Any()).Return(7, nil)

	err := guard.CheckAndAdmit(context.Background(), "ghost@example.com", testIP)
	assert.ErrorIs(t, err, autherror.ErrAccountLocked)
}

func TestBruteForceService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	guard := service.NewBruteForceService(mockRepo, 5, 900)

	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), testEmail, testIP, false).Return(nil)
	require.NoError(t, guard.Record(context.Background(), testEmail, testIP, false))

	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), testEmail, testIP, true).Return(nil)
	require.NoError(t, guard.Record(context.Background(), testEmail, testIP, true))
}

func TestBruteForceService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	guard := service.NewBruteForceService(mockRepo, 5, 900)

	mockRepo.EXPECT().DeleteLoginAttempts(gomock.Any(), testEmail).Return(nil)
	assert.NoError(t, guard.Clear(context.Background(), testEmail))
}

func TestBruteForceService_RemainingLockout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	guard := service.NewBruteForceService(mockRepo, 5, 900)

	lockedUntil := time.Now().Add(5 * time.Minute)
	mockRepo.EXPECT().GetByEmail(gomock.Any(), testEmail).
		Return(&domain.User{ID: "u1", LockedUntil: &lockedUntil}, nil)

	remaining, err := guard.RemainingLockout(context.Background(), testEmail)
	require.NoError(t, err)
	assert.Greater(t, remaining, 4*time.Minute)
	assert.LessOrEqual(t, remaining, 5*time.Minute)

	mockRepo.EXPECT().GetByEmail(gomock.Any(), testEmail).
		Return(&domain.User{ID: "u1"}, nil)

	remaining, err = guard.RemainingLockout(context.Background(), testEmail)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}
