package session

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Find(ctx context.Context, tokenHash string) (Session, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(Session), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func TestService_CreateAndValidate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, time.Hour, slog.Default())

	var storedHash string
	mockRepo.On("Create", mock.Anything, "user-1", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil)

	token, sess, err := service.Create(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-1", sess.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Minute)

	// The raw token must never be what lands in storage.
	assert.NotEqual(t, token, storedHash)

	mockRepo.On("Find", mock.Anything, storedHash).
		Return(Session{UserID: "user-1", ExpiresAt: sess.ExpiresAt}, nil)

	userID, err := service.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestService_Validate_UnknownToken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, time.Hour, slog.Default())

	mockRepo.On("Find", mock.Anything, mock.Anything).Return(Session{}, ErrInvalidSession)

	_, err := service.Validate(context.Background(), "bogus")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_Destroy(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, time.Hour, slog.Default())

	mockRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

	assert.NoError(t, service.Destroy(context.Background(), "whatever"))
	mockRepo.AssertExpectations(t)
}

func TestService_DefaultTTL(t *testing.T) {
	service := NewService(new(MockRepository), 0, slog.Default())
	assert.Equal(t, DefaultTTL, service.ttl)
}
