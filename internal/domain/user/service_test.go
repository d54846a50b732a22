package user

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.ID != "" && u.Email == "tech@example.com" && u.PasswordHash != "password123"
	})).Return(nil)

	u, err := service.Register(context.Background(), "tech@example.com", "password123", "Test User")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Test User", u.Name)

	// Stored hash must verify against the original password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		userName string
	}{
		{"bad email", "not-an-email", "password123", "Test"},
		{"short password", "tech@example.com", "short", "Test"},
		{"empty name", "tech@example.com", "password123", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())

			_, err := service.Register(context.Background(), tt.email, tt.password, tt.userName)
			assert.ErrorIs(t, err, ErrInvalidInput)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Register_EmailTaken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(ErrEmailTaken)

	_, err := service.Register(context.Background(), "tech@example.com", "password123", "Test")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := User{ID: "user-1", Email: "tech@example.com", PasswordHash: string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())
		mockRepo.On("FindByEmail", mock.Anything, "tech@example.com").Return(stored, nil)

		u, err := service.Authenticate(context.Background(), "tech@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())
		mockRepo.On("FindByEmail", mock.Anything, "tech@example.com").Return(stored, nil)

		_, err := service.Authenticate(context.Background(), "tech@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidAuth)
	})

	t.Run("unknown user looks like wrong password", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, NewCredentialsValidator(), slog.Default())
		mockRepo.On("FindByEmail", mock.Anything, "other@example.com").Return(User{}, ErrNotFound)

		_, err := service.Authenticate(context.Background(), "other@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidAuth)
	})
}
