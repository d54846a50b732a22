package records

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"servicelog/internal/app/server/api/http/apierror"
	"servicelog/internal/app/server/api/http/middleware/auth"
	"servicelog/internal/domain/servicerecord"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, ownerID string) ([]servicerecord.ServiceRecord, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]servicerecord.ServiceRecord), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, ownerID, recordID string) (*servicerecord.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicerecord.ServiceRecord), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, ownerID string, req servicerecord.CreateRequest) (*servicerecord.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicerecord.ServiceRecord), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, ownerID, recordID string, req servicerecord.UpdateRequest) (*servicerecord.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, recordID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicerecord.ServiceRecord), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, ownerID, recordID string) error {
	args := m.Called(ctx, ownerID, recordID)
	return args.Error(0)
}

func newTestHandler(svc servicerecord.Servicer) *Handler {
	return NewHandler(svc, slog.Default(), huma.Middlewares{})
}

func TestHandler_List(t *testing.T) {
	authCtx := auth.WithUserID(context.Background(), "user-1")

	t.Run("returns records", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		stored := []servicerecord.ServiceRecord{
			{ID: "rec-1", UserID: "user-1", ServiceType: "Oil Change"},
		}
		svc.On("List", mock.Anything, "user-1").Return(stored, nil)

		out, err := h.list(authCtx, nil)
		require.NoError(t, err)
		assert.Equal(t, stored, out.Body)
	})

	t.Run("empty list stays a list", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("List", mock.Anything, "user-1").Return([]servicerecord.ServiceRecord{}, nil)

		out, err := h.list(authCtx, nil)
		require.NoError(t, err)
		assert.NotNil(t, out.Body)
		assert.Len(t, out.Body, 0)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		_, err := h.list(context.Background(), nil)
		requireStatus(t, err, 401)
		svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestHandler_Get(t *testing.T) {
	authCtx := auth.WithUserID(context.Background(), "user-1")

	t.Run("found", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		rec := &servicerecord.ServiceRecord{ID: "rec-1", UserID: "user-1"}
		svc.On("Get", mock.Anything, "user-1", "rec-1").Return(rec, nil)

		out, err := h.get(authCtx, &getInput{ID: "rec-1"})
		require.NoError(t, err)
		assert.Equal(t, "rec-1", out.Body.ID)
	})

	t.Run("missing record is 404", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("Get", mock.Anything, "user-1", "nope").Return(nil, servicerecord.ErrNotFound)

		_, err := h.get(authCtx, &getInput{ID: "nope"})
		requireStatus(t, err, 404)
		assert.Equal(t, "Record not found", err.Error())
	})

	t.Run("foreign record is 403", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("Get", mock.Anything, "user-1", "rec-2").Return(nil, servicerecord.ErrForbidden)

		_, err := h.get(authCtx, &getInput{ID: "rec-2"})
		requireStatus(t, err, 403)
		assert.Equal(t, "Forbidden", err.Error())
	})
}

func TestHandler_Create(t *testing.T) {
	authCtx := auth.WithUserID(context.Background(), "user-1")

	t.Run("wraps record in data envelope", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		rec := &servicerecord.ServiceRecord{ID: "rec-1", UserID: "user-1", Date: date}
		svc.On("Create", mock.Anything, "user-1", mock.Anything).Return(rec, nil)

		input := &createInput{}
		out, err := h.create(authCtx, input)
		require.NoError(t, err)
		assert.Equal(t, "rec-1", out.Body.Data.ID)
	})

	t.Run("missing fields map to 400 with required list", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("Create", mock.Anything, "user-1", mock.Anything).Return(nil, &servicerecord.ValidationError{
			Message:  "Missing required fields",
			Required: servicerecord.RequiredFields,
		})

		_, err := h.create(authCtx, &createInput{})
		requireStatus(t, err, 400)

		var model *apierror.Model
		require.ErrorAs(t, err, &model)
		assert.Equal(t, "Missing required fields", model.Message)
		assert.Equal(t, servicerecord.RequiredFields, model.Required)
	})

	t.Run("store failure is an opaque 500", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("Create", mock.Anything, "user-1", mock.Anything).Return(nil, assert.AnError)

		_, err := h.create(authCtx, &createInput{})
		requireStatus(t, err, 500)
		assert.Equal(t, "Internal server error", err.Error())
	})
}

func TestHandler_Update(t *testing.T) {
	authCtx := auth.WithUserID(context.Background(), "user-1")

	t.Run("returns updated record", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		rec := &servicerecord.ServiceRecord{ID: "rec-1", UserID: "user-1", Technician: "Dana"}
		svc.On("Update", mock.Anything, "user-1", "rec-1", mock.Anything).Return(rec, nil)

		out, err := h.update(authCtx, &updateInput{ID: "rec-1"})
		require.NoError(t, err)
		assert.Equal(t, "Dana", out.Body.Technician)
	})

	t.Run("bad service time is 400", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("Update", mock.Anything, "user-1", "rec-1", mock.Anything).Return(nil, &servicerecord.ValidationError{
			Message: "serviceTime must be a non-negative number",
		})

		_, err := h.update(authCtx, &updateInput{ID: "rec-1"})
		requireStatus(t, err, 400)

		var model *apierror.Model
		require.ErrorAs(t, err, &model)
		assert.Empty(t, model.Required)
	})
}

func TestHandler_Delete(t *testing.T) {
	authCtx := auth.WithUserID(context.Background(), "user-1")

	t.Run("success", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("Delete", mock.Anything, "user-1", "rec-1").Return(nil)

		out, err := h.delete(authCtx, &deleteInput{ID: "rec-1"})
		require.NoError(t, err)
		assert.NotNil(t, out)
	})

	t.Run("already gone is 404", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("Delete", mock.Anything, "user-1", "rec-1").Return(servicerecord.ErrNotFound)

		_, err := h.delete(authCtx, &deleteInput{ID: "rec-1"})
		requireStatus(t, err, 404)
	})
}

func requireStatus(t *testing.T, err error, want int) {
	t.Helper()
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, want, statusErr.GetStatus())
}
