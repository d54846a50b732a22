package records

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"servicelog/internal/app/server/api/http/apierror"
	"servicelog/internal/app/server/api/http/middleware/auth"
	"servicelog/internal/domain/servicerecord"
)

type Handler struct {
	service    servicerecord.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service servicerecord.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	records, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &listOutput{Body: records}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	rec, err := h.service.Get(ctx, userID, input.ID)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &getOutput{Body: *rec}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	rec, err := h.service.Create(ctx, userID, input.Body)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &createOutput{Body: createResponse{Data: *rec}}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	rec, err := h.service.Update(ctx, userID, input.ID, input.Body)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &updateOutput{Body: *rec}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		return nil, h.mapError(err)
	}

	return &deleteOutput{}, nil
}

func (h *Handler) mapError(err error) error {
	var vErr *servicerecord.ValidationError

	switch {
	case errors.Is(err, servicerecord.ErrNotFound):
		return huma.Error404NotFound("Record not found")
	case errors.Is(err, servicerecord.ErrForbidden):
		return huma.Error403Forbidden("Forbidden")
	case errors.As(err, &vErr):
		return apierror.Validation(vErr.Message, vErr.Required)
	default:
		h.log.Error("record operation failed", "error", err)
		return huma.Error500InternalServerError("Internal server error")
	}
}
