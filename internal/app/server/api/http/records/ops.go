package records

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "service-records-list",
		Method:      http.MethodGet,
		Path:        "/api/service-records",
		Summary:     "List the caller's service records",
		Tags:        []string{"service-records"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "service-records-create",
		Method:        http.MethodPost,
		Path:          "/api/service-records",
		Summary:       "Create a service record",
		Tags:          []string{"service-records"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"cookie": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "service-records-get",
		Method:      http.MethodGet,
		Path:        "/api/service-records/{id}",
		Summary:     "Get a service record",
		Tags:        []string{"service-records"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "service-records-update",
		Method:      http.MethodPut,
		Path:        "/api/service-records/{id}",
		Summary:     "Update a service record",
		Description: "Partial update. Fields left out of the body keep their stored value.",
		Tags:        []string{"service-records"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "service-records-delete",
		Method:        http.MethodDelete,
		Path:          "/api/service-records/{id}",
		Summary:       "Delete a service record",
		Tags:          []string{"service-records"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"cookie": {}}},
		Middlewares:   h.middleware,
	}
}
