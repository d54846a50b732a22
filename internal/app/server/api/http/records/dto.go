package records

import (
	"servicelog/internal/domain/servicerecord"
)

type listOutput struct {
	Body []servicerecord.ServiceRecord
}

type getInput struct {
	ID string `path:"id" doc:"Service record ID"`
}

type getOutput struct {
	Body servicerecord.ServiceRecord
}

type createInput struct {
	Body servicerecord.CreateRequest
}

type createOutput struct {
	Body createResponse
}

type createResponse struct {
	Data servicerecord.ServiceRecord `json:"data"`
}

type updateInput struct {
	ID   string `path:"id" doc:"Service record ID"`
	Body servicerecord.UpdateRequest
}

type updateOutput struct {
	Body servicerecord.ServiceRecord
}

type deleteInput struct {
	ID string `path:"id" doc:"Service record ID"`
}

type deleteOutput struct{}
