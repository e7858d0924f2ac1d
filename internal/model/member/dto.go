package member

import (
	"bytes"
	"encoding/json"

	"github.com/deppfellow/gym-membership/internal/validation"
)

// Success messages returned by the write endpoints.
const (
	MessageAdded   = "Member added successfully"
	MessageUpdated = "Member updated successfully"
	MessageDeleted = "Member deleted successfully"
)

// MessageResponse is the body of a successful write.
type MessageResponse struct {
	Message string `json:"message"`
}

// Payload is the JSON body of create and update.
//
// Fields are kept raw so that only key presence is checked. An absent key
// leaves the field nil, while any present value, null included, does not.
type Payload struct {
	Name       json.RawMessage `json:"name" validate:"required"`
	Email      json.RawMessage `json:"email" validate:"required"`
	Discipline json.RawMessage `json:"discipline" validate:"required"`
}

// Details returns the values as stored text. Call it only after Validate passed.
func (p Payload) Details() Details {
	return Details{
		Name:       text(p.Name),
		Email:      text(p.Email),
		Discipline: text(p.Discipline),
	}
}

// text converts a raw JSON value into a column value. Strings are unquoted,
// null becomes "" and anything else is stored as its compact JSON text.
func text(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// CreateMemberRequest is bound from POST /members.
type CreateMemberRequest struct {
	Payload
}

func (r *CreateMemberRequest) Validate() error {
	return validation.Struct(r)
}

// ListMembersRequest is bound from GET /members. It carries nothing.
type ListMembersRequest struct{}

func (r *ListMembersRequest) PathParamsOnly() {}

func (r *ListMembersRequest) Validate() error {
	return nil
}

// GetMemberRequest is bound from GET /members/:id.
type GetMemberRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *GetMemberRequest) PathParamsOnly() {}

func (r *GetMemberRequest) Validate() error {
	return nil
}

// UpdateMemberRequest is bound from PUT /members/:id.
type UpdateMemberRequest struct {
	ID int64 `param:"id" json:"-"`
	Payload
}

func (r *UpdateMemberRequest) Validate() error {
	return validation.Struct(r)
}

// DeleteMemberRequest is bound from DELETE /members/:id.
type DeleteMemberRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteMemberRequest) PathParamsOnly() {}

func (r *DeleteMemberRequest) Validate() error {
	return nil
}
