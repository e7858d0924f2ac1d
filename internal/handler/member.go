package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/gym-membership/internal/model/member"
	"github.com/deppfellow/gym-membership/internal/server"
	"github.com/deppfellow/gym-membership/internal/service"
)

// MemberHandler serves the /members endpoints.
type MemberHandler struct {
	Handler
	members *service.MemberService
}

func NewMemberHandler(s *server.Server, members *service.MemberService) *MemberHandler {
	return &MemberHandler{
		Handler: NewHandler(s),
		members: members,
	}
}

func (h *MemberHandler) CreateMember(c echo.Context, req *member.CreateMemberRequest) (member.MessageResponse, error) {
	if err := h.members.CreateMember(c.Request().Context(), req.Details()); err != nil {
		return member.MessageResponse{}, err
	}
	return member.MessageResponse{Message: member.MessageAdded}, nil
}

func (h *MemberHandler) ListMembers(c echo.Context, _ *member.ListMembersRequest) ([]member.Member, error) {
	return h.members.ListMembers(c.Request().Context())
}

func (h *MemberHandler) GetMember(c echo.Context, req *member.GetMemberRequest) (member.Member, error) {
	return h.members.GetMember(c.Request().Context(), req.ID)
}

func (h *MemberHandler) UpdateMember(c echo.Context, req *member.UpdateMemberRequest) (member.MessageResponse, error) {
	if err := h.members.UpdateMember(c.Request().Context(), req.ID, req.Details()); err != nil {
		return member.MessageResponse{}, err
	}
	return member.MessageResponse{Message: member.MessageUpdated}, nil
}

func (h *MemberHandler) DeleteMember(c echo.Context, req *member.DeleteMemberRequest) (member.MessageResponse, error) {
	if err := h.members.DeleteMember(c.Request().Context(), req.ID); err != nil {
		return member.MessageResponse{}, err
	}
	return member.MessageResponse{Message: member.MessageDeleted}, nil
}
