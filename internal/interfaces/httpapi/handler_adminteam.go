package httpapi

import (
	"net/http"

	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
	"github.com/copa-nordeste/copa-api/internal/usecase"
)

type createAdminTeamRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Image       string `json:"image"`
	Responsible string `json:"responsible" validate:"omitempty,max=200"`
	Phone       string `json:"phone" validate:"omitempty,max=40"`
}

type updateAdminTeamRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Image       *string `json:"image"`
	Responsible *string `json:"responsible" validate:"omitempty,max=200"`
	Phone       *string `json:"phone" validate:"omitempty,max=40"`
}

func (h *Handler) ListAdminTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAdminTeams")
	defer span.End()

	teams, err := h.adminTeamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list admin teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]adminTeamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, adminTeamToDTO(t))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetAdminTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAdminTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	t, err := h.adminTeamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get admin team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, adminTeamToDTO(t))
}

func (h *Handler) CreateAdminTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAdminTeam")
	defer span.End()

	var req createAdminTeamRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.adminTeamService.CreateTeam(ctx, usecase.CreateAdminTeamInput{
		Name:        req.Name,
		Image:       req.Image,
		Responsible: req.Responsible,
		Phone:       req.Phone,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create admin team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, adminTeamToDTO(created))
}

func (h *Handler) UpdateAdminTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateAdminTeam")
	defer span.End()

	teamID := r.PathValue("teamID")

	var req updateAdminTeamRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.adminTeamService.UpdateTeam(ctx, teamID, adminteam.Patch{
		Name:        req.Name,
		Image:       req.Image,
		Responsible: req.Responsible,
		Phone:       req.Phone,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update admin team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, adminTeamToDTO(updated))
}

func (h *Handler) DeleteAdminTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAdminTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	if err := h.adminTeamService.DeleteTeam(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete admin team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Team deleted successfully")
}
