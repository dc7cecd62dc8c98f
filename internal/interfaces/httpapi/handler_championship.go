package httpapi

import (
	"net/http"

	"github.com/copa-nordeste/copa-api/internal/domain/championship"
	"github.com/copa-nordeste/copa-api/internal/usecase"
)

type createChampionshipRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Image     string `json:"image" validate:"omitempty"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// updateChampionshipRequest is a partial schema; absent fields keep
// their stored value.
type updateChampionshipRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=200"`
	Image     *string `json:"image"`
	StartDate *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) ListChampionships(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampionships")
	defer span.End()

	championships, err := h.championshipService.ListChampionships(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list championships failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]championshipDTO, 0, len(championships))
	for _, c := range championships {
		items = append(items, championshipToDTO(c))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChampionship")
	defer span.End()

	championshipID := r.PathValue("championshipID")
	c, err := h.championshipService.GetChampionship(ctx, championshipID)
	if err != nil {
		h.logger.WarnContext(ctx, "get championship failed", "championship_id", championshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, championshipToDTO(c))
}

func (h *Handler) CreateChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateChampionship")
	defer span.End()

	var req createChampionshipRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.championshipService.CreateChampionship(ctx, usecase.CreateChampionshipInput{
		Name:      req.Name,
		Image:     req.Image,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create championship failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, championshipToDTO(created))
}

func (h *Handler) UpdateChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateChampionship")
	defer span.End()

	championshipID := r.PathValue("championshipID")

	var req updateChampionshipRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.championshipService.UpdateChampionship(ctx, championshipID, championship.Patch{
		Name:      req.Name,
		Image:     req.Image,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update championship failed", "championship_id", championshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, championshipToDTO(updated))
}

func (h *Handler) DeleteChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteChampionship")
	defer span.End()

	championshipID := r.PathValue("championshipID")
	if err := h.championshipService.DeleteChampionship(ctx, championshipID); err != nil {
		h.logger.WarnContext(ctx, "delete championship failed", "championship_id", championshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Championship deleted successfully")
}

func (h *Handler) ListChampionshipTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampionshipTeams")
	defer span.End()

	championshipID := r.PathValue("championshipID")
	teams, err := h.championshipService.ListChampionshipTeams(ctx, championshipID)
	if err != nil {
		h.logger.WarnContext(ctx, "list championship teams failed", "championship_id", championshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]adminTeamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, adminTeamToDTO(t))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) AddChampionshipTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddChampionshipTeam")
	defer span.End()

	championshipID := r.PathValue("championshipID")
	teamID := r.PathValue("teamID")

	entry, err := h.championshipService.AddTeam(ctx, championshipID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "add championship team failed", "championship_id", championshipID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, map[string]any{
		"id":             entry.ID,
		"championshipId": entry.ChampionshipID,
		"teamId":         entry.TeamID,
		"createdAt":      entry.CreatedAt,
	})
}

func (h *Handler) RemoveChampionshipTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveChampionshipTeam")
	defer span.End()

	championshipID := r.PathValue("championshipID")
	teamID := r.PathValue("teamID")

	if err := h.championshipService.RemoveTeam(ctx, championshipID, teamID); err != nil {
		h.logger.WarnContext(ctx, "remove championship team failed", "championship_id", championshipID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Team removed from championship")
}
