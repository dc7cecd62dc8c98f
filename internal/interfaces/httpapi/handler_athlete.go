package httpapi

import (
	"net/http"

	"github.com/copa-nordeste/copa-api/internal/domain/athlete"
	"github.com/copa-nordeste/copa-api/internal/usecase"
)

type createAthleteRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Document string `json:"document" validate:"omitempty,max=40"`
	Image    string `json:"image"`
	TeamID   string `json:"teamId"`
}

type updateAthleteRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Document *string `json:"document" validate:"omitempty,max=40"`
	Image    *string `json:"image"`
	TeamID   *string `json:"teamId"`
}

func (h *Handler) ListAthletes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAthletes")
	defer span.End()

	teamID := r.URL.Query().Get("teamId")
	athletes, err := h.athleteService.ListAthletes(ctx, teamID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list athletes failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]athleteDTO, 0, len(athletes))
	for _, a := range athletes {
		items = append(items, athleteToDTO(a))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetAthlete(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAthlete")
	defer span.End()

	athleteID := r.PathValue("athleteID")
	a, err := h.athleteService.GetAthlete(ctx, athleteID)
	if err != nil {
		h.logger.WarnContext(ctx, "get athlete failed", "athlete_id", athleteID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, athleteToDTO(a))
}

func (h *Handler) CreateAthlete(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAthlete")
	defer span.End()

	var req createAthleteRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.athleteService.CreateAthlete(ctx, usecase.CreateAthleteInput{
		Name:     req.Name,
		Document: req.Document,
		Image:    req.Image,
		TeamID:   req.TeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create athlete failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, athleteToDTO(created))
}

func (h *Handler) UpdateAthlete(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateAthlete")
	defer span.End()

	athleteID := r.PathValue("athleteID")

	var req updateAthleteRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.athleteService.UpdateAthlete(ctx, athleteID, athlete.Patch{
		Name:     req.Name,
		Document: req.Document,
		Image:    req.Image,
		TeamID:   req.TeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update athlete failed", "athlete_id", athleteID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, athleteToDTO(updated))
}

func (h *Handler) DeleteAthlete(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAthlete")
	defer span.End()

	athleteID := r.PathValue("athleteID")
	if err := h.athleteService.DeleteAthlete(ctx, athleteID); err != nil {
		h.logger.WarnContext(ctx, "delete athlete failed", "athlete_id", athleteID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Athlete deleted successfully")
}
