package httpapi

import (
	"net/http"

	"github.com/copa-nordeste/copa-api/internal/domain/referee"
	"github.com/copa-nordeste/copa-api/internal/usecase"
)

type createRefereeRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Image string `json:"image"`
}

type updateRefereeRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=200"`
	Image *string `json:"image"`
}

func (h *Handler) ListReferees(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListReferees")
	defer span.End()

	referees, err := h.refereeService.ListReferees(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list referees failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]refereeDTO, 0, len(referees))
	for _, ref := range referees {
		items = append(items, refereeToDTO(ref))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetReferee")
	defer span.End()

	refereeID := r.PathValue("refereeID")
	ref, err := h.refereeService.GetReferee(ctx, refereeID)
	if err != nil {
		h.logger.WarnContext(ctx, "get referee failed", "referee_id", refereeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, refereeToDTO(ref))
}

func (h *Handler) CreateReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateReferee")
	defer span.End()

	var req createRefereeRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.refereeService.CreateReferee(ctx, usecase.CreateRefereeInput{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create referee failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, refereeToDTO(created))
}

func (h *Handler) UpdateReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateReferee")
	defer span.End()

	refereeID := r.PathValue("refereeID")

	var req updateRefereeRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.refereeService.UpdateReferee(ctx, refereeID, referee.Patch{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update referee failed", "referee_id", refereeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, refereeToDTO(updated))
}

func (h *Handler) DeleteReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteReferee")
	defer span.End()

	refereeID := r.PathValue("refereeID")
	if err := h.refereeService.DeleteReferee(ctx, refereeID); err != nil {
		h.logger.WarnContext(ctx, "delete referee failed", "referee_id", refereeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Referee deleted successfully")
}
