package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/copa-nordeste/copa-api/internal/platform/logging"
	"github.com/copa-nordeste/copa-api/internal/usecase"
)

type Handler struct {
	teamService         *usecase.TeamService
	competitionService  *usecase.CompetitionService
	matchService        *usecase.MatchService
	newsService         *usecase.NewsService
	contactService      *usecase.ContactService
	championshipService *usecase.ChampionshipService
	adminTeamService    *usecase.AdminTeamService
	athleteService      *usecase.AthleteService
	refereeService      *usecase.RefereeService
	authService         *usecase.AuthService
	mediaService        *usecase.MediaService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	competitionService *usecase.CompetitionService,
	matchService *usecase.MatchService,
	newsService *usecase.NewsService,
	contactService *usecase.ContactService,
	championshipService *usecase.ChampionshipService,
	adminTeamService *usecase.AdminTeamService,
	athleteService *usecase.AthleteService,
	refereeService *usecase.RefereeService,
	authService *usecase.AuthService,
	mediaService *usecase.MediaService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		teamService:         teamService,
		competitionService:  competitionService,
		matchService:        matchService,
		newsService:         newsService,
		contactService:      contactService,
		championshipService: championshipService,
		adminTeamService:    adminTeamService,
		athleteService:      athleteService,
		refereeService:      refereeService,
		authService:         authService,
		mediaService:        mediaService,
		logger:              logger,
		validator:           newRequestValidator(),
	}
}

// newRequestValidator reports violations under json field names so the
// wire-level error details match what the client actually sent.
func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeJSON(r *http.Request, target any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: malformed JSON body", usecase.ErrInvalidInput)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	err := h.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return fmt.Errorf("%w: validation failed", usecase.ErrInvalidInput)
	}

	fields := make([]usecase.FieldError, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, usecase.FieldError{
			Field:   violation.Field(),
			Message: violationMessage(violation),
		})
	}

	return usecase.NewValidationError(fields...)
}

func violationMessage(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(v.Param(), " ", ", ")
	case "datetime":
		return "must be a date in " + v.Param() + " format"
	case "max":
		return "must be at most " + v.Param() + " characters"
	case "min":
		return "must be at least " + v.Param()
	case "gte":
		return "must be greater than or equal to " + v.Param()
	default:
		return "is invalid"
	}
}
