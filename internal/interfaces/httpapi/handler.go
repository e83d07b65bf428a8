package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sunday-dashboard/internal/usecase"
)

const maxRequestBodyBytes = 1 << 16

type Services struct {
	Week      *usecase.WeekService
	Lineup    *usecase.LineupService
	Game      *usecase.GameService
	Bet       *usecase.BetService
	Dashboard *usecase.DashboardService
}

type Handler struct {
	weekService      *usecase.WeekService
	lineupService    *usecase.LineupService
	gameService      *usecase.GameService
	betService       *usecase.BetService
	dashboardService *usecase.DashboardService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		weekService:      services.Week,
		lineupService:    services.Lineup,
		gameService:      services.Game,
		betService:       services.Bet,
		dashboardService: services.Dashboard,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON decodes a bounded request body, rejecting unknown fields.
func decodeJSON(r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// resolveWeek reads ?week=, falling back to the selected week when absent.
func (h *Handler) resolveWeek(ctx context.Context, r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("week"))
	if raw == "" {
		return h.weekService.Current(ctx)
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: week must be an integer", usecase.ErrInvalidInput)
	}
	if err := h.weekService.Validate(value); err != nil {
		return 0, err
	}
	return value, nil
}
