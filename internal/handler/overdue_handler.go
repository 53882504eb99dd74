package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

type OverdueHandler struct {
	overdueService OverdueService
}

func NewOverdueHandler(overdueService OverdueService) *OverdueHandler {
	return &OverdueHandler{
		overdueService: overdueService,
	}
}

type checkOverdueResponse struct {
	OverdueActivities []domain.OverdueActivity `json:"overdueActivities"`
}

func (h *OverdueHandler) HandleCheckOverdue(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	now, ok := requestTime(c)
	if !ok {
		return
	}

	activities, err := h.overdueService.CheckOverdue(ctx, userID, now)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "not_found", "user not found")
			return
		}

		slog.ErrorContext(ctx, "failed to check overdue activities",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to check overdue activities")
		return
	}

	if activities == nil {
		activities = []domain.OverdueActivity{}
	}

	c.JSON(http.StatusOK, checkOverdueResponse{OverdueActivities: activities})
}
