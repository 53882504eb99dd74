package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-activity-alarm/internal/service/dispatch"
)

type DispatchHandler struct {
	dispatchService DispatchService
}

func NewDispatchHandler(dispatchService DispatchService) *DispatchHandler {
	return &DispatchHandler{
		dispatchService: dispatchService,
	}
}

// HandleDispatch is called by the scheduler. It is not user scoped.
func (h *DispatchHandler) HandleDispatch(c *gin.Context) {
	ctx := c.Request.Context()

	now, ok := requestTime(c)
	if !ok {
		return
	}

	result, err := h.dispatchService.Dispatch(ctx, now)
	if err != nil {
		if errors.Is(err, dispatch.ErrTaskQueueDisabled) {
			respondError(c, http.StatusServiceUnavailable, "unavailable", "task queue is not configured")
			return
		}

		slog.ErrorContext(ctx, "alarm dispatch failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to dispatch alarms")
		return
	}

	c.JSON(http.StatusOK, result)
}
