package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/overdue"
)

type PredictionHandler struct {
	overdueService OverdueService
}

func NewPredictionHandler(overdueService OverdueService) *PredictionHandler {
	return &PredictionHandler{
		overdueService: overdueService,
	}
}

type predictionResponse struct {
	ActivityType       domain.Category `json:"activityType"`
	NextTime           time.Time       `json:"nextTime"`
	DisplayNextTime    time.Time       `json:"displayNextTime"`
	IntervalHours      float64         `json:"intervalHours"`
	Source             string          `json:"source"`
	LastActivityTime   *time.Time      `json:"lastActivityTime"`
	IsOverdue          bool            `json:"isOverdue"`
	EffectiveIsOverdue bool            `json:"effectiveIsOverdue"`
	OverdueMinutes     int             `json:"overdueMinutes"`
	ThresholdMinutes   int             `json:"thresholdMinutes"`
	IsRecentlySkipped  bool            `json:"isRecentlySkipped"`
	RecentSkipTime     *time.Time      `json:"recentSkipTime"`
}

type babyPredictionsResponse struct {
	BabyID      string               `json:"babyId"`
	BabyName    string               `json:"babyName"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Predictions []predictionResponse `json:"predictions"`
}

type skipResponse struct {
	BabyID       string          `json:"babyId"`
	ActivityType domain.Category `json:"activityType"`
	SkippedAt    time.Time       `json:"skippedAt"`
	ExpiresAt    time.Time       `json:"expiresAt"`
}

func toBabyPredictionsResponse(p *overdue.BabyPredictions) babyPredictionsResponse {
	resp := babyPredictionsResponse{
		BabyID:      p.Baby.ID,
		BabyName:    p.Baby.Name,
		GeneratedAt: p.GeneratedAt,
		Predictions: make([]predictionResponse, 0, len(p.Predictions)),
	}

	for _, e := range p.Predictions {
		resp.Predictions = append(resp.Predictions, predictionResponse{
			ActivityType:       e.Prediction.Category,
			NextTime:           e.Prediction.NextTime,
			DisplayNextTime:    e.Skip.DisplayNextTime,
			IntervalHours:      e.Prediction.IntervalHours,
			Source:             string(e.Prediction.Source),
			LastActivityTime:   e.Prediction.LastActivityTime,
			IsOverdue:          e.Prediction.IsOverdue,
			EffectiveIsOverdue: e.Skip.EffectiveIsOverdue,
			OverdueMinutes:     e.Prediction.OverdueMinutes,
			ThresholdMinutes:   e.Prediction.ThresholdMinutes,
			IsRecentlySkipped:  e.Skip.IsRecentlySkipped,
			RecentSkipTime:     e.Prediction.RecentSkipTime,
		})
	}

	return resp
}

func (h *PredictionHandler) HandleGetPredictions(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	now, ok := requestTime(c)
	if !ok {
		return
	}

	babyID := c.Param("babyId")

	predictions, err := h.overdueService.PredictBaby(ctx, userID, babyID, now)
	if err != nil {
		h.respondServiceError(c, err, "failed to predict activities", babyID)
		return
	}

	c.JSON(http.StatusOK, toBabyPredictionsResponse(predictions))
}

func (h *PredictionHandler) HandleRecordSkip(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	category, ok := categoryParam(c)
	if !ok {
		return
	}

	now, ok := requestTime(c)
	if !ok {
		return
	}

	babyID := c.Param("babyId")

	marker, err := h.overdueService.SkipActivity(ctx, userID, babyID, category, now)
	if err != nil {
		h.respondServiceError(c, err, "failed to record skip", babyID)
		return
	}

	slog.InfoContext(ctx, "skip recorded",
		slog.String("baby_id", babyID),
		slog.String("category", category.String()),
	)

	interval := time.Duration(marker.IntervalHours * float64(time.Hour))
	c.JSON(http.StatusCreated, skipResponse{
		BabyID:       marker.BabyID,
		ActivityType: marker.Category,
		SkippedAt:    marker.SkippedAt,
		ExpiresAt:    marker.SkippedAt.Add(interval),
	})
}

func (h *PredictionHandler) HandleClearSkip(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	category, ok := categoryParam(c)
	if !ok {
		return
	}

	babyID := c.Param("babyId")

	if err := h.overdueService.ClearSkip(ctx, userID, babyID, category); err != nil {
		h.respondServiceError(c, err, "failed to clear skip", babyID)
		return
	}

	c.Status(http.StatusNoContent)
}

func categoryParam(c *gin.Context) (domain.Category, bool) {
	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return domain.CategoryNone, false
	}
	return category, true
}

func (h *PredictionHandler) respondServiceError(c *gin.Context, err error, message, babyID string) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "not_found", "user not found")
	case errors.Is(err, domain.ErrBabyNotFound):
		respondError(c, http.StatusNotFound, "not_found", "baby not found")
	case errors.Is(err, domain.ErrUnknownCategory):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, overdue.ErrSkipsDisabled):
		respondError(c, http.StatusServiceUnavailable, "unavailable", "skip tracking is not available")
	default:
		slog.ErrorContext(c.Request.Context(), message,
			slog.String("baby_id", babyID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal_error", message)
	}
}
