// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"smart_vocab/internal/model"
	"smart_vocab/internal/service"
	"smart_vocab/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	clock   service.Clock
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, clock service.Clock, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		clock:   clock,
		logger:  logger,
	}
}

// GetReviews は今日の復習キューを取得するためのハンドラ。
// ?as_of=YYYY-MM-DD で基準日を、?limit= で件数を指定できます。
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviews"))

	asOf := h.clock.Now()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			logger.Warn("Invalid as_of query param", slog.String("as_of", raw))
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "as_ofはYYYY-MM-DD形式で指定してください。", "as_of", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		asOf = parsed
	}

	limit, appErr := webutil.ParseOptionalIntQuery(r, "limit")
	if appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	queue, err := h.service.BuildQueue(r.Context(), asOf, limit)
	if err != nil {
		logger.Error("Error building review queue in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review queue returned", slog.Int("count", len(queue)))
	webutil.RespondWithJSON(w, http.StatusOK, queue, logger)
}
