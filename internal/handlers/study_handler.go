// internal/handlers/study_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"smart_vocab/internal/model"
	"smart_vocab/internal/service"
	"smart_vocab/internal/webutil"
)

type StudyHandler struct {
	service service.StudyService
	logger  *slog.Logger
}

func NewStudyHandler(s service.StudyService, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{
		service: s,
		logger:  logger,
	}
}

// PostAttempt は1回の学習結果を受け付けるためのハンドラ
func (h *StudyHandler) PostAttempt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAttempt"))

	var req model.SubmitAttemptRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := webutil.ValidateStruct(req, logger); appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("word_id", req.WordID.String()), slog.String("mode", req.Mode))

	// studiedAt はサーバ時刻。ゼロ値を渡すとサービス側で now が入る
	resp, err := h.service.Submit(r.Context(), req.WordID, model.StudyMode(req.Mode), *req.IsCorrect, req.ResponseTime, time.Time{})
	if err != nil {
		logger.Error("Error submitting attempt in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Attempt recorded successfully",
		slog.Bool("is_correct", *req.IsCorrect),
		slog.Int("interval_days", resp.IntervalDays),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}
