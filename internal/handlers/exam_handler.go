// internal/handlers/exam_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"smart_vocab/internal/model"
	"smart_vocab/internal/service"
	"smart_vocab/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ExamHandler struct {
	service service.ExamService
	logger  *slog.Logger
}

func NewExamHandler(s service.ExamService, logger *slog.Logger) *ExamHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExamHandler{
		service: s,
		logger:  logger,
	}
}

// PostExam は試験1回分の結果をまとめて登録するためのハンドラ
func (h *ExamHandler) PostExam(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostExam"))

	var req model.PostExamRequest
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

	session, err := h.service.CreateSession(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating exam session in service", slog.Any("error", err), slog.Int("total_words", len(req.Results)))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Exam session created successfully",
		slog.String("session_id", session.SessionID.String()),
		slog.Int("total_words", session.TotalWords),
		slog.Int("correct_count", session.CorrectCount),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, session, logger)
}

// GetExams は試験履歴(新しい順)を取得するためのハンドラ
func (h *ExamHandler) GetExams(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetExams"))

	limit, appErr := webutil.ParseOptionalIntQuery(r, "limit")
	if appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}
	effLimit := 0
	if limit != nil {
		effLimit = *limit
	}

	sessions, err := h.service.GetHistory(r.Context(), effLimit)
	if err != nil {
		logger.Error("Error listing exam sessions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if sessions == nil {
		sessions = []*model.ExamSession{}
	}
	logger.Info("Exam sessions listed successfully", slog.Int("count", len(sessions)))
	webutil.RespondWithJSON(w, http.StatusOK, sessions, logger)
}

// GetExam は特定の試験セッションを明細付きで取得するためのハンドラ
func (h *ExamHandler) GetExam(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetExam"))

	sessionIDStr := chi.URLParam(r, "session_id")
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		logger.Warn("Invalid session ID format in URL", slog.String("session_id_str", sessionIDStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "session_idの形式が正しくありません。", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	session, err := h.service.GetSessionDetails(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Exam session not found in service")
		} else {
			logger.Error("Error getting exam session from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, session, logger)
}
