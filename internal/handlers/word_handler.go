// internal/handlers/word_handler.go
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

type WordHandler struct {
	service  service.WordService
	studySvc service.StudyService
	logger   *slog.Logger
}

func NewWordHandler(s service.WordService, studySvc service.StudyService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service:  s,
		studySvc: studySvc,
		logger:   logger,
	}
}

// parseWordID はURLパラメータの word_id を取り出して検証します
func parseWordID(r *http.Request) (uuid.UUID, error) {
	wordIDStr := chi.URLParam(r, "word_id")
	wordID, err := uuid.Parse(wordIDStr)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", "word_idの形式が正しくありません。", "word_id", model.ErrInvalidInput)
	}
	return wordID, nil
}

// PostWord は新しい単語リソースを作成するためのハンドラ
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWord"))

	var req model.PostWordRequest
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

	word, err := h.service.CreateWord(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating word in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word created successfully", slog.String("word_id", word.WordID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, word, logger)
}

// GetWords は単語一覧の取得ハンドラ。?q= があれば部分一致検索になります
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWords"))

	keyword := r.URL.Query().Get("q")

	var (
		words []*model.Word
		err   error
	)
	if keyword != "" {
		words, err = h.service.SearchWords(r.Context(), keyword)
	} else {
		words, err = h.service.ListWords(r.Context())
	}
	if err != nil {
		logger.Error("Error listing words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.Word{}
	}
	logger.Info("Words listed successfully", slog.Int("count", len(words)))
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

// GetWord は特定の単語リソースを取得するためのハンドラ
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWord"))

	wordID, err := parseWordID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("word_id", wordID.String()))

	word, err := h.service.GetWord(r.Context(), wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Word not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting word from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// PatchWord は特定の単語リソースの一部を更新するためのハンドラ
func (h *WordHandler) PatchWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchWord"))

	wordID, err := parseWordID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("word_id", wordID.String()))

	var req model.PatchWordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PatchWord request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if req.Term == nil && req.Definition == nil && req.Memo == nil {
		logger.Warn("PatchWord called with no fields provided for update")
		appErr := model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := webutil.ValidateStruct(req, logger); appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	word, err := h.service.UpdateWord(r.Context(), wordID, &req)
	if err != nil {
		logger.Error("Error patching word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// PutFavorite はお気に入り状態を反転するためのハンドラ
func (h *WordHandler) PutFavorite(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutFavorite"))

	wordID, err := parseWordID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("word_id", wordID.String()))

	word, err := h.service.ToggleFavorite(r.Context(), wordID)
	if err != nil {
		logger.Error("Error toggling favorite in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word favorite toggled", slog.Bool("is_favorite", word.IsFavorite))
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// DeleteWord は単語と従属データを削除するためのハンドラ
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteWord"))

	wordID, err := parseWordID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("word_id", wordID.String()))

	if err := h.service.DeleteWord(r.Context(), wordID); err != nil {
		logger.Error("Error deleting word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// GetWordStatistics は単語の学習統計を取得するためのハンドラ
func (h *WordHandler) GetWordStatistics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWordStatistics"))

	wordID, err := parseWordID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("word_id", wordID.String()))

	stats, err := h.service.GetStatistics(r.Context(), wordID)
	if err != nil {
		logger.Error("Error getting statistics from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// GetWordHistory は単語の学習履歴(新しい順)を取得するためのハンドラ
func (h *WordHandler) GetWordHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWordHistory"))

	wordID, err := parseWordID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("word_id", wordID.String()))

	limit, appErr := webutil.ParseOptionalIntQuery(r, "limit")
	if appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}
	effLimit := 0
	if limit != nil {
		effLimit = *limit
	}

	records, err := h.studySvc.GetHistory(r.Context(), wordID, effLimit)
	if err != nil {
		logger.Error("Error getting study history from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if records == nil {
		records = []*model.StudyRecord{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, records, logger)
}
