// internal/handlers/wrong_note_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"smart_vocab/internal/model"
	"smart_vocab/internal/service"
	"smart_vocab/internal/webutil"
)

type WrongNoteHandler struct {
	manager service.WrongNoteManager
	logger  *slog.Logger
}

func NewWrongNoteHandler(m service.WrongNoteManager, logger *slog.Logger) *WrongNoteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WrongNoteHandler{
		manager: m,
		logger:  logger,
	}
}

// GetWrongNotes は誤答ノートの一覧を取得するためのハンドラ。
// 登録・解除はスケジューラが自動で行うため、読み取り専用です。
func (h *WrongNoteHandler) GetWrongNotes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWrongNotes"))

	notes, err := h.manager.List(r.Context())
	if err != nil {
		logger.Error("Error listing wrong notes in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if notes == nil {
		notes = []*model.WrongNoteResponse{}
	}
	logger.Info("Wrong notes listed successfully", slog.Int("count", len(notes)))
	webutil.RespondWithJSON(w, http.StatusOK, notes, logger)
}
