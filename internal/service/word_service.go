// internal/service/word_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"smart_vocab/internal/config"
	"smart_vocab/internal/middleware"
	"smart_vocab/internal/model"
	"smart_vocab/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WordService は単語帳のCRUDを担当します。
// 削除時は学習履歴・統計・誤答ノート・試験明細を同一トランザクションで連鎖削除します。
type WordService interface {
	CreateWord(ctx context.Context, req *model.PostWordRequest) (*model.Word, error)
	GetWord(ctx context.Context, wordID uuid.UUID) (*model.Word, error)
	ListWords(ctx context.Context) ([]*model.Word, error)
	SearchWords(ctx context.Context, keyword string) ([]*model.Word, error)
	UpdateWord(ctx context.Context, wordID uuid.UUID, req *model.PatchWordRequest) (*model.Word, error)
	ToggleFavorite(ctx context.Context, wordID uuid.UUID) (*model.Word, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
	GetStatistics(ctx context.Context, wordID uuid.UUID) (*model.WordStatistics, error)
}

type wordService struct {
	db         *gorm.DB
	wordRepo   repository.WordRepository
	statsRepo  repository.StatisticsRepository
	recordRepo repository.StudyRecordRepository
	noteRepo   repository.WrongNoteRepository
	examRepo   repository.ExamRepository
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, statsRepo repository.StatisticsRepository, recordRepo repository.StudyRecordRepository, noteRepo repository.WrongNoteRepository, examRepo repository.ExamRepository) WordService {
	return &wordService{
		db:         db,
		wordRepo:   wordRepo,
		statsRepo:  statsRepo,
		recordRepo: recordRepo,
		noteRepo:   noteRepo,
		examRepo:   examRepo,
	}
}

func (s *wordService) CreateWord(ctx context.Context, req *model.PostWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	term := strings.TrimSpace(req.Term)
	if term == "" {
		return nil, model.NewAppError("INVALID_TERM", "単語を入力してください。", "term", model.ErrInvalidInput)
	}

	word := &model.Word{
		WordID:     uuid.New(),
		Term:       term,
		Definition: req.Definition,
		Memo:       req.Memo,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, checkErr := s.wordRepo.CheckTermExists(ctx, tx, term, nil)
		if checkErr != nil {
			return checkErr
		}
		if exists {
			return model.NewAppError("DUPLICATE_TERM", "同じ単語が既に登録されています。", "term", model.ErrConflict)
		}
		if createErr := s.wordRepo.Create(ctx, tx, word); createErr != nil {
			if errors.Is(createErr, model.ErrConflict) {
				// 同時登録のすり抜けも一意制約で拾う
				return model.NewAppError("DUPLICATE_TERM", "同じ単語が既に登録されています。", "term", model.ErrConflict)
			}
			return createErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Word created", "word_id", word.WordID, "term", word.Term)
	return word, nil
}

func (s *wordService) GetWord(ctx context.Context, wordID uuid.UUID) (*model.Word, error) {
	word, err := s.wordRepo.FindByID(ctx, s.db, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "対象の単語が見つかりません。", "word_id", model.ErrNotFound)
		}
		return nil, err
	}
	return word, nil
}

func (s *wordService) ListWords(ctx context.Context) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	words, err := s.wordRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", model.ErrInternalServer)
	}
	return words, nil
}

func (s *wordService) SearchWords(ctx context.Context, keyword string) ([]*model.Word, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.ListWords(ctx)
	}
	words, err := s.wordRepo.Search(ctx, s.db, keyword)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の検索に失敗しました。", "", model.ErrInternalServer)
	}
	return words, nil
}

func (s *wordService) UpdateWord(ctx context.Context, wordID uuid.UUID, req *model.PatchWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	updates := map[string]interface{}{}
	if req.Term != nil {
		term := strings.TrimSpace(*req.Term)
		if term == "" {
			return nil, model.NewAppError("INVALID_TERM", "単語を入力してください。", "term", model.ErrInvalidInput)
		}
		updates["term"] = term
	}
	if req.Definition != nil {
		updates["definition"] = *req.Definition
	}
	if req.Memo != nil {
		updates["memo"] = *req.Memo
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if term, ok := updates["term"].(string); ok {
			exists, checkErr := s.wordRepo.CheckTermExists(ctx, tx, term, &wordID)
			if checkErr != nil {
				return checkErr
			}
			if exists {
				return model.NewAppError("DUPLICATE_TERM", "同じ単語が既に登録されています。", "term", model.ErrConflict)
			}
		}
		if updateErr := s.wordRepo.Update(ctx, tx, wordID, updates); updateErr != nil {
			if errors.Is(updateErr, model.ErrNotFound) {
				return model.NewAppError("WORD_NOT_FOUND", "対象の単語が見つかりません。", "word_id", model.ErrNotFound)
			}
			if errors.Is(updateErr, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_TERM", "同じ単語が既に登録されています。", "term", model.ErrConflict)
			}
			return updateErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		// 変更なしでも現在の状態を返す (PATCHの冪等性)
		return s.GetWord(ctx, wordID)
	}

	logger.Info("Word updated", "word_id", wordID, "fields", len(updates))
	return s.GetWord(ctx, wordID)
}

func (s *wordService) ToggleFavorite(ctx context.Context, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.Word
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		word, findErr := s.wordRepo.FindByID(ctx, tx, wordID)
		if findErr != nil {
			if errors.Is(findErr, model.ErrNotFound) {
				return model.NewAppError("WORD_NOT_FOUND", "対象の単語が見つかりません。", "word_id", model.ErrNotFound)
			}
			return findErr
		}
		if updateErr := s.wordRepo.Update(ctx, tx, wordID, map[string]interface{}{"is_favorite": !word.IsFavorite}); updateErr != nil {
			return updateErr
		}
		word.IsFavorite = !word.IsFavorite
		updated = word
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Word favorite toggled", "word_id", wordID, "is_favorite", updated.IsFavorite)
	return updated, nil
}

// DeleteWord は単語本体と従属データをまとめて削除します。
// 過去の試験セッションのヘッダと他単語の明細は残します (成績集計を壊さない)。
func (s *wordService) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if deleteErr := s.wordRepo.Delete(ctx, tx, wordID); deleteErr != nil {
			if errors.Is(deleteErr, model.ErrNotFound) {
				return model.NewAppError("WORD_NOT_FOUND", "対象の単語が見つかりません。", "word_id", model.ErrNotFound)
			}
			return deleteErr
		}
		if cascadeErr := s.recordRepo.DeleteByWordID(ctx, tx, wordID); cascadeErr != nil {
			return cascadeErr
		}
		if cascadeErr := s.statsRepo.DeleteByWordID(ctx, tx, wordID); cascadeErr != nil {
			return cascadeErr
		}
		if cascadeErr := s.noteRepo.DeleteByWordID(ctx, tx, wordID); cascadeErr != nil {
			return cascadeErr
		}
		if cascadeErr := s.examRepo.DeleteDetailsByWordID(ctx, tx, wordID); cascadeErr != nil {
			return cascadeErr
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Word deleted with dependents", "word_id", wordID)
	return nil
}

// GetStatistics は統計を返します。未学習の単語は初期値 (EF 2.5, 間隔0) を返します。
func (s *wordService) GetStatistics(ctx context.Context, wordID uuid.UUID) (*model.WordStatistics, error) {
	if _, err := s.GetWord(ctx, wordID); err != nil {
		return nil, err
	}
	stats, err := s.statsRepo.FindByWordID(ctx, s.db, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.WordStatistics{
				WordID:     wordID,
				EaseFactor: config.SM2InitialEaseFactor,
			}, nil
		}
		return nil, err
	}
	return stats, nil
}
