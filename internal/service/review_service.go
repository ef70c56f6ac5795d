// internal/service/review_service.go
package service

import (
	"context"
	"sort"
	"time"

	"smart_vocab/internal/config"
	"smart_vocab/internal/middleware"
	"smart_vocab/internal/model"
	"smart_vocab/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService はその日の復習キューを組み立てる利用者向けの入口です。
type ReviewService interface {
	// BuildQueue は asOf 時点で学習すべき単語を順序付きで返します。
	// limit が nil のときは設定 daily_word_goal を上限に使います。
	// limit 0 は空を返し、負数はエラーです。同じ入力と状態に対して結果は決定的です。
	BuildQueue(ctx context.Context, asOf time.Time, limit *int) ([]*model.ReviewWordResponse, error)
	CountDue(ctx context.Context, asOf time.Time) (int64, error)
}

type reviewService struct {
	db          *gorm.DB
	wordRepo    repository.WordRepository
	statsRepo   repository.StatisticsRepository
	noteRepo    repository.WrongNoteRepository
	settingRepo repository.SettingRepository
	cfg         *config.Config
}

func NewReviewService(db *gorm.DB, wordRepo repository.WordRepository, statsRepo repository.StatisticsRepository, noteRepo repository.WrongNoteRepository, settingRepo repository.SettingRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		db:          db,
		wordRepo:    wordRepo,
		statsRepo:   statsRepo,
		noteRepo:    noteRepo,
		settingRepo: settingRepo,
		cfg:         cfg,
	}
}

// queueEntry はソート用の中間表現です
type queueEntry struct {
	resp        *model.ReviewWordResponse
	overdueDays int
	reviewCount int
	createdAt   time.Time
	wordID      uuid.UUID
}

func (s *reviewService) BuildQueue(ctx context.Context, asOf time.Time, limit *int) ([]*model.ReviewWordResponse, error) {
	logger := middleware.GetLogger(ctx)

	if limit != nil && *limit < 0 {
		return nil, model.NewAppError("INVALID_LIMIT", "取得件数は0以上で指定してください。", "limit", model.ErrInvalidInput)
	}

	effLimit := 0
	if limit != nil {
		effLimit = *limit
	} else {
		goal, err := s.settingRepo.GetInt(ctx, s.db, model.SettingDailyWordGoal, s.cfg.App.ReviewLimit)
		if err != nil {
			logger.Error("Failed to read daily word goal", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "設定の読み込みに失敗しました。", "", model.ErrInternalServer)
		}
		effLimit = goal
	}
	if effLimit == 0 {
		return []*model.ReviewWordResponse{}, nil
	}

	asOfDay := startOfDay(asOf)

	notes, err := s.noteRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to load wrong notes for queue", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習キューの構築に失敗しました。", "", model.ErrInternalServer)
	}

	flagged := make(map[uuid.UUID]bool, len(notes))
	wrongEntries := make([]queueEntry, 0, len(notes))
	for _, n := range notes {
		if n.Word == nil {
			logger.Warn("Wrong note without word, skipping", "note_id", n.NoteID)
			continue
		}
		flagged[n.WordID] = true
		entry := queueEntry{
			resp: &model.ReviewWordResponse{
				WordID:     n.WordID,
				Term:       n.Word.Term,
				Definition: n.Word.Definition,
				Memo:       n.Word.Memo,
				Reason:     model.ReasonWrongNote,
			},
			reviewCount: n.ReviewCount,
			wordID:      n.WordID,
		}
		if st := n.Word.Statistics; st != nil {
			entry.resp.EaseFactor = st.EaseFactor
			entry.resp.NextDueDate = st.NextDueDate
			if st.NextDueDate != nil {
				entry.overdueDays = int(asOfDay.Sub(startOfDay(*st.NextDueDate)).Hours() / 24)
			}
		}
		wrongEntries = append(wrongEntries, entry)
	}
	// 誤答ノート: 期日超過が大きい順 → 復習回数が多い順 → ID順
	sort.Slice(wrongEntries, func(i, j int) bool {
		a, b := wrongEntries[i], wrongEntries[j]
		if a.overdueDays != b.overdueDays {
			return a.overdueDays > b.overdueDays
		}
		if a.reviewCount != b.reviewCount {
			return a.reviewCount > b.reviewCount
		}
		return a.wordID.String() < b.wordID.String()
	})

	studiedIDs, err := s.statsRepo.FindStudiedWordIDs(ctx, s.db)
	if err != nil {
		logger.Error("Failed to load studied word ids", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習キューの構築に失敗しました。", "", model.ErrInternalServer)
	}
	studied := make(map[uuid.UUID]bool, len(studiedIDs))
	for _, id := range studiedIDs {
		studied[id] = true
	}

	allWords, err := s.wordRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to load words for queue", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習キューの構築に失敗しました。", "", model.ErrInternalServer)
	}

	newEntries := make([]queueEntry, 0)
	for _, w := range allWords {
		if studied[w.WordID] || flagged[w.WordID] {
			continue
		}
		newEntries = append(newEntries, queueEntry{
			resp: &model.ReviewWordResponse{
				WordID:     w.WordID,
				Term:       w.Term,
				Definition: w.Definition,
				Memo:       w.Memo,
				Reason:     model.ReasonNew,
			},
			createdAt: w.CreatedAt,
			wordID:    w.WordID,
		})
	}
	// 未学習: 作成日の古い順 → ID順
	sort.Slice(newEntries, func(i, j int) bool {
		a, b := newEntries[i], newEntries[j]
		if !a.createdAt.Equal(b.createdAt) {
			return a.createdAt.Before(b.createdAt)
		}
		return a.wordID.String() < b.wordID.String()
	})

	dueStats, err := s.statsRepo.FindDue(ctx, s.db, asOfDay)
	if err != nil {
		logger.Error("Failed to load due statistics", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習キューの構築に失敗しました。", "", model.ErrInternalServer)
	}

	dueEntries := make([]queueEntry, 0, len(dueStats))
	for _, st := range dueStats {
		if flagged[st.WordID] {
			continue // 誤答ノート側で既に含めている
		}
		if st.Word == nil {
			logger.Warn("Due statistics without word, skipping", "word_id", st.WordID)
			continue
		}
		entry := queueEntry{
			resp: &model.ReviewWordResponse{
				WordID:      st.WordID,
				Term:        st.Word.Term,
				Definition:  st.Word.Definition,
				Memo:        st.Word.Memo,
				Reason:      model.ReasonDue,
				EaseFactor:  st.EaseFactor,
				NextDueDate: st.NextDueDate,
			},
			wordID: st.WordID,
		}
		if st.NextDueDate != nil {
			entry.overdueDays = int(asOfDay.Sub(startOfDay(*st.NextDueDate)).Hours() / 24)
		}
		dueEntries = append(dueEntries, entry)
	}
	// 期日到来分: 期日超過が大きい順 → ID順
	sort.Slice(dueEntries, func(i, j int) bool {
		a, b := dueEntries[i], dueEntries[j]
		if a.overdueDays != b.overdueDays {
			return a.overdueDays > b.overdueDays
		}
		return a.wordID.String() < b.wordID.String()
	})

	ordered := make([]*model.ReviewWordResponse, 0, len(wrongEntries)+len(newEntries)+len(dueEntries))
	for _, e := range wrongEntries {
		ordered = append(ordered, e.resp)
	}
	for _, e := range newEntries {
		ordered = append(ordered, e.resp)
	}
	for _, e := range dueEntries {
		ordered = append(ordered, e.resp)
	}

	if len(ordered) > effLimit {
		ordered = ordered[:effLimit]
	}

	logger.Info("Review queue built",
		"as_of", asOfDay.Format("2006-01-02"),
		"wrong_note", len(wrongEntries),
		"new", len(newEntries),
		"due", len(dueEntries),
		"returned", len(ordered),
	)
	return ordered, nil
}

func (s *reviewService) CountDue(ctx context.Context, asOf time.Time) (int64, error) {
	dueStats, err := s.statsRepo.FindDue(ctx, s.db, startOfDay(asOf))
	if err != nil {
		return 0, err
	}
	return int64(len(dueStats)), nil
}
