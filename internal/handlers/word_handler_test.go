// internal/handlers/word_handler_test.go
package handlers_test // テスト対象とは別のパッケージ名

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smart_vocab/internal/config"
	"smart_vocab/internal/handlers"
	"smart_vocab/internal/model"
	"smart_vocab/internal/repository"
	"smart_vocab/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// setupTestServer はインメモリSQLite上に実物のサービス一式を組み、
// 本番と同じルーティングのテストサーバを返します。
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() { sqlDB.Close() })

	cfg := &config.Config{}
	cfg.App.ReviewLimit = config.DefaultReviewLimit
	cfg.App.Scheduler = config.SchedulerConfig{
		FastAnswerSeconds:     config.DefaultFastAnswerSeconds,
		SlowAnswerSeconds:     config.DefaultSlowAnswerSeconds,
		WeakEaseThreshold:     config.DefaultWeakEaseThreshold,
		MasteredEaseThreshold: config.DefaultMasteredEaseThreshold,
		MasteredStreak:        config.DefaultMasteredStreak,
	}

	wordRepo := repository.NewGormWordRepository()
	statsRepo := repository.NewGormStatisticsRepository()
	recordRepo := repository.NewGormStudyRecordRepository()
	noteRepo := repository.NewGormWrongNoteRepository()
	examRepo := repository.NewGormExamRepository()
	settingRepo := repository.NewGormSettingRepository()

	clock := fixedClock{now: time.Now()}
	notes := service.NewWrongNoteManager(db, noteRepo)
	scheduler := service.NewSchedulerService(db, wordRepo, statsRepo, notes, cfg)
	studySvc := service.NewStudyService(db, recordRepo, scheduler, clock)
	reviewSvc := service.NewReviewService(db, wordRepo, statsRepo, noteRepo, settingRepo, cfg)
	examSvc := service.NewExamService(db, examRepo, wordRepo, studySvc, scheduler, clock)
	wordSvc := service.NewWordService(db, wordRepo, statsRepo, recordRepo, noteRepo, examRepo)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil)) // ログ出力を抑制
	wordHandler := handlers.NewWordHandler(wordSvc, studySvc, testLogger)
	studyHandler := handlers.NewStudyHandler(studySvc, testLogger)
	reviewHandler := handlers.NewReviewHandler(reviewSvc, clock, testLogger)
	wrongNoteHandler := handlers.NewWrongNoteHandler(notes, testLogger)
	examHandler := handlers.NewExamHandler(examSvc, testLogger)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/words", func(r chi.Router) {
			r.Post("/", wordHandler.PostWord)
			r.Get("/", wordHandler.GetWords)
			r.Get("/{word_id}", wordHandler.GetWord)
			r.Patch("/{word_id}", wordHandler.PatchWord)
			r.Delete("/{word_id}", wordHandler.DeleteWord)
			r.Put("/{word_id}/favorite", wordHandler.PutFavorite)
			r.Get("/{word_id}/statistics", wordHandler.GetWordStatistics)
			r.Get("/{word_id}/history", wordHandler.GetWordHistory)
		})
		r.Post("/study/attempts", studyHandler.PostAttempt)
		r.Get("/reviews", reviewHandler.GetReviews)
		r.Get("/wrong-notes", wrongNoteHandler.GetWrongNotes)
		r.Route("/exams", func(r chi.Router) {
			r.Post("/", examHandler.PostExam)
			r.Get("/", examHandler.GetExams)
			r.Get("/{session_id}", examHandler.GetExam)
		})
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonData)
	}
	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func TestWordAPI_CRUD(t *testing.T) {
	server := setupTestServer(t)
	base := server.URL + "/api/v1"

	// 作成
	resp := doJSON(t, http.MethodPost, base+"/words", map[string]string{
		"term":       "ineffable",
		"definition": "言葉にできない",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Word
	decodeBody(t, resp, &created)
	assert.Equal(t, "ineffable", created.Term)

	// 重複作成は 409
	resp = doJSON(t, http.MethodPost, base+"/words", map[string]string{
		"term":       "ineffable",
		"definition": "別の訳",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var errResp model.APIErrorResponse
	decodeBody(t, resp, &errResp)
	assert.Equal(t, "DUPLICATE_TERM", errResp.Error.Code)

	// バリデーションエラーは 400
	resp = doJSON(t, http.MethodPost, base+"/words", map[string]string{
		"definition": "termがない",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// 取得
	resp = doJSON(t, http.MethodGet, base+"/words/"+created.WordID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched model.Word
	decodeBody(t, resp, &fetched)
	assert.Equal(t, created.WordID, fetched.WordID)

	// 不正なUUIDは 400
	resp = doJSON(t, http.MethodGet, base+"/words/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// 存在しないIDは 404
	resp = doJSON(t, http.MethodGet, base+"/words/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// 部分更新
	resp = doJSON(t, http.MethodPatch, base+"/words/"+created.WordID.String(), map[string]string{
		"memo": "un-speak-able",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var patched model.Word
	decodeBody(t, resp, &patched)
	assert.Equal(t, "un-speak-able", patched.Memo)

	// お気に入り反転
	resp = doJSON(t, http.MethodPut, base+"/words/"+created.WordID.String()+"/favorite", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var favored model.Word
	decodeBody(t, resp, &favored)
	assert.True(t, favored.IsFavorite)

	// 削除
	resp = doJSON(t, http.MethodDelete, base+"/words/"+created.WordID.String(), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, base+"/words/"+created.WordID.String(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestStudyAPI_AttemptAndQueues(t *testing.T) {
	server := setupTestServer(t)
	base := server.URL + "/api/v1"

	// 単語を用意
	resp := doJSON(t, http.MethodPost, base+"/words", map[string]string{
		"term":       "volatile",
		"definition": "揮発性の",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var word model.Word
	decodeBody(t, resp, &word)

	// 誤答を送信
	resp = doJSON(t, http.MethodPost, base+"/study/attempts", map[string]interface{}{
		"word_id":       word.WordID,
		"mode":          "flashcard",
		"is_correct":    false,
		"response_time": 4.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var attempt model.SubmitAttemptResponse
	decodeBody(t, resp, &attempt)
	assert.Equal(t, 0, attempt.IntervalDays)
	assert.InDelta(t, 1.96, attempt.EaseFactor, 0.0001)

	// 誤答ノートに載っている
	resp = doJSON(t, http.MethodGet, base+"/wrong-notes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var notes []*model.WrongNoteResponse
	decodeBody(t, resp, &notes)
	require.Len(t, notes, 1)
	assert.Equal(t, word.WordID, notes[0].WordID)

	// 復習キューの先頭に誤答ノート枠で現れる
	resp = doJSON(t, http.MethodGet, base+"/reviews", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var queue []*model.ReviewWordResponse
	decodeBody(t, resp, &queue)
	require.Len(t, queue, 1)
	assert.Equal(t, model.ReasonWrongNote, queue[0].Reason)

	// 学習履歴が残っている
	resp = doJSON(t, http.MethodGet, base+"/words/"+word.WordID.String()+"/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var history []*model.StudyRecord
	decodeBody(t, resp, &history)
	require.Len(t, history, 1)
	assert.False(t, history[0].IsCorrect)

	// 未知のモードは 400
	resp = doJSON(t, http.MethodPost, base+"/study/attempts", map[string]interface{}{
		"word_id":    word.WordID,
		"mode":       "cramming",
		"is_correct": true,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestExamAPI_PostAndGet(t *testing.T) {
	server := setupTestServer(t)
	base := server.URL + "/api/v1"

	var words []model.Word
	for _, term := range []string{"candid", "caustic"} {
		resp := doJSON(t, http.MethodPost, base+"/words", map[string]string{
			"term":       term,
			"definition": term + " の意味",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var w model.Word
		decodeBody(t, resp, &w)
		words = append(words, w)
	}

	resp := doJSON(t, http.MethodPost, base+"/exams", map[string]interface{}{
		"exam_type":          "short_answer",
		"time_taken_seconds": 90,
		"results": []map[string]interface{}{
			{"word_id": words[0].WordID, "user_answer": "率直な", "is_correct": true, "response_time": 5.0},
			{"word_id": words[1].WordID, "user_answer": "", "is_correct": false},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var session model.ExamSession
	decodeBody(t, resp, &session)
	assert.Equal(t, 2, session.TotalWords)
	assert.Equal(t, 1, session.CorrectCount)

	// 一覧
	resp = doJSON(t, http.MethodGet, base+"/exams", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sessions []*model.ExamSession
	decodeBody(t, resp, &sessions)
	require.Len(t, sessions, 1)

	// 明細付き取得
	resp = doJSON(t, http.MethodGet, base+"/exams/"+session.SessionID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loaded model.ExamSession
	decodeBody(t, resp, &loaded)
	require.Len(t, loaded.Details, 2)
	assert.Equal(t, 1, loaded.Details[0].QuestionNumber)

	// 存在しない単語を含む試験は 404 で丸ごと失敗
	resp = doJSON(t, http.MethodPost, base+"/exams", map[string]interface{}{
		"exam_type": "short_answer",
		"results": []map[string]interface{}{
			{"word_id": uuid.New(), "is_correct": true},
		},
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, base+"/exams", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sessions = nil
	decodeBody(t, resp, &sessions)
	assert.Len(t, sessions, 1, "失敗した試験はセッションを作らない")
}
