// internal/service/exam_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"smart_vocab/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamService_CreateSession(t *testing.T) {
	ctx := context.Background()
	day0 := today()
	stack := newTestStack(t, fixedClock{now: day0})

	wordA := stack.createWord(t, "apple")
	wordB := stack.createWord(t, "banana")

	req := &model.PostExamRequest{
		ExamType:         string(model.ExamShortAnswer),
		TimeTakenSeconds: 120,
		Results: []model.ExamQuestionResult{
			{WordID: wordA.WordID, UserAnswer: "りんご", IsCorrect: boolPtr(true), ResponseTime: 4.0},
			{WordID: wordB.WordID, UserAnswer: "ばなな?", IsCorrect: boolPtr(false), ResponseTime: 8.0},
		},
	}

	session, err := stack.exam.CreateSession(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 2, session.TotalWords)
	assert.Equal(t, 1, session.CorrectCount)
	assert.Equal(t, 120, session.TimeTakenSeconds)

	// 明細が設問順に残る
	loaded, err := stack.exam.GetSessionDetails(ctx, session.SessionID)
	require.NoError(t, err)
	require.Len(t, loaded.Details, 2)
	assert.Equal(t, 1, loaded.Details[0].QuestionNumber)
	assert.Equal(t, wordA.WordID, loaded.Details[0].WordID)
	assert.Equal(t, 2, loaded.Details[1].QuestionNumber)
	assert.Equal(t, "ばなな?", loaded.Details[1].UserAnswer)

	// 各設問が学習イベントとして統計に反映される
	statsA, err := stack.statsRepo.FindByWordID(ctx, stack.db, wordA.WordID)
	require.NoError(t, err)
	assert.Equal(t, 1, statsA.TotalAttempts)
	assert.Equal(t, 1, statsA.CorrectCount)

	statsB, err := stack.statsRepo.FindByWordID(ctx, stack.db, wordB.WordID)
	require.NoError(t, err)
	assert.Equal(t, 1, statsB.WrongCount)

	// 学習履歴は exam モードで残る
	records, err := stack.study.GetHistory(ctx, wordA.WordID, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, model.ModeExam, records[0].Mode)

	// 誤答した単語は誤答ノートに入る
	flagged, err := stack.notes.IsFlagged(ctx, nil, wordB.WordID)
	require.NoError(t, err)
	assert.True(t, flagged)
}

// 未知の単語が1問でも混ざっていたら何も書き込まれない
func TestExamService_CreateSession_Atomicity(t *testing.T) {
	ctx := context.Background()
	day0 := today()
	stack := newTestStack(t, fixedClock{now: day0})

	wordA := stack.createWord(t, "cherry")

	req := &model.PostExamRequest{
		ExamType: string(model.ExamMultipleChoice),
		Results: []model.ExamQuestionResult{
			{WordID: wordA.WordID, IsCorrect: boolPtr(true)},
			{WordID: uuid.New(), IsCorrect: boolPtr(false)}, // 存在しない単語
		},
	}

	_, err := stack.exam.CreateSession(ctx, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	// セッション・明細・履歴・統計のいずれも残っていない
	sessions, err := stack.exam.GetHistory(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	count, err := stack.recordRepo.CountByWordID(ctx, stack.db, wordA.WordID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = stack.statsRepo.FindByWordID(ctx, stack.db, wordA.WordID)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestExamService_CreateSession_Validation(t *testing.T) {
	ctx := context.Background()
	day0 := today()
	stack := newTestStack(t, fixedClock{now: day0})
	word := stack.createWord(t, "durian")

	t.Run("異常系: 未知の試験形式", func(t *testing.T) {
		req := &model.PostExamRequest{
			ExamType: "oral",
			Results: []model.ExamQuestionResult{
				{WordID: word.WordID, IsCorrect: boolPtr(true)},
			},
		}
		_, err := stack.exam.CreateSession(ctx, req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	})

	t.Run("異常系: 設問なし", func(t *testing.T) {
		req := &model.PostExamRequest{
			ExamType: string(model.ExamShortAnswer),
			Results:  []model.ExamQuestionResult{},
		}
		_, err := stack.exam.CreateSession(ctx, req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	})
}

func TestExamService_GetHistory_Order(t *testing.T) {
	ctx := context.Background()
	day0 := today()
	stack := newTestStack(t, fixedClock{now: day0})
	word := stack.createWord(t, "elderberry")

	newSession := func() uuid.UUID {
		req := &model.PostExamRequest{
			ExamType: string(model.ExamShortAnswer),
			Results: []model.ExamQuestionResult{
				{WordID: word.WordID, IsCorrect: boolPtr(true)},
			},
		}
		session, err := stack.exam.CreateSession(ctx, req)
		require.NoError(t, err)
		return session.SessionID
	}
	first := newSession()
	second := newSession()

	sessions, err := stack.exam.GetHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	// taken_at が同一でも session_id で順序が安定する
	ids := []uuid.UUID{sessions[0].SessionID, sessions[1].SessionID}
	assert.Contains(t, ids, first)
	assert.Contains(t, ids, second)
	assert.True(t, ids[0].String() < ids[1].String())
}

func TestExamService_GetSessionDetails_NotFound(t *testing.T) {
	ctx := context.Background()
	stack := newTestStack(t, fixedClock{now: today()})

	_, err := stack.exam.GetSessionDetails(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}
