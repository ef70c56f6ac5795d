// internal/service/word_service_test.go
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

func TestWordService_CreateWord(t *testing.T) {
	ctx := context.Background()
	stack := newTestStack(t, fixedClock{now: today()})

	t.Run("正常系: 単語を登録できる", func(t *testing.T) {
		word, err := stack.words.CreateWord(ctx, &model.PostWordRequest{
			Term:       "ubiquitous",
			Definition: "至る所にある",
			Memo:       "ubique (ラテン語)",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, word.WordID)
		assert.Equal(t, "ubiquitous", word.Term)
		assert.False(t, word.IsFavorite)
	})

	t.Run("異常系: 表記の重複は409相当", func(t *testing.T) {
		_, err := stack.words.CreateWord(ctx, &model.PostWordRequest{
			Term:       "ubiquitous",
			Definition: "別の意味",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrConflict))
	})

	t.Run("異常系: 空白のみの表記", func(t *testing.T) {
		_, err := stack.words.CreateWord(ctx, &model.PostWordRequest{
			Term:       "   ",
			Definition: "意味",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	})

	t.Run("正常系: 前後の空白は取り除かれる", func(t *testing.T) {
		word, err := stack.words.CreateWord(ctx, &model.PostWordRequest{
			Term:       "  gregarious  ",
			Definition: "社交的な",
		})
		require.NoError(t, err)
		assert.Equal(t, "gregarious", word.Term)
	})
}

func TestWordService_UpdateWord(t *testing.T) {
	ctx := context.Background()
	stack := newTestStack(t, fixedClock{now: today()})

	word := stack.createWord(t, "meticulous")
	other := stack.createWord(t, "fastidious")

	t.Run("正常系: 一部のフィールドだけ更新できる", func(t *testing.T) {
		newDef := "細部まで気を配る"
		updated, err := stack.words.UpdateWord(ctx, word.WordID, &model.PatchWordRequest{
			Definition: &newDef,
		})
		require.NoError(t, err)
		assert.Equal(t, "meticulous", updated.Term)
		assert.Equal(t, newDef, updated.Definition)
	})

	t.Run("異常系: 他の単語と同じ表記への変更は拒否", func(t *testing.T) {
		dup := other.Term
		_, err := stack.words.UpdateWord(ctx, word.WordID, &model.PatchWordRequest{
			Term: &dup,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrConflict))
	})

	t.Run("正常系: 自分自身と同じ表記は重複にならない", func(t *testing.T) {
		same := "meticulous"
		updated, err := stack.words.UpdateWord(ctx, word.WordID, &model.PatchWordRequest{
			Term: &same,
		})
		require.NoError(t, err)
		assert.Equal(t, "meticulous", updated.Term)
	})

	t.Run("異常系: 存在しない単語", func(t *testing.T) {
		memo := "メモ"
		_, err := stack.words.UpdateWord(ctx, uuid.New(), &model.PatchWordRequest{
			Memo: &memo,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}

func TestWordService_ToggleFavorite(t *testing.T) {
	ctx := context.Background()
	stack := newTestStack(t, fixedClock{now: today()})
	word := stack.createWord(t, "serendipity")

	updated, err := stack.words.ToggleFavorite(ctx, word.WordID)
	require.NoError(t, err)
	assert.True(t, updated.IsFavorite)

	updated, err = stack.words.ToggleFavorite(ctx, word.WordID)
	require.NoError(t, err)
	assert.False(t, updated.IsFavorite)
}

func TestWordService_SearchWords(t *testing.T) {
	ctx := context.Background()
	stack := newTestStack(t, fixedClock{now: today()})

	stack.createWord(t, "transient")
	stack.createWord(t, "transparent")
	stack.createWord(t, "opaque")

	words, err := stack.words.SearchWords(ctx, "trans")
	require.NoError(t, err)
	require.Len(t, words, 2)
	// 表記の昇順
	assert.Equal(t, "transient", words[0].Term)
	assert.Equal(t, "transparent", words[1].Term)

	// 空キーワードは全件
	words, err = stack.words.SearchWords(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, words, 3)
}

// 単語削除は従属データを連鎖削除するが、試験セッションの記録は壊さない
func TestWordService_DeleteWord_Cascade(t *testing.T) {
	ctx := context.Background()
	day0 := today()
	stack := newTestStack(t, fixedClock{now: day0})

	target := stack.createWord(t, "obsolete")
	sibling := stack.createWord(t, "surviving")

	// 学習履歴 + 誤答ノートを作る
	_, err := stack.study.Submit(ctx, target.WordID, model.ModeFlashcard, false, 3.0, day0)
	require.NoError(t, err)

	// 両方の単語を含む試験セッション
	session, err := stack.exam.CreateSession(ctx, &model.PostExamRequest{
		ExamType: string(model.ExamShortAnswer),
		Results: []model.ExamQuestionResult{
			{WordID: target.WordID, IsCorrect: boolPtr(false)},
			{WordID: sibling.WordID, IsCorrect: boolPtr(true)},
		},
	})
	require.NoError(t, err)

	require.NoError(t, stack.words.DeleteWord(ctx, target.WordID))

	// 単語本体と従属データが消えている
	_, err = stack.words.GetWord(ctx, target.WordID)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	_, err = stack.statsRepo.FindByWordID(ctx, stack.db, target.WordID)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	count, err := stack.recordRepo.CountByWordID(ctx, stack.db, target.WordID)
	require.NoError(t, err)
	assert.Zero(t, count)

	flagged, err := stack.notes.IsFlagged(ctx, nil, target.WordID)
	require.NoError(t, err)
	assert.False(t, flagged)

	// 試験セッションのヘッダと他の単語の明細は残る
	loaded, err := stack.exam.GetSessionDetails(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.TotalWords, "ヘッダの集計値は当時のまま")
	require.Len(t, loaded.Details, 1)
	assert.Equal(t, sibling.WordID, loaded.Details[0].WordID)

	t.Run("異常系: 二重削除", func(t *testing.T) {
		err := stack.words.DeleteWord(ctx, target.WordID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}

func TestWordService_GetStatistics(t *testing.T) {
	ctx := context.Background()
	day0 := today()
	stack := newTestStack(t, fixedClock{now: day0})
	word := stack.createWord(t, "nascent")

	t.Run("正常系: 未学習の単語は初期値を返す", func(t *testing.T) {
		stats, err := stack.words.GetStatistics(ctx, word.WordID)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalAttempts)
		assert.InDelta(t, 2.5, stats.EaseFactor, 0.0001)
		assert.Nil(t, stats.NextDueDate)
	})

	t.Run("正常系: 学習後は実績を返す", func(t *testing.T) {
		_, err := stack.study.Submit(ctx, word.WordID, model.ModeFlashcard, true, 3.0, day0)
		require.NoError(t, err)

		stats, err := stack.words.GetStatistics(ctx, word.WordID)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TotalAttempts)
		assert.NotNil(t, stats.NextDueDate)
	})

	t.Run("異常系: 存在しない単語", func(t *testing.T) {
		_, err := stack.words.GetStatistics(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}
