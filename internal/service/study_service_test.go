// internal/service/study_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart_vocab/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudyService_Submit_Validation(t *testing.T) {
	ctx := context.Background()
	day0 := today()
	stack := newTestStack(t, fixedClock{now: day0})
	word := stack.createWord(t, "laconic")

	tests := []struct {
		name         string
		mode         model.StudyMode
		responseTime float64
	}{
		{name: "異常系: 未知の学習モード", mode: model.StudyMode("cramming"), responseTime: 3.0},
		{name: "異常系: 空の学習モード", mode: model.StudyMode(""), responseTime: 3.0},
		{name: "異常系: 負の回答時間", mode: model.ModeFlashcard, responseTime: -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stack.study.Submit(ctx, word.WordID, tt.mode, true, tt.responseTime, day0)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidInput))
		})
	}

	// バリデーション失敗では履歴が残らない
	count, err := stack.recordRepo.CountByWordID(ctx, stack.db, word.WordID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStudyService_Submit_RecordsHistoryAndStatistics(t *testing.T) {
	ctx := context.Background()
	day0 := today()
	stack := newTestStack(t, fixedClock{now: day0})
	word := stack.createWord(t, "sanguine")

	resp, err := stack.study.Submit(ctx, word.WordID, model.ModeFlashcard, true, 3.5, day0)
	require.NoError(t, err)

	assert.Equal(t, word.WordID, resp.WordID)
	assert.InDelta(t, 2.6, resp.EaseFactor, 0.0001)
	assert.Equal(t, 1, resp.IntervalDays)
	require.NotNil(t, resp.NextDueDate)
	assert.Equal(t, day0.AddDate(0, 0, 1), *resp.NextDueDate)

	// 履歴と統計が同時に更新されている
	records, err := stack.study.GetHistory(ctx, word.WordID, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, resp.RecordID, records[0].RecordID)
	assert.Equal(t, model.ModeFlashcard, records[0].Mode)
	assert.True(t, records[0].IsCorrect)
	assert.InDelta(t, 3.5, records[0].ResponseTime, 0.0001)

	stats, err := stack.statsRepo.FindByWordID(ctx, stack.db, word.WordID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalAttempts)
}

// 単語が存在しない場合は統計も履歴も一切書き込まれない
func TestStudyService_Submit_UnknownWordLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	day0 := today()
	stack := newTestStack(t, fixedClock{now: day0})

	unknownID := uuid.New()
	_, err := stack.study.Submit(ctx, unknownID, model.ModeFlashcard, true, 3.0, day0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	count, err := stack.recordRepo.CountByWordID(ctx, stack.db, unknownID)
	require.NoError(t, err)
	assert.Zero(t, count, "失敗した送信で履歴行が残ってはならない")
}

func TestStudyService_Submit_DefaultsStudiedAtFromClock(t *testing.T) {
	ctx := context.Background()
	day0 := today()
	stack := newTestStack(t, fixedClock{now: day0.Add(10 * time.Hour)})
	word := stack.createWord(t, "temporal")

	// studiedAt ゼロ値 → Clock.Now() が使われる
	resp, err := stack.study.Submit(ctx, word.WordID, model.ModeFlashcard, true, 3.0, time.Time{})
	require.NoError(t, err)

	require.NotNil(t, resp.NextDueDate)
	assert.Equal(t, day0.AddDate(0, 0, 1), *resp.NextDueDate, "期日は学習時刻の属する日の0時を基準にする")

	records, err := stack.study.GetHistory(ctx, word.WordID, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].StudiedAt.Equal(day0.Add(10*time.Hour)))
}

func TestStudyService_GetHistory_OrderAndLimit(t *testing.T) {
	ctx := context.Background()
	day0 := today()
	stack := newTestStack(t, fixedClock{now: day0})
	word := stack.createWord(t, "chronology")

	for i := 0; i < 3; i++ {
		_, err := stack.study.Submit(ctx, word.WordID, model.ModeFlashcard, true, 3.0, day0.AddDate(0, 0, i))
		require.NoError(t, err)
	}

	records, err := stack.study.GetHistory(ctx, word.WordID, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// 新しい順
	assert.True(t, records[0].StudiedAt.After(records[1].StudiedAt))
}
