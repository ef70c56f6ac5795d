// internal/service/keyed_mutex_test.go
package service

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// 同じ単語への並行ロックが直列化されることを確認する
func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := newKeyedMutex()
	id := uuid.New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.lock(id)
			defer km.unlock(id)
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	// 全て解放されたらエントリは残らない
	km.mu.Lock()
	assert.Empty(t, km.locks)
	km.mu.Unlock()
}

// 逆順で渡された2つのバッチが互いにデッドロックしないことを確認する
func TestKeyedMutex_LockAllAvoidsDeadlock(t *testing.T) {
	km := newKeyedMutex()
	a, b := uuid.New(), uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		order := []uuid.UUID{a, b}
		if i%2 == 1 {
			order = []uuid.UUID{b, a}
		}
		wg.Add(1)
		go func(ids []uuid.UUID) {
			defer wg.Done()
			unlock := km.lockAll(ids)
			unlock()
		}(order)
	}
	wg.Wait()
}

// 重複するIDが含まれていても二重ロックしない
func TestKeyedMutex_LockAllDeduplicates(t *testing.T) {
	km := newKeyedMutex()
	id := uuid.New()

	unlock := km.lockAll([]uuid.UUID{id, id, id})
	unlock()

	km.mu.Lock()
	assert.Empty(t, km.locks)
	km.mu.Unlock()
}
