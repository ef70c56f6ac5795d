// internal/service/keyed_mutex.go
package service

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// keyedMutex は単語IDごとの排他区間を提供します。
// 統計のread-modify-writeを単語単位で直列化し、更新の取りこぼしを防ぎます。
// 言語レベルの単一ロックではなく単語別にすることで、異なる単語の同時更新は妨げません。
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*refLock
}

type refLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uuid.UUID]*refLock)}
}

func (k *keyedMutex) lock(id uuid.UUID) {
	k.mu.Lock()
	l, ok := k.locks[id]
	if !ok {
		l = &refLock{}
		k.locks[id] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
}

func (k *keyedMutex) unlock(id uuid.UUID) {
	k.mu.Lock()
	l := k.locks[id]
	l.refs--
	if l.refs == 0 {
		delete(k.locks, id)
	}
	k.mu.Unlock()

	l.mu.Unlock()
}

// lockAll は複数の単語IDをID順に取得します。
// 常に同じ順序で取得することでバッチ同士のデッドロックを避けます。
func (k *keyedMutex) lockAll(ids []uuid.UUID) (unlock func()) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	sort.Slice(unique, func(i, j int) bool {
		return unique[i].String() < unique[j].String()
	})

	for _, id := range unique {
		k.lock(id)
	}
	return func() {
		// 取得の逆順で解放
		for i := len(unique) - 1; i >= 0; i-- {
			k.unlock(unique[i])
		}
	}
}
