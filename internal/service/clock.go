// internal/service/clock.go
package service

import "time"

// Clock は現在時刻の取得を抽象化します。
// スケジューリングを壁時計に依存させないためテストでは固定実装を注入します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func NewRealClock() Clock { return realClock{} }

// startOfDay は時刻を日付(その日の00:00)に切り詰めます。
// 期日の比較はすべて日付単位で行います。
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
