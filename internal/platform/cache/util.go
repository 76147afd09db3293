package cache

import (
	"time"
)

// TimeUntilNextMidnight は次の午前0時（日本時間）までの期間を返します。
// 打刻履歴キャッシュのTTLとして使用し、日付をまたいだ古い履歴が残らないようにします。
func TimeUntilNextMidnight() time.Duration {
	loc, _ := time.LoadLocation("Asia/Tokyo")
	now := time.Now().In(loc)

	// 翌日の午前0時を計算
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).Add(24 * time.Hour)

	return next.Sub(now)
}
