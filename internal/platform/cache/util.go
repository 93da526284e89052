package cache

import (
	"time"
)

// DefaultRefreshInterval はレートプロバイダーが値を更新する間隔です。
const DefaultRefreshInterval = time.Hour

// TimeUntilNextRefresh はnowから次の更新時刻（UTCでintervalの倍数）までの期間を返します。
// 戻り値は常に0より大きくinterval以下です。intervalが0以下の場合は1時間を使用します。
func TimeUntilNextRefresh(now time.Time, interval time.Duration) time.Duration {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	now = now.UTC()

	// 次の更新時刻を計算
	next := now.Truncate(interval).Add(interval)

	return next.Sub(now)
}
