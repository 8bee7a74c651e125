package utils

import "time"

// Clock — источник монотонного времени в миллисекундах.
type Clock interface {
	NowMillis() int64
}

// SystemClock отсчитывает миллисекунды с момента создания.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock двигается только вручную: для тестов и пошаговых просмотров.
type ManualClock struct {
	Ms int64
}

func (c *ManualClock) NowMillis() int64 { return c.Ms }

// Advance сдвигает часы на d.
func (c *ManualClock) Advance(d time.Duration) {
	c.Ms += d.Milliseconds()
}
