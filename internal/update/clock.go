package update

import (
	"time"

	"github.com/sandeepkv93/calview/internal/model"
)

// Clock supplies "today" so tests can pin the date.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

func today(c Clock) model.Date {
	return model.FromTime(c.Now())
}
