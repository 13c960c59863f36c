package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Clock is the application's source of "now".
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(tz string) *Clock {
	return &Clock{
		loc: Location(tz),
		now: time.Now,
	}
}

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) *Clock {
	return &Clock{
		loc: t.Location(),
		now: func() time.Time { return t },
	}
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}
