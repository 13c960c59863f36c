package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Register adds the scheduling tags to v. gin's default engine is passed in at
// startup.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("isodate", IsISODate); err != nil {
		return err
	}
	return v.RegisterValidation("hhmm", IsHHMM)
}

// IsISODate accepts a YYYY-MM-DD calendar date.
func IsISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(dateLayout, fl.Field().String())
	return err == nil
}

// IsHHMM accepts a 24h HH:MM time of day.
func IsHHMM(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != len(timeLayout) {
		return false
	}
	_, err := time.Parse(timeLayout, s)
	return err == nil
}
