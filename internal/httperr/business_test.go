package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessCode(t *testing.T) {
	err := fmt.Errorf("book: %w", ErrBusiness("invalid_schedule"))

	code, ok := BusinessCode(err)
	assert.True(t, ok)
	assert.Equal(t, "invalid_schedule", code)
	assert.True(t, errors.Is(err, ErrBusiness("invalid_schedule")))

	_, ok = BusinessCode(errors.New("connection refused"))
	assert.False(t, ok)
}
