package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderID_Format(t *testing.T) {
	orderID := GenerateOrderID()

	assert.Regexp(t, regexp.MustCompile(`^RIDE-\d{8}-\d{6}-\d{4}$`), orderID)
}
