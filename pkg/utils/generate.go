package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateOrderID creates a unique order ID with timestamp
func GenerateOrderID() string {
	now := time.Now()

	// Format: RIDE-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("RIDE-%s-%s-%s", datePart, timePart, randomPart)
}
