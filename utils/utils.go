package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < 6; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}

// GeneratePaymentRef returns a unique reference for payment and withdrawal
// records.
func GeneratePaymentRef() string {
	return "SL-" + uuid.NewString()
}

// GenerateAccessToken returns a one-time live-class access token.
func GenerateAccessToken() string {
	return uuid.NewString()
}
