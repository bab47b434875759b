// Package receipt emits a signed, tamper-evident summary of one
// interpreter run: exit code, executed-instruction count, and wall-clock
// duration.
package receipt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Summary is the content of one run's receipt.
type Summary struct {
	Fingerprint string
	ExitCode    int
	Instr       int
	Duration    time.Duration
}

// Sign produces a compact JWS (HS256) encoding the Summary as claims. The
// receipt is diagnostic only: its absence or a signing failure never
// changes the process's exit code.
func Sign(s Summary, secret string) (string, error) {
	claims := jwt.MapClaims{
		"fingerprint": s.Fingerprint,
		"exit_code":   s.ExitCode,
		"instr_count": s.Instr,
		"duration_ms": s.Duration.Milliseconds(),
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify checks a receipt JWT against secret and returns its claims. It
// exists primarily so a CI pipeline (or a test) can round-trip what Sign
// produced; the interpreter itself never calls it.
func Verify(tokenString, secret string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
