package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestValidateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(AdminSubject, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	subject, err := ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if subject != AdminSubject {
		t.Errorf("ValidateToken() subject = %q, want %q", subject, AdminSubject)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	valid, err := GenerateToken(AdminSubject, "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	expired, err := GenerateToken(AdminSubject, "correct-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "garbage", token: "not-a-valid-token", secret: "correct-secret"},
		{name: "wrong secret", token: valid, secret: "wrong-secret"},
		{name: "expired", token: expired, secret: "correct-secret"},
		{name: "wrong issuer", token: signClaims(t, "other", tokenAudience), secret: "correct-secret"},
		{name: "wrong audience", token: signClaims(t, tokenIssuer, "other-api"), secret: "correct-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(tt.token, tt.secret); err != ErrInvalidToken {
				t.Errorf("ValidateToken() error = %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}

func signClaims(t *testing.T, issuer, audience string) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   AdminSubject,
		Audience:  jwt.ClaimStrings{audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("correct-secret"))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return signed
}
