package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	tm := NewTokenManager("secret")

	token, err := tm.Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Email != "a@b.com" {
		t.Errorf("email = %q, want a@b.com", claims.Email)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < TokenTTL-time.Minute || ttl > TokenTTL {
		t.Errorf("ttl = %v, want about %v", ttl, TokenTTL)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-one").Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewTokenManager("secret-two").Verify(token); err == nil {
		t.Error("token signed with a different secret verified")
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	tm := NewTokenManager("secret")
	token, err := tm.Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(token, ".")
	parts[1] = strings.Repeat("A", len(parts[1]))
	if _, err := tm.Verify(strings.Join(parts, ".")); err == nil {
		t.Error("tampered token verified")
	}

	if _, err := tm.Verify("not a token at all"); err == nil {
		t.Error("garbage string verified")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	tm := NewTokenManager("secret")

	claims := &Claims{
		Email: "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, err := tm.Verify(expired); err == nil {
		t.Error("expired token verified")
	}
}

func TestVerifyRejectsUnsignedAlg(t *testing.T) {
	tm := NewTokenManager("secret")

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Email: "a@b.com"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none-alg token: %v", err)
	}

	if _, err := tm.Verify(unsigned); err == nil {
		t.Error("alg=none token verified")
	}
}
