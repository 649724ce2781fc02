package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := CreateToken(userID, "admin")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Errorf("UserID = %q, want %q", claims.UserID, userID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("not-a-jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := ComparePasswords(hash, "correct horse"); err != nil {
		t.Errorf("right password rejected: %v", err)
	}
	if err := ComparePasswords(hash, "wrong horse"); err == nil {
		t.Error("wrong password accepted")
	}
}
