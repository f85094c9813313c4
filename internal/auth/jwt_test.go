package auth

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-1", "admin@lakhna.example", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	userID, email, role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != "user-1" || email != "admin@lakhna.example" || role != "ADMIN" {
		t.Fatalf("unexpected claims: %s %s %s", userID, email, role)
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := GenerateToken("", "a@b.c", "ADMIN"); err == nil {
		t.Fatal("expected error for empty userID")
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken("user-1", "a@b.c", "ADMIN"); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, _, _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateToken("user-1", "a@b.c", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-two")
	if _, _, _, err := ValidateToken(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}
