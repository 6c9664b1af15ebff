package utils

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct-horse" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPasswordHash("correct-horse", hash) {
		t.Error("valid password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("invalid password accepted")
	}
}

func TestGenerateRandomTokenLength(t *testing.T) {
	for _, n := range []int{1, 6, 32} {
		if got := GenerateRandomToken(n); len(got) != n {
			t.Errorf("len(GenerateRandomToken(%d)) = %d", n, len(got))
		}
	}
}

func TestGenerateJWTRequiresSecretOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateJWT("ana@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if token == "" {
		t.Error("empty token")
	}
}
