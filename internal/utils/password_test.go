package utils

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("my-secret-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword() returned empty string")
	}
	if hash == "my-secret-password" {
		t.Error("HashPassword() returned the raw password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash %q does not look like bcrypt output", hash)
	}
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPasswordHash("correct-horse", hash) {
		t.Error("CheckPasswordHash() = false for matching password")
	}
	if CheckPasswordHash("battery-staple", hash) {
		t.Error("CheckPasswordHash() = true for wrong password")
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical; salt missing")
	}
}
