package utils

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" || hash == "s3cret" {
		t.Fatalf("expected derived hash, got %q", hash)
	}

	if !CheckPassword("s3cret", hash) {
		t.Error("expected password to match its own hash")
	}
	if CheckPassword("wrong", hash) {
		t.Error("expected mismatch for wrong password")
	}
}

func TestHashPassword_Empty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("expected error for empty password, got nil")
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if first == second {
		t.Error("expected per-hash salts to produce distinct hashes")
	}
}
