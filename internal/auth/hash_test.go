package auth

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("HashPassword() returned the plaintext password")
	}

	if !CheckPassword("secret1", hash) {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword("wrong", hash) {
		t.Error("CheckPassword() accepted a wrong password")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if h1 == h2 {
		t.Error("expected different hashes for the same password")
	}
}
