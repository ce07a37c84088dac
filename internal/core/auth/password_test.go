package auth

import "testing"

func TestHashPassword_SaltedAndVerifiable(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("expected distinct hashes for the same plaintext (salting)")
	}
	if h1 == "secret1" || h2 == "secret1" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !CheckPassword("secret1", h1) {
		t.Fatalf("verify failed for first hash")
	}
	if !CheckPassword("secret1", h2) {
		t.Fatalf("verify failed for second hash")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	h, err := HashPassword("rightpass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if CheckPassword("wrongpass", h) {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must report no match")
	}
	if CheckPassword("anything", "") {
		t.Fatalf("empty hash must report no match")
	}
}
