package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)
	digest, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if digest == "pw123" || digest == "" {
		t.Fatalf("digest must not be the plaintext: %q", digest)
	}
	if err := h.Compare(digest, "pw123"); err != nil {
		t.Fatalf("compare with correct password: %v", err)
	}
	if err := h.Compare(digest, "wrong"); err == nil {
		t.Fatalf("compare with wrong password should fail")
	}
}

func TestBcryptHasherDefaultCost(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(0)
	digest, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("read cost: %v", err)
	}
	if cost != defaultBcryptCost {
		t.Fatalf("expected fallback cost %d, got %d", defaultBcryptCost, cost)
	}
}
