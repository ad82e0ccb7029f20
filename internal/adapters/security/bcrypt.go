package security

import (
	"golang.org/x/crypto/bcrypt"
)

// defaultBcryptCost matches the service's configured default so a
// zero-valued config still produces the same digests as a normal run.
const defaultBcryptCost = 10

// BcryptHasher derives and verifies salted password digests. The digest
// is the only credential form that ever reaches the store.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given work factor, falling
// back to the service default when unset.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = defaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare returns nil only when password matches the stored digest.
func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
