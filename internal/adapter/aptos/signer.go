package aptos

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ed25519Scheme is the authentication key scheme byte of single ed25519
// accounts.
const ed25519Scheme = 0x00

// LocalSigner signs with an in-process ed25519 key. It is meant for
// operator tooling; end users sign in their own wallet.
type LocalSigner struct {
	key     ed25519.PrivateKey
	address string
}

// NewLocalSigner parses a hex encoded 32-byte ed25519 seed. The value may
// carry a 0x or ed25519-priv-0x prefix.
func NewLocalSigner(seedHex string) (*LocalSigner, error) {
	s := strings.TrimSpace(seedHex)
	s = strings.TrimPrefix(s, "ed25519-priv-")
	s = strings.TrimPrefix(s, "0x")
	seed, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode signer key: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("signer key must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	key := ed25519.NewKeyFromSeed(seed)
	return &LocalSigner{
		key:     key,
		address: AccountAddress(key.Public().(ed25519.PublicKey)),
	}, nil
}

// Address returns the account address derived from the public key.
func (s *LocalSigner) Address() string {
	return s.address
}

// PublicKey returns the raw ed25519 public key.
func (s *LocalSigner) PublicKey() []byte {
	return s.key.Public().(ed25519.PublicKey)
}

// Sign signs message.
func (s *LocalSigner) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(s.key, message), nil
}

// AccountAddress derives the address of a single-key ed25519 account:
// sha3-256(public key || scheme).
func AccountAddress(pub ed25519.PublicKey) string {
	h := sha3.New256()
	h.Write(pub)
	h.Write([]byte{ed25519Scheme})
	return "0x" + hex.EncodeToString(h.Sum(nil))
}
