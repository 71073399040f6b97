package jwtx

import (
	"fmt"
	"sync"

	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
)

// KeyManager owns the active signing key and the set of keys tokens are
// verified against.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	mu     sync.RWMutex
	signer Signer
}

// KeyManagerOptions configures a KeyManager.
type KeyManagerOptions struct {
	// Issuer is stamped into and required from every token.
	Issuer string

	// Audience, when non-empty, must intersect a token's aud claim.
	Audience []string

	// PrivateKeyPEM is a PKCS8 Ed25519 key. Empty means a fresh ephemeral
	// key, so tokens do not survive a restart.
	PrivateKeyPEM []byte
}

// NewKeyManager builds a manager from opts.
func NewKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	pemKey := opts.PrivateKeyPEM
	if len(pemKey) == 0 {
		var err error
		if pemKey, err = cryptox.GenerateEd25519Key(); err != nil {
			return nil, fmt.Errorf("jwtx: generate ephemeral key: %w", err)
		}
	}

	signer, err := NewSignerEdDSA("", pemKey)
	if err != nil {
		return nil, err
	}

	keyset := NewKeySet()
	if err := keyset.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("jwtx: add signer to keyset: %w", err)
	}

	return &KeyManager{
		Verifier: NewVerifierEdDSA(keyset, opts.Issuer, opts.Audience),
		KeySet:   keyset,
		signer:   signer,
	}, nil
}

// Signer returns the active signing key.
func (km *KeyManager) Signer() Signer {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return km.signer
}

// Rotate makes s the active signer. The previous key stays in the KeySet so
// tokens it issued remain valid until they expire.
func (km *KeyManager) Rotate(s Signer) error {
	if s == nil {
		return fmt.Errorf("jwtx: signer cannot be nil")
	}
	if err := km.KeySet.AddSigner(s); err != nil {
		return fmt.Errorf("jwtx: add signer to keyset: %w", err)
	}
	km.mu.Lock()
	km.signer = s
	km.mu.Unlock()
	return nil
}

// IsReady reports whether a key is loaded.
func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}
