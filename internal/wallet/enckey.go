package wallet

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	EncKeySize = chacha20poly1305.KeySize

	argonTime    = 1
	argonMemory  = 32 * 1024
	argonThreads = 2
)

var errSealedTooShort = errors.New("sealed value is too short")

// EncKey unlocks the secret keys of one wallet.
type EncKey [EncKeySize]byte

// DeriveEncKey stretches the wallet passphrase with argon2id. The salt is
// bound to the wallet name so equal passphrases give unrelated keys.
func DeriveEncKey(name, passphrase string) EncKey {
	var key EncKey
	salt := chainhash.HashB([]byte("staking-ops-client/wallet/" + name))
	copy(key[:], argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, EncKeySize))
	return key
}

// seal encrypts plaintext with XChaCha20-Poly1305 and prefixes the random nonce.
func (k EncKey) seal(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(k[:])
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (k EncKey) open(sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(k[:])
	if err != nil {
		return nil, err
	}
	if len(sealed) < aead.NonceSize() {
		return nil, errSealedTooShort
	}
	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	return aead.Open(nil, nonce, ciphertext, nil)
}
