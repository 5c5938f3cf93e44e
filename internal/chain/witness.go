package chain

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

const (
	StakingOpWitnessSize = 65
	TxInWitnessSize      = 32 + 64
)

var ErrWitnessMismatch = errors.New("witness does not match the spent output")

// StakingOpWitness is a compact recoverable secp256k1 signature over a
// transaction id: one recovery byte followed by R and S.
type StakingOpWitness [StakingOpWitnessSize]byte

func NewStakingOpWitness(sig []byte) (StakingOpWitness, error) {
	var w StakingOpWitness
	if len(sig) != StakingOpWitnessSize {
		return w, fmt.Errorf("invalid staking witness length: expected %d, got %d", StakingOpWitnessSize, len(sig))
	}
	copy(w[:], sig)
	return w, nil
}

// RecoverStakingAddress recovers the address of the key which produced the witness.
func RecoverStakingAddress(witness StakingOpWitness, txid TxID) (StakingAddress, error) {
	pub, _, err := ecdsa.RecoverCompact(witness[:], txid[:])
	if err != nil {
		return StakingAddress{}, fmt.Errorf("unable to recover staking address: %w", err)
	}
	return NewStakingAddress(pub), nil
}

// TxInWitness authorizes spending one input: an x-only public key and a
// BIP-340 signature over the transaction id.
type TxInWitness struct {
	PubKey    [32]byte
	Signature [64]byte
}

// TxWitness holds one witness per transaction input, in input order.
type TxWitness []TxInWitness

// VerifyTxInWitness checks that the witness key owns output and that the
// signature is valid for txid.
func VerifyTxInWitness(txid TxID, output TxOut, witness TxInWitness) error {
	pub, err := schnorr.ParsePubKey(witness.PubKey[:])
	if err != nil {
		return fmt.Errorf("invalid witness public key: %w", err)
	}
	if NewExtendedAddr(pub) != output.Address {
		return ErrWitnessMismatch
	}
	sig, err := schnorr.ParseSignature(witness.Signature[:])
	if err != nil {
		return fmt.Errorf("invalid witness signature: %w", err)
	}
	if !sig.Verify(txid[:], pub) {
		return fmt.Errorf("witness signature verification failed for %s", output.Address)
	}
	return nil
}
