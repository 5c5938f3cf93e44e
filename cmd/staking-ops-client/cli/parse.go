package cli

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/types"
)

// parseUnspentOutput parses <txid>:<index>:<transfer address>:<value>.
func parseUnspentOutput(s string) (chain.UnspentOutput, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return chain.UnspentOutput{}, fmt.Errorf("input %q must be <txid>:<index>:<address>:<value>", s)
	}
	id, err := chain.ParseTxID(parts[0])
	if err != nil {
		return chain.UnspentOutput{}, err
	}
	index, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return chain.UnspentOutput{}, fmt.Errorf("invalid output index %q: %w", parts[1], err)
	}
	address, err := chain.ParseExtendedAddr(parts[2])
	if err != nil {
		return chain.UnspentOutput{}, err
	}
	value, err := types.ParseCoin(parts[3])
	if err != nil {
		return chain.UnspentOutput{}, err
	}
	return chain.UnspentOutput{
		Pointer: chain.NewTxoPointer(id, uint16(index)),
		Output:  chain.NewTxOut(address, value),
	}, nil
}

// parseTxOut parses <transfer address>:<value>[:<valid from>].
func parseTxOut(s string) (chain.TxOut, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return chain.TxOut{}, fmt.Errorf("output %q must be <address>:<value>[:<valid from>]", s)
	}
	address, err := chain.ParseExtendedAddr(parts[0])
	if err != nil {
		return chain.TxOut{}, err
	}
	value, err := types.ParseCoin(parts[1])
	if err != nil {
		return chain.TxOut{}, err
	}
	if len(parts) == 2 {
		return chain.NewTxOut(address, value), nil
	}
	validFrom, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return chain.TxOut{}, fmt.Errorf("invalid valid from %q: %w", parts[2], err)
	}
	return chain.NewTxOutWithTimelock(address, value, chain.Timespec(validFrom)), nil
}

// parseConsensusPubKey accepts the hex or base64 encoding of a 32 byte
// ed25519 key.
func parseConsensusPubKey(s string) (chain.TendermintValidatorPubKey, error) {
	var key chain.TendermintValidatorPubKey
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		if b, err = base64.StdEncoding.DecodeString(s); err != nil {
			return key, fmt.Errorf("consensus key %q is neither hex nor base64", s)
		}
	}
	if len(b) != len(key) {
		return key, fmt.Errorf("consensus key must be %d bytes, got %d", len(key), len(b))
	}
	copy(key[:], b)
	return key, nil
}

func parseList[T any](values []string, parse func(string) (T, error)) ([]T, error) {
	result := make([]T, 0, len(values))
	for _, v := range values {
		item, err := parse(v)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func parseHeight(s string) (uint64, error) {
	height, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block height %q: %w", s, err)
	}
	return height, nil
}
