package types

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"strconv"

	"github.com/ethereum/go-ethereum/rlp"
)

const (
	// CoinDecimals is the number of base units in one whole coin.
	CoinDecimals uint64 = 100_000_000
	// MaxCoinUnits is the total supply in whole coins.
	MaxCoinUnits uint64 = 100_000_000_000
	// MaxCoin is the largest representable amount in base units.
	MaxCoin Coin = Coin(CoinDecimals * MaxCoinUnits)
)

var (
	ErrCoinOverflow   = errors.New("coin overflow")
	ErrCoinUnderflow  = errors.New("coin underflow")
	ErrCoinOutOfRange = errors.New("coin value is out of the allowed range")
)

// Coin is an amount in base units. Every arithmetic operation is checked and
// never wraps.
type Coin uint64

func NewCoin(value uint64) (Coin, error) {
	if value > uint64(MaxCoin) {
		return 0, fmt.Errorf("%w: %d", ErrCoinOutOfRange, value)
	}
	return Coin(value), nil
}

func ZeroCoin() Coin {
	return 0
}

func UnitCoin() Coin {
	return 1
}

func (c Coin) Add(other Coin) (Coin, error) {
	sum, carry := bits.Add64(uint64(c), uint64(other), 0)
	if carry != 0 || sum > uint64(MaxCoin) {
		return 0, ErrCoinOverflow
	}
	return Coin(sum), nil
}

func (c Coin) Sub(other Coin) (Coin, error) {
	diff, borrow := bits.Sub64(uint64(c), uint64(other), 0)
	if borrow != 0 {
		return 0, ErrCoinUnderflow
	}
	return Coin(diff), nil
}

func (c Coin) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// EncodeRLP writes the amount as a fixed eight byte big-endian string, so an
// estimate built from placeholder amounts has the size of the real transaction.
func (c Coin) EncodeRLP(w io.Writer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(c))
	return rlp.Encode(w, b[:])
}

// DecodeRLP rejects amounts above MaxCoin.
func (c *Coin) DecodeRLP(s *rlp.Stream) error {
	var b [8]byte
	if err := s.Decode(&b); err != nil {
		return err
	}
	v, err := NewCoin(binary.BigEndian.Uint64(b[:]))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// SumCoins adds all values, failing on the first overflow.
func SumCoins(values ...Coin) (Coin, error) {
	var total Coin
	for _, v := range values {
		var err error
		if total, err = total.Add(v); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// ParseCoin parses a decimal amount of base units.
func ParseCoin(s string) (Coin, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coin amount %q: %w", s, err)
	}
	return NewCoin(v)
}
