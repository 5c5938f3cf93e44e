package types

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const milliPerUnit uint64 = 1000

// Milli is a fixed-point amount with three decimal places.
type Milli uint64

func NewMilli(units, fraction uint64) Milli {
	return Milli(units*milliPerUnit + fraction)
}

// ParseMilli parses "12", "12.5" or "0.001".
func ParseMilli(s string) (Milli, error) {
	whole, frac, found := strings.Cut(strings.TrimSpace(s), ".")
	units, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid milli value %q: %w", s, err)
	}
	var fraction uint64
	if found {
		if len(frac) == 0 || len(frac) > 3 {
			return 0, fmt.Errorf("invalid milli value %q: at most three decimals", s)
		}
		frac += strings.Repeat("0", 3-len(frac))
		if fraction, err = strconv.ParseUint(frac, 10, 64); err != nil {
			return 0, fmt.Errorf("invalid milli value %q: %w", s, err)
		}
	}
	hi, lo := bits.Mul64(units, milliPerUnit)
	if hi != 0 {
		return 0, fmt.Errorf("milli value %q overflows", s)
	}
	sum, carry := bits.Add64(lo, fraction, 0)
	if carry != 0 {
		return 0, fmt.Errorf("milli value %q overflows", s)
	}
	return Milli(sum), nil
}

// Add returns m + other, reporting overflow.
func (m Milli) Add(other Milli) (Milli, error) {
	sum, carry := bits.Add64(uint64(m), uint64(other), 0)
	if carry != 0 {
		return 0, ErrCoinOverflow
	}
	return Milli(sum), nil
}

// MulInt returns m * n, reporting overflow.
func (m Milli) MulInt(n uint64) (Milli, error) {
	hi, lo := bits.Mul64(uint64(m), n)
	if hi != 0 {
		return 0, ErrCoinOverflow
	}
	return Milli(lo), nil
}

// Ceil rounds up to whole base units.
func (m Milli) Ceil() uint64 {
	units := uint64(m) / milliPerUnit
	if uint64(m)%milliPerUnit != 0 {
		units++
	}
	return units
}

func (m Milli) String() string {
	return fmt.Sprintf("%d.%03d", uint64(m)/milliPerUnit, uint64(m)%milliPerUnit)
}

// Fee is a transaction fee already converted to base units.
type Fee struct {
	amount Coin
}

func NewFee(amount Coin) Fee {
	return Fee{amount: amount}
}

func (f Fee) ToCoin() Coin {
	return f.amount
}
