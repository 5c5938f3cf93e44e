package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
)

type LedgerConfig struct {
	URL string `mapstructure:"url"`
	// Timeout of a single request in milliseconds
	Timeout    int    `mapstructure:"timeout"`
	ChainHexID string `mapstructure:"chain-hex-id"`
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.URL == "" {
		return errors.New("ledger url cannot be empty")
	}

	parsedURL, err := url.ParseRequestURI(cfg.URL)
	if err != nil {
		return errors.New("invalid ledger url")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("ledger url must start with http or https")
	}

	if cfg.Timeout <= 0 {
		return errors.New("timeout cannot be smaller or equal to 0")
	}

	if _, err := cfg.ParseChainHexID(); err != nil {
		return err
	}

	return nil
}

// ParseChainHexID returns the one byte network id, e.g. "AB".
func (cfg *LedgerConfig) ParseChainHexID() (uint8, error) {
	b, err := hex.DecodeString(cfg.ChainHexID)
	if err != nil || len(b) != 1 {
		return 0, fmt.Errorf("chain-hex-id must be exactly one hex encoded byte, got %q", cfg.ChainHexID)
	}
	return b[0], nil
}
