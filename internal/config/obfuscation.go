package config

import (
	"encoding/hex"
	"fmt"
)

type ObfuscationConfig struct {
	KeyHex  string `mapstructure:"key-hex"`
	KeyFrom uint64 `mapstructure:"key-from"`
}

func (cfg *ObfuscationConfig) Validate() error {
	key, err := hex.DecodeString(cfg.KeyHex)
	if err != nil {
		return fmt.Errorf("invalid obfuscation key-hex: %w", err)
	}
	if len(key) != 32 {
		return fmt.Errorf("obfuscation key-hex must encode 32 bytes, got %d", len(key))
	}
	return nil
}
