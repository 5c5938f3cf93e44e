package config

import (
	"fmt"

	"github.com/babylonchain/staking-ops-client/internal/types"
)

const (
	LinearFeeMode = "linear"
	UnitFeeMode   = "unit"
)

type FeesConfig struct {
	Mode             string `mapstructure:"mode"`
	ConstantMilli    string `mapstructure:"constant-milli"`
	CoefficientMilli string `mapstructure:"coefficient-milli"`
}

func (cfg *FeesConfig) Validate() error {
	switch cfg.Mode {
	case "", LinearFeeMode:
		cfg.Mode = LinearFeeMode
	case UnitFeeMode:
		return nil
	default:
		return fmt.Errorf("unsupported fee mode: %s", cfg.Mode)
	}
	if _, _, err := cfg.Parse(); err != nil {
		return err
	}
	return nil
}

// Parse returns the constant and per byte coefficient of the linear fee.
func (cfg *FeesConfig) Parse() (constant, coefficient types.Milli, err error) {
	if constant, err = types.ParseMilli(cfg.ConstantMilli); err != nil {
		return 0, 0, fmt.Errorf("invalid fees constant-milli: %w", err)
	}
	if coefficient, err = types.ParseMilli(cfg.CoefficientMilli); err != nil {
		return 0, 0, fmt.Errorf("invalid fees coefficient-milli: %w", err)
	}
	return constant, coefficient, nil
}
