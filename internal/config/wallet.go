package config

type WalletConfig struct {
	// ReadOnly wallets can sign but cannot read or write their sync state
	ReadOnly bool `mapstructure:"read-only"`
}
