package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const (
	defaultConfigFileName = "config.yml"
	passphraseEnv         = "STAKING_OPS_PASSPHRASE"
)

var (
	cfgPath    string
	walletName string
	passphrase string
	rootCmd    = &cobra.Command{
		Use:           "staking-ops-client",
		Short:         "Build signed staking operations for a named wallet",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func Setup(ctx context.Context) error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	defaultConfigPath := getDefaultConfigFile(homePath, defaultConfigFileName)

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, fmt.Sprintf("config file (default %s)", defaultConfigPath))
	rootCmd.PersistentFlags().StringVar(&walletName, "wallet", "", "name of the wallet to operate on")
	rootCmd.PersistentFlags().StringVar(&passphrase, "passphrase", "", fmt.Sprintf("wallet passphrase (default $%s)", passphraseEnv))

	rootCmd.AddCommand(
		newWalletCmd(),
		newAddressCmd(),
		newStateCmd(),
		newDepositCmd(),
		newDepositFeeCmd(),
		newUnbondCmd(),
		newWithdrawCmd(),
		newWithdrawAllCmd(),
		newUnjailCmd(),
		newNodeJoinCmd(),
		newPendingCmd(),
		newHealthCmd(),
		newServeCmd(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return err
	}

	return nil
}

func getDefaultConfigFile(homePath, filename string) string {
	return filepath.Join(homePath, filename)
}

func GetConfigPath() string {
	return cfgPath
}

// GetWalletName returns the --wallet flag, which every wallet command requires.
func GetWalletName() (string, error) {
	if walletName == "" {
		return "", fmt.Errorf("--wallet is required")
	}
	return walletName, nil
}

// GetPassphrase prefers the --passphrase flag over the environment.
func GetPassphrase() string {
	if passphrase != "" {
		return passphrase
	}
	return os.Getenv(passphraseEnv)
}
