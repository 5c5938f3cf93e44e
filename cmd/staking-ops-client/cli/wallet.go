package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/babylonchain/staking-ops-client/internal/services"
)

func newWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage wallets",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "new",
		Short: "Create a wallet protected by the passphrase",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				name, err := GetWalletName()
				if err != nil {
					return nil, err
				}
				if _, err := svc.Wallet.NewWallet(ctx, name, GetPassphrase()); err != nil {
					return nil, err
				}
				return map[string]string{"wallet": name}, nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "sync-height [height]",
		Short: "Show the wallet sync height, or record a new one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				name, err := GetWalletName()
				if err != nil {
					return nil, err
				}
				if len(args) == 1 {
					height, err := parseHeight(args[0])
					if err != nil {
						return nil, err
					}
					if err := svc.Wallet.SetSyncHeight(ctx, name, height); err != nil {
						return nil, err
					}
				}
				height, err := svc.Wallet.CurrentBlockHeight(ctx, name)
				if err != nil {
					return nil, err
				}
				return map[string]uint64{"block_height": height}, nil
			})
		},
	})
	return cmd
}

func newAddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Manage wallet addresses",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "new-staking",
		Short: "Generate a staking key and print its address",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				name, enckey, err := walletKey()
				if err != nil {
					return nil, err
				}
				address, err := svc.Wallet.NewStakingAddress(ctx, name, enckey)
				if err != nil {
					return nil, err
				}
				return map[string]string{"address": address.String()}, nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "new-transfer",
		Short: "Generate a transfer key and print its address",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				name, enckey, err := walletKey()
				if err != nil {
					return nil, err
				}
				address, err := svc.Wallet.NewTransferAddress(ctx, name, enckey)
				if err != nil {
					return nil, err
				}
				return map[string]string{"address": address.String()}, nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list-staking",
		Short: "List the staking addresses of the wallet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				name, enckey, err := walletKey()
				if err != nil {
					return nil, err
				}
				addresses, err := svc.Wallet.StakingAddresses(ctx, name, enckey)
				if err != nil {
					return nil, err
				}
				out := make([]string, 0, len(addresses))
				for _, a := range addresses {
					out = append(out, a.String())
				}
				return out, nil
			})
		},
	})
	return cmd
}

func newPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List the transactions of the wallet awaiting confirmation, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				name, err := GetWalletName()
				if err != nil {
					return nil, err
				}
				pending, err := svc.Wallet.PendingTransactions(ctx, name)
				if err != nil {
					return nil, err
				}
				return services.PendingTransactionsPublic(pending), nil
			})
		},
	}
}
