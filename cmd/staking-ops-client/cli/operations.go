package cli

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/services"
	"github.com/babylonchain/staking-ops-client/internal/types"
)

func newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state <staking address>",
		Short: "Show the ledger record of a staking account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				address, err := chain.ParseStakingAddress(args[0])
				if err != nil {
					return nil, types.NewError(types.InvalidInput, err)
				}
				state, opErr := svc.Ops.GetStakedState(ctx, address)
				if opErr != nil {
					return nil, opErr
				}
				return services.NewStakedStatePublic(state), nil
			})
		},
	}
}

func newDepositCmd() *cobra.Command {
	var inputs []string
	cmd := &cobra.Command{
		Use:   "deposit <staking address>",
		Short: "Bond transfer outputs of the wallet to a staking account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				name, enckey, err := walletKey()
				if err != nil {
					return nil, err
				}
				to, err := chain.ParseStakingAddress(args[0])
				if err != nil {
					return nil, types.NewError(types.InvalidInput, err)
				}
				unspent, err := parseList(inputs, parseUnspentOutput)
				if err != nil {
					return nil, types.NewError(types.InvalidInput, err)
				}
				aux, pending, opErr := svc.Ops.CreateDepositBondedStakeTransaction(
					ctx, name, enckey, unspent, to, svc.StakingOpAttributes(),
				)
				if opErr != nil {
					return nil, opErr
				}
				return envelopeWithPending(ctx, svc, name, aux, pending)
			})
		},
	}
	cmd.Flags().StringArrayVar(&inputs, "input", nil, "spent output as <txid>:<index>:<address>:<value>, repeatable")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newDepositFeeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit-fee",
		Short: "Estimate the fee of a single input deposit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				fee, opErr := svc.Ops.CalculateDepositFee(ctx)
				if opErr != nil {
					return nil, opErr
				}
				return map[string]string{"fee": fee.String()}, nil
			})
		},
	}
}

func newUnbondCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unbond <staking address> <value>",
		Short: "Move bonded stake into the unbonded balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				name, enckey, err := walletKey()
				if err != nil {
					return nil, err
				}
				address, err := chain.ParseStakingAddress(args[0])
				if err != nil {
					return nil, types.NewError(types.InvalidInput, err)
				}
				value, err := types.ParseCoin(args[1])
				if err != nil {
					return nil, types.NewError(types.InvalidInput, err)
				}
				aux, opErr := svc.Ops.CreateUnbondStakeTransaction(
					ctx, name, enckey, address, value, svc.StakingOpAttributes(),
				)
				if opErr != nil {
					return nil, opErr
				}
				return services.NewEnvelopePublic(aux)
			})
		},
	}
}

func newWithdrawCmd() *cobra.Command {
	var outputs []string
	cmd := &cobra.Command{
		Use:   "withdraw <staking address>",
		Short: "Pay matured unbonded stake out to transfer addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				name, enckey, err := walletKey()
				if err != nil {
					return nil, err
				}
				from, err := chain.ParseStakingAddress(args[0])
				if err != nil {
					return nil, types.NewError(types.InvalidInput, err)
				}
				txOuts, err := parseList(outputs, parseTxOut)
				if err != nil {
					return nil, types.NewError(types.InvalidInput, err)
				}
				aux, pending, opErr := svc.Ops.CreateWithdrawUnbondedStakeTransaction(
					ctx, name, enckey, from, txOuts, svc.TxAttributes(),
				)
				if opErr != nil {
					return nil, opErr
				}
				return envelopeWithPending(ctx, svc, name, aux, pending)
			})
		},
	}
	cmd.Flags().StringArrayVar(&outputs, "output", nil, "output as <address>:<value>[:<valid from>], repeatable")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newWithdrawAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw-all <staking address> <transfer address>",
		Short: "Withdraw the whole unbonded balance, less the fee, to one transfer address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				name, enckey, err := walletKey()
				if err != nil {
					return nil, err
				}
				from, err := chain.ParseStakingAddress(args[0])
				if err != nil {
					return nil, types.NewError(types.InvalidInput, err)
				}
				to, err := chain.ParseExtendedAddr(args[1])
				if err != nil {
					return nil, types.NewError(types.InvalidInput, err)
				}
				aux, pending, opErr := svc.Ops.CreateWithdrawAllUnbondedStakeTransaction(
					ctx, name, enckey, from, to, svc.TxAttributes(),
				)
				if opErr != nil {
					return nil, opErr
				}
				return envelopeWithPending(ctx, svc, name, aux, pending)
			})
		},
	}
}

func newUnjailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unjail <staking address>",
		Short: "Clear the jail marker of a staking account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				name, enckey, err := walletKey()
				if err != nil {
					return nil, err
				}
				address, err := chain.ParseStakingAddress(args[0])
				if err != nil {
					return nil, types.NewError(types.InvalidInput, err)
				}
				aux, opErr := svc.Ops.CreateUnjailTransaction(ctx, name, enckey, address, svc.StakingOpAttributes())
				if opErr != nil {
					return nil, opErr
				}
				return services.NewEnvelopePublic(aux)
			})
		},
	}
}

func newNodeJoinCmd() *cobra.Command {
	var (
		nodeName        string
		securityContact string
		consensusKey    string
		certHex         string
	)
	cmd := &cobra.Command{
		Use:   "node-join <staking address>",
		Short: "Request council membership for a validator node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				name, enckey, err := walletKey()
				if err != nil {
					return nil, err
				}
				address, err := chain.ParseStakingAddress(args[0])
				if err != nil {
					return nil, types.NewError(types.InvalidInput, err)
				}
				pubKey, err := parseConsensusPubKey(consensusKey)
				if err != nil {
					return nil, types.NewError(types.InvalidInput, err)
				}
				cert, err := hex.DecodeString(certHex)
				if err != nil {
					return nil, types.NewError(types.InvalidInput, fmt.Errorf("invalid attestation certificate: %w", err))
				}
				node := chain.NewCouncilNode(nodeName, pubKey, chain.ConfidentialInit{Cert: cert})
				if securityContact != "" {
					node.SecurityContact = &securityContact
				}
				aux, opErr := svc.Ops.CreateNodeJoinTransaction(
					ctx, name, enckey, address, svc.StakingOpAttributes(), node,
				)
				if opErr != nil {
					return nil, opErr
				}
				return services.NewEnvelopePublic(aux)
			})
		},
	}
	cmd.Flags().StringVar(&nodeName, "node-name", "", "name of the validator node")
	cmd.Flags().StringVar(&securityContact, "security-contact", "", "security contact of the node operator")
	cmd.Flags().StringVar(&consensusKey, "consensus-pubkey", "", "ed25519 consensus key, hex or base64")
	cmd.Flags().StringVar(&certHex, "cert", "", "hex encoded enclave attestation certificate")
	_ = cmd.MarkFlagRequired("node-name")
	_ = cmd.MarkFlagRequired("consensus-pubkey")
	return cmd
}
