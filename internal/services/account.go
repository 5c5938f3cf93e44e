package services

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/observability/tracing"
	"github.com/babylonchain/staking-ops-client/internal/types"
)

const accountQueryPath = "account"

// GetStakedState queries the current record of a staking account.
func (s *NetworkOps) GetStakedState(ctx context.Context, address chain.StakingAddress) (*chain.StakedState, *types.Error) {
	state, err := s.fetchAccount(ctx, address)
	if err != nil {
		return nil, types.AsError(err)
	}
	return state, nil
}

func (s *NetworkOps) fetchAccount(ctx context.Context, address chain.StakingAddress) (*chain.StakedState, error) {
	return tracing.WrapWithSpan(ctx, "fetch_account", func() (*chain.StakedState, error) {
		b, err := s.ledger.Query(ctx, accountQueryPath, address.Bytes())
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("address", address.String()).Msg("failed to query staking account")
			return nil, types.AsError(err)
		}
		state, err := chain.DecodeStakedState(b)
		if err != nil {
			return nil, types.NewError(
				types.DeserializationError,
				fmt.Errorf("Cannot deserialize staked state for address: %s: %w", hex.EncodeToString(address.Bytes()), err),
			)
		}
		return state, nil
	})
}

// lastBlockTime is the reference time for unbonding maturity. Before the
// first block it is the genesis time.
func (s *NetworkOps) lastBlockTime(ctx context.Context) (chain.Timespec, error) {
	status, err := s.ledger.Status(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to query ledger status")
		return 0, types.AsError(err)
	}
	if status.LatestBlockHeight != 0 {
		return chain.TimespecFromTime(status.LatestBlockTime), nil
	}
	genesis, err := s.ledger.Genesis(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to query ledger genesis")
		return 0, types.AsError(err)
	}
	return chain.TimespecFromTime(genesis.GenesisTime), nil
}

// blockHeightOrZero is the wallet sync height recorded in pending records.
// Wallets without sync state access record 0.
func (s *NetworkOps) blockHeightOrZero(ctx context.Context, name string) (uint64, error) {
	height, err := s.wallet.CurrentBlockHeight(ctx, name)
	if err != nil {
		if types.IsErrorCode(err, types.PermissionDenied) {
			return 0, nil
		}
		return 0, err
	}
	return height, nil
}
