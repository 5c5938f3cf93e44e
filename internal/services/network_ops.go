package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/staking-ops-client/internal/clients/ledger"
	"github.com/babylonchain/staking-ops-client/internal/fees"
	"github.com/babylonchain/staking-ops-client/internal/observability/metrics"
	"github.com/babylonchain/staking-ops-client/internal/obfuscation"
	"github.com/babylonchain/staking-ops-client/internal/signer"
	"github.com/babylonchain/staking-ops-client/internal/types"
	"github.com/babylonchain/staking-ops-client/internal/wallet"
)

const (
	depositOperation     = "deposit"
	depositFeeOperation  = "deposit_fee"
	unbondOperation      = "unbond"
	withdrawOperation    = "withdraw"
	withdrawAllOperation = "withdraw_all"
	unjailOperation      = "unjail"
	nodeJoinOperation    = "node_join"
)

// NetworkOps builds staking operations. It checks every rule the ledger
// enforces on the operation against a fresh snapshot of the staking account
// before anything is signed.
//
// NetworkOps holds no state of its own. The nonce of a built transaction is
// the one observed at build time, so callers submitting several operations
// for the same account must serialize them.
type NetworkOps struct {
	wallet  wallet.Client
	signers signer.Manager
	ledger  ledger.Client
	fees    fees.Policy
	cipher  obfuscation.TransactionObfuscation
	dummy   signer.DummySigner
}

// NewNetworkOps wires the operation builder. Signed envelopes are sealed by
// cipher and fee estimates are priced by feePolicy.
func NewNetworkOps(
	walletClient wallet.Client,
	signers signer.Manager,
	ledgerClient ledger.Client,
	feePolicy fees.Policy,
	cipher obfuscation.TransactionObfuscation,
) *NetworkOps {
	return &NetworkOps{
		wallet:  walletClient,
		signers: signers,
		ledger:  ledgerClient,
		fees:    feePolicy,
		cipher:  cipher,
	}
}

// observe records the duration and outcome of an operation. It is deferred
// with a pointer to the named error result.
func observe(ctx context.Context, operation string) func(errp **types.Error) {
	stop := metrics.StartOperationTimer(operation)
	return func(errp **types.Error) {
		err := *errp
		if err == nil {
			stop(nil)
			return
		}
		stop(err)
		metrics.RecordRejection(operation, err.ErrorCode.String())
		log.Ctx(ctx).Warn().Err(err).
			Str("operation", operation).
			Str("code", err.ErrorCode.String()).
			Msg("staking operation rejected")
	}
}
