package cli

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/services"
	"github.com/babylonchain/staking-ops-client/internal/types"
)

// envelopeWithPending hands the pending record of aux to the wallet and
// describes both. Wallets which cannot record it are skipped with a warning.
func envelopeWithPending(
	ctx context.Context, svc *services.Services, name string, aux chain.TxAux, pending *chain.TransactionPending,
) (*services.EnvelopePublic, error) {
	out, err := services.NewEnvelopePublic(aux)
	if err != nil {
		return nil, err
	}
	out.Pending = services.NewPendingTransactionPublic(aux.TxID(), *pending)
	if err := svc.Wallet.SavePendingTransaction(ctx, name, aux.TxID(), *pending); err != nil {
		if !types.IsErrorCode(err, types.PermissionDenied) {
			return nil, err
		}
		log.Ctx(ctx).Warn().Err(err).Str("txid", out.TxID).Msg("pending transaction not recorded")
		return out, nil
	}
	out.Pending.Saved = true
	return out, nil
}
