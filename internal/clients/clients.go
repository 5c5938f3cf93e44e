package clients

import (
	"github.com/babylonchain/staking-ops-client/internal/clients/ledger"
	"github.com/babylonchain/staking-ops-client/internal/config"
)

type Clients struct {
	Ledger *ledger.RPCClient
}

func New(cfg *config.Config) *Clients {
	ledgerClient := ledger.NewRPCClient(&cfg.Ledger)

	return &Clients{
		Ledger: ledgerClient,
	}
}
