package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/clients"
	"github.com/babylonchain/staking-ops-client/internal/clients/ledger"
	"github.com/babylonchain/staking-ops-client/internal/config"
	"github.com/babylonchain/staking-ops-client/internal/db"
	"github.com/babylonchain/staking-ops-client/internal/fees"
	"github.com/babylonchain/staking-ops-client/internal/obfuscation"
	"github.com/babylonchain/staking-ops-client/internal/signer"
	"github.com/babylonchain/staking-ops-client/internal/wallet"
)

// Service layer contains the staking operation logic and holds the wallet
// and the external clients it is built from.
type Services struct {
	DbClient   db.DBClient
	Wallet     wallet.Client
	Ledger     ledger.Client
	Ops        *NetworkOps
	ChainHexID uint8
}

func New(ctx context.Context, cfg *config.Config) (*Services, error) {
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while creating db client")
		return nil, err
	}
	chainHexID, err := cfg.Ledger.ParseChainHexID()
	if err != nil {
		return nil, err
	}
	feePolicy, err := NewFeePolicy(&cfg.Fees)
	if err != nil {
		return nil, err
	}
	cipher, err := obfuscation.NewCipherFromHex(cfg.Obfuscation.KeyHex, cfg.Obfuscation.KeyFrom)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while creating transaction cipher")
		return nil, err
	}

	var walletClient wallet.Client
	if cfg.Wallet.ReadOnly {
		walletClient = wallet.NewReadOnlyClient(dbClient)
	} else {
		walletClient = wallet.NewDefaultClient(dbClient)
	}
	ledgerClient := clients.New(cfg).Ledger

	return &Services{
		DbClient: dbClient,
		Wallet:   walletClient,
		Ledger:   ledgerClient,
		Ops: NewNetworkOps(
			walletClient,
			signer.NewWalletSignerManager(walletClient),
			ledgerClient,
			feePolicy,
			cipher,
		),
		ChainHexID: chainHexID,
	}, nil
}

// NewFeePolicy builds the fee policy the configuration selects.
func NewFeePolicy(cfg *config.FeesConfig) (fees.Policy, error) {
	switch cfg.Mode {
	case config.UnitFeeMode:
		return fees.UnitFee{}, nil
	case "", config.LinearFeeMode:
		constant, coefficient, err := cfg.Parse()
		if err != nil {
			return nil, err
		}
		return fees.NewLinearFee(constant, coefficient), nil
	default:
		return nil, fmt.Errorf("unsupported fee mode: %s", cfg.Mode)
	}
}

func (s *Services) StakingOpAttributes() chain.StakingOpAttributes {
	return chain.NewStakingOpAttributes(s.ChainHexID)
}

func (s *Services) TxAttributes() chain.TxAttributes {
	return chain.NewTxAttributes(s.ChainHexID)
}

// DoHealthCheck checks the health of the services by pinging the database
// and reading the ledger status.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	if err := s.DbClient.Ping(ctx); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}
	if _, err := s.Ledger.Status(ctx); err != nil {
		return fmt.Errorf("ledger is unreachable: %w", err)
	}
	return nil
}
