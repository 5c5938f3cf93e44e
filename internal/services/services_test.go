package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/staking-ops-client/internal/clients/ledger"
	"github.com/babylonchain/staking-ops-client/internal/config"
	"github.com/babylonchain/staking-ops-client/internal/fees"
	"github.com/babylonchain/staking-ops-client/internal/services"
	"github.com/babylonchain/staking-ops-client/internal/types"
	"github.com/babylonchain/staking-ops-client/tests/mocks"
)

func TestDoHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		dbClient := mocks.NewDBClient(t)
		ledgerClient := mocks.NewLedgerClient(t)
		dbClient.On("Ping", mock.Anything).Return(nil)
		ledgerClient.On("Status", mock.Anything).Return(&ledger.Status{LatestBlockHeight: 1}, nil)

		svc := &services.Services{DbClient: dbClient, Ledger: ledgerClient}
		assert.NoError(t, svc.DoHealthCheck(ctx))
	})

	t.Run("database down", func(t *testing.T) {
		dbClient := mocks.NewDBClient(t)
		dbClient.On("Ping", mock.Anything).Return(errors.New("server selection timeout"))

		svc := &services.Services{DbClient: dbClient, Ledger: mocks.NewLedgerClient(t)}
		assert.ErrorContains(t, svc.DoHealthCheck(ctx), "database is unreachable")
	})

	t.Run("ledger down", func(t *testing.T) {
		dbClient := mocks.NewDBClient(t)
		ledgerClient := mocks.NewLedgerClient(t)
		dbClient.On("Ping", mock.Anything).Return(nil)
		ledgerClient.On("Status", mock.Anything).
			Return(nil, types.NewErrorWithMsg(types.ConnectionError, "connection refused"))

		svc := &services.Services{DbClient: dbClient, Ledger: ledgerClient}
		err := svc.DoHealthCheck(ctx)
		assert.ErrorContains(t, err, "ledger is unreachable")
		assert.True(t, types.IsErrorCode(err, types.ConnectionError))
	})
}

func TestNewFeePolicy(t *testing.T) {
	unit, err := services.NewFeePolicy(&config.FeesConfig{Mode: "unit"})
	require.NoError(t, err)
	assert.Equal(t, fees.UnitFee{}, unit)

	linear, err := services.NewFeePolicy(&config.FeesConfig{ConstantMilli: "1.1", CoefficientMilli: "1.25"})
	require.NoError(t, err)
	assert.Equal(t, fees.NewLinearFee(types.NewMilli(1, 100), types.NewMilli(1, 250)), linear)

	_, err = services.NewFeePolicy(&config.FeesConfig{Mode: "flat"})
	assert.Error(t, err)
}
