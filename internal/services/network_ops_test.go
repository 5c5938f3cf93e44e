package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/staking-ops-client/internal/chain"
	"github.com/babylonchain/staking-ops-client/internal/clients/ledger"
	"github.com/babylonchain/staking-ops-client/internal/db"
	"github.com/babylonchain/staking-ops-client/internal/fees"
	"github.com/babylonchain/staking-ops-client/internal/obfuscation"
	"github.com/babylonchain/staking-ops-client/internal/services"
	"github.com/babylonchain/staking-ops-client/internal/signer"
	"github.com/babylonchain/staking-ops-client/internal/types"
	"github.com/babylonchain/staking-ops-client/internal/wallet"
	"github.com/babylonchain/staking-ops-client/tests/mocks"
)

const (
	walletName      = "ops"
	bondedAmount    = types.Coin(1_000_000)
	unbondedAmount  = types.Coin(2_500_000_000_000_000_000)
	latestBlockTime = 1_600_000_000
)

type fixture struct {
	store   *db.MemoryClient
	wallet  *wallet.DefaultClient
	ledger  *mocks.LedgerClient
	cipher  *obfuscation.Cipher
	enckey  wallet.EncKey
	address chain.StakingAddress
}

func newFixture(t *testing.T) *fixture {
	ctx := context.Background()
	store := db.NewMemoryClient()
	client := wallet.NewDefaultClient(store)
	enckey, err := client.NewWallet(ctx, walletName, "passphrase")
	require.NoError(t, err)
	address, err := client.NewStakingAddress(ctx, walletName, enckey)
	require.NoError(t, err)

	var key [obfuscation.KeySize]byte
	for i := range key {
		key[i] = 0x11
	}
	cipher, err := obfuscation.NewCipher(key, 0)
	require.NoError(t, err)

	return &fixture{
		store:   store,
		wallet:  client,
		ledger:  mocks.NewLedgerClient(t),
		cipher:  cipher,
		enckey:  enckey,
		address: address,
	}
}

func (f *fixture) ops(w wallet.Client) *services.NetworkOps {
	return services.NewNetworkOps(w, signer.NewWalletSignerManager(w), f.ledger, fees.UnitFee{}, f.cipher)
}

func (f *fixture) withState(t *testing.T, state *chain.StakedState) {
	b, err := state.Encode()
	require.NoError(t, err)
	f.ledger.On("Query", mock.Anything, "account", state.Address.Bytes()).Return(b, nil)
}

func (f *fixture) withLatestBlock() {
	f.ledger.On("Status", mock.Anything).Return(&ledger.Status{
		LatestBlockHeight: 1,
		LatestBlockTime:   time.Unix(latestBlockTime, 0),
	}, nil)
}

func (f *fixture) defaultState() *chain.StakedState {
	return chain.NewStakedState(0, bondedAmount, unbondedAmount, 0, f.address, nil)
}

func jailedState(address chain.StakingAddress) *chain.StakedState {
	until := chain.Timespec(100)
	return chain.NewStakedState(3, bondedAmount, unbondedAmount, 0, address, &chain.Validator{
		CouncilNode: chain.NewCouncilNode("node", chain.TendermintValidatorPubKey{1}, chain.ConfidentialInit{}),
		JailedUntil: &until,
	})
}

func TestGetStakedState(t *testing.T) {
	f := newFixture(t)
	f.withState(t, f.defaultState())

	state, err := f.ops(f.wallet).GetStakedState(context.Background(), f.address)
	require.Nil(t, err)
	assert.Equal(t, bondedAmount, state.Bonded)
	assert.Equal(t, unbondedAmount, state.Unbonded)
	assert.False(t, state.IsJailed())
}

func TestGetStakedStateUndecodable(t *testing.T) {
	f := newFixture(t)
	f.ledger.On("Query", mock.Anything, "account", f.address.Bytes()).Return([]byte{}, nil)

	_, err := f.ops(f.wallet).GetStakedState(context.Background(), f.address)
	require.NotNil(t, err)
	assert.Equal(t, types.DeserializationError, err.ErrorCode)
}

func TestUnbond(t *testing.T) {
	f := newFixture(t)
	f.withState(t, f.defaultState())
	ops := f.ops(f.wallet)
	attributes := chain.NewStakingOpAttributes(0xab)

	aux, err := ops.CreateUnbondStakeTransaction(context.Background(), walletName, f.enckey, f.address, 1000, attributes)
	require.Nil(t, err)
	require.Equal(t, chain.PublicEnvelope, aux.Kind())

	unbond := aux.(*chain.UnbondStakeTxAux)
	assert.Equal(t, chain.Nonce(0), unbond.Tx.Nonce)
	assert.Equal(t, types.Coin(1000), unbond.Tx.Value)
	recovered, recoverErr := chain.RecoverStakingAddress(unbond.Witness, aux.TxID())
	require.NoError(t, recoverErr)
	assert.Equal(t, f.address, recovered)

	_, err = ops.CreateUnbondStakeTransaction(
		context.Background(), walletName, f.enckey, f.address, bondedAmount+1, attributes,
	)
	require.NotNil(t, err)
	assert.Equal(t, types.InvalidInput, err.ErrorCode)
}

func TestUnbondJailed(t *testing.T) {
	f := newFixture(t)
	f.withState(t, jailedState(f.address))

	_, err := f.ops(f.wallet).CreateUnbondStakeTransaction(
		context.Background(), walletName, f.enckey, f.address, 1, chain.NewStakingOpAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestUnbondForeignAddress(t *testing.T) {
	f := newFixture(t)
	foreign := chain.StakingAddress{0xee}
	f.withState(t, chain.NewStakedState(0, bondedAmount, 0, 0, foreign, nil))

	_, err := f.ops(f.wallet).CreateUnbondStakeTransaction(
		context.Background(), walletName, f.enckey, foreign, 1, chain.NewStakingOpAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.InvalidInput, err.ErrorCode)
	assert.ErrorContains(t, err, "Address not found in current wallet")
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.withState(t, f.defaultState())
	f.withLatestBlock()
	require.NoError(t, f.wallet.SetSyncHeight(ctx, walletName, 42))
	to, walletErr := f.wallet.NewTransferAddress(ctx, walletName, f.enckey)
	require.NoError(t, walletErr)

	outputs := []chain.TxOut{chain.NewTxOut(to, 700), chain.NewTxOut(to, 300)}
	aux, pending, err := f.ops(f.wallet).CreateWithdrawUnbondedStakeTransaction(
		ctx, walletName, f.enckey, f.address, outputs, chain.NewTxAttributes(0),
	)
	require.Nil(t, err)
	assert.Equal(t, chain.EnclaveEnvelope, aux.Kind())
	assert.Equal(t, &chain.TransactionPending{
		BlockHeight:  42,
		UsedInputs:   []chain.TxoPointer{},
		ReturnAmount: 1000,
	}, pending)

	withdraw := aux.(*chain.WithdrawUnbondedStakeTxAux)
	assert.Equal(t, uint16(2), withdraw.NoOfOutputs)
	plain, decryptErr := f.cipher.Decrypt(withdraw.Payload)
	require.NoError(t, decryptErr)
	assert.Equal(t, outputs, plain.(*chain.PlainWithdrawUnbondedStakeTx).Tx.Outputs)
}

func TestWithdrawInsufficientUnbonded(t *testing.T) {
	f := newFixture(t)
	f.withState(t, chain.NewStakedState(0, bondedAmount, 10, 0, f.address, nil))
	f.withLatestBlock()

	outputs := []chain.TxOut{chain.NewTxOut(chain.ExtendedAddr{1}, 11)}
	_, _, err := f.ops(f.wallet).CreateWithdrawUnbondedStakeTransaction(
		context.Background(), walletName, f.enckey, f.address, outputs, chain.NewTxAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.InvalidInput, err.ErrorCode)
}

func TestWithdrawNotYetUnbonded(t *testing.T) {
	f := newFixture(t)
	f.withState(t, chain.NewStakedState(0, bondedAmount, unbondedAmount, latestBlockTime+1, f.address, nil))
	f.withLatestBlock()

	outputs := []chain.TxOut{chain.NewTxOut(chain.ExtendedAddr{1}, 1)}
	_, _, err := f.ops(f.wallet).CreateWithdrawUnbondedStakeTransaction(
		context.Background(), walletName, f.enckey, f.address, outputs, chain.NewTxAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestWithdrawUsesGenesisTimeBeforeFirstBlock(t *testing.T) {
	f := newFixture(t)
	f.withState(t, chain.NewStakedState(0, bondedAmount, unbondedAmount, 500, f.address, nil))
	f.ledger.On("Status", mock.Anything).Return(&ledger.Status{
		LatestBlockHeight: 0,
		LatestBlockTime:   time.Unix(latestBlockTime, 0),
	}, nil)
	f.ledger.On("Genesis", mock.Anything).Return(&ledger.Genesis{GenesisTime: time.Unix(400, 0)}, nil)

	outputs := []chain.TxOut{chain.NewTxOut(chain.ExtendedAddr{1}, 1)}
	_, _, err := f.ops(f.wallet).CreateWithdrawUnbondedStakeTransaction(
		context.Background(), walletName, f.enckey, f.address, outputs, chain.NewTxAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestWithdrawLedgerUnreachable(t *testing.T) {
	f := newFixture(t)
	f.ledger.On("Status", mock.Anything).
		Return(nil, types.NewErrorWithMsg(types.ConnectionError, "connection refused"))

	outputs := []chain.TxOut{chain.NewTxOut(chain.ExtendedAddr{1}, 1)}
	_, _, err := f.ops(f.wallet).CreateWithdrawUnbondedStakeTransaction(
		context.Background(), walletName, f.enckey, f.address, outputs, chain.NewTxAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.ConnectionError, err.ErrorCode)
}

func TestWithdrawAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.withState(t, f.defaultState())
	f.withLatestBlock()
	to := chain.ExtendedAddr{9}

	aux, pending, err := f.ops(f.wallet).CreateWithdrawAllUnbondedStakeTransaction(
		ctx, walletName, f.enckey, f.address, to, chain.NewTxAttributes(0),
	)
	require.Nil(t, err)
	expected := unbondedAmount - 1
	assert.Equal(t, expected, pending.ReturnAmount)

	plain, decryptErr := f.cipher.Decrypt(aux.(*chain.WithdrawUnbondedStakeTxAux).Payload)
	require.NoError(t, decryptErr)
	outputs := plain.(*chain.PlainWithdrawUnbondedStakeTx).Tx.Outputs
	require.Len(t, outputs, 1)
	assert.Equal(t, to, outputs[0].Address)
	assert.Equal(t, types.Coin(2_499_999_999_999_999_999), outputs[0].Value)
	require.NotNil(t, outputs[0].ValidFrom)
	assert.Equal(t, chain.Timespec(0), *outputs[0].ValidFrom)
}

func TestWithdrawAllFeeExceedsUnbonded(t *testing.T) {
	f := newFixture(t)
	f.withState(t, chain.NewStakedState(0, bondedAmount, 0, 0, f.address, nil))

	_, _, err := f.ops(f.wallet).CreateWithdrawAllUnbondedStakeTransaction(
		context.Background(), walletName, f.enckey, f.address, chain.ExtendedAddr{9}, chain.NewTxAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.IllegalInput, err.ErrorCode)
	assert.ErrorContains(t, err, "Calculated fee is more than the unbonded amount")
}

func TestWithdrawAllNothingLeftAfterFee(t *testing.T) {
	f := newFixture(t)
	f.withState(t, chain.NewStakedState(0, bondedAmount, 1, 0, f.address, nil))

	_, _, err := f.ops(f.wallet).CreateWithdrawAllUnbondedStakeTransaction(
		context.Background(), walletName, f.enckey, f.address, chain.ExtendedAddr{9}, chain.NewTxAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestWithdrawAllJailed(t *testing.T) {
	f := newFixture(t)
	f.withState(t, jailedState(f.address))

	_, _, err := f.ops(f.wallet).CreateWithdrawAllUnbondedStakeTransaction(
		context.Background(), walletName, f.enckey, f.address, chain.ExtendedAddr{9}, chain.NewTxAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestReadOnlyWalletRecordsZeroHeight(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.withState(t, f.defaultState())
	f.withLatestBlock()
	require.NoError(t, f.wallet.SetSyncHeight(ctx, walletName, 42))

	readOnly := wallet.NewReadOnlyClient(f.store)
	outputs := []chain.TxOut{chain.NewTxOut(chain.ExtendedAddr{1}, 5)}
	_, pending, err := f.ops(readOnly).CreateWithdrawUnbondedStakeTransaction(
		ctx, walletName, f.enckey, f.address, outputs, chain.NewTxAttributes(0),
	)
	require.Nil(t, err)
	assert.Equal(t, uint64(0), pending.BlockHeight)
}

func TestReadOnlyWalletDepositRecordsZeroHeight(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.wallet.SetSyncHeight(ctx, walletName, 42))
	inputs := f.transferOutputs(t, 100)

	readOnly := wallet.NewReadOnlyClient(f.store)
	_, pending, err := f.ops(readOnly).CreateDepositBondedStakeTransaction(
		ctx, walletName, f.enckey, inputs, f.address, chain.NewStakingOpAttributes(0),
	)
	require.Nil(t, err)
	assert.Equal(t, uint64(0), pending.BlockHeight)
	assert.Equal(t, []chain.TxoPointer{inputs[0].Pointer}, pending.UsedInputs)
}

func TestReadOnlyWalletWithdrawAllRecordsZeroHeight(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.withState(t, f.defaultState())
	f.withLatestBlock()
	require.NoError(t, f.wallet.SetSyncHeight(ctx, walletName, 42))

	readOnly := wallet.NewReadOnlyClient(f.store)
	_, pending, err := f.ops(readOnly).CreateWithdrawAllUnbondedStakeTransaction(
		ctx, walletName, f.enckey, f.address, chain.ExtendedAddr{9}, chain.NewTxAttributes(0),
	)
	require.Nil(t, err)
	assert.Equal(t, uint64(0), pending.BlockHeight)
	assert.Equal(t, unbondedAmount-1, pending.ReturnAmount)
}

type brokenSyncWallet struct {
	wallet.Client
}

func (brokenSyncWallet) CurrentBlockHeight(context.Context, string) (uint64, error) {
	return 0, types.NewInternalServiceError(errors.New("sync state corrupted"))
}

func TestBlockHeightErrorsPropagate(t *testing.T) {
	f := newFixture(t)
	f.withState(t, f.defaultState())
	f.withLatestBlock()

	outputs := []chain.TxOut{chain.NewTxOut(chain.ExtendedAddr{1}, 5)}
	_, _, err := f.ops(brokenSyncWallet{f.wallet}).CreateWithdrawUnbondedStakeTransaction(
		context.Background(), walletName, f.enckey, f.address, outputs, chain.NewTxAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.InternalServiceError, err.ErrorCode)
}

func (f *fixture) transferOutputs(t *testing.T, values ...types.Coin) []chain.UnspentOutput {
	var outputs []chain.UnspentOutput
	for i, v := range values {
		address, err := f.wallet.NewTransferAddress(context.Background(), walletName, f.enckey)
		require.NoError(t, err)
		outputs = append(outputs, chain.UnspentOutput{
			Pointer: chain.NewTxoPointer(chain.TxID{byte(i + 1)}, uint16(i)),
			Output:  chain.NewTxOut(address, v),
		})
	}
	return outputs
}

func TestDepositToOwnAddress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.wallet.SetSyncHeight(ctx, walletName, 7))
	inputs := f.transferOutputs(t, 100, 200)

	// no ledger expectations: an own destination is never fetched
	aux, pending, err := f.ops(f.wallet).CreateDepositBondedStakeTransaction(
		ctx, walletName, f.enckey, inputs, f.address, chain.NewStakingOpAttributes(0),
	)
	require.Nil(t, err)
	assert.Equal(t, &chain.TransactionPending{
		BlockHeight:  7,
		UsedInputs:   []chain.TxoPointer{inputs[0].Pointer, inputs[1].Pointer},
		ReturnAmount: 0,
	}, pending)

	deposit := aux.(*chain.DepositStakeTxAux)
	assert.Equal(t, f.address, deposit.Tx.To)
	plain, decryptErr := f.cipher.Decrypt(deposit.Payload)
	require.NoError(t, decryptErr)
	witness := plain.(*chain.PlainDepositStakeTx).Witness
	require.Len(t, witness, 2)
	for i := range witness {
		assert.NoError(t, chain.VerifyTxInWitness(deposit.TxID(), inputs[i].Output, witness[i]))
	}
}

func TestDepositToForeignAddress(t *testing.T) {
	f := newFixture(t)
	foreign := chain.StakingAddress{0xee}
	f.withState(t, chain.NewStakedState(0, 0, 0, 0, foreign, nil))
	inputs := f.transferOutputs(t, 100)

	_, pending, err := f.ops(f.wallet).CreateDepositBondedStakeTransaction(
		context.Background(), walletName, f.enckey, inputs, foreign, chain.NewStakingOpAttributes(0),
	)
	require.Nil(t, err)
	assert.Equal(t, []chain.TxoPointer{inputs[0].Pointer}, pending.UsedInputs)
}

func TestDepositToJailedForeignAddress(t *testing.T) {
	f := newFixture(t)
	foreign := chain.StakingAddress{0xee}
	f.withState(t, jailedState(foreign))
	inputs := f.transferOutputs(t, 100)

	_, _, err := f.ops(f.wallet).CreateDepositBondedStakeTransaction(
		context.Background(), walletName, f.enckey, inputs, foreign, chain.NewStakingOpAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestDepositWithForeignInputs(t *testing.T) {
	f := newFixture(t)
	inputs := []chain.UnspentOutput{{
		Pointer: chain.NewTxoPointer(chain.TxID{1}, 0),
		Output:  chain.NewTxOut(chain.ExtendedAddr{0xaa}, 100),
	}}

	_, _, err := f.ops(f.wallet).CreateDepositBondedStakeTransaction(
		context.Background(), walletName, f.enckey, inputs, f.address, chain.NewStakingOpAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.InvalidInput, err.ErrorCode)
}

func TestDepositWithoutInputs(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.ops(f.wallet).CreateDepositBondedStakeTransaction(
		context.Background(), walletName, f.enckey, nil, f.address, chain.NewStakingOpAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestDepositWrongEncKey(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.ops(f.wallet).CreateDepositBondedStakeTransaction(
		context.Background(), walletName, wallet.DeriveEncKey(walletName, "wrong"),
		f.transferOutputs(t, 1), f.address, chain.NewStakingOpAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.InvalidInput, err.ErrorCode)
}

func TestCalculateDepositFee(t *testing.T) {
	f := newFixture(t)

	fee, err := f.ops(f.wallet).CalculateDepositFee(context.Background())
	require.Nil(t, err)
	assert.Equal(t, types.UnitCoin(), fee)

	linear := services.NewNetworkOps(
		f.wallet, signer.NewWalletSignerManager(f.wallet), f.ledger,
		fees.NewLinearFee(types.NewMilli(1, 100), types.NewMilli(1, 250)), f.cipher,
	)
	linearFee, err := linear.CalculateDepositFee(context.Background())
	require.Nil(t, err)
	assert.Greater(t, uint64(linearFee), uint64(fee))
}

func TestUnjail(t *testing.T) {
	f := newFixture(t)
	f.withState(t, jailedState(f.address))

	aux, err := f.ops(f.wallet).CreateUnjailTransaction(
		context.Background(), walletName, f.enckey, f.address, chain.NewStakingOpAttributes(0),
	)
	require.Nil(t, err)
	unjail := aux.(*chain.UnjailTxAux)
	assert.Equal(t, chain.Nonce(3), unjail.Tx.Nonce)
	recovered, recoverErr := chain.RecoverStakingAddress(unjail.Witness, aux.TxID())
	require.NoError(t, recoverErr)
	assert.Equal(t, f.address, recovered)
}

func TestUnjailNotJailed(t *testing.T) {
	f := newFixture(t)
	f.withState(t, f.defaultState())

	_, err := f.ops(f.wallet).CreateUnjailTransaction(
		context.Background(), walletName, f.enckey, f.address, chain.NewStakingOpAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.IllegalInput, err.ErrorCode)
}

func TestNodeJoin(t *testing.T) {
	f := newFixture(t)
	f.withState(t, f.defaultState())
	node := chain.NewCouncilNode("validator-1", chain.TendermintValidatorPubKey{7}, chain.ConfidentialInit{Cert: []byte{1, 2}})

	aux, err := f.ops(f.wallet).CreateNodeJoinTransaction(
		context.Background(), walletName, f.enckey, f.address, chain.NewStakingOpAttributes(0), node,
	)
	require.Nil(t, err)
	join := aux.(*chain.NodeJoinTxAux)
	assert.Equal(t, node, join.Tx.NodeMeta)
	assert.Equal(t, f.address, join.Tx.Address)
}

func TestNodeJoinJailed(t *testing.T) {
	f := newFixture(t)
	f.withState(t, jailedState(f.address))

	_, err := f.ops(f.wallet).CreateNodeJoinTransaction(
		context.Background(), walletName, f.enckey, f.address, chain.NewStakingOpAttributes(0),
		chain.NewCouncilNode("validator-1", chain.TendermintValidatorPubKey{7}, chain.ConfidentialInit{}),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
}

type failingPolicy struct{}

func (failingPolicy) CalculateForTxAux(chain.TxAux) (types.Fee, error) {
	return types.Fee{}, fees.ErrFeeOutOfRange
}

func TestFeePolicyFailureIsIllegalInput(t *testing.T) {
	f := newFixture(t)
	f.withState(t, f.defaultState())
	ops := services.NewNetworkOps(f.wallet, signer.NewWalletSignerManager(f.wallet), f.ledger, failingPolicy{}, f.cipher)

	_, _, err := ops.CreateWithdrawAllUnbondedStakeTransaction(
		context.Background(), walletName, f.enckey, f.address, chain.ExtendedAddr{9}, chain.NewTxAttributes(0),
	)
	require.NotNil(t, err)
	assert.Equal(t, types.IllegalInput, err.ErrorCode)
	assert.ErrorContains(t, err, "Calculated fee is more than the maximum allowed value")

	_, err = ops.CalculateDepositFee(context.Background())
	require.NotNil(t, err)
	assert.Equal(t, types.IllegalInput, err.ErrorCode)
	assert.ErrorContains(t, err, "Calculated fee is more than the maximum allowed value")
}
