package db

import (
	"context"
	"sort"
	"sync"

	"github.com/babylonchain/staking-ops-client/internal/db/model"
)

// MemoryClient is a DBClient kept in process memory. It is used when no
// mongo deployment is configured and in tests.
type MemoryClient struct {
	mu      sync.RWMutex
	wallets map[string]model.WalletDocument
	heights map[string]uint64
	pending map[string]model.PendingTransactionDocument
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		wallets: make(map[string]model.WalletDocument),
		heights: make(map[string]uint64),
		pending: make(map[string]model.PendingTransactionDocument),
	}
}

func (m *MemoryClient) Ping(context.Context) error {
	return nil
}

func (m *MemoryClient) SaveWallet(_ context.Context, wallet model.WalletDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.wallets[wallet.Name]; ok {
		return &DuplicateKeyError{Key: wallet.Name, Message: "wallet already exists"}
	}
	wallet.Keys = append([]model.WalletKeyDocument(nil), wallet.Keys...)
	m.wallets[wallet.Name] = wallet
	m.heights[wallet.Name] = 0
	return nil
}

func (m *MemoryClient) FindWalletByName(_ context.Context, name string) (*model.WalletDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	wallet, ok := m.wallets[name]
	if !ok {
		return nil, &NotFoundError{Key: name, Message: "wallet not found"}
	}
	wallet.Keys = append([]model.WalletKeyDocument(nil), wallet.Keys...)
	return &wallet, nil
}

func (m *MemoryClient) SaveWalletKey(_ context.Context, name string, key model.WalletKeyDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	wallet, ok := m.wallets[name]
	if !ok {
		return &NotFoundError{Key: name, Message: "wallet not found when saving key"}
	}
	wallet.Keys = append(wallet.Keys, key)
	m.wallets[name] = wallet
	return nil
}

func (m *MemoryClient) SaveSyncHeight(_ context.Context, name string, height uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.heights[name] = height
	return nil
}

func (m *MemoryClient) FindSyncHeight(_ context.Context, name string) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	height, ok := m.heights[name]
	if !ok {
		return 0, &NotFoundError{Key: name, Message: "sync state not found"}
	}
	return height, nil
}

func (m *MemoryClient) SavePendingTransaction(_ context.Context, pending model.PendingTransactionDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pending[pending.TxIDHex]; ok {
		return &DuplicateKeyError{Key: pending.TxIDHex, Message: "pending transaction already exists"}
	}
	m.pending[pending.TxIDHex] = pending
	return nil
}

func (m *MemoryClient) FindPendingTransactions(_ context.Context, name string) ([]model.PendingTransactionDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []model.PendingTransactionDocument
	for _, p := range m.pending {
		if p.WalletName == name {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].BlockHeight != result[j].BlockHeight {
			return result[i].BlockHeight > result[j].BlockHeight
		}
		return result[i].TxIDHex < result[j].TxIDHex
	})
	return result, nil
}
