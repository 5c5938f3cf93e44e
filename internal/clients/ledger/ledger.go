package ledger

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	baseclient "github.com/babylonchain/staking-ops-client/internal/clients/base"
	"github.com/babylonchain/staking-ops-client/internal/config"
	"github.com/babylonchain/staking-ops-client/internal/types"
	"github.com/babylonchain/staking-ops-client/internal/utils"
)

// RPCClient talks to the JSON-RPC endpoint of a tendermint node over HTTP.
type RPCClient struct {
	config     *config.LedgerConfig
	httpClient *http.Client
}

func NewRPCClient(config *config.LedgerConfig) *RPCClient {
	httpClient := &http.Client{}
	return &RPCClient{
		config,
		httpClient,
	}
}

// Necessary for the BaseClient interface
func (c *RPCClient) GetBaseURL() string {
	return c.config.URL
}

func (c *RPCClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *RPCClient) GetHttpClient() *http.Client {
	return c.httpClient
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

type rpcResponse[R any] struct {
	Result R         `json:"result"`
	Error  *rpcError `json:"error"`
}

type abciQueryResult struct {
	Response struct {
		Code  uint32 `json:"code"`
		Log   string `json:"log"`
		Value []byte `json:"value"`
	} `json:"response"`
}

type statusResult struct {
	SyncInfo struct {
		LatestBlockHeight string `json:"latest_block_height"`
		LatestBlockTime   string `json:"latest_block_time"`
	} `json:"sync_info"`
}

type genesisResult struct {
	Genesis struct {
		GenesisTime string `json:"genesis_time"`
		ChainID     string `json:"chain_id"`
	} `json:"genesis"`
}

func call[R any](ctx context.Context, c *RPCClient, path string) (*R, error) {
	opts := &baseclient.BaseClientOptions{Path: path}
	resp, err := baseclient.SendRequest[any, rpcResponse[R]](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		log.Ctx(ctx).Error().Int("code", resp.Error.Code).Str("data", resp.Error.Data).
			Msgf("ledger rpc %s failed", path)
		return nil, types.NewErrorWithMsg(
			types.ConnectionError,
			fmt.Sprintf("ledger rpc error %d: %s %s", resp.Error.Code, resp.Error.Message, resp.Error.Data),
		)
	}
	return &resp.Result, nil
}

// Query returns the response value even when the application reports a
// non-zero code, so a missing record surfaces as undecodable bytes.
func (c *RPCClient) Query(ctx context.Context, path string, data []byte) ([]byte, error) {
	params := url.Values{}
	params.Set("path", strconv.Quote(path))
	params.Set("data", "0x"+hex.EncodeToString(data))
	result, err := call[abciQueryResult](ctx, c, "/abci_query?"+params.Encode())
	if err != nil {
		return nil, err
	}
	if result.Response.Code != 0 {
		log.Ctx(ctx).Debug().Uint32("code", result.Response.Code).Str("log", result.Response.Log).
			Str("path", path).Msg("abci query returned non-zero code")
	}
	return result.Response.Value, nil
}

func (c *RPCClient) Status(ctx context.Context) (*Status, error) {
	result, err := call[statusResult](ctx, c, "/status")
	if err != nil {
		return nil, err
	}
	height, parseErr := strconv.ParseUint(result.SyncInfo.LatestBlockHeight, 10, 64)
	if parseErr != nil {
		return nil, types.NewError(
			types.DeserializationError,
			fmt.Errorf("invalid latest block height %q: %w", result.SyncInfo.LatestBlockHeight, parseErr),
		)
	}
	blockTime, parseErr := utils.ParseTimestamp(result.SyncInfo.LatestBlockTime)
	if parseErr != nil {
		return nil, types.NewError(types.DeserializationError, parseErr)
	}
	return &Status{LatestBlockHeight: height, LatestBlockTime: blockTime}, nil
}

func (c *RPCClient) Genesis(ctx context.Context) (*Genesis, error) {
	result, err := call[genesisResult](ctx, c, "/genesis")
	if err != nil {
		return nil, err
	}
	genesisTime, parseErr := utils.ParseTimestamp(result.Genesis.GenesisTime)
	if parseErr != nil {
		return nil, types.NewError(types.DeserializationError, parseErr)
	}
	return &Genesis{GenesisTime: genesisTime, ChainID: result.Genesis.ChainID}, nil
}

var _ Client = (*RPCClient)(nil)
