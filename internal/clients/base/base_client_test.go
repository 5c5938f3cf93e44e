package baseclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	baseclient "github.com/babylonchain/staking-ops-client/internal/clients/base"
	"github.com/babylonchain/staking-ops-client/internal/types"
)

type testClient struct {
	url     string
	timeout int
}

func (c testClient) GetBaseURL() string            { return c.url }
func (c testClient) GetDefaultRequestTimeout() int { return c.timeout }
func (c testClient) GetHttpClient() *http.Client   { return http.DefaultClient }

type payload struct {
	Value string `json:"value"`
}

func serve(t *testing.T, handler http.HandlerFunc) testClient {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return testClient{url: srv.URL, timeout: 1000}
}

func TestSendRequest(t *testing.T) {
	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		_, _ = w.Write([]byte(`{"value":"ok"}`))
	})

	opts := &baseclient.BaseClientOptions{Path: "/ping", Headers: map[string]string{"X-Test": "yes"}}
	resp, err := baseclient.SendRequest[any, payload](context.Background(), client, http.MethodGet, opts, nil)
	require.Nil(t, err)
	assert.Equal(t, "ok", resp.Value)
}

func TestSendRequestPostsBody(t *testing.T) {
	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"value":"created"}`))
	})

	opts := &baseclient.BaseClientOptions{Path: "/items"}
	resp, err := baseclient.SendRequest[payload, payload](
		context.Background(), client, http.MethodPost, opts, &payload{Value: "x"},
	)
	require.Nil(t, err)
	assert.Equal(t, "created", resp.Value)
}

func TestSendRequestErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		code    types.ErrorCode
	}{
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			code:    types.InternalServiceError,
		},
		{
			name:    "client error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
			code:    types.InvalidInput,
		},
		{
			name:    "undecodable body",
			handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("not json")) },
			code:    types.DeserializationError,
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(time.Second):
				case <-r.Context().Done():
				}
			},
			code: types.RequestTimeout,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := serve(t, tt.handler)
			opts := &baseclient.BaseClientOptions{Path: "/", Timeout: 50}
			_, err := baseclient.SendRequest[any, payload](context.Background(), client, http.MethodGet, opts, nil)
			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.ErrorCode)
		})
	}
}

func TestSendRequestRejectsMethod(t *testing.T) {
	client := testClient{url: "http://localhost:0", timeout: 10}
	_, err := baseclient.SendRequest[any, payload](
		context.Background(), client, "TRACE", &baseclient.BaseClientOptions{}, nil,
	)
	require.NotNil(t, err)
	assert.Equal(t, types.InternalServiceError, err.ErrorCode)
}

func TestSendRequestConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := testClient{url: url, timeout: 1000}
	_, err := baseclient.SendRequest[any, payload](
		context.Background(), client, http.MethodGet, &baseclient.BaseClientOptions{Path: "/"}, nil,
	)
	require.NotNil(t, err)
	assert.Equal(t, types.ConnectionError, err.ErrorCode)
}
