package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rediscloud-community/rediscloud-go/internal/auth"
	internalhttp "github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

func TestAccountClient_Get(t *testing.T) {
	t.Parallel()

	RunGetTest(t, "get account", "/",
		map[string]interface{}{
			"account": rcloud.Account{ID: 1001, Name: "Acme Corp"},
		},
		func(c *Client, ctx context.Context) (*rcloud.Account, error) {
			return c.Account().Get(ctx)
		},
		func(account *rcloud.Account) {
			assert.Equal(t, 1001, account.ID)
			assert.Equal(t, "Acme Corp", account.Name)
		})
}

func TestAccountClient_ListPaymentMethods(t *testing.T) {
	t.Parallel()

	RunListTest(t, "list payment methods", "/payment-methods",
		map[string]interface{}{
			"paymentMethods": []rcloud.PaymentMethod{
				{ID: 1, Type: "credit-card", CreditCardType: "Visa", EndingNumber: "4242"},
			},
		},
		func(c *Client, ctx context.Context) ([]rcloud.PaymentMethod, error) {
			return c.Account().ListPaymentMethods(ctx)
		},
		1,
		func(methods []rcloud.PaymentMethod) {
			assert.Equal(t, "Visa", methods[0].CreditCardType)
		})
}

func TestAccountClient_ListRegions(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/regions", request.URL.Path)
		assert.Equal(t, "AWS", request.URL.Query().Get("provider"))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"regions": []rcloud.Region{
				{Name: "us-east-1", Provider: rcloud.ProviderAWS},
				{Name: "eu-west-1", Provider: rcloud.ProviderAWS},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	regions, err := client.Account().ListRegions(context.Background(), rcloud.ProviderAWS)
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, "us-east-1", regions[0].Name)
}

func TestAccountClient_ListRegionsCached(t *testing.T) {
	t.Parallel()

	var hits int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		atomic.AddInt32(&hits, 1)

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"regions": []rcloud.Region{
				{Name: "us-east-1", Provider: rcloud.ProviderAWS},
			},
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, auth.NewStaticProvider("test-key", "test-secret"))
	cache := rcloud.NewCacheManager(rcloud.NewMemoryCache(100), nil)
	account := NewAccountClient(httpClient, cache)

	for i := 0; i < 3; i++ {
		regions, err := account.ListRegions(context.Background(), rcloud.ProviderAWS)
		require.NoError(t, err)
		require.Len(t, regions, 1)
	}

	// The catalog is served from the cache after the first fetch.
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	stats := cache.GetStats()
	assert.Equal(t, int64(2), stats.Hits)
}

func TestAccountClient_ListDatabaseModules(t *testing.T) {
	t.Parallel()

	RunListTest(t, "list database modules", "/database-modules",
		map[string]interface{}{
			"modules": []rcloud.DatabaseModule{
				{Name: "RedisJSON"},
				{Name: "RediSearch"},
			},
		},
		func(c *Client, ctx context.Context) ([]rcloud.DatabaseModule, error) {
			return c.Account().ListDatabaseModules(ctx)
		},
		2,
		func(modules []rcloud.DatabaseModule) {
			assert.Equal(t, "RedisJSON", modules[0].Name)
		})
}

func TestAccountClient_ListSystemLogs(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/logs", request.URL.Path)
		assert.Equal(t, "20", request.URL.Query().Get("limit"))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"entries": []rcloud.SystemLogEntry{
				{ID: 1, Type: "subscription", Description: "Subscription created"},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	entries, err := client.Account().ListSystemLogs(context.Background(), rcloud.NewQueryParams().WithLimit(20))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "subscription", entries[0].Type)
}
