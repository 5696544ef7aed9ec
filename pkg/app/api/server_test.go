package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/rbt-faucet/pkg/config"
	"github.com/chainsafe/rbt-faucet/pkg/faucet"
	"github.com/chainsafe/rbt-faucet/pkg/faucet/service"
	"github.com/chainsafe/rbt-faucet/pkg/faucet/service/mocks"
	"github.com/chainsafe/rbt-faucet/pkg/rubix"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(`
faucet:
  sender_did: bafybsender
  sign_password: mypassword
`))
	require.NoError(t, err)
	return cfg
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestNewRouter_HealthAndReady(t *testing.T) {
	cfg := testConfig(t)
	r := NewRouter(cfg, mocks.NewService(t), fakePinger{}, zap.NewNop())

	rec := get(r, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = get(r, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())

	r = NewRouter(cfg, mocks.NewService(t), fakePinger{err: errors.New("db down")}, zap.NewNop())
	rec = get(r, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNewRouter_Metrics(t *testing.T) {
	cfg := testConfig(t)

	rec := get(NewRouter(cfg, mocks.NewService(t), fakePinger{}, zap.NewNop()), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "faucet_rate_limited_total")

	cfg.Monitoring.Enabled = false
	rec = get(NewRouter(cfg, mocks.NewService(t), fakePinger{}, zap.NewNop()), "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewRouter_FaucetRoutes(t *testing.T) {
	cfg := testConfig(t)
	svc := mocks.NewService(t)
	svc.EXPECT().Quorums(mock.Anything).Return([]string{"12D3KooW.bafybquorum"}, nil).Once()

	rec := get(NewRouter(cfg, svc, fakePinger{}, zap.NewNop()), "/api/get-faucet-quorums")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["12D3KooW.bafybquorum"]`, rec.Body.String())
}

func TestNewRouter_StaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>faucet</h1>"), 0o600))

	cfg := testConfig(t)
	cfg.Server.StaticDir = dir
	r := NewRouter(cfg, mocks.NewService(t), fakePinger{}, zap.NewNop())

	rec := get(r, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "faucet")

	rec = get(r, "/health")
	assert.Equal(t, "OK", rec.Body.String())
}

// A claim against a node that keeps timing out must still be answered with a
// status before the server's own deadlines close the connection. Timeouts are
// the defaults scaled down by 1000.
func TestIncrement_SlowNodeAnswersGatewayTimeout(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.RequestTimeout = 80 * time.Millisecond
	cfg.Server.WriteTimeout = 90 * time.Millisecond
	cfg.Faucet.TransferTimeout = 70 * time.Millisecond
	require.NoError(t, config.Validate(cfg))

	release := make(chan struct{})
	var initiateCalls atomic.Int32
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/initiate-rbt-transfer") && initiateCalls.Add(1) > 1 {
			_, _ = w.Write([]byte(`{"status":true,"message":"Signature needed","result":{"id":"tx-1"}}`))
			return
		}
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(node.Close)
	t.Cleanup(func() { close(release) })

	ledger, err := rubix.NewClient(node.URL,
		rubix.WithTimeout(30*time.Millisecond),
		rubix.WithRetryDelay(500*time.Microsecond),
	)
	require.NoError(t, err)

	store := mocks.NewStore(t)
	store.EXPECT().ReserveClaim(mock.Anything, "bafybclaimant", mock.Anything, cfg.Faucet.Cooldown).
		Return(&faucet.ClaimRecord{Identifier: "bafybclaimant"}, nil).Once()
	store.EXPECT().CreatePayout(mock.Anything, mock.Anything).Return(nil).Once()
	store.EXPECT().UpdatePayout(mock.Anything, mock.Anything, faucet.PayoutFailed, mock.Anything, mock.Anything).
		Return(nil).Once()
	counter := mocks.NewCounter(t)
	counter.EXPECT().Increment().Return(uint64(1), nil).Once()

	svc := service.NewService(store, counter, ledger, &cfg.Faucet, zap.NewNop())
	srv := httptest.NewUnstartedServer(NewRouter(cfg, svc, fakePinger{}, zap.NewNop()))
	srv.Config.WriteTimeout = cfg.Server.WriteTimeout
	srv.Start()
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/increment", "application/json", strings.NewReader(`{"username":"bafybclaimant"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
	assert.Equal(t, "transfer failed", string(body))
}

func TestConfigDefaults_TimeoutsNest(t *testing.T) {
	cfg := testConfig(t)
	assert.Less(t, cfg.Faucet.TransferTimeout, cfg.Server.RequestTimeout)
	assert.LessOrEqual(t, cfg.Server.RequestTimeout, cfg.Server.WriteTimeout)
}
