package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/rbt-faucet/pkg/config"
	"github.com/chainsafe/rbt-faucet/pkg/faucet/service/mocks"
	"github.com/chainsafe/rbt-faucet/pkg/rubix"
)

func testReplenishConfig() *config.Config {
	return &config.Config{
		Faucet: *testFaucetConfig(),
		Replenish: config.ReplenishConfig{
			Enabled:      true,
			LowWaterMark: 50,
			TopUpAmount:  100,
			Timeout:      time.Second,
		},
	}
}

func balance(v string) *rubix.AccountInfo {
	return &rubix.AccountInfo{DID: testSender, RBTAmount: decimal.RequireFromString(v)}
}

func TestReplenisher_SkipsAtOrAboveLowWaterMark(t *testing.T) {
	for _, amount := range []string{"50", "50.0001", "1000"} {
		t.Run(amount, func(t *testing.T) {
			store := mocks.NewStore(t)
			ledger := mocks.NewLedger(t)
			ledger.EXPECT().GetAccountInfo(mock.Anything, testSender).Return(balance(amount), nil).Once()

			r := NewReplenisher(store, ledger, testReplenishConfig(), zap.NewNop())
			outcome, err := r.Check(context.Background())
			require.NoError(t, err)
			assert.Equal(t, ReplenishSkipped, outcome)
		})
	}
}

func TestReplenisher_MintsBelowLowWaterMark(t *testing.T) {
	store := mocks.NewStore(t)
	ledger := mocks.NewLedger(t)

	ledger.EXPECT().GetAccountInfo(mock.Anything, testSender).Return(balance("49.999"), nil).Once()
	ledger.EXPECT().GenerateFaucetToken(mock.Anything, &rubix.MintRequest{DID: testSender, TokenCount: 100}).
		Return(&rubix.Initiated{ID: "mint-1"}, nil).Once()
	ledger.EXPECT().SignatureResponse(mock.Anything, &rubix.SignatureRequest{ID: "mint-1", Password: testPassword}).
		Return(&rubix.Signed{ID: "mint-1", Message: successNodeMsg}, nil).Once()
	store.EXPECT().IncrementTotalCount(mock.Anything, testFaucetID, int64(100)).Return(nil).Once()

	r := NewReplenisher(store, ledger, testReplenishConfig(), zap.NewNop())
	outcome, err := r.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReplenishMinted, outcome)
}

func TestReplenisher_UsesOwnSuccessMarker(t *testing.T) {
	cfg := testReplenishConfig()
	cfg.Replenish.SuccessMarker = "Minted"

	store := mocks.NewStore(t)
	ledger := mocks.NewLedger(t)
	ledger.EXPECT().GetAccountInfo(mock.Anything, testSender).Return(balance("0"), nil).Once()
	ledger.EXPECT().GenerateFaucetToken(mock.Anything, mock.Anything).Return(&rubix.Initiated{ID: "mint-2"}, nil).Once()
	ledger.EXPECT().SignatureResponse(mock.Anything, mock.Anything).
		Return(&rubix.Signed{ID: "mint-2", Message: successNodeMsg}, nil).Once()

	r := NewReplenisher(store, ledger, cfg, zap.NewNop())
	outcome, err := r.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReplenishRejected, outcome)
}

func TestReplenisher_Failures(t *testing.T) {
	nodeErr := &rubix.Error{Op: "get-account-info", Kind: rubix.ErrTransport}

	t.Run("balance", func(t *testing.T) {
		ledger := mocks.NewLedger(t)
		ledger.EXPECT().GetAccountInfo(mock.Anything, testSender).Return(nil, nodeErr).Once()

		r := NewReplenisher(mocks.NewStore(t), ledger, testReplenishConfig(), zap.NewNop())
		outcome, err := r.Check(context.Background())
		require.ErrorIs(t, err, rubix.ErrTransport)
		assert.Equal(t, ReplenishFailed, outcome)
	})

	t.Run("mint", func(t *testing.T) {
		ledger := mocks.NewLedger(t)
		ledger.EXPECT().GetAccountInfo(mock.Anything, testSender).Return(balance("1"), nil).Once()
		ledger.EXPECT().GenerateFaucetToken(mock.Anything, mock.Anything).Return(nil, nodeErr).Once()

		r := NewReplenisher(mocks.NewStore(t), ledger, testReplenishConfig(), zap.NewNop())
		outcome, err := r.Check(context.Background())
		require.Error(t, err)
		assert.Equal(t, ReplenishFailed, outcome)
	})

	t.Run("record", func(t *testing.T) {
		store := mocks.NewStore(t)
		ledger := mocks.NewLedger(t)
		ledger.EXPECT().GetAccountInfo(mock.Anything, testSender).Return(balance("1"), nil).Once()
		ledger.EXPECT().GenerateFaucetToken(mock.Anything, mock.Anything).Return(&rubix.Initiated{ID: "m"}, nil).Once()
		ledger.EXPECT().SignatureResponse(mock.Anything, mock.Anything).
			Return(&rubix.Signed{Message: successNodeMsg}, nil).Once()
		store.EXPECT().IncrementTotalCount(mock.Anything, testFaucetID, int64(100)).Return(errors.New("db down")).Once()

		r := NewReplenisher(store, ledger, testReplenishConfig(), zap.NewNop())
		outcome, err := r.Check(context.Background())
		require.Error(t, err)
		assert.Equal(t, ReplenishFailed, outcome)
	})
}

func TestReplenisher_ConcurrentChecksMintOnce(t *testing.T) {
	store := mocks.NewStore(t)
	ledger := mocks.NewLedger(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	var balanceCalls atomic.Int32

	ledger.EXPECT().GetAccountInfo(mock.Anything, testSender).
		RunAndReturn(func(context.Context, string) (*rubix.AccountInfo, error) {
			if balanceCalls.Add(1) == 1 {
				close(entered)
				<-release
				return balance("10"), nil
			}
			// Any later flight sees the topped-up balance.
			return balance("110"), nil
		})
	ledger.EXPECT().GenerateFaucetToken(mock.Anything, mock.Anything).Return(&rubix.Initiated{ID: "mint"}, nil).Once()
	ledger.EXPECT().SignatureResponse(mock.Anything, mock.Anything).
		Return(&rubix.Signed{Message: successNodeMsg}, nil).Once()
	store.EXPECT().IncrementTotalCount(mock.Anything, testFaucetID, int64(100)).Return(nil).Once()

	r := NewReplenisher(store, ledger, testReplenishConfig(), zap.NewNop())

	const callers = 10
	outcomes := make([]ReplenishOutcome, callers)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		outcomes[0], _ = r.Check(context.Background())
	}()
	<-entered

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i], _ = r.Check(context.Background())
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	minted := 0
	for _, o := range outcomes {
		assert.Contains(t, []ReplenishOutcome{ReplenishMinted, ReplenishSkipped}, o)
		if o == ReplenishMinted {
			minted++
		}
	}
	assert.GreaterOrEqual(t, minted, 1)
}

func TestReplenisher_TriggerRunsInBackgroundAndStopWaits(t *testing.T) {
	store := mocks.NewStore(t)
	ledger := mocks.NewLedger(t)

	done := make(chan struct{})
	ledger.EXPECT().GetAccountInfo(mock.Anything, testSender).
		RunAndReturn(func(ctx context.Context, _ string) (*rubix.AccountInfo, error) {
			defer close(done)
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "background check must carry its own timeout")
			return balance("500"), nil
		}).Once()

	r := NewReplenisher(store, ledger, testReplenishConfig(), zap.NewNop())
	r.Trigger()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("background check did not run")
	}
	r.Stop()

	// No further calls after Stop; the mock would fail on an unexpected call.
	r.Trigger()
	r.Stop()
}

func TestReplenisher_StopCancelsInFlightCheck(t *testing.T) {
	ledger := mocks.NewLedger(t)
	started := make(chan struct{})
	ledger.EXPECT().GetAccountInfo(mock.Anything, testSender).
		RunAndReturn(func(ctx context.Context, _ string) (*rubix.AccountInfo, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	cfg := testReplenishConfig()
	cfg.Replenish.Timeout = time.Minute
	r := NewReplenisher(mocks.NewStore(t), ledger, cfg, zap.NewNop())
	r.Trigger()
	<-started

	stopped := make(chan struct{})
	go func() {
		r.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not cancel the in-flight check")
	}
}
