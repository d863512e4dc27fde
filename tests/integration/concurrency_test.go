package integration

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"mobile-money-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hammer the engine through the full HTTP stack. The
// in-memory transactor serializes units of work the way row locks
// would, so money conservation and non-negativity must hold under
// arbitrary interleavings.

func (r *inMemoryHistoryRepo) failNextCreate() {
	r.mu.Lock()
	r.failNext = true
	r.mu.Unlock()
}

// rawPost fires a request without touching t, safe for use from worker
// goroutines. Returns 0 on transport errors.
func (a *testApp) rawPost(path string, actor uuid.UUID, body string) int {
	req, err := http.NewRequest(http.MethodPost, a.server.URL+path, bytes.NewBufferString(body))
	if err != nil {
		return 0
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-ID", actor.String())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0
	}
	defer resp.Body.Close()
	_, _ = io.ReadAll(resp.Body)
	return resp.StatusCode
}

func (a *testApp) rawTransfer(sender, receiver uuid.UUID, amount, pin string) int {
	body := fmt.Sprintf(`{"receiver_owner_id":%q,"amount":%q,"pin":%q}`, receiver.String(), amount, pin)
	return a.rawPost("/api/v1/transactions/transfer", sender, body)
}

func TestConcurrency_ParallelTransfersConserveMoney(t *testing.T) {
	app := newTestApp(t)

	sender := app.seedWallet(t, 1000000)
	receiver := app.seedWallet(t, 0)
	app.setPin(t, sender, "1234")

	const workers = 20
	var wg sync.WaitGroup
	var succeeded atomic.Int64

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if app.rawTransfer(sender, receiver, "10.00", "1234") == http.StatusCreated {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(workers), succeeded.Load(), "all transfers had ample funds")

	// Each transfer moves 10.00 and burns 0.10 fee into the fee wallet.
	senderCents := app.balanceCents(t, sender)
	receiverCents := app.balanceCents(t, receiver)
	feeCents := app.balanceCents(t, app.feeOwnerID)

	assert.Equal(t, int64(1000000-workers*1010), senderCents)
	assert.Equal(t, int64(workers*1000), receiverCents)
	assert.Equal(t, int64(workers*10), feeCents)
	assert.Equal(t, int64(1000000), senderCents+receiverCents+feeCents)
}

func TestConcurrency_DrainedWalletNeverGoesNegative(t *testing.T) {
	app := newTestApp(t)

	// Funds for exactly 5 transfers of 10.00 plus the 0.10 fee.
	sender := app.seedWallet(t, 5050)
	receiver := app.seedWallet(t, 0)
	app.setPin(t, sender, "1234")

	const workers = 20
	var wg sync.WaitGroup
	var succeeded, rejected atomic.Int64

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch app.rawTransfer(sender, receiver, "10.00", "1234") {
			case http.StatusCreated:
				succeeded.Add(1)
			case http.StatusPaymentRequired:
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(5), succeeded.Load())
	assert.Equal(t, int64(workers-5), rejected.Load())
	assert.Equal(t, int64(0), app.balanceCents(t, sender))
	assert.Equal(t, int64(5000), app.balanceCents(t, receiver))
	assert.Equal(t, int64(50), app.balanceCents(t, app.feeOwnerID))
}

func TestConcurrency_OpposingTransfersComplete(t *testing.T) {
	app := newTestApp(t)

	alice := app.seedWallet(t, 100000)
	bob := app.seedWallet(t, 100000)
	app.setPin(t, alice, "1111")
	app.setPin(t, bob, "2222")

	// Opposing directions over the same wallet pair must not deadlock;
	// the engine locks wallets in a canonical order.
	const perSide = 10
	var wg sync.WaitGroup
	var succeeded atomic.Int64

	for i := 0; i < perSide; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if app.rawTransfer(alice, bob, "10.00", "1111") == http.StatusCreated {
				succeeded.Add(1)
			}
		}()
		go func() {
			defer wg.Done()
			if app.rawTransfer(bob, alice, "10.00", "2222") == http.StatusCreated {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(2*perSide), succeeded.Load())

	// Each side sent perSide*10.00 and received the same back; only
	// fees left the pair.
	assert.Equal(t, int64(100000-perSide*10), app.balanceCents(t, alice))
	assert.Equal(t, int64(100000-perSide*10), app.balanceCents(t, bob))
	assert.Equal(t, int64(2*perSide*10), app.balanceCents(t, app.feeOwnerID))
}

func TestConcurrency_ConfirmAndCancelSettleExactlyOnce(t *testing.T) {
	app := newTestApp(t)

	client := app.seedWallet(t, 1000000)
	app.setPin(t, client, "1234")

	agentOwner := app.seedWallet(t, 0)
	app.agentRepo.addProfile(&domain.AgentProfile{
		OwnerID:             agentOwner,
		AgentCode:           "ACONCUR",
		CommissionRateBasis: 200,
		IsApproved:          true,
	})

	// A confirm and a cancel race over each pending withdrawal. The row
	// lock must let exactly one of them settle it; if both committed,
	// the client would be refunded while the agent was also credited.
	const rounds = 10
	var confirmed, cancelled, conflicted atomic.Int64

	for i := 0; i < rounds; i++ {
		status, envelope := app.do(t, http.MethodPost, "/api/v1/withdrawals", client, map[string]any{
			"agent_code": "ACONCUR",
			"amount":     "500.00",
			"pin":        "1234",
		})
		require.Equal(t, http.StatusCreated, status)
		reference := dataOf(t, envelope)["transaction"].(map[string]any)["reference"].(string)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			switch app.rawPost("/api/v1/withdrawals/"+reference+"/confirm", agentOwner, "") {
			case http.StatusOK:
				confirmed.Add(1)
			case http.StatusConflict:
				conflicted.Add(1)
			}
		}()
		go func() {
			defer wg.Done()
			switch app.rawPost("/api/v1/withdrawals/"+reference+"/cancel", client, "") {
			case http.StatusOK:
				cancelled.Add(1)
			case http.StatusConflict:
				conflicted.Add(1)
			}
		}()
		wg.Wait()
	}

	// One winner and one loser per round, never two winners.
	assert.Equal(t, int64(rounds), confirmed.Load()+cancelled.Load())
	assert.Equal(t, int64(rounds), conflicted.Load())

	// No round minted money: every cent is still in the three wallets.
	total := app.balanceCents(t, client) +
		app.balanceCents(t, agentOwner) +
		app.balanceCents(t, app.feeOwnerID)
	assert.Equal(t, int64(1000000), total)

	// Confirmed rounds moved amount to the agent and fee to the fee
	// wallet; cancelled rounds put everything back.
	assert.Equal(t, int64(50000)*confirmed.Load(), app.balanceCents(t, agentOwner))
	assert.Equal(t, int64(2500)*confirmed.Load(), app.balanceCents(t, app.feeOwnerID))
}

func TestConcurrency_LedgerReplayStaysConsistent(t *testing.T) {
	app := newTestApp(t)

	// Fund through the engine so every cent is history-backed.
	client := app.seedWallet(t, 0)
	peer := app.seedWallet(t, 0)
	agentOwner := app.seedWallet(t, 0)
	app.agentRepo.addProfile(&domain.AgentProfile{
		OwnerID:             agentOwner,
		AgentCode:           "AREPLAY",
		CommissionRateBasis: 150,
		IsApproved:          true,
	})

	status, _ := app.doAdmin(t, http.MethodPost, "/api/v1/admin/wallets/"+client.String()+"/adjust", map[string]any{
		"direction": "credit",
		"amount":    "2000.00",
		"reason":    "test funding",
	})
	require.Equal(t, http.StatusCreated, status)

	app.setPin(t, client, "1234")

	status, _ = app.do(t, http.MethodPost, "/api/v1/transactions/transfer", client, map[string]any{
		"receiver_owner_id": peer.String(),
		"amount":            "300.00",
		"pin":               "1234",
	})
	require.Equal(t, http.StatusCreated, status)

	status, _ = app.do(t, http.MethodPost, "/api/v1/transactions/topup", client, map[string]any{
		"amount":          "50.00",
		"recipient_phone": "+50937001234",
		"carrier":         "natcom",
		"pin":             "1234",
	})
	require.Equal(t, http.StatusCreated, status)

	status, envelope := app.do(t, http.MethodPost, "/api/v1/withdrawals", client, map[string]any{
		"agent_code": "AREPLAY",
		"amount":     "500.00",
		"pin":        "1234",
	})
	require.Equal(t, http.StatusCreated, status)
	reference := dataOf(t, envelope)["transaction"].(map[string]any)["reference"].(string)

	status, _ = app.do(t, http.MethodPost, "/api/v1/withdrawals/"+reference+"/confirm", agentOwner, nil)
	require.Equal(t, http.StatusOK, status)

	// Replaying the history must reproduce every stored balance.
	for _, owner := range []string{
		client.String(), peer.String(), agentOwner.String(), app.feeOwnerID.String(),
	} {
		status, envelope := app.doAdmin(t, http.MethodGet, "/api/v1/admin/wallets/"+owner+"/reconcile", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, dataOf(t, envelope)["consistent"], "wallet of %s drifted", owner)
	}
}

func TestAtomicity_FailedUnitLeavesNoTrace(t *testing.T) {
	app := newTestApp(t)

	sender := app.seedWallet(t, 100000)
	receiver := app.seedWallet(t, 50000)
	app.setPin(t, sender, "1234")

	app.historyRepo.failNextCreate()

	status, _ := app.do(t, http.MethodPost, "/api/v1/transactions/transfer", sender, map[string]any{
		"receiver_owner_id": receiver.String(),
		"amount":            "100.00",
		"pin":               "1234",
	})
	assert.Equal(t, http.StatusInternalServerError, status)

	// The whole unit rolled back: balances, transaction row, history.
	assert.Equal(t, int64(100000), app.balanceCents(t, sender))
	assert.Equal(t, int64(50000), app.balanceCents(t, receiver))
	assert.Equal(t, int64(0), app.balanceCents(t, app.feeOwnerID))

	app.txRepo.mu.RLock()
	assert.Empty(t, app.txRepo.transactions)
	app.txRepo.mu.RUnlock()

	app.historyRepo.mu.RLock()
	assert.Empty(t, app.historyRepo.entries)
	app.historyRepo.mu.RUnlock()

	// The engine recovers on the next attempt.
	status, _ = app.do(t, http.MethodPost, "/api/v1/transactions/transfer", sender, map[string]any{
		"receiver_owner_id": receiver.String(),
		"amount":            "100.00",
		"pin":               "1234",
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, int64(89900), app.balanceCents(t, sender))
}
