package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		cents   int64
		wantErr bool
	}{
		{"150.25", 15025, false},
		{"0.01", 1, false},
		{"1000", 100000, false},
		{"100.00", 10000, false},
		{"0", 0, false},
		{"1.005", 0, true},
		{"-5.00", 0, true},
		{"abc", 0, true},
	}
	for _, tc := range tests {
		m, err := ParseAmount(tc.in, CurrencyHTG)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.cents, m.Cents, tc.in)
		assert.Equal(t, CurrencyHTG, m.Currency)
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoney(10000, CurrencyHTG)
	b := NewMoney(2500, CurrencyHTG)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int64(12500), sum.Cents)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, int64(7500), diff.Cents)

	_, err = a.Add(NewMoney(100, CurrencyUSD))
	assert.Error(t, err)
	_, err = a.Cmp(NewMoney(100, CurrencyUSD))
	assert.Error(t, err)
}

func TestMoney_Percent(t *testing.T) {
	// 1% of 100.00 is 1.00
	assert.Equal(t, int64(100), NewMoney(10000, CurrencyHTG).Percent(100).Cents)
	// 0.5% of 200.00 is 1.00
	assert.Equal(t, int64(100), NewMoney(20000, CurrencyHTG).Percent(50).Cents)
	// 2.5% of 100.00 is 2.50
	assert.Equal(t, int64(250), NewMoney(10000, CurrencyHTG).Percent(250).Cents)
	// 1% of 0.50 rounds half up to 0.01
	assert.Equal(t, int64(1), NewMoney(50, CurrencyHTG).Percent(100).Cents)
}

func TestMoney_Format(t *testing.T) {
	m := NewMoney(15025, CurrencyHTG)
	assert.Equal(t, "150.25", m.Decimal())
	assert.Equal(t, "150.25 HTG", m.String())
	assert.Equal(t, "0.05", NewMoney(5, CurrencyHTG).Decimal())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := NewMoney(99901, CurrencyHTG)
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"999.01","currency":"HTG"}`, string(data))

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m, back)
}

func TestWallet_CanDebit(t *testing.T) {
	w := NewWallet(uuid.New(), CurrencyHTG)
	w.Balance = NewMoney(5000, CurrencyHTG)

	assert.True(t, w.CanDebit(NewMoney(5000, CurrencyHTG)))
	assert.False(t, w.CanDebit(NewMoney(5001, CurrencyHTG)))
	assert.False(t, w.CanDebit(NewMoney(100, CurrencyUSD)))
}

func TestWalletHistory_Consistent(t *testing.T) {
	walletID, txID := uuid.New(), uuid.New()

	debit := NewHistoryEntry(walletID, txID, OperationDebit,
		NewMoney(10100, CurrencyHTG), NewMoney(100000, CurrencyHTG), NewMoney(89900, CurrencyHTG))
	assert.True(t, debit.Consistent())

	credit := NewHistoryEntry(walletID, txID, OperationCredit,
		NewMoney(10000, CurrencyHTG), Zero(CurrencyHTG), NewMoney(10000, CurrencyHTG))
	assert.True(t, credit.Consistent())

	broken := NewHistoryEntry(walletID, txID, OperationCredit,
		NewMoney(10000, CurrencyHTG), Zero(CurrencyHTG), NewMoney(9999, CurrencyHTG))
	assert.False(t, broken.Consistent())
}

func TestTransaction_Lifecycle(t *testing.T) {
	tx := &Transaction{Status: TransactionStatusPending}
	assert.False(t, tx.IsTerminal())
	assert.True(t, tx.Cancellable())

	for _, s := range []TransactionStatus{TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCancelled} {
		tx.Status = s
		assert.True(t, tx.IsTerminal(), string(s))
		assert.False(t, tx.Cancellable(), string(s))
	}

	tx.Status = TransactionStatusProcessing
	assert.False(t, tx.IsTerminal())
	assert.False(t, tx.Cancellable())
}

func TestTransaction_DebitStyle(t *testing.T) {
	assert.True(t, (&Transaction{Type: TransactionTypeSend}).DebitStyle())
	assert.True(t, (&Transaction{Type: TransactionTypeAgentWithdrawal}).DebitStyle())
	assert.False(t, (&Transaction{Type: TransactionTypeCardDeposit}).DebitStyle())
	assert.False(t, (&Transaction{Type: TransactionTypeDeposit}).DebitStyle())
}

func TestValidPinFormat(t *testing.T) {
	assert.True(t, ValidPinFormat("1234"))
	assert.True(t, ValidPinFormat("123456"))
	assert.False(t, ValidPinFormat("123"))
	assert.False(t, ValidPinFormat("1234567"))
	assert.False(t, ValidPinFormat("12a4"))
	assert.False(t, ValidPinFormat(""))
}

func TestPinCredential_IsLocked(t *testing.T) {
	now := time.Now().UTC()
	cred := &PinCredential{}
	assert.False(t, cred.IsLocked(now))

	future := now.Add(10 * time.Minute)
	cred.LockedUntil = &future
	assert.True(t, cred.IsLocked(now))

	past := now.Add(-time.Minute)
	cred.LockedUntil = &past
	assert.False(t, cred.IsLocked(now))
}

func TestAgentLimit_NeedsReset(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	daily := &AgentLimit{ResetPeriod: ResetDaily, LastReset: now.Add(-2 * time.Hour)}
	assert.False(t, daily.NeedsReset(now))
	daily.LastReset = now.Add(-24 * time.Hour)
	assert.True(t, daily.NeedsReset(now))

	monthly := &AgentLimit{ResetPeriod: ResetMonthly, LastReset: time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)}
	assert.False(t, monthly.NeedsReset(now))
	monthly.LastReset = time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC)
	assert.True(t, monthly.NeedsReset(now))

	never := &AgentLimit{ResetPeriod: ResetNever, LastReset: now.Add(-100 * 24 * time.Hour)}
	assert.False(t, never.NeedsReset(now))
}

func TestValidCarrierAndBillType(t *testing.T) {
	assert.True(t, ValidCarrier(CarrierDigicel))
	assert.True(t, ValidCarrier(CarrierNatcom))
	assert.False(t, ValidCarrier("verizon"))

	assert.True(t, ValidBillType(BillTypeElectricity))
	assert.True(t, ValidBillType(BillTypeSchool))
	assert.False(t, ValidBillType("rent"))
}
