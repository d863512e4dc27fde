package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"mobile-money-ledger/internal/core/domain"
	"mobile-money-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Transactor ---
//
// The transactor serializes units of work with a single mutex, the way
// one postgres connection with row locks would for contended wallets.
// Every repo write registers an undo closure on the active memTx so a
// mid-unit failure rolls back all prior writes of the same unit.

type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &memTx{owner: t}, nil
}

// memTx is the journaled pgx.Tx used by the in-memory repos.
type memTx struct {
	noopTx
	owner *inMemoryTransactor
	undo  []func()
	done  bool
}

func (t *memTx) onRollback(fn func()) {
	t.undo = append(t.undo, fn)
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.undo = nil
	t.owner.mu.Unlock()
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	t.owner.mu.Unlock()
	return nil
}

// journal extracts the memTx so repos can register undo closures.
// Writes outside a unit of work (tx == nil) are applied directly.
func journal(tx pgx.Tx) *memTx {
	if m, ok := tx.(*memTx); ok {
		return m
	}
	return nil
}

// noopTx satisfies the rest of pgx.Tx for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.OwnerID == ownerID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) GetByOwnerIDForUpdate(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) (*domain.Wallet, error) {
	return r.GetByOwnerID(ctx, ownerID)
}

func (r *inMemoryWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryWalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balanceCents int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	prev := w.Balance.Cents
	w.Balance.Cents = balanceCents
	if m := journal(tx); m != nil {
		m.onRollback(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			w.Balance.Cents = prev
		})
	}
	return nil
}

func (r *inMemoryWalletRepo) SetActive(ctx context.Context, walletID uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w.IsActive = active
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID]*domain.Transaction
	topUps       map[uuid.UUID]*domain.PhoneTopUpDetail
	bills        map[uuid.UUID]*domain.BillPaymentDetail
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{
		transactions: make(map[uuid.UUID]*domain.Transaction),
		topUps:       make(map[uuid.UUID]*domain.PhoneTopUpDetail),
		bills:        make(map[uuid.UUID]*domain.BillPaymentDetail),
	}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.transactions[t.ID] = &cp
	if m := journal(tx); m != nil {
		id := t.ID
		m.onRollback(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			delete(r.transactions, id)
		})
	}
	return nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.transactions {
		if t.Reference == reference {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryTransactionRepo) GetByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reference string) (*domain.Transaction, error) {
	return r.GetByReference(ctx, reference)
}

func (r *inMemoryTransactionRepo) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	t, err := r.GetByReference(ctx, reference)
	return t != nil, err
}

func (r *inMemoryTransactionRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return fmt.Errorf("transaction not found")
	}
	prev := t.Status
	t.Status = status
	if m := journal(tx); m != nil {
		m.onRollback(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			t.Status = prev
		})
	}
	return nil
}

func (r *inMemoryTransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Transaction
	for _, t := range r.transactions {
		isSender := t.SenderID != nil && *t.SenderID == params.OwnerID
		isReceiver := t.ReceiverID != nil && *t.ReceiverID == params.OwnerID
		if !isSender && !isReceiver {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		if params.Type != nil && t.Type != *params.Type {
			continue
		}
		if params.From != nil && t.CreatedAt.Unix() < *params.From {
			continue
		}
		if params.To != nil && t.CreatedAt.Unix() > *params.To {
			continue
		}
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	total := int64(len(result))

	start := (params.Page - 1) * params.PageSize
	if start >= len(result) {
		return []domain.Transaction{}, total, nil
	}
	end := start + params.PageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

func (r *inMemoryTransactionRepo) CreateTopUpDetail(ctx context.Context, tx pgx.Tx, detail *domain.PhoneTopUpDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *detail
	r.topUps[detail.TransactionID] = &cp
	if m := journal(tx); m != nil {
		id := detail.TransactionID
		m.onRollback(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			delete(r.topUps, id)
		})
	}
	return nil
}

func (r *inMemoryTransactionRepo) CreateBillPaymentDetail(ctx context.Context, tx pgx.Tx, detail *domain.BillPaymentDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *detail
	r.bills[detail.TransactionID] = &cp
	if m := journal(tx); m != nil {
		id := detail.TransactionID
		m.onRollback(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			delete(r.bills, id)
		})
	}
	return nil
}

// --- In-Memory History Repo ---

type inMemoryHistoryRepo struct {
	mu      sync.RWMutex
	entries []domain.WalletHistory
	// failNext makes the next Create return an error, for testing
	// rollback of partially applied units.
	failNext bool
}

func newInMemoryHistoryRepo() *inMemoryHistoryRepo {
	return &inMemoryHistoryRepo{}
}

func (r *inMemoryHistoryRepo) Create(ctx context.Context, tx pgx.Tx, entry *domain.WalletHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return fmt.Errorf("injected history failure")
	}
	r.entries = append(r.entries, *entry)
	if m := journal(tx); m != nil {
		id := entry.ID
		m.onRollback(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i := range r.entries {
				if r.entries[i].ID == id {
					r.entries = append(r.entries[:i], r.entries[i+1:]...)
					return
				}
			}
		})
	}
	return nil
}

func (r *inMemoryHistoryRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.WalletHistory, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.WalletHistory
	for _, e := range r.entries {
		if e.WalletID == walletID {
			result = append(result, e)
		}
	}
	total := int64(len(result))
	start := (page - 1) * pageSize
	if start >= len(result) {
		return []domain.WalletHistory{}, total, nil
	}
	end := start + pageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

func (r *inMemoryHistoryRepo) SumByWallet(ctx context.Context, walletID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum int64
	for _, e := range r.entries {
		if e.WalletID != walletID {
			continue
		}
		if e.Operation == domain.OperationCredit {
			sum += e.Amount.Cents
		} else {
			sum -= e.Amount.Cents
		}
	}
	return sum, nil
}

// --- In-Memory Pin Repo ---

type inMemoryPinRepo struct {
	mu    sync.RWMutex
	creds map[uuid.UUID]*domain.PinCredential
}

func newInMemoryPinRepo() *inMemoryPinRepo {
	return &inMemoryPinRepo{creds: make(map[uuid.UUID]*domain.PinCredential)}
}

func (r *inMemoryPinRepo) Get(ctx context.Context, ownerID uuid.UUID) (*domain.PinCredential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.creds[ownerID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *inMemoryPinRepo) Save(ctx context.Context, cred *domain.PinCredential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *cred
	r.creds[cred.OwnerID] = &cp
	return nil
}

// --- In-Memory Agent Repo ---

type inMemoryAgentRepo struct {
	mu          sync.RWMutex
	profiles    map[uuid.UUID]*domain.AgentProfile
	limits      map[uuid.UUID][]domain.AgentLimit
	commissions []domain.AgentCommission
}

func newInMemoryAgentRepo() *inMemoryAgentRepo {
	return &inMemoryAgentRepo{
		profiles: make(map[uuid.UUID]*domain.AgentProfile),
		limits:   make(map[uuid.UUID][]domain.AgentLimit),
	}
}

func (r *inMemoryAgentRepo) addProfile(p *domain.AgentProfile, limits ...domain.AgentLimit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.OwnerID] = p
	r.limits[p.OwnerID] = limits
}

func (r *inMemoryAgentRepo) GetProfileByCode(ctx context.Context, agentCode string) (*domain.AgentProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.profiles {
		if p.AgentCode == agentCode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAgentRepo) GetProfileByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.AgentProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[ownerID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryAgentRepo) CreateCommission(ctx context.Context, tx pgx.Tx, commission *domain.AgentCommission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commissions = append(r.commissions, *commission)
	if m := journal(tx); m != nil {
		id := commission.ID
		m.onRollback(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i := range r.commissions {
				if r.commissions[i].ID == id {
					r.commissions = append(r.commissions[:i], r.commissions[i+1:]...)
					return
				}
			}
		})
	}
	return nil
}

func (r *inMemoryAgentRepo) GetLimitsForUpdate(ctx context.Context, tx pgx.Tx, agentID uuid.UUID) ([]domain.AgentLimit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	limits := r.limits[agentID]
	out := make([]domain.AgentLimit, len(limits))
	copy(out, limits)
	return out, nil
}

func (r *inMemoryAgentRepo) UpdateLimitUsage(ctx context.Context, tx pgx.Tx, limit *domain.AgentLimit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	limits := r.limits[limit.AgentID]
	for i := range limits {
		if limits[i].Type == limit.Type {
			prev := limits[i]
			limits[i] = *limit
			if m := journal(tx); m != nil {
				idx := i
				m.onRollback(func() {
					r.mu.Lock()
					defer r.mu.Unlock()
					r.limits[prev.AgentID][idx] = prev
				})
			}
			return nil
		}
	}
	return fmt.Errorf("limit not found")
}
