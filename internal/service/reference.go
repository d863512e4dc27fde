package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"mobile-money-ledger/internal/core/domain"
	"mobile-money-ledger/internal/core/ports"
	"mobile-money-ledger/pkg/apperror"
)

// referencePrefixes maps transaction kinds to human-readable prefixes.
var referencePrefixes = map[domain.TransactionType]string{
	domain.TransactionTypeSend:            "TXN",
	domain.TransactionTypeReceive:         "TXN",
	domain.TransactionTypeTopUp:           "TOP",
	domain.TransactionTypeBillPayment:     "BILL",
	domain.TransactionTypeRecharge:        "TOP",
	domain.TransactionTypeWithdrawal:      "ADM",
	domain.TransactionTypeDeposit:         "ADM",
	domain.TransactionTypeCardDeposit:     "CD",
	domain.TransactionTypeMerchantPayment: "MP",
	domain.TransactionTypeAgentWithdrawal: "AW",
	domain.TransactionTypeWithdrawalFee:   "FE",
}

// RandomReferenceGenerator implements ports.ReferenceGenerator with a
// per-kind prefix plus 8 uppercase hex characters, retrying on the
// rare collision. Retries are bounded; exhaustion surfaces as REF_001
// rather than looping forever.
type RandomReferenceGenerator struct {
	txRepo     ports.TransactionRepository
	maxRetries int
}

// NewRandomReferenceGenerator creates a reference generator backed by
// the transaction repository's uniqueness check.
func NewRandomReferenceGenerator(txRepo ports.TransactionRepository, maxRetries int) *RandomReferenceGenerator {
	if maxRetries <= 0 {
		maxRetries = 5
	}
	return &RandomReferenceGenerator{txRepo: txRepo, maxRetries: maxRetries}
}

// Generate produces a unique reference for the given kind.
func (g *RandomReferenceGenerator) Generate(ctx context.Context, kind domain.TransactionType) (string, error) {
	prefix, ok := referencePrefixes[kind]
	if !ok {
		return "", apperror.ErrUnsupportedTransactionKind(string(kind))
	}

	var lastErr error
	for i := 0; i < g.maxRetries; i++ {
		ref, err := randomReference(prefix)
		if err != nil {
			return "", apperror.InternalError(err)
		}

		exists, err := g.txRepo.ExistsByReference(ctx, ref)
		if err != nil {
			lastErr = err
			continue
		}
		if !exists {
			return ref, nil
		}
		lastErr = fmt.Errorf("reference collision: %s", ref)
	}
	return "", apperror.ErrReferenceGenerationExhausted(lastErr)
}

func randomReference(prefix string) (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating reference entropy: %w", err)
	}
	return prefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}
