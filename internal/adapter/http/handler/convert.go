package handler

import (
	"time"

	"mobile-money-ledger/internal/adapter/http/dto"
	"mobile-money-ledger/internal/core/domain"
	"mobile-money-ledger/internal/core/ports"
	"mobile-money-ledger/pkg/apperror"
)

// parseMoney turns a wire amount into Money. Currency defaults to HTG.
func parseMoney(amount, currency string) (domain.Money, error) {
	cur := domain.CurrencyHTG
	if currency != "" {
		cur = domain.Currency(currency)
		if !cur.Valid() {
			return domain.Money{}, apperror.Validation("unsupported currency")
		}
	}
	m, err := domain.ParseAmount(amount, cur)
	if err != nil {
		return domain.Money{}, apperror.Validation(err.Error())
	}
	return m, nil
}

// toTransactionResponse converts domain.Transaction to its DTO.
func toTransactionResponse(tx *domain.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:          tx.ID.String(),
		Reference:   tx.Reference,
		Type:        string(tx.Type),
		Amount:      tx.Amount.Decimal(),
		Fee:         tx.Fee.Decimal(),
		Total:       tx.Total.Decimal(),
		Currency:    string(tx.Amount.Currency),
		Description: tx.Description,
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.ProcessedAt != nil {
		s := tx.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &s
	}
	return resp
}

func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		ID:       w.ID.String(),
		OwnerID:  w.OwnerID.String(),
		Balance:  w.Balance.Decimal(),
		Currency: string(w.Balance.Currency),
		IsActive: w.IsActive,
	}
}

func toReconciliationResponse(r *ports.ReconciliationReport, currency domain.Currency) dto.ReconciliationResponse {
	return dto.ReconciliationResponse{
		WalletID:   r.WalletID.String(),
		OwnerID:    r.OwnerID.String(),
		Stored:     domain.NewMoney(r.StoredCents, currency).Decimal(),
		Replayed:   domain.NewMoney(r.ReplayedCents, currency).Decimal(),
		Consistent: r.Consistent,
		CheckedAt:  r.CheckedAt.Format(time.RFC3339),
	}
}
