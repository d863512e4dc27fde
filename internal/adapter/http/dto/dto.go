package dto

// SetPinRequest is the request body for setting a transaction PIN.
type SetPinRequest struct {
	Pin string `json:"pin" binding:"required,min=4,max=6"`
}

// VerifyPinRequest is the request body for a standalone PIN check.
type VerifyPinRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// TransferRequest is the request body for wallet-to-wallet transfers.
// Amounts cross the wire as decimal strings ("150.25").
type TransferRequest struct {
	ReceiverOwnerID string `json:"receiver_owner_id" binding:"required,uuid"`
	Amount          string `json:"amount" binding:"required"`
	Currency        string `json:"currency,omitempty"`
	Description     string `json:"description,omitempty" binding:"max=255"`
	Pin             string `json:"pin" binding:"required"`
}

// TopUpRequest is the request body for phone airtime purchases.
type TopUpRequest struct {
	Amount         string `json:"amount" binding:"required"`
	Currency       string `json:"currency,omitempty"`
	RecipientPhone string `json:"recipient_phone" binding:"required,min=8,max=20"`
	Carrier        string `json:"carrier" binding:"required"`
	Pin            string `json:"pin" binding:"required"`
}

// BillPaymentRequest is the request body for utility bill payments.
type BillPaymentRequest struct {
	Amount        string `json:"amount" binding:"required"`
	Currency      string `json:"currency,omitempty"`
	BillType      string `json:"bill_type" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required,max=50"`
	Provider      string `json:"provider,omitempty" binding:"max=100"`
	Pin           string `json:"pin" binding:"required"`
}

// CardDepositRequest is the request body for card-funded deposits.
type CardDepositRequest struct {
	Amount    string `json:"amount" binding:"required"`
	Currency  string `json:"currency,omitempty"`
	CardToken string `json:"card_token" binding:"required,max=100"`
}

// MerchantPaymentRequest is the request body for in-store payments.
type MerchantPaymentRequest struct {
	MerchantCode string `json:"merchant_code" binding:"required,len=7"`
	Amount       string `json:"amount" binding:"required"`
	Currency     string `json:"currency,omitempty"`
	Description  string `json:"description,omitempty" binding:"max=255"`
	Pin          string `json:"pin" binding:"required"`
}

// AgentWithdrawalRequest is the request body for starting a cash-out.
type AgentWithdrawalRequest struct {
	AgentCode string `json:"agent_code" binding:"required,len=7"`
	Amount    string `json:"amount" binding:"required"`
	Currency  string `json:"currency,omitempty"`
	Pin       string `json:"pin" binding:"required"`
}

// AdminAdjustRequest is the request body for manual balance fixes.
type AdminAdjustRequest struct {
	Direction string `json:"direction" binding:"required,oneof=credit debit"`
	Amount    string `json:"amount" binding:"required"`
	Currency  string `json:"currency,omitempty"`
	Reason    string `json:"reason" binding:"required,max=255"`
}

// ToggleWalletRequest freezes or unfreezes a wallet.
type ToggleWalletRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// TransactionResponse is the wire shape of a transaction.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Reference   string  `json:"reference"`
	Type        string  `json:"transaction_type"`
	Amount      string  `json:"amount"`
	Fee         string  `json:"fee"`
	Total       string  `json:"total"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	ProcessedAt *string `json:"processed_at,omitempty"`
}

// TransactionListResponse is a paged transaction listing.
type TransactionListResponse struct {
	Items    []TransactionResponse `json:"items"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// WalletResponse is the wire shape of a wallet.
type WalletResponse struct {
	ID       string `json:"id"`
	OwnerID  string `json:"owner_id"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
	IsActive bool   `json:"is_active"`
}

// PinStatusResponse reports the externally visible PIN state.
type PinStatusResponse struct {
	IsSet       bool    `json:"is_set"`
	Attempts    int     `json:"attempts"`
	LockedUntil *string `json:"locked_until,omitempty"`
}

// WithdrawalResponse pairs the pending transaction with the code the
// client hands to the agent.
type WithdrawalResponse struct {
	Transaction      TransactionResponse `json:"transaction"`
	ConfirmationCode string              `json:"confirmation_code"`
}

// ReconciliationResponse is the result of a single-wallet replay.
type ReconciliationResponse struct {
	WalletID   string `json:"wallet_id"`
	OwnerID    string `json:"owner_id"`
	Stored     string `json:"stored_balance"`
	Replayed   string `json:"replayed_balance"`
	Consistent bool   `json:"consistent"`
	CheckedAt  string `json:"checked_at"`
}
