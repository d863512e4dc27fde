package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType is the kind of money movement.
type TransactionType string

const (
	TransactionTypeSend            TransactionType = "send"
	TransactionTypeReceive         TransactionType = "receive"
	TransactionTypeTopUp           TransactionType = "topup"
	TransactionTypeBillPayment     TransactionType = "bill_payment"
	TransactionTypeRecharge        TransactionType = "recharge"
	TransactionTypeWithdrawal      TransactionType = "withdrawal"
	TransactionTypeDeposit         TransactionType = "deposit"
	TransactionTypeCardDeposit     TransactionType = "card_deposit"
	TransactionTypeMerchantPayment TransactionType = "merchant_payment"
	TransactionTypeAgentWithdrawal TransactionType = "agent_withdrawal"
	TransactionTypeWithdrawalFee   TransactionType = "withdrawal_fee"
)

// TransactionStatus is the lifecycle state of a transaction.
// Pending -> {Completed | Failed | Cancelled}; terminal states are
// immutable except for auxiliary annotation.
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusCompleted  TransactionStatus = "completed"
	TransactionStatusFailed     TransactionStatus = "failed"
	TransactionStatusCancelled  TransactionStatus = "cancelled"
)

// Transaction is an immutable record of one money-movement intent and
// its outcome. SenderID is nil for externally-originated flows (card
// deposit); ReceiverID is nil for externally-terminated flows
// (merchant payment, agent withdrawal).
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	Type        TransactionType   `json:"transaction_type"`
	SenderID    *uuid.UUID        `json:"sender_id,omitempty"`
	ReceiverID  *uuid.UUID        `json:"receiver_id,omitempty"`
	Amount      Money             `json:"amount"`
	Fee         Money             `json:"fee"`
	Total       Money             `json:"total_amount"`
	Reference   string            `json:"reference_number"`
	Description string            `json:"description,omitempty"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	ProcessedAt *time.Time        `json:"processed_at,omitempty"`
}

// IsTerminal reports whether the transaction reached a final state.
func (t *Transaction) IsTerminal() bool {
	switch t.Status {
	case TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCancelled:
		return true
	}
	return false
}

// Cancellable reports whether the transaction may still be cancelled.
// Only pending transactions can be.
func (t *Transaction) Cancellable() bool {
	return t.Status == TransactionStatusPending
}

// DebitStyle reports whether total = amount + fee (fee added on top).
// Pure-credit flows carry total = amount with the fee deducted from
// the credited side instead.
func (t *Transaction) DebitStyle() bool {
	return t.Type != TransactionTypeCardDeposit && t.Type != TransactionTypeDeposit
}

// Carrier identifies a phone top-up operator.
type Carrier string

const (
	CarrierDigicel Carrier = "digicel"
	CarrierNatcom  Carrier = "natcom"
)

// ValidCarrier reports whether c is a known operator.
func ValidCarrier(c Carrier) bool {
	return c == CarrierDigicel || c == CarrierNatcom
}

// PhoneTopUpDetail is the side record of a phone top-up transaction.
type PhoneTopUpDetail struct {
	TransactionID    uuid.UUID `json:"transaction_id"`
	RecipientPhone   string    `json:"recipient_phone"`
	Carrier          Carrier   `json:"carrier"`
	MinutesEstimate  int       `json:"minutes_amount"`
	Message          string    `json:"message,omitempty"`
	CarrierReference string    `json:"carrier_reference"`
}

// BillType categorizes a bill payment.
type BillType string

const (
	BillTypeElectricity BillType = "electricity"
	BillTypeWater       BillType = "water"
	BillTypeInternet    BillType = "internet"
	BillTypeCable       BillType = "cable"
	BillTypeSchool      BillType = "school"
	BillTypeOther       BillType = "other"
)

// ValidBillType reports whether b is a known bill category.
func ValidBillType(b BillType) bool {
	switch b {
	case BillTypeElectricity, BillTypeWater, BillTypeInternet, BillTypeCable, BillTypeSchool, BillTypeOther:
		return true
	}
	return false
}

// BillPaymentDetail is the side record of a bill payment transaction.
type BillPaymentDetail struct {
	TransactionID     uuid.UUID `json:"transaction_id"`
	BillType          BillType  `json:"bill_type"`
	AccountNumber     string    `json:"account_number"`
	ServiceProvider   string    `json:"service_provider"`
	BillingPeriod     string    `json:"billing_period,omitempty"`
	ProviderReference string    `json:"provider_reference"`
}
