package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// Code is stable and machine-readable; Message is for humans and the
// caller decides localization.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a generic request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrSelfTransfer() *AppError {
	return New("VAL_002", "Sender and receiver must differ", http.StatusBadRequest)
}

func ErrCurrencyMismatch() *AppError {
	return New("VAL_003", "Currency mismatch between wallets", http.StatusBadRequest)
}

// ---- PIN authorization (PIN) ----

func ErrWrongPin(attemptsLeft int) *AppError {
	return New("PIN_001", fmt.Sprintf("Incorrect PIN, %d attempts remaining", attemptsLeft), http.StatusForbidden)
}

func ErrPinLocked() *AppError {
	return New("PIN_002", "PIN is temporarily locked, try again later", http.StatusForbidden)
}

func ErrPinNotSet() *AppError {
	return New("PIN_003", "No transaction PIN configured", http.StatusForbidden)
}

func ErrInvalidPinFormat() *AppError {
	return New("PIN_004", "PIN must be 4 to 6 digits", http.StatusBadRequest)
}

// ---- Ledger business logic (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New("PAY_001", "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrUnsupportedTransactionKind(kind string) *AppError {
	return New("PAY_002", fmt.Sprintf("Unsupported transaction kind: %s", kind), http.StatusBadRequest)
}

func ErrDuplicateReference() *AppError {
	return New("PAY_003", "Duplicate transaction reference", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrNotPending() *AppError {
	return New("PAY_005", "Transaction is not in pending state", http.StatusConflict)
}

func ErrAmountOutOfRange(min, max string) *AppError {
	return New("PAY_006", fmt.Sprintf("Amount must be between %s and %s", min, max), http.StatusBadRequest)
}

// ---- Wallet state (WAL) ----

func ErrInactiveWallet() *AppError {
	return New("WAL_001", "Wallet is blocked for balance operations", http.StatusForbidden)
}

func ErrWalletNotFound() *AppError {
	return New("WAL_002", "Wallet not found", http.StatusNotFound)
}

// ---- Agent limits (LIM) ----

func ErrLimitExceeded(limitType string) *AppError {
	return New("LIM_001", fmt.Sprintf("Agent %s limit exceeded", limitType), http.StatusUnprocessableEntity)
}

// ---- Reference generation (REF) ----

func ErrReferenceGenerationExhausted(err error) *AppError {
	return Wrap("REF_001", "Could not generate a unique reference", http.StatusInternalServerError, err)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrConcurrencyConflict(err error) *AppError {
	return Wrap("SYS_002", "Concurrent update conflict, retry the operation", http.StatusServiceUnavailable, err)
}

func ErrUnauthorizedActor() *AppError {
	return New("SYS_003", "Operation not permitted for this actor", http.StatusForbidden)
}
