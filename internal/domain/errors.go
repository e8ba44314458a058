package domain

import (
	"errors"
	"fmt"

	"github.com/go-petr/mini-bank/pkg/moneypkg"
	"github.com/shopspring/decimal"
)

var (
	// ErrValidation indicates malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInsufficientFunds indicates that the account balance is lower than requested.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrKYCRequired indicates that the sender is not KYC verified.
	ErrKYCRequired = errors.New("kyc verification required")
)

// ValidationError describes rejected input. Field names the offending request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports an unknown account number.
type NotFoundError struct {
	AccountNo string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Account %s not found.", e.AccountNo)
}

// Is makes errors.Is(err, ErrAccountNotFound) hold.
func (e *NotFoundError) Is(target error) bool { return target == ErrAccountNotFound }

// InsufficientFundsError reports the available and requested amounts.
type InsufficientFundsError struct {
	AccountNo string
	Available decimal.Decimal
	Requested decimal.Decimal
	Transfer  bool
}

func (e *InsufficientFundsError) Error() string {
	if e.Transfer {
		return fmt.Sprintf("Transfer failed: Insufficient balance in %s. Available: %s, Requested: %s.",
			e.AccountNo, moneypkg.Rupees(e.Available), moneypkg.Rupees(e.Requested))
	}

	return fmt.Sprintf("Insufficient balance. Available: %s, Requested: %s.",
		moneypkg.Rupees(e.Available), moneypkg.Rupees(e.Requested))
}

// Is makes errors.Is(err, ErrInsufficientFunds) hold.
func (e *InsufficientFundsError) Is(target error) bool { return target == ErrInsufficientFunds }

// ComplianceError reports a transfer attempted by an account without KYC verification.
type ComplianceError struct {
	AccountNo  string
	HolderName string
}

func (e *ComplianceError) Error() string {
	return fmt.Sprintf("Transfer failed: Sender account %s (%s) is not KYC verified.", e.AccountNo, e.HolderName)
}

// Is makes errors.Is(err, ErrKYCRequired) hold.
func (e *ComplianceError) Is(target error) bool { return target == ErrKYCRequired }

// Validation messages shared by the ledger and the delivery layer.
const (
	MsgHolderNameEmpty = "Holder name cannot be empty."
	MsgSameAccount     = "Sender and receiver accounts cannot be the same."
)

// InvalidAmount returns the validation error for a bad amount of the given operation.
func InvalidAmount(op EntryType) *ValidationError {
	switch op {
	case EntryTypeCreateAccount:
		return &ValidationError{Field: "initial_balance", Message: "Initial balance must be a non-negative number."}
	case EntryTypeDeposit:
		return &ValidationError{Field: "amount", Message: "Deposit amount must be greater than zero."}
	case EntryTypeWithdrawal:
		return &ValidationError{Field: "amount", Message: "Withdrawal amount must be greater than zero."}
	case EntryTypeTransfer:
		return &ValidationError{Field: "amount", Message: "Transfer amount must be greater than zero."}
	default:
		return &ValidationError{Field: "amount", Message: "Amount must be a number."}
	}
}

// ParseAmount turns a user supplied amount for op into a decimal.
//
// Anything that is not a finite number yields the same error the ledger returns
// for an out-of-range amount of op.
func ParseAmount(op EntryType, raw string) (decimal.Decimal, error) {
	amount, err := moneypkg.Parse(raw)
	if err != nil {
		return decimal.Zero, InvalidAmount(op)
	}

	return amount, nil
}
