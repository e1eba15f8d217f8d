package domain

import "errors"

// Kind groups errors by how a caller should react to them.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindTransfer      Kind = "transfer"
	KindArithmetic    Kind = "arithmetic"
	KindNotFound      Kind = "not_found"
	KindConflict      Kind = "conflict"
	KindReentrancy    Kind = "reentrancy"
	KindInternal      Kind = "internal"
)

// Error is a launchpad failure with a stable code for client tooling.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

var (
	ErrInvalidTimeRange      = newError(KindValidation, "invalid_time_range", "invalid time range")
	ErrInvalidStartTime      = newError(KindValidation, "invalid_start_time", "invalid start time")
	ErrInvalidPurchaseBounds = newError(KindValidation, "invalid_purchase_bounds", "minimum purchase exceeds maximum purchase")
	ErrInvalidSupply         = newError(KindValidation, "invalid_supply", "total supply must be positive")
	ErrSaleInactive          = newError(KindValidation, "sale_inactive", "sale is not active")
	ErrBelowMinimum          = newError(KindValidation, "below_minimum", "purchase amount below minimum")
	ErrAboveMaximum          = newError(KindValidation, "above_maximum", "purchase amount above maximum")
	ErrInsufficientTokens    = newError(KindValidation, "insufficient_tokens", "insufficient tokens remaining")
	ErrIncorrectPayment      = newError(KindValidation, "incorrect_payment", "attached payment does not match cost")

	ErrNotAuthorized = newError(KindAuthorization, "not_authorized", "caller is not authorized")
	ErrEscrowCaller  = newError(KindAuthorization, "escrow_caller", "escrow account cannot act as a caller")

	ErrAssetTransferFailed = newError(KindTransfer, "asset_transfer_failed", "asset transfer failed")
	ErrPaymentFailed       = newError(KindTransfer, "payment_failed", "payment failed")
	ErrInsufficientFunds   = newError(KindTransfer, "insufficient_funds", "insufficient balance or allowance")

	ErrArithmeticOverflow = newError(KindArithmetic, "arithmetic_overflow", "arithmetic overflow")

	ErrCampaignNotFound = newError(KindNotFound, "campaign_not_found", "campaign not found")
	ErrCampaignExists   = newError(KindConflict, "campaign_exists", "campaign for sale asset still holds escrow")

	ErrReentrantCall  = newError(KindReentrancy, "reentrant_call", "reentrant call rejected")
	ErrSettlementBusy = newError(KindReentrancy, "settlement_busy", "settlement lock not acquired")
)

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "internal"
}
