package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ReturnStatus is the state of the return request attached to an order
type ReturnStatus string

// Return status constants. Completed exists for records settled outside the
// service; no operation here moves a request into it.
const (
	ReturnStatusNone      ReturnStatus = "None"
	ReturnStatusRequested ReturnStatus = "Requested"
	ReturnStatusApproved  ReturnStatus = "Approved"
	ReturnStatusRejected  ReturnStatus = "Rejected"
	ReturnStatusCompleted ReturnStatus = "Completed"
)

// RefundStatus tracks the refund owed for a return
type RefundStatus string

// Refund status constants
const (
	RefundStatusPending   RefundStatus = "Pending"
	RefundStatusProcessed RefundStatus = "Processed"
	RefundStatusFailed    RefundStatus = "Failed"
)

var (
	// ErrReturnAlreadyRequested is returned when an order already carries a return request
	ErrReturnAlreadyRequested = errors.New("return request already exists for this order")
	// ErrNoPendingReturn is returned when approving or rejecting without a Requested return
	ErrNoPendingReturn = errors.New("no pending return request")
	// ErrInvalidRefundStatus is returned for an unknown refund status override
	ErrInvalidRefundStatus = errors.New("invalid refund status")
)

// ReturnRequest is embedded in the order; an order has at most one.
type ReturnRequest struct {
	Status       ReturnStatus    `gorm:"type:varchar(16);not null;default:None" json:"status"`
	Reason       string          `json:"reason,omitempty"`
	Description  string          `json:"description,omitempty"`
	RequestedAt  *time.Time      `json:"requested_at,omitempty"`
	ApprovedAt   *time.Time      `json:"approved_at,omitempty"`
	RefundAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"refund_amount"`
	RefundStatus RefundStatus    `gorm:"type:varchar(16);not null;default:Pending" json:"refund_status"`
}

// NewReturnRequest returns the empty request every order starts with
func NewReturnRequest() ReturnRequest {
	return ReturnRequest{
		Status:       ReturnStatusNone,
		RefundAmount: decimal.Zero,
		RefundStatus: RefundStatusPending,
	}
}

// Active reports whether a return has been requested at any point
func (r *ReturnRequest) Active() bool {
	return r.Status != "" && r.Status != ReturnStatusNone
}

// Request opens a return for refundAmount. Only a request in None may move.
func (r *ReturnRequest) Request(reason, description string, refundAmount decimal.Decimal, now time.Time) error {
	if r.Active() {
		return ErrReturnAlreadyRequested
	}
	requestedAt := now
	*r = ReturnRequest{
		Status:       ReturnStatusRequested,
		Reason:       reason,
		Description:  description,
		RequestedAt:  &requestedAt,
		RefundAmount: refundAmount,
		RefundStatus: RefundStatusPending,
	}
	return nil
}

// Approve accepts a Requested return; override replaces the refund status when given
func (r *ReturnRequest) Approve(now time.Time, override *RefundStatus) error {
	if r.Status != ReturnStatusRequested {
		return ErrNoPendingReturn
	}
	if override != nil && !ValidRefundStatus(*override) {
		return ErrInvalidRefundStatus
	}
	approvedAt := now
	r.Status = ReturnStatusApproved
	r.ApprovedAt = &approvedAt
	if override != nil {
		r.RefundStatus = *override
	}
	return nil
}

// Reject declines a Requested return and marks its refund as failed
func (r *ReturnRequest) Reject() error {
	if r.Status != ReturnStatusRequested {
		return ErrNoPendingReturn
	}
	r.Status = ReturnStatusRejected
	r.RefundStatus = RefundStatusFailed
	return nil
}

func (r ReturnRequest) clone() ReturnRequest {
	if r.RequestedAt != nil {
		t := *r.RequestedAt
		r.RequestedAt = &t
	}
	if r.ApprovedAt != nil {
		t := *r.ApprovedAt
		r.ApprovedAt = &t
	}
	return r
}

// ValidRefundStatus reports whether s is one of the known refund statuses
func ValidRefundStatus(s RefundStatus) bool {
	switch s {
	case RefundStatusPending, RefundStatusProcessed, RefundStatusFailed:
		return true
	}
	return false
}
