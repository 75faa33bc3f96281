package models

import (
	"errors"
	"time"
)

// Status is the lifecycle state of a single ledger row, not of a whole bill.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

var ErrInvalidStatus = errors.New("invalid order status")

// ParseStatus validates a raw status cell value
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// LedgerRow is one line item recorded against a bill. Rows are immutable once
// written except for Status, which moves Pending -> Completed.
type LedgerRow struct {
	Date        time.Time `json:"date"`
	BillNumber  string    `json:"billNumber"`
	PhoneNumber string    `json:"phoneNumber"`
	ItemName    string    `json:"itemName"`
	Quantity    int       `json:"quantity"`
	Price       int       `json:"price"`
	TotalAmount int       `json:"totalAmount"`
	Status      Status    `json:"status"`
}

// PendingOrder pairs a pending ledger row with its position in the ledger.
// The index is the row's identity for completion updates.
type PendingOrder struct {
	RowIndex int       `json:"rowIndex"`
	Row      LedgerRow `json:"row"`
}
