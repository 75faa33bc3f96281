package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Saaquib01/TheTasteQuest/models"
	"github.com/Saaquib01/TheTasteQuest/store"
)

var ErrValidation = errors.New("validation failed")

// BillingService orchestrates the billing workflows over the menu catalog and
// the ledger store. The notifier is optional; completion still succeeds when
// no notifier is configured.
type BillingService struct {
	store    *store.LedgerStore
	notifier *NotifyService
}

func NewBillingService(ledger *store.LedgerStore, notifier *NotifyService) *BillingService {
	return &BillingService{store: ledger, notifier: notifier}
}

// AddLineItem validates the order input, prices it against the menu catalog
// and appends the resulting Pending row to the ledger. Nothing is written
// when validation fails.
func (s *BillingService) AddLineItem(session *BillSession, phone, itemCode string, quantity int) (models.LedgerRow, error) {
	if strings.TrimSpace(phone) == "" {
		return models.LedgerRow{}, fmt.Errorf("%w: phone number is required", ErrValidation)
	}
	if itemCode == "" {
		return models.LedgerRow{}, fmt.Errorf("%w: no item selected", ErrValidation)
	}
	if quantity < 1 {
		return models.LedgerRow{}, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	item, err := models.LookupItem(itemCode)
	if err != nil {
		return models.LedgerRow{}, err
	}

	row := models.LedgerRow{
		Date:        time.Now(),
		BillNumber:  session.BillNumber,
		PhoneNumber: phone,
		ItemName:    item.Name,
		Quantity:    quantity,
		Price:       item.Price,
		TotalAmount: item.Price * quantity,
		Status:      models.StatusPending,
	}

	if err := s.store.Append(row); err != nil {
		return models.LedgerRow{}, err
	}
	return row, nil
}

// ListHistory returns the rows recorded for the given phone number, newest
// first.
func (s *BillingService) ListHistory(phone string) ([]models.LedgerRow, error) {
	rows, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	history := make([]models.LedgerRow, 0)
	for _, row := range rows {
		if row.PhoneNumber == phone {
			history = append(history, row)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})
	return history, nil
}

// ListPending returns the pending rows together with their ledger positions,
// which callers hand back to CompleteOrder.
func (s *BillingService) ListPending() ([]models.PendingOrder, error) {
	rows, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	pending := make([]models.PendingOrder, 0)
	for i, row := range rows {
		if row.Status == models.StatusPending {
			pending = append(pending, models.PendingOrder{RowIndex: i, Row: row})
		}
	}
	return pending, nil
}

// CompleteOrder flips the row at the given ledger position to Completed.
// Completing an already-completed row rewrites the same value; the row's
// prior status is not checked.
func (s *BillingService) CompleteOrder(rowIndex int) error {
	row, err := s.store.Row(rowIndex)
	if err != nil {
		return err
	}

	if err := s.store.UpdateStatus(rowIndex, models.StatusCompleted); err != nil {
		return err
	}

	if s.notifier != nil {
		row.Status = models.StatusCompleted
		s.notifier.NotifyOrderCompleted(row)
	}
	return nil
}
