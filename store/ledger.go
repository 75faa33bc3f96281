package store

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"sync"
	"time"

	"github.com/Saaquib01/TheTasteQuest/models"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName  = "Billing Data"
	timeLayout = "2006-01-02 15:04:05"
)

// Column order is the on-disk contract; existing workbooks depend on it.
var header = []string{"Date", "Bill Number", "Phone Number", "Item Name", "Quantity", "Price", "Total Amount", "Status"}

var (
	ErrStoreMissing   = errors.New("ledger file does not exist")
	ErrHeaderMismatch = errors.New("ledger header does not match expected schema")
	ErrRowOutOfRange  = errors.New("ledger row index out of range")
)

// LedgerStore is the append-only billing ledger persisted as an xlsx workbook.
// Row position is the only key for status updates, so rows are never
// reordered, deleted or compacted. A single mutex serializes every
// open-mutate-save cycle, which keeps the read-pending-then-complete flow
// atomic within the process.
type LedgerStore struct {
	mu   sync.Mutex
	path string
}

func NewLedgerStore(path string) *LedgerStore {
	return &LedgerStore{path: path}
}

// Path returns the workbook location backing the store.
func (s *LedgerStore) Path() string {
	return s.path
}

// Initialize creates the workbook with the header row when it does not exist.
// When the workbook exists but holds only the header (or nothing), the header
// is re-asserted. Existing data rows are never touched.
func (s *LedgerStore) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("open ledger: %w", err)
		}
		f = excelize.NewFile()
		defer f.Close()
		if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
			return fmt.Errorf("name ledger sheet: %w", err)
		}
		if err := f.SetSheetRow(sheetName, "A1", headerRow()); err != nil {
			return fmt.Errorf("write ledger header: %w", err)
		}
		if err := f.SaveAs(s.path); err != nil {
			return fmt.Errorf("save ledger: %w", err)
		}
		return nil
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read ledger: %w", err)
	}
	if len(rows) <= 1 {
		if err := f.SetSheetRow(sheet, "A1", headerRow()); err != nil {
			return fmt.Errorf("write ledger header: %w", err)
		}
		if err := f.Save(); err != nil {
			return fmt.Errorf("save ledger: %w", err)
		}
	}
	return nil
}

// Append writes a row after the last occupied row and saves the workbook.
func (s *LedgerStore) Append(row models.LedgerRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrStoreMissing
		}
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read ledger: %w", err)
	}

	cell := fmt.Sprintf("A%d", len(rows)+1)
	values := []interface{}{
		row.Date.Format(timeLayout),
		row.BillNumber,
		row.PhoneNumber,
		row.ItemName,
		row.Quantity,
		row.Price,
		row.TotalAmount,
		string(row.Status),
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write ledger row: %w", err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

// ReadAll returns every data row in file order, header stripped.
func (s *LedgerStore) ReadAll() ([]models.LedgerRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAllLocked()
}

func (s *LedgerStore) readAllLocked() ([]models.LedgerRow, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrStoreMissing
		}
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	if len(raw) == 0 || !headerMatches(raw[0]) {
		return nil, ErrHeaderMismatch
	}

	rows := make([]models.LedgerRow, 0, len(raw)-1)
	for i, cells := range raw[1:] {
		row, err := parseRow(cells)
		if err != nil {
			return nil, fmt.Errorf("ledger row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Row returns the data row at the given 0-based position.
func (s *LedgerStore) Row(rowIndex int) (models.LedgerRow, error) {
	rows, err := s.ReadAll()
	if err != nil {
		return models.LedgerRow{}, err
	}
	if rowIndex < 0 || rowIndex >= len(rows) {
		return models.LedgerRow{}, ErrRowOutOfRange
	}
	return rows[rowIndex], nil
}

// UpdateStatus mutates the Status column of the data row at the given 0-based
// position. The workbook row is rowIndex+2 to account for the header.
func (s *LedgerStore) UpdateStatus(rowIndex int, status models.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrStoreMissing
		}
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read ledger: %w", err)
	}
	if rowIndex < 0 || rowIndex >= len(rows)-1 {
		return ErrRowOutOfRange
	}

	cell := fmt.Sprintf("H%d", rowIndex+2)
	if err := f.SetCellValue(sheet, cell, string(status)); err != nil {
		return fmt.Errorf("write ledger status: %w", err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

func headerRow() *[]interface{} {
	values := make([]interface{}, len(header))
	for i, h := range header {
		values[i] = h
	}
	return &values
}

func headerMatches(cells []string) bool {
	if len(cells) < len(header) {
		return false
	}
	for i, h := range header {
		if cells[i] != h {
			return false
		}
	}
	return true
}

func parseRow(cells []string) (models.LedgerRow, error) {
	// GetRows drops trailing empty cells, pad back to the full schema width.
	padded := make([]string, len(header))
	copy(padded, cells)

	date, err := time.ParseInLocation(timeLayout, padded[0], time.Local)
	if err != nil {
		return models.LedgerRow{}, fmt.Errorf("parse date %q: %w", padded[0], err)
	}
	quantity, err := strconv.Atoi(padded[4])
	if err != nil {
		return models.LedgerRow{}, fmt.Errorf("parse quantity %q: %w", padded[4], err)
	}
	price, err := strconv.Atoi(padded[5])
	if err != nil {
		return models.LedgerRow{}, fmt.Errorf("parse price %q: %w", padded[5], err)
	}
	total, err := strconv.Atoi(padded[6])
	if err != nil {
		return models.LedgerRow{}, fmt.Errorf("parse total %q: %w", padded[6], err)
	}
	status, err := models.ParseStatus(padded[7])
	if err != nil {
		return models.LedgerRow{}, fmt.Errorf("parse status %q: %w", padded[7], err)
	}

	return models.LedgerRow{
		Date:        date,
		BillNumber:  padded[1],
		PhoneNumber: padded[2],
		ItemName:    padded[3],
		Quantity:    quantity,
		Price:       price,
		TotalAmount: total,
		Status:      status,
	}, nil
}
