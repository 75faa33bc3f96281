package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Saaquib01/TheTasteQuest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestStore(t *testing.T) *LedgerStore {
	t.Helper()
	s := NewLedgerStore(filepath.Join(t.TempDir(), "billing_data.xlsx"))
	require.NoError(t, s.Initialize())
	return s
}

func testRow(phone, item string, qty, price int, status models.Status) models.LedgerRow {
	return models.LedgerRow{
		Date:        time.Now().Truncate(time.Second),
		BillNumber:  "ab12cd34",
		PhoneNumber: phone,
		ItemName:    item,
		Quantity:    qty,
		Price:       price,
		TotalAmount: qty * price,
		Status:      status,
	}
}

func TestInitialize_CreatesWorkbookWithHeader(t *testing.T) {
	s := newTestStore(t)

	f, err := excelize.OpenFile(s.Path())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, header, rows[0])

	all, err := s.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestInitialize_IdempotentOnPopulatedStore(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Append(testRow("9999999999", "Chicken Fried Rice", 2, 80, models.StatusPending)))
	require.NoError(t, s.Append(testRow("8888888888", "Veg Noodles", 1, 75, models.StatusPending)))

	before, err := s.ReadAll()
	require.NoError(t, err)

	// Re-initializing must never alter existing data rows
	require.NoError(t, s.Initialize())
	require.NoError(t, s.Initialize())

	after, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAppend_PreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	items := []string{"Chicken Fried Rice", "Veg Fried Rice", "Chicken Noodles", "Veg Noodles"}
	for _, name := range items {
		require.NoError(t, s.Append(testRow("9999999999", name, 1, 80, models.StatusPending)))
	}

	rows, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(items))
	for i, name := range items {
		assert.Equal(t, name, rows[i].ItemName)
	}
}

func TestAppend_RoundTripsAllColumns(t *testing.T) {
	s := newTestStore(t)

	written := testRow("9999999999", "Chicken Noodles", 3, 90, models.StatusPending)
	require.NoError(t, s.Append(written))

	rows, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	got := rows[0]
	assert.Equal(t, written.Date.Format(timeLayout), got.Date.Format(timeLayout))
	assert.Equal(t, written.BillNumber, got.BillNumber)
	assert.Equal(t, written.PhoneNumber, got.PhoneNumber)
	assert.Equal(t, written.ItemName, got.ItemName)
	assert.Equal(t, written.Quantity, got.Quantity)
	assert.Equal(t, written.Price, got.Price)
	assert.Equal(t, 270, got.TotalAmount)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestUpdateStatus_OnlyTouchesTargetRow(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Append(testRow("9999999999", "Veg Fried Rice", i+1, 70, models.StatusPending)))
	}

	require.NoError(t, s.UpdateStatus(1, models.StatusCompleted))

	rows, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.StatusPending, rows[0].Status)
	assert.Equal(t, models.StatusCompleted, rows[1].Status)
	assert.Equal(t, models.StatusPending, rows[2].Status)

	// Every other column of the updated row is unchanged
	assert.Equal(t, 2, rows[1].Quantity)
	assert.Equal(t, 140, rows[1].TotalAmount)
}

func TestUpdateStatus_RowIndexOutOfRange(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(testRow("9999999999", "Veg Noodles", 1, 75, models.StatusPending)))

	assert.ErrorIs(t, s.UpdateStatus(-1, models.StatusCompleted), ErrRowOutOfRange)
	assert.ErrorIs(t, s.UpdateStatus(1, models.StatusCompleted), ErrRowOutOfRange)
}

func TestReadAll_StoreMissing(t *testing.T) {
	s := NewLedgerStore(filepath.Join(t.TempDir(), "missing.xlsx"))

	_, err := s.ReadAll()
	assert.ErrorIs(t, err, ErrStoreMissing)
}

func TestReadAll_HeaderMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.xlsx")

	f := excelize.NewFile()
	wrong := []interface{}{"Date", "Order ID", "Phone", "Item"}
	require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A1", &wrong))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	s := NewLedgerStore(path)
	_, err := s.ReadAll()
	assert.ErrorIs(t, err, ErrHeaderMismatch)
}

func TestRow_ReturnsRowAtIndex(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(testRow("9999999999", "Chicken Fried Rice", 2, 80, models.StatusPending)))
	require.NoError(t, s.Append(testRow("8888888888", "Veg Noodles", 1, 75, models.StatusPending)))

	row, err := s.Row(1)
	require.NoError(t, err)
	assert.Equal(t, "Veg Noodles", row.ItemName)

	_, err = s.Row(2)
	assert.ErrorIs(t, err, ErrRowOutOfRange)
}
