package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Saaquib01/TheTasteQuest/models"
	"github.com/Saaquib01/TheTasteQuest/store"
	"github.com/stretchr/testify/require"
)

func TestNotifyService_DisabledWithoutCredentials(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")

	ledger := store.NewLedgerStore(filepath.Join(t.TempDir(), "billing_data.xlsx"))
	require.NoError(t, ledger.Initialize())

	svc := NewNotifyService(ledger)
	require.False(t, svc.enabled)

	// Must be a no-op, not a panic or an outbound call
	svc.NotifyOrderCompleted(models.LedgerRow{
		Date:        time.Now(),
		BillNumber:  "ab12cd34",
		PhoneNumber: "9999999999",
		ItemName:    "Chicken Fried Rice",
		Quantity:    2,
		TotalAmount: 160,
		Status:      models.StatusCompleted,
	})
}

func TestNotifyService_DailySummarySkipsWithoutOwnerPhone(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("OWNER_PHONE_NUMBER", "")

	ledger := store.NewLedgerStore(filepath.Join(t.TempDir(), "billing_data.xlsx"))
	require.NoError(t, ledger.Initialize())

	NewNotifyService(ledger).SendDailySummary()
}
