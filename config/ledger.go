package config

import "os"

const defaultLedgerFile = "billing_data.xlsx"

// LedgerFile returns the path of the billing workbook.
func LedgerFile() string {
	if path := os.Getenv("LEDGER_FILE"); path != "" {
		return path
	}
	return defaultLedgerFile
}
