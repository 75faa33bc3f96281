package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate_NewSessionHas8CharBillNumber(t *testing.T) {
	m := NewSessionManager()

	session := m.GetOrCreate("")
	require.NotNil(t, session)
	assert.NotEmpty(t, session.ID)
	assert.Len(t, session.BillNumber, 8)
}

func TestGetOrCreate_ReturnsSameSessionForKnownID(t *testing.T) {
	m := NewSessionManager()

	first := m.GetOrCreate("")
	second := m.GetOrCreate(first.ID)

	assert.Same(t, first, second)
	assert.Equal(t, first.BillNumber, second.BillNumber)
}

func TestGetOrCreate_UnknownIDMintsFreshSession(t *testing.T) {
	m := NewSessionManager()

	first := m.GetOrCreate("")
	second := m.GetOrCreate("not-a-session")

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.BillNumber, second.BillNumber)
}
