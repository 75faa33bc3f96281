package services

import (
	"sync"

	"github.com/google/uuid"
)

// BillSession groups the line items added during one counter interaction
// under a shared bill number.
type BillSession struct {
	ID         string `json:"sessionId"`
	BillNumber string `json:"billNumber"`
}

// SessionManager hands out bill sessions keyed by an opaque session id. The
// bill number is generated once per session and reused for every line item
// added within it.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*BillSession
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*BillSession)}
}

// GetOrCreate returns the session for the given id, or mints a new one when
// the id is empty or unknown. Bill numbers are the first 8 characters of a
// UUID.
func (m *SessionManager) GetOrCreate(id string) *BillSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if session, ok := m.sessions[id]; ok {
			return session
		}
	}

	session := &BillSession{
		ID:         uuid.New().String(),
		BillNumber: uuid.New().String()[:8],
	}
	m.sessions[session.ID] = session
	return session
}
