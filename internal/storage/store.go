package storage

import (
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/models"
)

var storeInstance Store

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	return storeInstance
}

// Store is the append-only conversation log.
//
// AppendConversation is atomic: either the full record is durably written
// with a fresh, strictly increasing id, or nothing is written and an error
// is returned. Concurrent appends never interleave or reuse ids. Reads may
// run concurrently with writes but never observe a partial record.
type Store interface {
	// AppendConversation writes one exchange and returns the stored record
	// with its assigned id and timestamp.
	AppendConversation(userMessage, botResponse, sessionID, matchType string, confidence float64) (*models.Conversation, error)

	// GetConversation returns the record with the given id, or ErrNotFound.
	GetConversation(id uint) (*models.Conversation, error)

	// QueryConversations returns up to limit records newest-first, optionally
	// filtered to an exact session id (empty means no filter), plus the total
	// number of matching records ignoring limit.
	QueryConversations(limit int, sessionID string) ([]*models.Conversation, int64, error)

	// CountConversations returns the total number of stored records.
	CountConversations() (int64, error)

	// CountByMatchType returns stored record counts grouped by match type.
	CountByMatchType() (map[string]int64, error)
}
