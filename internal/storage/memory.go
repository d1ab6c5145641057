package storage

import (
	"sync"
	"time"

	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/models"
)

// MemoryStore holds the conversation log in memory. Used for tests and when
// USE_MEMORY_STORE=true.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations []*models.Conversation
	counter       uint
}

// NewMemoryStore creates a new in-memory conversation store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// AppendConversation writes one exchange under the write lock, so ids stay
// strictly increasing and timestamps non-decreasing.
func (m *MemoryStore) AppendConversation(userMessage, botResponse, sessionID, matchType string, confidence float64) (*models.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counter++
	conv := &models.Conversation{
		ID:          m.counter,
		UserMessage: userMessage,
		BotResponse: botResponse,
		SessionID:   sessionID,
		MatchType:   matchType,
		Confidence:  confidence,
		CreatedAt:   time.Now().UTC(),
	}
	m.conversations = append(m.conversations, conv)

	copied := *conv
	return &copied, nil
}

// GetConversation returns the record with the given id
func (m *MemoryStore) GetConversation(id uint) (*models.Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Ids are assigned 1..n with no gaps, so the id doubles as an index
	if id == 0 || id > uint(len(m.conversations)) {
		return nil, ErrNotFound
	}
	copied := *m.conversations[id-1]
	return &copied, nil
}

// QueryConversations returns up to limit records newest-first with the total
// matching count
func (m *MemoryStore) QueryConversations(limit int, sessionID string) ([]*models.Conversation, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []*models.Conversation
	var total int64
	for i := len(m.conversations) - 1; i >= 0; i-- {
		conv := m.conversations[i]
		if sessionID != "" && conv.SessionID != sessionID {
			continue
		}
		total++
		if limit <= 0 || len(results) < limit {
			copied := *conv
			results = append(results, &copied)
		}
	}
	return results, total, nil
}

// CountConversations returns the total number of stored records
func (m *MemoryStore) CountConversations() (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.conversations)), nil
}

// CountByMatchType returns stored record counts grouped by match type
func (m *MemoryStore) CountByMatchType() (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int64)
	for _, conv := range m.conversations {
		counts[conv.MatchType]++
	}
	return counts, nil
}
