package services

import (
	"github.com/pkg/errors"

	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/models"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/storage"
)

// History page size bounds. Out-of-range limits are rejected, not clamped,
// so callers get an explicit signal to correct the request.
const (
	MinHistoryLimit = 1
	MaxHistoryLimit = 100
)

// ErrInvalidParameter is returned for malformed query parameters
var ErrInvalidParameter = errors.New("invalid query parameter")

// HistoryService reads pages of the conversation log
type HistoryService struct {
	store storage.Store
}

// NewHistoryService creates a new history service
func NewHistoryService(store storage.Store) *HistoryService {
	return &HistoryService{store: store}
}

// History returns up to limit conversations newest-first, optionally
// filtered to an exact session id, plus the total number of matching
// records ignoring limit.
func (s *HistoryService) History(limit int, sessionID string) ([]*models.Conversation, int64, error) {
	if limit < MinHistoryLimit || limit > MaxHistoryLimit {
		return nil, 0, errors.Wrapf(ErrInvalidParameter,
			"limit must be between %d and %d, got %d", MinHistoryLimit, MaxHistoryLimit, limit)
	}
	return s.store.QueryConversations(limit, sessionID)
}
