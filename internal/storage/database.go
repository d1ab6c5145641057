package storage

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/models"
)

// Transient write failures (lock contention, dropped connections) are an
// expected operating condition under concurrent writers, so appends retry a
// bounded number of times before surfacing ErrStoreUnavailable.
const (
	appendAttempts = 3
	retryBackoff   = 50 * time.Millisecond
)

// DatabaseStore persists the conversation log in PostgreSQL via GORM. Id
// assignment and write atomicity come from the database's sequence and
// transactional insert.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a store backed by the given GORM connection
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// AppendConversation inserts one exchange, retrying transient failures with
// linear backoff
func (s *DatabaseStore) AppendConversation(userMessage, botResponse, sessionID, matchType string, confidence float64) (*models.Conversation, error) {
	conv := &models.Conversation{
		UserMessage: userMessage,
		BotResponse: botResponse,
		SessionID:   sessionID,
		MatchType:   matchType,
		Confidence:  confidence,
	}

	var lastErr error
	for attempt := 1; attempt <= appendAttempts; attempt++ {
		err := s.db.Create(conv).Error
		if err == nil {
			return conv, nil
		}
		lastErr = err
		if attempt < appendAttempts {
			time.Sleep(retryBackoff * time.Duration(attempt))
		}
	}
	return nil, errors.Wrapf(ErrStoreUnavailable, "append failed after %d attempts: %v", appendAttempts, lastErr)
}

// GetConversation returns the record with the given id
func (s *DatabaseStore) GetConversation(id uint) (*models.Conversation, error) {
	var conv models.Conversation
	if err := s.db.First(&conv, id).Error; err != nil {
		return nil, classifyReadError(err)
	}
	return &conv, nil
}

// QueryConversations returns up to limit records newest-first with the total
// matching count
func (s *DatabaseStore) QueryConversations(limit int, sessionID string) ([]*models.Conversation, int64, error) {
	scope := func() *gorm.DB {
		q := s.db.Model(&models.Conversation{})
		if sessionID != "" {
			q = q.Where("session_id = ?", sessionID)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, classifyReadError(err)
	}

	var convs []*models.Conversation
	q := scope().Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&convs).Error; err != nil {
		return nil, 0, classifyReadError(err)
	}
	return convs, total, nil
}

// CountConversations returns the total number of stored records
func (s *DatabaseStore) CountConversations() (int64, error) {
	var total int64
	if err := s.db.Model(&models.Conversation{}).Count(&total).Error; err != nil {
		return 0, classifyReadError(err)
	}
	return total, nil
}

// CountByMatchType returns stored record counts grouped by match type
func (s *DatabaseStore) CountByMatchType() (map[string]int64, error) {
	var rows []struct {
		MatchType string
		Total     int64
	}
	err := s.db.Model(&models.Conversation{}).
		Select("match_type, count(*) as total").
		Group("match_type").
		Scan(&rows).Error
	if err != nil {
		return nil, classifyReadError(err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.MatchType] = row.Total
	}
	return counts, nil
}

// classifyReadError maps a GORM error onto the store failure taxonomy.
// Unreadable rows or schema mean corruption and are never retried; anything
// else is treated as the store being unreachable.
func classifyReadError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrInvalidData), isScanError(err):
		return errors.Wrapf(ErrStoreCorrupt, "%v", err)
	default:
		return errors.Wrapf(ErrStoreUnavailable, "%v", err)
	}
}

func isScanError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Scan error") ||
		strings.Contains(msg, "unsupported Scan") ||
		strings.Contains(msg, "converting")
}
