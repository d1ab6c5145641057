package services

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/catalog"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/matcher"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/models"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/storage"
)

func newChatService(store storage.Store) *ChatService {
	return NewChatService(matcher.New(catalog.Default()), store)
}

func TestRespondLogsExchange(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newChatService(store)

	reply, err := svc.Respond("What are your business hours?", "s1")
	require.NoError(t, err)
	assert.Equal(t, matcher.MatchTypeFAQ, reply.MatchType)
	assert.Equal(t, "hours", reply.Category)
	assert.GreaterOrEqual(t, reply.Confidence, 0.9)
	assert.Equal(t, "s1", reply.SessionID)
	assert.NotZero(t, reply.ConversationID)
	assert.False(t, reply.Timestamp.IsZero())

	conv, err := store.GetConversation(reply.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, "What are your business hours?", conv.UserMessage)
	assert.Equal(t, reply.Response, conv.BotResponse)
	assert.Equal(t, "s1", conv.SessionID)
	assert.Equal(t, string(matcher.MatchTypeFAQ), conv.MatchType)
}

func TestRespondFallbackIsSuccess(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newChatService(store)

	reply, err := svc.Respond("asdf qwerty zxcv", "")
	require.NoError(t, err)
	assert.Equal(t, matcher.MatchTypeFallback, reply.MatchType)
	assert.Empty(t, reply.Category)
	assert.Equal(t, 0.0, reply.Confidence)

	// Fallbacks are logged like any other exchange
	total, err := store.CountConversations()
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestRespondInvalidInput(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newChatService(store)

	_, err := svc.Respond("   ", "s1")
	assert.ErrorIs(t, err, matcher.ErrInvalidInput)

	// Nothing is logged for rejected input
	total, err := store.CountConversations()
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

// failingStore always fails appends, standing in for an unreachable database
type failingStore struct {
	storage.Store
}

func (f *failingStore) AppendConversation(string, string, string, string, float64) (*models.Conversation, error) {
	return nil, errors.Wrap(storage.ErrStoreUnavailable, "induced failure")
}

func TestRespondStoreFailureSurfaces(t *testing.T) {
	svc := newChatService(&failingStore{Store: storage.NewMemoryStore()})

	_, err := svc.Respond("What are your business hours?", "s1")
	assert.ErrorIs(t, err, storage.ErrStoreUnavailable)
}
