package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/storage"
)

func seededHistoryService(t *testing.T, n int) (*HistoryService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	for i := 1; i <= n; i++ {
		_, err := store.AppendConversation(fmt.Sprintf("q%d", i), "a", "", "faq_match", 1)
		require.NoError(t, err)
	}
	return NewHistoryService(store), store
}

func TestHistoryLimitBounds(t *testing.T) {
	svc, _ := seededHistoryService(t, 3)

	for _, limit := range []int{0, -1, 101, 1000} {
		_, _, err := svc.History(limit, "")
		assert.ErrorIs(t, err, ErrInvalidParameter, "limit %d", limit)
	}

	for _, limit := range []int{1, 100} {
		_, _, err := svc.History(limit, "")
		assert.NoError(t, err, "limit %d", limit)
	}
}

func TestHistoryPageNewestFirst(t *testing.T) {
	svc, _ := seededHistoryService(t, 8)

	convs, total, err := svc.History(5, "")
	require.NoError(t, err)
	assert.Equal(t, int64(8), total)
	require.Len(t, convs, 5)
	assert.Equal(t, "q8", convs[0].UserMessage)
	for i := 1; i < len(convs); i++ {
		assert.Greater(t, convs[i-1].ID, convs[i].ID)
	}
}

func TestHistorySessionScenario(t *testing.T) {
	store := storage.NewMemoryStore()
	_, err := store.AppendConversation("hi", "hello", "s1", "faq_match", 1)
	require.NoError(t, err)
	_, err = store.AppendConversation("bye", "goodbye", "s1", "faq_match", 1)
	require.NoError(t, err)
	_, err = store.AppendConversation("noise", "resp", "s2", "fallback", 0)
	require.NoError(t, err)

	svc := NewHistoryService(store)
	convs, total, err := svc.History(10, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, convs, 2)
	assert.Equal(t, "bye", convs[0].UserMessage)
	assert.Equal(t, "goodbye", convs[0].BotResponse)
	assert.Equal(t, "hi", convs[1].UserMessage)
}
