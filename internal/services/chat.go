package services

import (
	"time"

	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/matcher"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/storage"
)

// ChatService answers one message: match against the catalog, log the
// exchange, return the reply. A low-confidence or fallback match is a
// successful reply, distinguished by MatchType; errors mean the message was
// invalid or the log write failed.
type ChatService struct {
	matcher *matcher.Matcher
	store   storage.Store
}

// ChatReply is the answer to one chat message
type ChatReply struct {
	ConversationID uint              `json:"conversation_id"`
	Response       string            `json:"response"`
	Confidence     float64           `json:"confidence"`
	MatchType      matcher.MatchType `json:"type"`
	Category       string            `json:"category,omitempty"`
	SessionID      string            `json:"session_id,omitempty"`
	Timestamp      time.Time         `json:"timestamp"`
}

// NewChatService creates a new chat service
func NewChatService(m *matcher.Matcher, store storage.Store) *ChatService {
	return &ChatService{
		matcher: m,
		store:   store,
	}
}

// Respond matches the message and appends the exchange to the conversation
// log. The log write is part of the contract: if the append fails after the
// store's internal retries, the whole call fails rather than returning an
// unlogged reply.
func (s *ChatService) Respond(message, sessionID string) (*ChatReply, error) {
	result, err := s.matcher.Match(message)
	if err != nil {
		return nil, err
	}

	conv, err := s.store.AppendConversation(
		message, result.Response, sessionID, string(result.MatchType), result.Confidence)
	if err != nil {
		return nil, err
	}

	return &ChatReply{
		ConversationID: conv.ID,
		Response:       result.Response,
		Confidence:     result.Confidence,
		MatchType:      result.MatchType,
		Category:       result.Category,
		SessionID:      sessionID,
		Timestamp:      conv.CreatedAt,
	}, nil
}
