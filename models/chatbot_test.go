package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAnalytics(t *testing.T) {
	session := func(s string) *string { return &s }

	t.Run("Counts conversations and distinct sessions", func(t *testing.T) {
		history := []ChatHistory{
			{UserMessage: "hi", SessionID: session("a")},
			{UserMessage: "pricing?", SessionID: session("a")},
			{UserMessage: "hello", SessionID: session("b")},
		}

		analytics := ComputeAnalytics(history, nil)

		assert.Equal(t, 3, analytics.TotalConversations)
		assert.Equal(t, 2, analytics.UniqueSessions)
	})

	t.Run("Anonymous rows collapse to one session", func(t *testing.T) {
		history := []ChatHistory{
			{UserMessage: "hi"},
			{UserMessage: "hello", SessionID: session("")},
			{UserMessage: "hey", SessionID: session("x")},
		}

		analytics := ComputeAnalytics(history, nil)

		assert.Equal(t, 3, analytics.TotalConversations)
		assert.Equal(t, 2, analytics.UniqueSessions)
	})

	t.Run("Counts only active chatbots", func(t *testing.T) {
		bots := []Chatbot{
			{Name: "Support", Status: ChatbotStatusActive},
			{Name: "Sales", Status: ChatbotStatusInactive},
			{Name: "FAQ", Status: ChatbotStatusActive},
		}

		analytics := ComputeAnalytics(nil, bots)

		assert.Equal(t, 2, analytics.ActiveChatbots)
		assert.Equal(t, 0, analytics.TotalConversations)
		assert.Equal(t, 0, analytics.UniqueSessions)
	})

	t.Run("Satisfaction rate is the fixed placeholder", func(t *testing.T) {
		analytics := ComputeAnalytics(nil, nil)
		assert.Equal(t, satisfactionRateStub, analytics.SatisfactionRate)
	})
}
