package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hitekgroup/hitek-site-backend/models"
)

func TestMatchChatReply(t *testing.T) {
	responses := []models.ChatResponse{
		{ResponseText: "Our pricing starts at $500 per project.", Keywords: []string{"price", "cost", "budget"}},
		{ResponseText: "We build web and mobile applications.", Keywords: []string{"services", "web", "mobile"}},
		{ResponseText: "Reach us at [email protected].", Keywords: []string{"contact", "email", "phone"}},
	}

	t.Run("Matches on a single keyword, case-insensitively", func(t *testing.T) {
		reply, matched := MatchChatReply("What is your PRICE?", responses)

		assert.True(t, matched)
		assert.Equal(t, responses[0].ResponseText, reply)
	})

	t.Run("Most keyword hits wins", func(t *testing.T) {
		reply, matched := MatchChatReply("Do you build web and mobile apps? What services do you offer?", responses)

		assert.True(t, matched)
		assert.Equal(t, responses[1].ResponseText, reply)
	})

	t.Run("Ties go to the earlier response", func(t *testing.T) {
		reply, matched := MatchChatReply("price and contact please", responses)

		assert.True(t, matched)
		assert.Equal(t, responses[0].ResponseText, reply)
	})

	t.Run("No match falls back to the default reply", func(t *testing.T) {
		reply, matched := MatchChatReply("tell me about kubernetes", responses)

		assert.False(t, matched)
		assert.Equal(t, DefaultChatReply, reply)
	})

	t.Run("Blank message never matches", func(t *testing.T) {
		reply, matched := MatchChatReply("   ", responses)

		assert.False(t, matched)
		assert.Equal(t, DefaultChatReply, reply)
	})

	t.Run("Blank keywords are ignored", func(t *testing.T) {
		withBlanks := []models.ChatResponse{
			{ResponseText: "noise", Keywords: []string{"", "  "}},
		}

		reply, matched := MatchChatReply("anything at all", withBlanks)

		assert.False(t, matched)
		assert.Equal(t, DefaultChatReply, reply)
	})
}
