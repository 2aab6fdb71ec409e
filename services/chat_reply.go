package services

import (
	"strings"

	"github.com/hitekgroup/hitek-site-backend/models"
)

// DefaultChatReply is returned when no canned response matches the visitor's
// message. Kept generic on purpose; the admin panel owns the real content.
const DefaultChatReply = "Thank you for your message! Our team will get back to you shortly. " +
	"You can also reach us at [email protected]."

// MatchChatReply picks the canned response for a free-form visitor message.
// A response matches when any of its keywords occurs in the lowercased
// message; among matches the one hitting the most keywords wins, ties going to
// the earlier response. Returns (reply, true) on a match and
// (DefaultChatReply, false) otherwise.
func MatchChatReply(message string, responses []models.ChatResponse) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return DefaultChatReply, false
	}

	bestScore := 0
	bestReply := ""
	for _, response := range responses {
		score := 0
		for _, keyword := range response.Keywords {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword == "" {
				continue
			}
			if strings.Contains(normalized, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestReply = response.ResponseText
		}
	}

	if bestScore == 0 {
		return DefaultChatReply, false
	}
	return bestReply, true
}
