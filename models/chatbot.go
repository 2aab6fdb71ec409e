package models

// Chatbot statuses.
const (
	ChatbotStatusActive   = "active"
	ChatbotStatusInactive = "inactive"
)

// Chatbot is a descriptor for one configured bot shown on the admin panel.
type Chatbot struct {
	ID          int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name        string `json:"name" db:"name" gorm:"type:text;not null"`
	Status      string `json:"status" db:"status" gorm:"type:text;not null;default:'active'"`
	Description string `json:"description" db:"description" gorm:"type:text;not null;default:''"`
}

// ChatbotAnalytics is the derived read served on the admin panel. The
// satisfaction rate is a fixed placeholder until real feedback data exists.
type ChatbotAnalytics struct {
	TotalConversations int `json:"total_conversations"`
	UniqueSessions     int `json:"unique_sessions"`
	SatisfactionRate   int `json:"satisfaction_rate"`
	ActiveChatbots     int `json:"active_chatbots"`
}

const satisfactionRateStub = 89

// ComputeAnalytics derives the panel numbers from the raw history and the
// configured bots. Rows without a session identifier count as one anonymous
// session altogether.
func ComputeAnalytics(history []ChatHistory, bots []Chatbot) ChatbotAnalytics {
	sessions := make(map[string]struct{}, len(history))
	anonymous := false
	for _, h := range history {
		if h.SessionID == nil || *h.SessionID == "" {
			anonymous = true
			continue
		}
		sessions[*h.SessionID] = struct{}{}
	}

	unique := len(sessions)
	if anonymous {
		unique++
	}

	active := 0
	for _, b := range bots {
		if b.Status == ChatbotStatusActive {
			active++
		}
	}

	return ChatbotAnalytics{
		TotalConversations: len(history),
		UniqueSessions:     unique,
		SatisfactionRate:   satisfactionRateStub,
		ActiveChatbots:     active,
	}
}
