package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hitekgroup/hitek-site-backend/database"
	"github.com/hitekgroup/hitek-site-backend/errs"
	"github.com/hitekgroup/hitek-site-backend/models"
	"github.com/hitekgroup/hitek-site-backend/services"
)

// chatHandler serves the public chat widget.
type chatHandler struct {
	responder          Responder
	logger             zerolog.Logger
	presetQuestionRepo *database.PresetQuestionRepo
	chatResponseRepo   *database.ChatResponseRepo
	chatHistoryRepo    *database.ChatHistoryRepo
}

func newChatHandler(
	presetQuestionRepo *database.PresetQuestionRepo,
	chatResponseRepo *database.ChatResponseRepo,
	chatHistoryRepo *database.ChatHistoryRepo,
) chatHandler {
	logger := log.With().Str("handlerName", "chatHandler").Logger()

	return chatHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		presetQuestionRepo: presetQuestionRepo,
		chatResponseRepo:   chatResponseRepo,
		chatHistoryRepo:    chatHistoryRepo,
	}
}

type chatMessageRequest struct {
	Message    string     `json:"message" validate:"required"`
	QuestionID *uuid.UUID `json:"question_id,omitempty"`
	SessionID  *string    `json:"session_id,omitempty"`
}

type chatMessageResponse struct {
	Reply   string `json:"reply"`
	Matched bool   `json:"matched"`
}

// getActiveQuestions retrieves the preset questions shown to visitors
// @Summary Get active preset questions
// @Description Retrieves active preset questions in display order for the chat widget
// @Tags Chat
// @Accept json
// @Produce json
// @Success 200 {object} map[string][]models.PresetQuestion "List of active preset questions"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching questions"
// @Router /chat/questions [get]
func (h chatHandler) getActiveQuestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questions, err := h.presetQuestionRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find active preset questions", "preset questions", err))
			return
		}

		h.responder.WriteJSON(w, map[string][]models.PresetQuestion{"questions": questions})
	}
}

// postMessage answers a visitor message and records the exchange
// @Summary Post chat message
// @Description Answers a preset question directly or matches the message against response keywords, then appends the exchange to the history
// @Tags Chat
// @Accept json
// @Produce json
// @Param message body chatMessageRequest true "Visitor message"
// @Success 200 {object} chatMessageResponse "Bot reply"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid message payload"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error answering message"
// @Router /chat/message [post]
func (h chatHandler) postMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode chat message request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := validate.Struct(req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("chat message", err))
			return
		}

		reply, matched, err := h.answer(req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entry := models.ChatHistory{
			UserMessage: req.Message,
			BotResponse: reply,
			SessionID:   req.SessionID,
		}
		if err := h.chatHistoryRepo.Add(&entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("record chat exchange", "chat history", err))
			return
		}

		h.responder.WriteJSON(w, chatMessageResponse{Reply: reply, Matched: matched})
	}
}

// answer resolves the reply: a response bound to the selected preset question
// wins, otherwise keyword matching over the canned responses decides.
func (h chatHandler) answer(req chatMessageRequest) (string, bool, error) {
	if req.QuestionID != nil {
		response, err := h.chatResponseRepo.FindByQuestionID(*req.QuestionID)
		if err != nil {
			return "", false, wrapDatabaseError("find chat response", "chat response", err)
		}
		if response != nil {
			return response.ResponseText, true, nil
		}
		// No response configured for this question, fall through to keywords
	}

	responses, err := h.chatResponseRepo.FindAll()
	if err != nil {
		return "", false, wrapDatabaseError("find chat responses", "chat responses", err)
	}

	reply, matched := services.MatchChatReply(req.Message, responses)
	return reply, matched, nil
}
