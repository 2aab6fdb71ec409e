package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hitekgroup/hitek-site-backend/database"
	"github.com/hitekgroup/hitek-site-backend/errs"
	"github.com/hitekgroup/hitek-site-backend/models"
)

// chatbotHandler serves the admin panel's chatbot configuration: preset
// questions, canned responses, conversation history and analytics.
type chatbotHandler struct {
	responder          Responder
	logger             zerolog.Logger
	presetQuestionRepo *database.PresetQuestionRepo
	chatResponseRepo   *database.ChatResponseRepo
	chatHistoryRepo    *database.ChatHistoryRepo
	chatbotRepo        *database.ChatbotRepo
}

func newChatbotHandler(
	presetQuestionRepo *database.PresetQuestionRepo,
	chatResponseRepo *database.ChatResponseRepo,
	chatHistoryRepo *database.ChatHistoryRepo,
	chatbotRepo *database.ChatbotRepo,
) chatbotHandler {
	logger := log.With().Str("handlerName", "chatbotHandler").Logger()

	return chatbotHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		presetQuestionRepo: presetQuestionRepo,
		chatResponseRepo:   chatResponseRepo,
		chatHistoryRepo:    chatHistoryRepo,
		chatbotRepo:        chatbotRepo,
	}
}

// getAllPresetQuestions retrieves every preset question, inactive included
// @Summary Get all preset questions
// @Description Retrieves all preset questions in display order for the admin panel
// @Tags Chatbot
// @Accept json
// @Produce json
// @Success 200 {object} map[string][]models.PresetQuestion "List of preset questions"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching preset questions"
// @Router /preset-questions [get]
func (h chatbotHandler) getAllPresetQuestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questions, err := h.presetQuestionRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find preset questions", "preset questions", err))
			return
		}

		h.responder.WriteJSON(w, map[string][]models.PresetQuestion{"questions": questions})
	}
}

// createPresetQuestion creates a new preset question
// @Summary Create preset question
// @Description Creates a preset question for the chat widget
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param question body models.PresetQuestion true "Preset question data"
// @Success 201 {object} models.PresetQuestion "Created preset question"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid question data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating preset question"
// @Router /preset-question [post]
func (h chatbotHandler) createPresetQuestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var question models.PresetQuestion
		if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode preset question request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if question.ID != uuid.Nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("id", "identifiers are assigned by the backend"))
			return
		}
		if question.QuestionText == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("question_text"))
			return
		}

		if err := h.presetQuestionRepo.Add(&question); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create preset question", "preset question", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, question)
	}
}

// updatePresetQuestion updates an existing preset question
// @Summary Update preset question
// @Description Updates a preset question
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param questionID path string true "Preset question ID"
// @Param question body models.PresetQuestion true "Updated preset question data"
// @Success 200 {object} models.PresetQuestion "Updated preset question"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid question data"
// @Failure 404 {object} ErrorResponse "Not Found - Preset question not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating preset question"
// @Router /preset-question/{questionID} [put]
func (h chatbotHandler) updatePresetQuestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questionID, err := parseUUIDParam(r, "questionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, findErr := h.presetQuestionRepo.FindByID(questionID)
		if findErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find preset question", "preset question", findErr))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("preset question not found"))
			return
		}

		var question models.PresetQuestion
		if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode preset question request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if question.QuestionText == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("question_text"))
			return
		}

		question.ID = questionID
		question.CreatedAt = existing.CreatedAt
		if err := h.presetQuestionRepo.Update(&question); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update preset question", "preset question", err))
			return
		}

		h.responder.WriteJSON(w, question)
	}
}

// deletePresetQuestion deletes a preset question by ID
// @Summary Delete preset question
// @Description Deletes a preset question
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param questionID path string true "Preset question ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Preset question not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting preset question"
// @Router /preset-question/{questionID} [delete]
func (h chatbotHandler) deletePresetQuestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questionID, err := parseUUIDParam(r, "questionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, findErr := h.presetQuestionRepo.FindByID(questionID)
		if findErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find preset question", "preset question", findErr))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("preset question not found"))
			return
		}

		if err := h.presetQuestionRepo.Delete(questionID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete preset question", "preset question", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "preset question deleted successfully",
		})
	}
}

// getAllChatResponses retrieves every canned response
// @Summary Get all chat responses
// @Description Retrieves the canned responses with their trigger keywords
// @Tags Chatbot
// @Accept json
// @Produce json
// @Success 200 {object} map[string][]models.ChatResponse "List of chat responses"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching chat responses"
// @Router /chat-responses [get]
func (h chatbotHandler) getAllChatResponses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses, err := h.chatResponseRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find chat responses", "chat responses", err))
			return
		}

		h.responder.WriteJSON(w, map[string][]models.ChatResponse{"responses": responses})
	}
}

// createChatResponse creates a new canned response
// @Summary Create chat response
// @Description Creates a canned response, optionally bound to a preset question or to trigger keywords
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param response body models.ChatResponse true "Chat response data"
// @Success 201 {object} models.ChatResponse "Created chat response"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid response data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating chat response"
// @Router /chat-response [post]
func (h chatbotHandler) createChatResponse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var response models.ChatResponse
		if err := json.NewDecoder(r.Body).Decode(&response); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode chat response request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if response.ID != uuid.Nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("id", "identifiers are assigned by the backend"))
			return
		}
		if response.ResponseText == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("response_text"))
			return
		}

		if err := h.chatResponseRepo.Add(&response); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create chat response", "chat response", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, response)
	}
}

// updateChatResponse updates an existing canned response
// @Summary Update chat response
// @Description Updates a canned response
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param responseID path string true "Chat response ID"
// @Param response body models.ChatResponse true "Updated chat response data"
// @Success 200 {object} models.ChatResponse "Updated chat response"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid response data"
// @Failure 404 {object} ErrorResponse "Not Found - Chat response not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating chat response"
// @Router /chat-response/{responseID} [put]
func (h chatbotHandler) updateChatResponse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responseID, err := parseUUIDParam(r, "responseID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, findErr := h.chatResponseRepo.FindByID(responseID)
		if findErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find chat response", "chat response", findErr))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("chat response not found"))
			return
		}

		var response models.ChatResponse
		if err := json.NewDecoder(r.Body).Decode(&response); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode chat response request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if response.ResponseText == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("response_text"))
			return
		}

		response.ID = responseID
		response.CreatedAt = existing.CreatedAt
		if err := h.chatResponseRepo.Update(&response); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update chat response", "chat response", err))
			return
		}

		h.responder.WriteJSON(w, response)
	}
}

// deleteChatResponse deletes a canned response by ID
// @Summary Delete chat response
// @Description Deletes a canned response
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param responseID path string true "Chat response ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Chat response not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting chat response"
// @Router /chat-response/{responseID} [delete]
func (h chatbotHandler) deleteChatResponse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responseID, err := parseUUIDParam(r, "responseID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, findErr := h.chatResponseRepo.FindByID(responseID)
		if findErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find chat response", "chat response", findErr))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("chat response not found"))
			return
		}

		if err := h.chatResponseRepo.Delete(responseID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete chat response", "chat response", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "chat response deleted successfully",
		})
	}
}

// getChatHistory retrieves recorded chat exchanges
// @Summary Get chat history
// @Description Retrieves chat exchanges, optionally filtered by session via the sessionID query parameter
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param session_id query string false "Session ID filter"
// @Success 200 {object} map[string][]models.ChatHistory "List of chat exchanges"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching chat history"
// @Router /chat-history [get]
func (h chatbotHandler) getChatHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("session_id")

		history, err := h.chatHistoryRepo.FindAll(sessionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find chat history", "chat history", err))
			return
		}

		h.responder.WriteJSON(w, map[string][]models.ChatHistory{"history": history})
	}
}

// getAllChatbots retrieves the configured chatbots
// @Summary Get all chatbots
// @Description Retrieves the chatbot configurations shown on the admin panel
// @Tags Chatbot
// @Accept json
// @Produce json
// @Success 200 {object} map[string][]models.Chatbot "List of chatbots"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching chatbots"
// @Router /chatbots [get]
func (h chatbotHandler) getAllChatbots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bots, err := h.chatbotRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find chatbots", "chatbots", err))
			return
		}

		h.responder.WriteJSON(w, map[string][]models.Chatbot{"chatbots": bots})
	}
}

// getAnalytics computes chat usage analytics
// @Summary Get chatbot analytics
// @Description Aggregates total conversations, distinct sessions and active bot count from the chat history
// @Tags Chatbot
// @Accept json
// @Produce json
// @Success 200 {object} models.ChatbotAnalytics "Aggregated analytics"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error computing analytics"
// @Router /chatbot-analytics [get]
func (h chatbotHandler) getAnalytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := h.chatHistoryRepo.FindAll("")
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find chat history", "chat history", err))
			return
		}

		bots, err := h.chatbotRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find chatbots", "chatbots", err))
			return
		}

		h.responder.WriteJSON(w, models.ComputeAnalytics(history, bots))
	}
}

func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
