package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	chatapp "github.com/storefront/backend/internal/application/chat"
)

// ChatHandler handles scripted assistant endpoints
type ChatHandler struct {
	BaseHandler
	chatService *chatapp.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService *chatapp.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}

// StartSession creates a new conversation seeded with the greeting
func (h *ChatHandler) StartSession(c *gin.Context) {
	resp, err := h.chatService.StartSession(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Messages returns the full message log of a session
func (h *ChatHandler) Messages(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	resp, err := h.chatService.Messages(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Send appends a user message; the assistant reply follows after the
// typing delay
func (h *ChatHandler) Send(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req chatapp.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.chatService.Send(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers chat routes
func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	chat := rg.Group("/chat")
	{
		chat.POST("/sessions", h.StartSession)
		chat.GET("/sessions/:id/messages", h.Messages)
		chat.POST("/sessions/:id/messages", h.Send)
	}
}
