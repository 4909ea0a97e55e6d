package handler

import (
	"net/http"

	"github.com/inioluwa/atelier/internal/service"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Create handles the public contact form.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.messageService.Create(req.Name, req.Email, req.Message)
	if err != nil {
		handleError(w, err, http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": msg.ID})
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.List()
	if err != nil {
		handleError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.messageService.UpdateStatus(r.PathValue("id"), req.Status); err != nil {
		handleError(w, err, http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.messageService.Delete(r.PathValue("id")); err != nil {
		handleError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
