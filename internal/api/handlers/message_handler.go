package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gigboard/internal/application"
	"github.com/linskybing/gigboard/internal/domain/message"
	"github.com/linskybing/gigboard/pkg/moderation"
)

type MessageHandler struct {
	svc *application.GatewayService
}

func NewMessageHandler(svc *application.GatewayService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// MessageView is a stored message with its content split into text and
// link segments for rendering.
type MessageView struct {
	message.Message
	Segments []moderation.Segment `json:"segments"`
}

func newMessageView(m message.Message) MessageView {
	return MessageView{Message: m, Segments: moderation.Linkify(m.Content)}
}

func newMessageViews(msgs []message.Message) []MessageView {
	out := make([]MessageView, len(msgs))
	for i, m := range msgs {
		out[i] = newMessageView(m)
	}
	return out
}

// ListMessages godoc
// @Summary Chat history of a proposal, oldest first
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {array} MessageView
// @Failure 403 {object} response.ErrorResponse "Not a participant"
// @Failure 412 {object} response.ErrorResponse "Room locked"
// @Router /proposals/{id}/messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "proposal")
	if !ok {
		return
	}
	msgs, err := h.svc.History(uid, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMessageViews(msgs))
}

// SendMessage godoc
// @Summary Post a chat message
// @Description Blank content is ignored and answered with 204.
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param input body message.SendInput true "Message"
// @Success 201 {object} MessageView
// @Success 204 "Blank message ignored"
// @Failure 403 {object} response.ErrorResponse "Not a participant"
// @Failure 412 {object} response.ErrorResponse "Room locked"
// @Failure 422 {object} response.ErrorResponse "Blocked by the safety filter"
// @Router /proposals/{id}/messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "proposal")
	if !ok {
		return
	}
	var input message.SendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}

	m, err := h.svc.Send(uid, id, input.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	if m == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, newMessageView(*m))
}
