package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contentapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/content"
)

// SubscriberHandler handles the SMS announcement subscriber list
type SubscriberHandler struct {
	BaseHandler
	content *contentapp.Service
}

// NewSubscriberHandler creates a new SubscriberHandler
func NewSubscriberHandler(content *contentapp.Service) *SubscriberHandler {
	return &SubscriberHandler{content: content}
}

// SubscribeRequest carries the phone number opting in
type SubscribeRequest struct {
	Phone string `json:"phone"`
}

// SubscriberResponse is the admin view of a subscriber
type SubscriberResponse struct {
	ID        uuid.UUID `json:"id"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// Subscribe handles POST /api/subscribers
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	if err := h.content.Subscribe(c.Request.Context(), req.Phone); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, gin.H{"subscribed": true})
}

// List handles GET /api/admin/subscribers
func (h *SubscriberHandler) List(c *gin.Context) {
	subscribers, err := h.content.ListSubscribers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]SubscriberResponse, 0, len(subscribers))
	for _, s := range subscribers {
		out = append(out, SubscriberResponse{
			ID:        s.ID,
			Phone:     s.Phone,
			CreatedAt: s.CreatedAt,
		})
	}
	h.Success(c, out)
}

// Delete handles DELETE /api/admin/subscribers/:id
func (h *SubscriberHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "잘못된 신청 번호입니다.")
		return
	}

	if err := h.content.Unsubscribe(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
