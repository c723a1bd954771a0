package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contentapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/content"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/content"
)

// BriefingHandler handles admissions briefing announcements
type BriefingHandler struct {
	BaseHandler
	content *contentapp.Service
}

// NewBriefingHandler creates a new BriefingHandler
func NewBriefingHandler(content *contentapp.Service) *BriefingHandler {
	return &BriefingHandler{content: content}
}

// BriefingRequest is the admin form payload
type BriefingRequest struct {
	Title       string `json:"title"`
	HeldAt      string `json:"heldAt"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// BriefingResponse is the client view of a briefing announcement
type BriefingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	HeldAt      string    `json:"heldAt"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

func toBriefingResponse(b *content.Briefing) BriefingResponse {
	return BriefingResponse{
		ID:          b.ID,
		Title:       b.Title,
		HeldAt:      b.HeldAt,
		Location:    b.Location,
		Description: b.Description,
	}
}

// List handles GET /api/briefings
func (h *BriefingHandler) List(c *gin.Context) {
	briefings, err := h.content.ListBriefings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]BriefingResponse, 0, len(briefings))
	for _, b := range briefings {
		out = append(out, toBriefingResponse(b))
	}
	h.Success(c, out)
}

// Create handles POST /api/admin/briefings
func (h *BriefingHandler) Create(c *gin.Context) {
	var req BriefingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	b, err := h.content.CreateBriefing(c.Request.Context(), req.Title, req.HeldAt, req.Location, req.Description)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toBriefingResponse(b))
}

// Delete handles DELETE /api/admin/briefings/:id
func (h *BriefingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "잘못된 설명회 번호입니다.")
		return
	}

	if err := h.content.DeleteBriefing(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
