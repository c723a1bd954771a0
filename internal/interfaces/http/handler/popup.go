package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contentapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/content"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/content"
)

// PopupHandler handles the time-boxed announcement popups
type PopupHandler struct {
	BaseHandler
	content *contentapp.Service
}

// NewPopupHandler creates a new PopupHandler
func NewPopupHandler(content *contentapp.Service) *PopupHandler {
	return &PopupHandler{content: content}
}

// PopupRequest is the admin form payload
type PopupRequest struct {
	Title    string    `json:"title"`
	ImageURL string    `json:"imageUrl"`
	LinkURL  string    `json:"linkUrl"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

// PopupResponse is the client view of a popup
type PopupResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	ImageURL string    `json:"imageUrl"`
	LinkURL  string    `json:"linkUrl"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

func toPopupResponse(p *content.Popup) PopupResponse {
	return PopupResponse{
		ID:       p.ID,
		Title:    p.Title,
		ImageURL: p.ImageURL,
		LinkURL:  p.LinkURL,
		StartsAt: p.StartsAt,
		EndsAt:   p.EndsAt,
	}
}

// ListActive handles GET /api/popups. Only popups inside their display
// window are returned.
func (h *PopupHandler) ListActive(c *gin.Context) {
	popups, err := h.content.ListActivePopups(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]PopupResponse, 0, len(popups))
	for _, p := range popups {
		out = append(out, toPopupResponse(p))
	}
	h.Success(c, out)
}

// List handles GET /api/admin/popups
func (h *PopupHandler) List(c *gin.Context) {
	popups, err := h.content.ListPopups(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]PopupResponse, 0, len(popups))
	for _, p := range popups {
		out = append(out, toPopupResponse(p))
	}
	h.Success(c, out)
}

// Create handles POST /api/admin/popups
func (h *PopupHandler) Create(c *gin.Context) {
	var req PopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	p, err := h.content.CreatePopup(c.Request.Context(), req.Title, req.ImageURL, req.LinkURL, req.StartsAt, req.EndsAt)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toPopupResponse(p))
}

// Delete handles DELETE /api/admin/popups/:id
func (h *PopupHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "잘못된 팝업 번호입니다.")
		return
	}

	if err := h.content.DeletePopup(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
