package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contentapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/content"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/content"
)

// BannerHandler handles the main-page banner carousel
type BannerHandler struct {
	BaseHandler
	content *contentapp.Service
}

// NewBannerHandler creates a new BannerHandler
func NewBannerHandler(content *contentapp.Service) *BannerHandler {
	return &BannerHandler{content: content}
}

// BannerRequest is the admin form payload
type BannerRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
	Position int    `json:"position"`
}

// BannerResponse is the client view of a banner
type BannerResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	ImageURL string    `json:"imageUrl"`
	LinkURL  string    `json:"linkUrl"`
	Position int       `json:"position"`
}

func toBannerResponse(b *content.Banner) BannerResponse {
	return BannerResponse{
		ID:       b.ID,
		Title:    b.Title,
		ImageURL: b.ImageURL,
		LinkURL:  b.LinkURL,
		Position: b.Position,
	}
}

// List handles GET /api/banners
func (h *BannerHandler) List(c *gin.Context) {
	banners, err := h.content.ListBanners(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]BannerResponse, 0, len(banners))
	for _, b := range banners {
		out = append(out, toBannerResponse(b))
	}
	h.Success(c, out)
}

// Create handles POST /api/admin/banners
func (h *BannerHandler) Create(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	b, err := h.content.CreateBanner(c.Request.Context(), req.Title, req.ImageURL, req.LinkURL, req.Position)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toBannerResponse(b))
}

// Delete handles DELETE /api/admin/banners/:id
func (h *BannerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "잘못된 배너 번호입니다.")
		return
	}

	if err := h.content.DeleteBanner(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
