package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contentapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/content"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/content"
)

// ReviewHandler handles admissions result and testimonial posts
type ReviewHandler struct {
	BaseHandler
	content *contentapp.Service
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(content *contentapp.Service) *ReviewHandler {
	return &ReviewHandler{content: content}
}

// ReviewRequest is the admin form payload
type ReviewRequest struct {
	StudentName string `json:"studentName"`
	School      string `json:"school"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}

// ReviewResponse is the client view of a review post
type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	StudentName string    `json:"studentName"`
	School      string    `json:"school"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toReviewResponse(r *content.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		StudentName: r.StudentName,
		School:      r.School,
		Title:       r.Title,
		Body:        r.Body,
		CreatedAt:   r.CreatedAt,
	}
}

// List handles GET /api/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.content.ListReviews(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}
	h.Success(c, out)
}

// Create handles POST /api/admin/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	r, err := h.content.CreateReview(c.Request.Context(), req.StudentName, req.School, req.Title, req.Body)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toReviewResponse(r))
}

// Delete handles DELETE /api/admin/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "잘못된 후기 번호입니다.")
		return
	}

	if err := h.content.DeleteReview(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
