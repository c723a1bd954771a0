package handler

import (
	"github.com/gin-gonic/gin"

	uploadapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/upload"
)

// UploadHandler handles admin image uploads for banners, popups and
// teacher profiles
type UploadHandler struct {
	BaseHandler
	upload *uploadapp.Service
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(upload *uploadapp.Service) *UploadHandler {
	return &UploadHandler{upload: upload}
}

// UploadResponse returns the stored object key and its public URL
type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Upload handles POST /api/admin/uploads. Expects a multipart form with
// an "image" file field.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.BadRequest(c, "업로드할 이미지를 선택해주세요.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.InternalError(c, "이미지 업로드에 실패했습니다. 잠시 후 다시 시도해주세요.")
		return
	}
	defer file.Close()

	result, err := h.upload.UploadImage(
		c.Request.Context(),
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, UploadResponse{Key: result.Key, URL: result.URL})
}
