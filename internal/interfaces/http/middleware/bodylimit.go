package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/interfaces/http/dto"
)

// BodyLimit returns a middleware that limits request body size. The cap
// must stay above the image upload limit or admin uploads start failing
// here instead of in the upload service.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(
				dto.ErrCodeBadRequest,
				"요청 크기가 허용 범위를 초과했습니다.",
			))
			return
		}

		// Wrap the body with a limited reader for streaming requests
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
