package handler

import (
	"github.com/gin-gonic/gin"

	verificationapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/verification"
)

// PhoneHandler handles SMS verification code requests
type PhoneHandler struct {
	BaseHandler
	verification *verificationapp.Service
}

// NewPhoneHandler creates a new PhoneHandler
func NewPhoneHandler(verification *verificationapp.Service) *PhoneHandler {
	return &PhoneHandler{verification: verification}
}

// SendCodeRequest carries the phone number to verify
type SendCodeRequest struct {
	Phone string `json:"phone"`
}

// VerifyCodeRequest carries the phone number and the submitted code
type VerifyCodeRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// SendCode handles POST /api/auth/phone/send
func (h *PhoneHandler) SendCode(c *gin.Context) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	if err := h.verification.RequestCode(c.Request.Context(), req.Phone); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"sent": true})
}

// VerifyCode handles POST /api/auth/phone/verify
func (h *PhoneHandler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	if err := h.verification.VerifyCode(c.Request.Context(), req.Phone, req.Code); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"verified": true})
}
