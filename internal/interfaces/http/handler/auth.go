package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	memberapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/member"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/config"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/interfaces/http/middleware"
)

// AuthHandler handles signup, login, logout and the current-member lookup
type AuthHandler struct {
	BaseHandler
	auth       *memberapp.AuthService
	cookie     config.CookieConfig
	sessionTTL time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *memberapp.AuthService, cookie config.CookieConfig, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie, sessionTTL: sessionTTL}
}

// RegisterRequest is the signup form payload
type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	MemberType   string `json:"memberType"`
	StudentName  string `json:"studentName"`
	Gender       string `json:"gender"`
	Track        string `json:"track"`
	Grade        string `json:"grade"`
	School       string `json:"school"`
	StudentPhone string `json:"studentPhone"`
	ParentPhone  string `json:"parentPhone"`
	Birthday     string `json:"birthday"`
	Subject      string `json:"subject"`
	Email        string `json:"email"`
}

// LoginRequest is the login form payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	result, err := h.auth.Register(c.Request.Context(), memberapp.RegisterInput{
		Username:     req.Username,
		Password:     req.Password,
		MemberType:   req.MemberType,
		StudentName:  req.StudentName,
		Gender:       req.Gender,
		Track:        req.Track,
		Grade:        req.Grade,
		School:       req.School,
		StudentPhone: req.StudentPhone,
		ParentPhone:  req.ParentPhone,
		Birthday:     req.Birthday,
		Subject:      req.Subject,
		Email:        req.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, result.SessionID, int(h.sessionTTL.Seconds()))
	h.Created(c, gin.H{"member": result.Member})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), memberapp.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, result.SessionID, int(h.sessionTTL.Seconds()))
	h.Success(c, gin.H{"member": result.Member})
}

// Logout handles POST /api/auth/logout. Always succeeds, even without a
// session.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		// Fall back to the raw cookie so a stale session is still purged
		sessionID, _ = c.Cookie(h.cookie.Name)
	}

	if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	h.Success(c, gin.H{"loggedOut": true})
}

// Me handles GET /api/auth/me. Never fails: anonymous requests get
// loggedIn=false with a null member so the frontend can render either
// state.
func (h *AuthHandler) Me(c *gin.Context) {
	m := middleware.GetMember(c)
	if m == nil {
		h.Success(c, gin.H{"loggedIn": false, "member": nil})
		return
	}

	info, err := h.auth.CurrentMember(c.Request.Context(), m.ID)
	if err != nil {
		h.Success(c, gin.H{"loggedIn": false, "member": nil})
		return
	}

	h.Success(c, gin.H{"loggedIn": true, "member": info})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	path := h.cookie.Path
	if path == "" {
		path = "/"
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     path,
		Domain:   h.cookie.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: sameSiteMode(h.cookie.SameSite),
	})
}

func sameSiteMode(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
