package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/catalog"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/catalog"
)

// TeacherHandler handles the public instructor listing and the admin CRUD
type TeacherHandler struct {
	BaseHandler
	catalog *catalogapp.Service
}

// NewTeacherHandler creates a new TeacherHandler
func NewTeacherHandler(catalog *catalogapp.Service) *TeacherHandler {
	return &TeacherHandler{catalog: catalog}
}

// TeacherRequest is the admin form payload for create and update
type TeacherRequest struct {
	Name         string `json:"name"`
	Subjects     string `json:"subjects"`
	PhotoURL     string `json:"photoUrl"`
	Career       string `json:"career"`
	DisplayOrder int    `json:"displayOrder"`
}

// TeacherResponse is the client view of an instructor profile
type TeacherResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Subjects     string    `json:"subjects"`
	PhotoURL     string    `json:"photoUrl"`
	Career       string    `json:"career"`
	DisplayOrder int       `json:"displayOrder"`
}

func toTeacherResponse(t *catalog.Teacher) TeacherResponse {
	return TeacherResponse{
		ID:           t.ID,
		Name:         t.Name,
		Subjects:     t.Subjects,
		PhotoURL:     t.PhotoURL,
		Career:       t.Career,
		DisplayOrder: t.DisplayOrder,
	}
}

// List handles GET /api/teachers
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.catalog.ListTeachers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, toTeacherResponse(t))
	}
	h.Success(c, out)
}

// Create handles POST /api/admin/teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	var req TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	t, err := h.catalog.CreateTeacher(c.Request.Context(), catalog.TeacherFields{
		Name:         req.Name,
		Subjects:     req.Subjects,
		PhotoURL:     req.PhotoURL,
		Career:       req.Career,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toTeacherResponse(t))
}

// Update handles PUT /api/admin/teachers/:id
func (h *TeacherHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "잘못된 선생님 번호입니다.")
		return
	}

	var req TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	t, err := h.catalog.UpdateTeacher(c.Request.Context(), id, catalog.TeacherFields{
		Name:         req.Name,
		Subjects:     req.Subjects,
		PhotoURL:     req.PhotoURL,
		Career:       req.Career,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toTeacherResponse(t))
}

// Delete handles DELETE /api/admin/teachers/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "잘못된 선생님 번호입니다.")
		return
	}

	if err := h.catalog.DeleteTeacher(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
