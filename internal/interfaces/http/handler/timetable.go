package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/catalog"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/catalog"
)

// TimetableHandler handles the public timetable listing and the admin CRUD
type TimetableHandler struct {
	BaseHandler
	catalog *catalogapp.Service
}

// NewTimetableHandler creates a new TimetableHandler
func NewTimetableHandler(catalog *catalogapp.Service) *TimetableHandler {
	return &TimetableHandler{catalog: catalog}
}

// TimetableRequest is the admin form payload for create and update
type TimetableRequest struct {
	TeacherID       string `json:"teacherId"`
	TeacherName     string `json:"teacherName"`
	Category        string `json:"category"`
	TargetSchool    string `json:"targetSchool"`
	ClassName       string `json:"className"`
	ClassTime       string `json:"classTime"`
	ClassDate       string `json:"classDate"`
	TeacherImageURL string `json:"teacherImageUrl"`
	Description     string `json:"description"`
}

// TimetableResponse is the client view of a timetable entry
type TimetableResponse struct {
	ID              uuid.UUID  `json:"id"`
	TeacherID       *uuid.UUID `json:"teacherId,omitempty"`
	TeacherName     string     `json:"teacherName"`
	Category        string     `json:"category"`
	TargetSchool    string     `json:"targetSchool"`
	ClassName       string     `json:"className"`
	ClassTime       string     `json:"classTime"`
	ClassDate       string     `json:"classDate"`
	TeacherImageURL string     `json:"teacherImageUrl"`
	Description     string     `json:"description"`
}

func (r TimetableRequest) toFields() catalog.TimetableFields {
	fields := catalog.TimetableFields{
		TeacherName:     r.TeacherName,
		Category:        r.Category,
		TargetSchool:    r.TargetSchool,
		ClassName:       r.ClassName,
		ClassTime:       r.ClassTime,
		ClassDate:       r.ClassDate,
		TeacherImageURL: r.TeacherImageURL,
		Description:     r.Description,
	}
	if id, err := uuid.Parse(r.TeacherID); err == nil && id != uuid.Nil {
		fields.TeacherID = &id
	}
	return fields
}

func toTimetableResponse(t *catalog.Timetable) TimetableResponse {
	return TimetableResponse{
		ID:              t.ID,
		TeacherID:       t.TeacherID,
		TeacherName:     t.TeacherName,
		Category:        t.Category,
		TargetSchool:    t.TargetSchool,
		ClassName:       t.ClassName,
		ClassTime:       t.ClassTime,
		ClassDate:       t.ClassDate,
		TeacherImageURL: t.TeacherImageURL,
		Description:     t.Description,
	}
}

// List handles GET /api/timetables. An optional category query filters
// the listing.
func (h *TimetableHandler) List(c *gin.Context) {
	timetables, err := h.catalog.ListTimetables(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]TimetableResponse, 0, len(timetables))
	for _, t := range timetables {
		out = append(out, toTimetableResponse(t))
	}
	h.Success(c, out)
}

// Get handles GET /api/timetables/:id
func (h *TimetableHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "잘못된 수업 번호입니다.")
		return
	}

	t, err := h.catalog.GetTimetable(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toTimetableResponse(t))
}

// Create handles POST /api/admin/timetables
func (h *TimetableHandler) Create(c *gin.Context) {
	var req TimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	t, err := h.catalog.CreateTimetable(c.Request.Context(), req.toFields())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toTimetableResponse(t))
}

// Update handles PUT /api/admin/timetables/:id
func (h *TimetableHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "잘못된 수업 번호입니다.")
		return
	}

	var req TimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	t, err := h.catalog.UpdateTimetable(c.Request.Context(), id, req.toFields())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toTimetableResponse(t))
}

// Delete handles DELETE /api/admin/timetables/:id. Reservations made
// against the timetable are removed with it.
func (h *TimetableHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "잘못된 수업 번호입니다.")
		return
	}

	if err := h.catalog.DeleteTimetable(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
