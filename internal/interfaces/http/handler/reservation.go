package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bookingapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/booking"
)

// ReservationHandler handles class reservations
type ReservationHandler struct {
	BaseHandler
	booking *bookingapp.Service
}

// NewReservationHandler creates a new ReservationHandler
func NewReservationHandler(booking *bookingapp.Service) *ReservationHandler {
	return &ReservationHandler{booking: booking}
}

// CreateReservationRequest carries the timetable to reserve
type CreateReservationRequest struct {
	TimetableID string `json:"timetableId"`
}

// ReservationRowResponse is the admin view of a reservation joined with
// member and class details
type ReservationRowResponse struct {
	ID           uuid.UUID `json:"id"`
	MemberID     uuid.UUID `json:"memberId"`
	TimetableID  uuid.UUID `json:"timetableId"`
	Username     string    `json:"username"`
	StudentName  string    `json:"studentName"`
	StudentPhone string    `json:"studentPhone"`
	ParentPhone  string    `json:"parentPhone"`
	ClassName    string    `json:"className"`
	ClassTime    string    `json:"classTime"`
	ClassDate    string    `json:"classDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Create handles POST /api/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "요청 형식이 올바르지 않습니다.")
		return
	}

	// An empty or malformed ID falls through as uuid.Nil and is rejected
	// with the same form error as a missing one
	timetableID, _ := uuid.Parse(req.TimetableID)

	info, err := h.booking.Reserve(c.Request.Context(), getMemberID(c), timetableID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// ListAll handles GET /api/admin/reservations
func (h *ReservationHandler) ListAll(c *gin.Context) {
	rows, err := h.booking.ListAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]ReservationRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReservationRowResponse{
			ID:           r.ID,
			MemberID:     r.MemberID,
			TimetableID:  r.TimetableID,
			Username:     r.Username,
			StudentName:  r.StudentName,
			StudentPhone: r.StudentPhone,
			ParentPhone:  r.ParentPhone,
			ClassName:    r.ClassName,
			ClassTime:    r.ClassTime,
			ClassDate:    r.ClassDate,
			CreatedAt:    r.CreatedAt,
		})
	}

	h.Success(c, out)
}

// Delete handles DELETE /api/admin/reservations/:id. Deleting an already
// removed reservation still answers success.
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "잘못된 예약 번호입니다.")
		return
	}

	if err := h.booking.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
