package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mfcayala/mpc-court/internal/domain"
	"github.com/mfcayala/mpc-court/internal/schedule"
	"github.com/mfcayala/mpc-court/internal/service"
	"github.com/mfcayala/mpc-court/pkg/auth"
)

type Handler struct {
	svc      *service.BookingSvc
	sel      *service.SelectionSvc
	tokenTTL time.Duration
}

func NewHandler(svc *service.BookingSvc, sel *service.SelectionSvc, tokenTTL time.Duration) *Handler {
	return &Handler{svc: svc, sel: sel, tokenTTL: tokenTTL}
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSelectionRule):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAvailabilityConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrAuthFailed):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(httpStatus(err), gin.H{"error": err.Error()})
}

// POST /v1/auth/guest
//
// Anonymous fallback identity: a fresh user id wrapped in a signed token.
func (h *Handler) GuestToken(c *gin.Context) {
	sub := uuid.NewString()
	tok, err := auth.CreateGuestToken(sub, h.tokenTTL)
	if err != nil {
		fail(c, domain.ErrAuthFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": sub, "access_token": tok})
}

type slotViewDTO struct {
	SlotID        string   `json:"slot_id"`
	Label         string   `json:"label"`
	Range         string   `json:"range"`
	Status        string   `json:"status"`
	StatusMessage string   `json:"status_message,omitempty"`
	BookedCourts  []int    `json:"booked_courts,omitempty"`
	OwnResIDs     []string `json:"own_reservation_ids,omitempty"`
	IsPast        bool     `json:"is_past"`
	FullyBooked   bool     `json:"fully_booked"`
	Disabled      bool     `json:"disabled"`
	Selectable    bool     `json:"selectable"`
}

func toDTO(v schedule.SlotView) slotViewDTO {
	return slotViewDTO{
		SlotID:        v.Slot.ID(),
		Label:         v.Slot.Label(),
		Range:         v.Slot.RangeLabel(),
		Status:        string(v.Status),
		StatusMessage: v.StatusMessage,
		BookedCourts:  v.BookedCourts,
		OwnResIDs:     v.UserResIDs,
		IsPast:        v.IsPast,
		FullyBooked:   v.IsFullyBooked,
		Disabled:      v.Disabled,
		Selectable:    v.Selectable(),
	}
}

// GET /v1/schedule?date=YYYY-MM-DD
func (h *Handler) Schedule(c *gin.Context) {
	date := c.Query("date")
	views, err := h.svc.Schedule(c, date, currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]slotViewDTO, 0, len(views))
	for _, v := range views {
		out = append(out, toDTO(v))
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": out})
}

func slotIDs(slots []schedule.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, sl := range slots {
		out = append(out, sl.ID())
	}
	return out
}

// POST /v1/selection/toggle
func (h *Handler) ToggleSlot(c *gin.Context) {
	var in struct {
		Date   string `json:"date" binding:"required"`
		SlotID string `json:"slot_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	slots, err := h.sel.Toggle(c, currentUser(c), in.Date, in.SlotID)
	if err != nil {
		// the selection is unchanged on a rule violation; return it with
		// the diagnostic so the client can re-render
		c.JSON(httpStatus(err), gin.H{"error": err.Error(), "selected": slotIDs(slots)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": slotIDs(slots)})
}

// GET /v1/selection?date=
func (h *Handler) Selection(c *gin.Context) {
	slots := h.sel.Current(currentUser(c), c.Query("date"))
	c.JSON(http.StatusOK, gin.H{"selected": slotIDs(slots)})
}

// DELETE /v1/selection
func (h *Handler) ClearSelection(c *gin.Context) {
	h.sel.Clear(currentUser(c))
	c.Status(http.StatusNoContent)
}

// GET /v1/selection/summary?date=
func (h *Handler) Confirmation(c *gin.Context) {
	sum, err := h.sel.Confirmation(c, currentUser(c), c.Query("date"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GET /v1/quote?slots=2&guests=1
func (h *Handler) Quote(c *gin.Context) {
	slots, err := strconv.Atoi(c.DefaultQuery("slots", "0"))
	if err != nil || slots < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slots must be a non-negative integer"})
		return
	}
	guests, err := strconv.Atoi(c.DefaultQuery("guests", "0"))
	if err != nil || guests < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guests must be a non-negative integer"})
		return
	}
	c.JSON(http.StatusOK, h.svc.Quote(slots, guests))
}

// POST /v1/bookings
func (h *Handler) Commit(c *gin.Context) {
	var in struct {
		Date     string `json:"date" binding:"required"`
		Guests   int    `json:"guests"`
		MemberNo string `json:"member_no" binding:"required"`
		Email    string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.sel.CommitSelected(c, currentUser(c), in.Date, in.Guests, in.MemberNo, in.Email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GET /v1/reservations?date=
func (h *Handler) OwnReservations(c *gin.Context) {
	rows, err := h.svc.OwnReservations(c, currentUser(c), c.Query("date"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": rows})
}

// DELETE /v1/reservations/:id
func (h *Handler) Cancel(c *gin.Context) {
	if err := h.svc.Cancel(c, c.Param("id"), currentUser(c)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /v1/profile
func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.svc.Profile(c, currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusOK, gin.H{"member_no": "", "email": ""})
		return
	}
	c.JSON(http.StatusOK, gin.H{"member_no": p.MemberNo, "email": p.Email})
}

// PUT /v1/profile
func (h *Handler) PutProfile(c *gin.Context) {
	var in struct {
		MemberNo string `json:"member_no" binding:"required"`
		Email    string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.SaveProfile(c, currentUser(c), in.MemberNo, in.Email); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
