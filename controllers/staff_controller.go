package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/pkg/resp"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/services"
)

type StaffController struct {
	Service *services.StaffService
}

func NewStaffController(svc *services.StaffService) *StaffController {
	return &StaffController{Service: svc}
}

// GET /admin/staff
func (sc *StaffController) List(c *gin.Context) {
	staff, err := sc.Service.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, staff)
}

// POST /admin/staff
func (sc *StaffController) Create(c *gin.Context) {
	var in services.StaffIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	staff, err := sc.Service.Create(c.Request.Context(), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, staff)
}

// PUT /admin/staff/:id
func (sc *StaffController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid staff id")
		return
	}

	var in services.StaffIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	staff, err := sc.Service.Update(c.Request.Context(), uint(id), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, staff)
}

// DELETE /admin/staff/:id
func (sc *StaffController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid staff id")
		return
	}

	if err := sc.Service.Delete(c.Request.Context(), uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "staff member deleted successfully"})
}

// ---------------- Attendance ----------------

// POST /admin/staff/attendance/check-in/:staffId
func (sc *StaffController) CheckIn(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("staffId"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid staff id")
		return
	}

	record, err := sc.Service.CheckIn(c.Request.Context(), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, record)
}

// PUT /admin/staff/attendance/check-out/:staffId
func (sc *StaffController) CheckOut(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("staffId"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid staff id")
		return
	}

	record, err := sc.Service.CheckOut(c.Request.Context(), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, record)
}

// GET /admin/staff/attendance?startDate=&endDate=
func (sc *StaffController) ListAttendance(c *gin.Context) {
	var start, end *time.Time
	if s := c.Query("startDate"); s != "" {
		d, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			resp.BadRequest(c, "invalid startDate, expected YYYY-MM-DD")
			return
		}
		start = &d
	}
	if e := c.Query("endDate"); e != "" {
		d, err := time.ParseInLocation("2006-01-02", e, time.Local)
		if err != nil {
			resp.BadRequest(c, "invalid endDate, expected YYYY-MM-DD")
			return
		}
		end = &d
	}

	records, err := sc.Service.ListAttendance(c.Request.Context(), start, end)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, records)
}
