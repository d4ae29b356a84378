package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/pkg/resp"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/services"
)

// WaiterController exposes role-filtered views over the staff aggregate for
// the floor-plan screens.
type WaiterController struct {
	Service *services.StaffService
}

func NewWaiterController(svc *services.StaffService) *WaiterController {
	return &WaiterController{Service: svc}
}

// GET /admin/waiters
func (wc *WaiterController) List(c *gin.Context) {
	waiters, err := wc.Service.ListWaiters(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, waiters)
}

// GET /admin/waiters/active
func (wc *WaiterController) ListActive(c *gin.Context) {
	waiters, err := wc.Service.ListAvailableWaiters(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, waiters)
}

// POST /admin/waiters
func (wc *WaiterController) Create(c *gin.Context) {
	var in services.StaffIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	waiter, err := wc.Service.CreateWaiter(c.Request.Context(), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, waiter)
}

// PUT /admin/waiters/:id
func (wc *WaiterController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid waiter id")
		return
	}

	var in services.StaffIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	waiter, err := wc.Service.UpdateWaiter(c.Request.Context(), uint(id), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, waiter)
}

type updateAvailabilityReq struct {
	Status string `json:"status" binding:"required"`
}

// PUT /admin/waiters/:id/status
func (wc *WaiterController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid waiter id")
		return
	}

	var req updateAvailabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	waiter, err := wc.Service.UpdateAvailability(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, waiter)
}

// DELETE /admin/waiters/:id
func (wc *WaiterController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid waiter id")
		return
	}

	if err := wc.Service.Delete(c.Request.Context(), uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "waiter deleted successfully"})
}
