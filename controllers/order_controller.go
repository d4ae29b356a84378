package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/pkg/resp"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/services"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders and GET /admin/orders?date=2006-01-02
func (oc *OrderController) List(c *gin.Context) {
	var date *time.Time
	if q := c.Query("date"); q != "" {
		d, err := time.ParseInLocation("2006-01-02", q, time.Local)
		if err != nil {
			resp.BadRequest(c, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = &d
	}

	orders, err := oc.Service.List(c.Request.Context(), date)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PUT /admin/orders/:id
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.UpdateStatus(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /admin/dashboard-stats
func (oc *OrderController) DashboardStats(c *gin.Context) {
	stats, err := oc.Service.Dashboard(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}
