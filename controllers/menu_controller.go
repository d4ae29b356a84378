package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/pkg/resp"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/services"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Service: svc}
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Service.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/menu
func (mc *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Service.Create(c.Request.Context(), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /admin/menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Service.Update(c.Request.Context(), uint(id), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	if err := mc.Service.Delete(c.Request.Context(), uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted successfully"})
}
