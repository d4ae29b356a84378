package controllers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/pkg/resp"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/services"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/utils"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /admin/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "please provide username and password")
		return
	}

	result, err := ac.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, result)
}

type registerReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// POST /admin/register (admin only)
func (ac *AuthController) Register(c *gin.Context) {
	// managers pass the group middleware but may not mint accounts
	if utils.CurrentRole(c) != "admin" {
		resp.Forbidden(c, "only admins can register accounts")
		return
	}

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	admin, err := ac.Service.Register(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	log.Printf("admin %d registered account %q (%s)", utils.CurrentAdminID(c), admin.Username, admin.Role)
	resp.Created(c, admin)
}

type refreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// POST /admin/refresh-token
func (ac *AuthController) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "refresh token is required")
		return
	}

	access, err := ac.Service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"accessToken": access})
}
