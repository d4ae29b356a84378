package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/pkg/resp"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/services"
)

type SessionController struct {
	Service *services.SessionService
}

func NewSessionController(svc *services.SessionService) *SessionController {
	return &SessionController{Service: svc}
}

// GET /customer-session/check/:tableNumber
func (sc *SessionController) Check(c *gin.Context) {
	occupied, details, err := sc.Service.CheckTable(c.Request.Context(), c.Param("tableNumber"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"isOccupied": occupied, "sessionDetails": details})
}

type createSessionReq struct {
	TableNumber    string `json:"tableNumber"`
	CustomerName   string `json:"customerName"`
	NumberOfPeople int    `json:"numberOfPeople"`
}

// POST /customer-session
func (sc *SessionController) Create(c *gin.Context) {
	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	session, err := sc.Service.Create(c.Request.Context(), req.TableNumber, req.CustomerName, req.NumberOfPeople)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, session)
}

// PUT /admin/customer-session/close/:tableNumber
func (sc *SessionController) Close(c *gin.Context) {
	if err := sc.Service.Close(c.Request.Context(), c.Param("tableNumber")); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "session closed"})
}
