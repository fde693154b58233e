package handler

import (
	"net/http"
	"strconv"

	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminTicketHandler struct {
	ticketSvc *service.TicketService
}

func NewAdminTicketHandler(ticketSvc *service.TicketService) *AdminTicketHandler {
	return &AdminTicketHandler{ticketSvc: ticketSvc}
}

func (h *AdminTicketHandler) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !domain.ValidTicketStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	tickets, err := h.ticketSvc.List(status, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// Update changes a ticket's status and optionally records the admin response.
func (h *AdminTicketHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}
	var req struct {
		Status   string `json:"status" binding:"required"`
		Response string `json:"response"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ticket, err := h.ticketSvc.Update(uint(id), req.Status, req.Response)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
