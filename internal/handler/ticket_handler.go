package handler

import (
	"net/http"

	"github.com/emmanuelethelbert04/account-haven/internal/service"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	ticketSvc *service.TicketService
}

func NewTicketHandler(ticketSvc *service.TicketService) *TicketHandler {
	return &TicketHandler{ticketSvc: ticketSvc}
}

// Create handles the public contact form.
func (h *TicketHandler) Create(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.ticketSvc.Create(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}
