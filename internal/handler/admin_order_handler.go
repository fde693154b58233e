package handler

import (
	"net/http"
	"strconv"

	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"
	"github.com/emmanuelethelbert04/account-haven/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminOrderHandler struct {
	orderSvc  *service.OrderService
	orderRepo *repository.OrderRepository
}

func NewAdminOrderHandler(orderSvc *service.OrderService, orderRepo *repository.OrderRepository) *AdminOrderHandler {
	return &AdminOrderHandler{orderSvc: orderSvc, orderRepo: orderRepo}
}

func (h *AdminOrderHandler) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !domain.ValidOrderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	orders, err := h.orderRepo.ListAll(status, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *AdminOrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	order, err := h.orderRepo.GetByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Approve confirms a bank transfer payment after the proof has been reviewed.
func (h *AdminOrderHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	order, err := h.orderSvc.Approve(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *AdminOrderHandler) Reject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orderSvc.Reject(uint(id), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Deliver hands the account credentials over and closes out the order.
func (h *AdminOrderHandler) Deliver(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	var req struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orderSvc.Deliver(uint(id), req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
