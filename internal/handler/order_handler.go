package handler

import (
	"net/http"
	"strconv"

	"github.com/emmanuelethelbert04/account-haven/internal/middleware"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"
	"github.com/emmanuelethelbert04/account-haven/internal/service"
	"github.com/emmanuelethelbert04/account-haven/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderSvc  *service.OrderService
	orderRepo *repository.OrderRepository
	cloud     cloudinary.Client
}

func NewOrderHandler(orderSvc *service.OrderService, orderRepo *repository.OrderRepository, cloud cloudinary.Client) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc, orderRepo: orderRepo, cloud: cloud}
}

// Checkout creates an order for a listing with the chosen payment method.
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		ListingID     uint   `json:"listing_id" binding:"required"`
		PaymentMethod string `json:"payment_method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orderSvc.Checkout(userID, req.ListingID, req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	orders, err := h.orderRepo.ListByUser(userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) GetMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	order, err := h.orderRepo.GetByIDForUser(uint(id), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// SubmitProof uploads the bank-transfer proof image and moves the order to
// payment_submitted.
func (h *OrderHandler) SubmitProof(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	file, err := c.FormFile("proof")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "proof file required"})
		return
	}
	proofURL, err := uploadFormFile(c, h.cloud, file, "account-haven/payment-proofs")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	order, err := h.orderSvc.SubmitProof(userID, uint(id), proofURL, c.PostForm("note"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
