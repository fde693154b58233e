package handler

import (
	"net/http"
	"strconv"

	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"
	"github.com/emmanuelethelbert04/account-haven/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminWalletHandler struct {
	walletSvc *service.WalletService
	txRepo    *repository.WalletTxRepository
}

func NewAdminWalletHandler(walletSvc *service.WalletService, txRepo *repository.WalletTxRepository) *AdminWalletHandler {
	return &AdminWalletHandler{walletSvc: walletSvc, txRepo: txRepo}
}

// ListDeposits shows the funding queue, pending first unless a status filter is given.
func (h *AdminWalletHandler) ListDeposits(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !domain.ValidTransactionStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	deposits, err := h.txRepo.ListDeposits(status, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deposits": deposits})
}

func (h *AdminWalletHandler) ApproveDeposit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}
	tx, err := h.walletSvc.ApproveDeposit(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (h *AdminWalletHandler) RejectDeposit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tx, err := h.walletSvc.RejectDeposit(uint(id), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}
