package handler

import (
	"net/http"
	"strconv"

	"github.com/emmanuelethelbert04/account-haven/internal/middleware"
	"github.com/emmanuelethelbert04/account-haven/internal/service"
	"github.com/emmanuelethelbert04/account-haven/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletSvc *service.WalletService
	cloud     cloudinary.Client
}

func NewWalletHandler(walletSvc *service.WalletService, cloud cloudinary.Client) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc, cloud: cloud}
}

func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID := middleware.GetUserID(c)
	w, err := h.walletSvc.GetWallet(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	txs, err := h.walletSvc.ListTransactions(userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

// RequestDeposit takes a multipart form with the amount and the payment
// proof image and queues a pending funding request.
func (h *WalletHandler) RequestDeposit(c *gin.Context) {
	userID := middleware.GetUserID(c)
	amountCents, err := strconv.ParseInt(c.PostForm("amount_cents"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid amount_cents required"})
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
	tx, err := h.walletSvc.RequestDeposit(userID, amountCents, proofURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}
