package handler

import (
	"net/http"

	"github.com/emmanuelethelbert04/account-haven/internal/models"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminRepo    *repository.AdminRepository
	settingsRepo *repository.BankSettingsRepository
}

func NewAdminHandler(adminRepo *repository.AdminRepository, settingsRepo *repository.BankSettingsRepository) *AdminHandler {
	return &AdminHandler{adminRepo: adminRepo, settingsRepo: settingsRepo}
}

func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.adminRepo.GetDashboardStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) GetBankSettings(c *gin.Context) {
	settings, err := h.settingsRepo.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	if settings == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "bank settings not configured"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateBankSettings replaces the singleton bank details record.
func (h *AdminHandler) UpdateBankSettings(c *gin.Context) {
	var req struct {
		BankName      string `json:"bank_name" binding:"required"`
		AccountNumber string `json:"account_number" binding:"required"`
		AccountName   string `json:"account_name" binding:"required"`
		Instructions  string `json:"instructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	settings := &models.BankSettings{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		Instructions:  req.Instructions,
	}
	if err := h.settingsRepo.Upsert(settings); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
