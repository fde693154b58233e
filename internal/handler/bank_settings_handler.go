package handler

import (
	"net/http"

	"github.com/emmanuelethelbert04/account-haven/internal/repository"

	"github.com/gin-gonic/gin"
)

type BankSettingsHandler struct {
	repo *repository.BankSettingsRepository
}

func NewBankSettingsHandler(repo *repository.BankSettingsRepository) *BankSettingsHandler {
	return &BankSettingsHandler{repo: repo}
}

// Get returns the bank details shown on checkout and wallet funding pages.
func (h *BankSettingsHandler) Get(c *gin.Context) {
	s, err := h.repo.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "bank settings not configured"})
		return
	}
	c.JSON(http.StatusOK, s)
}
