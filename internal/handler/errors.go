package handler

import (
	"errors"
	"net/http"

	"github.com/emmanuelethelbert04/account-haven/internal/repository"
	"github.com/emmanuelethelbert04/account-haven/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps service sentinels onto HTTP statuses. Anything unknown
// is a 500 with a generic message; the underlying error is logged by the
// service layer.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrProofRequired),
		errors.Is(err, service.ErrReasonRequired),
		errors.Is(err, service.ErrDeliveryNoteRequired),
		errors.Is(err, service.ErrNotBankTransfer),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrNotDeposit),
		errors.Is(err, service.ErrTicketFieldsRequired),
		errors.Is(err, service.ErrInvalidTicketStatus),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, repository.ErrInvalidSortKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrInsufficientBalance),
		errors.Is(err, service.ErrOrderLimitReached):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrListingUnavailable),
		errors.Is(err, service.ErrListingReserved),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCreds):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
