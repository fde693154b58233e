package handler

import (
	"net/http"
	"strconv"

	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/models"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"

	"github.com/gin-gonic/gin"
)

type AdminListingHandler struct {
	listingRepo *repository.ListingRepository
}

func NewAdminListingHandler(listingRepo *repository.ListingRepository) *AdminListingHandler {
	return &AdminListingHandler{listingRepo: listingRepo}
}

type listingRequest struct {
	Platform           string   `json:"platform" binding:"required"`
	Title              string   `json:"title" binding:"required"`
	Description        string   `json:"description"`
	PriceCents         int64    `json:"price_cents" binding:"required,gt=0"`
	FollowersCount     int64    `json:"followers_count"`
	Country            string   `json:"country"`
	Niche              string   `json:"niche"`
	AccountAge         string   `json:"account_age"`
	Images             []string `json:"images"`
	LoginScreenshotURL string   `json:"login_screenshot_url"`
	Featured           bool     `json:"featured"`
}

// List shows every listing, hidden and sold included, optionally filtered.
func (h *AdminListingHandler) List(c *gin.Context) {
	f := parseListingFilters(c)
	f.Status = c.Query("status")
	if f.Status != "" && !domain.ValidListingStatus(f.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	listings, err := h.listingRepo.List(f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func (h *AdminListingHandler) Create(c *gin.Context) {
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidPlatform(req.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platform"})
		return
	}
	l := &models.Listing{
		Platform:           req.Platform,
		Title:              req.Title,
		Description:        req.Description,
		PriceCents:         req.PriceCents,
		FollowersCount:     req.FollowersCount,
		Country:            req.Country,
		Niche:              req.Niche,
		AccountAge:         req.AccountAge,
		Images:             req.Images,
		LoginScreenshotURL: req.LoginScreenshotURL,
		Status:             domain.ListingAvailable,
		Featured:           req.Featured,
	}
	if err := h.listingRepo.Create(l); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *AdminListingHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}
	l, err := h.listingRepo.GetByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidPlatform(req.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platform"})
		return
	}
	l.Platform = req.Platform
	l.Title = req.Title
	l.Description = req.Description
	l.PriceCents = req.PriceCents
	l.FollowersCount = req.FollowersCount
	l.Country = req.Country
	l.Niche = req.Niche
	l.AccountAge = req.AccountAge
	l.Images = req.Images
	l.LoginScreenshotURL = req.LoginScreenshotURL
	l.Featured = req.Featured
	if err := h.listingRepo.Update(l); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// UpdateStatus moves a listing between available, sold and hidden.
func (h *AdminListingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidListingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	if err := h.listingRepo.UpdateStatus(uint(id), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// Delete soft-deletes a listing; order history keeps referencing the row.
func (h *AdminListingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}
	if err := h.listingRepo.SoftDelete(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "listing deleted"})
}
