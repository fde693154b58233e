package handler

import (
	"net/http"
	"strconv"

	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingRepo *repository.ListingRepository
}

func NewListingHandler(listingRepo *repository.ListingRepository) *ListingHandler {
	return &ListingHandler{listingRepo: listingRepo}
}

// parseListingFilters builds the validated filter set from query params.
// Public browsing always pins status to "available".
func parseListingFilters(c *gin.Context) repository.ListingFilters {
	f := repository.ListingFilters{
		Status:   domain.ListingAvailable,
		Platform: c.Query("platform"),
		Country:  c.Query("country"),
		Search:   c.Query("q"),
		Sort:     c.DefaultQuery("sort", repository.SortNewest),
	}
	if v, err := strconv.ParseInt(c.Query("min_price"), 10, 64); err == nil {
		f.MinPriceCents = &v
	}
	if v, err := strconv.ParseInt(c.Query("max_price"), 10, 64); err == nil {
		f.MaxPriceCents = &v
	}
	if v, err := strconv.ParseInt(c.Query("min_followers"), 10, 64); err == nil {
		f.MinFollowers = &v
	}
	if v, err := strconv.ParseInt(c.Query("max_followers"), 10, 64); err == nil {
		f.MaxFollowers = &v
	}
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return f
}

func (h *ListingHandler) List(c *gin.Context) {
	f := parseListingFilters(c)
	if f.Platform != "" && !domain.ValidPlatform(f.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platform"})
		return
	}
	listings, err := h.listingRepo.List(f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func (h *ListingHandler) Featured(c *gin.Context) {
	f := repository.ListingFilters{
		Status:       domain.ListingAvailable,
		FeaturedOnly: true,
		Sort:         repository.SortNewest,
		Limit:        12,
	}
	listings, err := h.listingRepo.List(f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func (h *ListingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}
	listing, err := h.listingRepo.GetAvailableByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}
