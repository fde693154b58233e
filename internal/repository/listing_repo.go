package repository

import (
	"errors"

	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/models"

	"gorm.io/gorm"
)

var ErrInvalidSortKey = errors.New("invalid sort key")

// Sort keys accepted by the public listings query.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortFollowers = "followers"
)

var sortClauses = map[string]string{
	SortNewest:    "created_at DESC",
	SortPriceAsc:  "price_cents ASC",
	SortPriceDesc: "price_cents DESC",
	SortFollowers: "followers_count DESC",
}

// ListingFilters is the validated query specification for browsing listings.
// Every field is optional; Sort must be one of the whitelisted keys.
type ListingFilters struct {
	Platform      string
	Status        string // admin only; public queries force "available"
	MinPriceCents *int64
	MaxPriceCents *int64
	MinFollowers  *int64
	MaxFollowers  *int64
	Country       string
	Search        string
	FeaturedOnly  bool
	Sort          string
	Limit         int
	Offset        int
}

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(l *models.Listing) error {
	return r.db.Create(l).Error
}

func (r *ListingRepository) GetByID(id uint) (*models.Listing, error) {
	var l models.Listing
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// GetAvailableByID returns the listing only when it is still purchasable.
func (r *ListingRepository) GetAvailableByID(id uint) (*models.Listing, error) {
	var l models.Listing
	err := r.db.Where("id = ? AND status = ?", id, domain.ListingAvailable).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepository) Update(l *models.Listing) error {
	return r.db.Save(l).Error
}

func (r *ListingRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Listing{}).Where("id = ?", id).Update("status", status).Error
}

func (r *ListingRepository) SoftDelete(id uint) error {
	return r.db.Delete(&models.Listing{}, id).Error
}

// List applies the validated filter specification. An unknown sort key is an
// error rather than a silent default so clients cannot smuggle raw SQL in.
func (r *ListingRepository) List(f ListingFilters) ([]models.Listing, error) {
	if f.Sort == "" {
		f.Sort = SortNewest
	}
	orderBy, ok := sortClauses[f.Sort]
	if !ok {
		return nil, ErrInvalidSortKey
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 50
	}

	q := r.db.Model(&models.Listing{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Platform != "" {
		q = q.Where("platform = ?", f.Platform)
	}
	if f.MinPriceCents != nil {
		q = q.Where("price_cents >= ?", *f.MinPriceCents)
	}
	if f.MaxPriceCents != nil {
		q = q.Where("price_cents <= ?", *f.MaxPriceCents)
	}
	if f.MinFollowers != nil {
		q = q.Where("followers_count >= ?", *f.MinFollowers)
	}
	if f.MaxFollowers != nil {
		q = q.Where("followers_count <= ?", *f.MaxFollowers)
	}
	if f.Country != "" {
		q = q.Where("country LIKE ?", "%"+f.Country+"%")
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR niche LIKE ? OR country LIKE ?", like, like, like)
	}
	if f.FeaturedOnly {
		q = q.Where("featured = ?", true)
	}

	var listings []models.Listing
	err := q.Order(orderBy).Limit(f.Limit).Offset(f.Offset).Find(&listings).Error
	return listings, err
}
