package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupListingRepoTestDB(t *testing.T) (*gorm.DB, *ListingRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:listing_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Listing{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db, NewListingRepository(db)
}

func seedListings(t *testing.T, repo *ListingRepository) {
	t.Helper()
	rows := []models.Listing{
		{Platform: domain.PlatformInstagram, Title: "Fitness page", PriceCents: 45000, FollowersCount: 120000, Country: "United States", Niche: "fitness", Status: domain.ListingAvailable, Featured: true},
		{Platform: domain.PlatformTikTok, Title: "Comedy clips", PriceCents: 20000, FollowersCount: 300000, Country: "Nigeria", Niche: "comedy", Status: domain.ListingAvailable},
		{Platform: domain.PlatformFacebook, Title: "Cooking group", PriceCents: 80000, FollowersCount: 50000, Country: "United Kingdom", Niche: "food", Status: domain.ListingAvailable},
		{Platform: domain.PlatformInstagram, Title: "Travel diary", PriceCents: 15000, FollowersCount: 9000, Country: "Kenya", Niche: "travel", Status: domain.ListingSold},
	}
	for i := range rows {
		if err := repo.Create(&rows[i]); err != nil {
			t.Fatalf("seed listing failed: %v", err)
		}
	}
}

func int64p(v int64) *int64 { return &v }

func TestListFiltersByPlatformAndStatus(t *testing.T) {
	_, repo := setupListingRepoTestDB(t)
	seedListings(t, repo)

	got, err := repo.List(ListingFilters{Platform: domain.PlatformInstagram, Status: domain.ListingAvailable})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Fitness page" {
		t.Errorf("got %d listings, want only the available instagram one", len(got))
	}
}

func TestListFiltersByPriceAndFollowerRanges(t *testing.T) {
	_, repo := setupListingRepoTestDB(t)
	seedListings(t, repo)

	got, err := repo.List(ListingFilters{
		Status:        domain.ListingAvailable,
		MinPriceCents: int64p(20000),
		MaxPriceCents: int64p(50000),
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("price range matched %d listings, want 2", len(got))
	}

	got, err = repo.List(ListingFilters{
		Status:       domain.ListingAvailable,
		MinFollowers: int64p(100000),
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("follower floor matched %d listings, want 2", len(got))
	}
}

func TestListSearchSpansTitleNicheCountry(t *testing.T) {
	_, repo := setupListingRepoTestDB(t)
	seedListings(t, repo)

	got, err := repo.List(ListingFilters{Status: domain.ListingAvailable, Search: "comedy"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].Platform != domain.PlatformTikTok {
		t.Errorf("search by niche: got %d listings", len(got))
	}

	got, err = repo.List(ListingFilters{Status: domain.ListingAvailable, Search: "United"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("search by country substring: got %d listings, want 2", len(got))
	}
}

func TestListSortOrdering(t *testing.T) {
	_, repo := setupListingRepoTestDB(t)
	seedListings(t, repo)

	got, err := repo.List(ListingFilters{Status: domain.ListingAvailable, Sort: SortPriceAsc})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].PriceCents > got[i].PriceCents {
			t.Fatalf("price_asc out of order at %d: %d > %d", i, got[i-1].PriceCents, got[i].PriceCents)
		}
	}

	got, err = repo.List(ListingFilters{Status: domain.ListingAvailable, Sort: SortFollowers})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) == 0 || got[0].FollowersCount != 300000 {
		t.Errorf("followers sort: first listing has %d followers", got[0].FollowersCount)
	}
}

func TestListRejectsUnknownSortKey(t *testing.T) {
	_, repo := setupListingRepoTestDB(t)

	if _, err := repo.List(ListingFilters{Sort: "price; DROP TABLE listings"}); !errors.Is(err, ErrInvalidSortKey) {
		t.Fatalf("err = %v, want ErrInvalidSortKey", err)
	}
	if _, err := repo.List(ListingFilters{Sort: "created_at"}); !errors.Is(err, ErrInvalidSortKey) {
		t.Fatalf("err = %v, want ErrInvalidSortKey", err)
	}
}

func TestSoftDeleteHidesListingFromQueries(t *testing.T) {
	db, repo := setupListingRepoTestDB(t)
	seedListings(t, repo)

	var target models.Listing
	if err := db.Where("title = ?", "Fitness page").First(&target).Error; err != nil {
		t.Fatalf("load listing failed: %v", err)
	}
	if err := repo.SoftDelete(target.ID); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}

	if _, err := repo.GetByID(target.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}

	// The row itself survives for order history.
	var count int64
	db.Unscoped().Model(&models.Listing{}).Where("id = ?", target.ID).Count(&count)
	if count != 1 {
		t.Errorf("unscoped count = %d, want 1", count)
	}
}
