package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Bekfastjam/LocalBake/entity"
	"github.com/Bekfastjam/LocalBake/repository"
	"github.com/Bekfastjam/LocalBake/services"
)

func newBusinessService(db *gorm.DB) *services.BusinessService {
	return services.NewBusinessService(
		repository.NewBusinessRepository(db),
		repository.NewMenuRepository(db),
		repository.NewReviewRepository(db),
	)
}

func boolPtr(v bool) *bool { return &v }

func TestListBusinessesFilters(t *testing.T) {
	db := openTestDB(t)
	svc := newBusinessService(db)

	seedBusiness(t, db, entity.Business{
		Name: "Sunshine Bakery", Category: "bakery", Description: "artisan breads",
		IsOpen: true, Distance: "0.3", Tags: []string{"vegan", "organic"},
	})
	seedBusiness(t, db, entity.Business{
		Name: "Brew & Bite", Category: "cafe", Description: "single-origin brews",
		IsOpen: true, Distance: "0.5", Tags: []string{"wifi"},
	})
	seedBusiness(t, db, entity.Business{
		Name: "French Corner", Category: "patisserie", Description: "handcrafted macarons",
		IsOpen: false, Distance: "0.7", Tags: []string{"gluten-free"},
	})

	tests := []struct {
		name   string
		filter services.BusinessFilter
		want   []string
	}{
		{
			name:   "no_filter_returns_all",
			filter: services.BusinessFilter{},
			want:   []string{"Sunshine Bakery", "Brew & Bite", "French Corner"},
		},
		{
			name:   "category_all_is_noop",
			filter: services.BusinessFilter{Category: "all"},
			want:   []string{"Sunshine Bakery", "Brew & Bite", "French Corner"},
		},
		{
			name:   "category_exact_match",
			filter: services.BusinessFilter{Category: "cafe"},
			want:   []string{"Brew & Bite"},
		},
		{
			name:   "is_open_true",
			filter: services.BusinessFilter{IsOpen: boolPtr(true)},
			want:   []string{"Sunshine Bakery", "Brew & Bite"},
		},
		{
			name:   "is_open_false",
			filter: services.BusinessFilter{IsOpen: boolPtr(false)},
			want:   []string{"French Corner"},
		},
		{
			name:   "has_vegan",
			filter: services.BusinessFilter{HasVegan: true},
			want:   []string{"Sunshine Bakery"},
		},
		{
			name:   "query_matches_name_case_insensitive",
			filter: services.BusinessFilter{Query: "SUNSHINE"},
			want:   []string{"Sunshine Bakery"},
		},
		{
			name:   "query_matches_description",
			filter: services.BusinessFilter{Query: "macaron"},
			want:   []string{"French Corner"},
		},
		{
			name:   "query_matches_tag",
			filter: services.BusinessFilter{Query: "wifi"},
			want:   []string{"Brew & Bite"},
		},
		{
			name:   "filters_compose_conjunctively",
			filter: services.BusinessFilter{Category: "bakery", IsOpen: boolPtr(true), HasVegan: true},
			want:   []string{"Sunshine Bakery"},
		},
		{
			name:   "no_match",
			filter: services.BusinessFilter{Query: "pizza"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(tt.filter)
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, b := range got {
				names = append(names, b.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestListBusinessesOrdersByDistance(t *testing.T) {
	db := openTestDB(t)
	svc := newBusinessService(db)

	seedBusiness(t, db, entity.Business{Name: "B", Category: "cafe", Distance: "0.7"})
	seedBusiness(t, db, entity.Business{Name: "A", Category: "bakery", Distance: "0.3"})
	seedBusiness(t, db, entity.Business{Name: "NoDistance", Category: "cafe", Distance: ""})

	got, err := svc.List(services.BusinessFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)

	// empty distance parses as 0 and sorts first
	assert.Equal(t, "NoDistance", got[0].Name)
	assert.Equal(t, "A", got[1].Name)
	assert.Equal(t, "B", got[2].Name)
}

func TestListBusinessesDistanceTiesKeepInsertionOrder(t *testing.T) {
	db := openTestDB(t)
	svc := newBusinessService(db)

	seedBusiness(t, db, entity.Business{Name: "First", Category: "cafe", Distance: "0.5"})
	seedBusiness(t, db, entity.Business{Name: "Second", Category: "cafe", Distance: "0.5"})

	got, err := svc.List(services.BusinessFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].Name)
	assert.Equal(t, "Second", got[1].Name)
}

func TestGetBusinessNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := newBusinessService(db)

	_, err := svc.Get(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMenuByBusiness(t *testing.T) {
	db := openTestDB(t)
	svc := newBusinessService(db)

	b := seedBusiness(t, db, entity.Business{Name: "Bakery", Category: "bakery"})
	require.NoError(t, db.Create(&entity.MenuItem{BusinessID: b.ID, Category: "pastries", Name: "Croissant", Price: "3.50"}).Error)
	require.NoError(t, db.Create(&entity.MenuItem{BusinessID: b.ID, Category: "breads", Name: "Baguette", Price: "4.50"}).Error)
	require.NoError(t, db.Create(&entity.MenuItem{BusinessID: b.ID + 1, Category: "pastries", Name: "Other", Price: "1.00"}).Error)

	items, err := svc.MenuByBusiness(b.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Croissant", items[0].Name)
	assert.Equal(t, "Baguette", items[1].Name)
}

func TestMenuByBusinessUnknownIDIsEmpty(t *testing.T) {
	db := openTestDB(t)
	svc := newBusinessService(db)

	items, err := svc.MenuByBusiness(999)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestReviewsByBusinessNewestFirst(t *testing.T) {
	db := openTestDB(t)
	svc := newBusinessService(db)

	b := seedBusiness(t, db, entity.Business{Name: "Bakery", Category: "bakery"})
	old := entity.Review{BusinessID: b.ID, AuthorName: "Old", Rating: 4, Comment: "ok", CreatedAt: time.Now().Add(-time.Hour)}
	recent := entity.Review{BusinessID: b.ID, AuthorName: "Recent", Rating: 5, Comment: "great", CreatedAt: time.Now()}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	reviews, err := svc.ReviewsByBusiness(b.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Recent", reviews[0].AuthorName)
	assert.Equal(t, "Old", reviews[1].AuthorName)
}

func TestReviewsByBusinessUnknownIDIsEmpty(t *testing.T) {
	db := openTestDB(t)
	svc := newBusinessService(db)

	reviews, err := svc.ReviewsByBusiness(999)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
