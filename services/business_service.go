package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Bekfastjam/LocalBake/entity"
	"github.com/Bekfastjam/LocalBake/repository"
)

type BusinessService struct {
	Repo       *repository.BusinessRepository
	MenuRepo   *repository.MenuRepository
	ReviewRepo *repository.ReviewRepository
}

func NewBusinessService(
	repo *repository.BusinessRepository,
	menuRepo *repository.MenuRepository,
	reviewRepo *repository.ReviewRepository,
) *BusinessService {
	return &BusinessService{Repo: repo, MenuRepo: menuRepo, ReviewRepo: reviewRepo}
}

// BusinessFilter composes conjunctively. Category "all" or "" matches
// everything; IsOpen nil means no open-state filtering; HasVegan true
// restricts to businesses tagged "vegan"; Query is a case-insensitive
// substring match over name, description, category and each tag.
type BusinessFilter struct {
	Category string
	IsOpen   *bool
	HasVegan bool
	Query    string
}

// List filters the catalog and orders it by ascending distance. Tags and
// hours live in JSON columns, so matching happens here rather than in SQL.
func (s *BusinessService) List(f BusinessFilter) ([]entity.Business, error) {
	all, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}

	results := make([]entity.Business, 0, len(all))
	for _, b := range all {
		if f.Category != "" && f.Category != "all" && b.Category != f.Category {
			continue
		}
		if f.IsOpen != nil && b.IsOpen != *f.IsOpen {
			continue
		}
		if f.HasVegan && !b.HasTag("vegan") {
			continue
		}
		if f.Query != "" && !matchesQuery(&b, f.Query) {
			continue
		}
		results = append(results, b)
	}

	// Missing or unparseable distance sorts as 0, placing it first. The
	// stable sort keeps insertion order on ties.
	sort.SliceStable(results, func(i, j int) bool {
		return parseDistance(results[i].Distance) < parseDistance(results[j].Distance)
	})
	return results, nil
}

func matchesQuery(b *entity.Business, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(b.Name), q) ||
		strings.Contains(strings.ToLower(b.Description), q) ||
		strings.Contains(strings.ToLower(b.Category), q) {
		return true
	}
	for _, tag := range b.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func parseDistance(s string) float64 {
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return d
}

func (s *BusinessService) Get(id uint) (*entity.Business, error) {
	return s.Repo.FindByID(id)
}

// MenuByBusiness returns the menu for a business; empty for unknown ids.
func (s *BusinessService) MenuByBusiness(businessID uint) ([]entity.MenuItem, error) {
	return s.MenuRepo.FindByBusiness(businessID)
}

// ReviewsByBusiness returns reviews newest first; empty for unknown ids.
func (s *BusinessService) ReviewsByBusiness(businessID uint) ([]entity.Review, error) {
	return s.ReviewRepo.FindByBusiness(businessID)
}
