package services

import (
	"sort"
	"strings"
	"tradehub/entities"
	"tradehub/models"
	"tradehub/repository"
)

const PageSize = 10

const SortPopular = "popular"

var sortKeys = map[string]bool{
	SortPopular:  true,
	"price-low":  true,
	"price-high": true,
	"rating":     true,
	"discount":   true,
}

type CatalogService struct {
	cr repository.CatalogRepository
	nr repository.NavRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository, navRepo repository.NavRepository) CatalogService {
	return CatalogService{
		cr: catalogRepo,
		nr: navRepo,
	}
}

// Browse runs the catalog pipeline: text match, category, price bucket,
// rating floor, sort, then 10-per-page slicing. The previous query is kept
// per session; any change other than the page number resets to page 1.
func (cs *CatalogService) Browse(sessionId string, q entities.BrowseQuery) (page entities.BrowsePage, err error) {
	if q.SortBy == "" {
		q.SortBy = SortPopular
	}
	if !sortKeys[q.SortBy] {
		err = models.ErrValidation
		return
	}
	if q.Page < 1 {
		q.Page = 1
	}

	state, _, e := cs.nr.GetState(sessionId)
	if e != nil {
		err = e
		return
	}
	if filtersChanged(state.Browse, q) {
		q.Page = 1
	}

	prods := FilterSort(cs.cr.GetAllProducts(), q)
	page = paginate(prods, q.Page)

	q.Page = page.Page
	state.Browse = q
	err = cs.nr.SetState(sessionId, state)
	return
}

func (cs *CatalogService) GetProductById(id string) (prod entities.Product, err error) {
	prod, exists := cs.cr.GetProductById(id)
	if !exists {
		err = models.ErrNotFoundError
	}
	return
}

func (cs *CatalogService) GetAllCategories() (cats []entities.Category) {
	cats = cs.cr.GetAllCategories()
	return
}

// FilterSort applies the filter chain and sort key without paginating.
// Sorting is stable, so ties keep their catalog order.
func FilterSort(prods []entities.Product, q entities.BrowseQuery) []entities.Product {
	filtered := make([]entities.Product, 0, len(prods))
	search := strings.ToLower(q.Search)
	for _, p := range prods {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if q.Category != "" && q.Category != "All" && p.Category != q.Category {
			continue
		}
		if q.MinPrice > 0 && p.Price < q.MinPrice {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		if q.MinRating > 0 && p.Rating < q.MinRating {
			continue
		}
		filtered = append(filtered, p)
	}

	switch q.SortBy {
	case "price-low":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case "price-high":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case "rating":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	case "discount":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Discount > filtered[j].Discount })
	}
	return filtered
}

func filtersChanged(prev, next entities.BrowseQuery) bool {
	prev.Page = 0
	next.Page = 0
	return prev != next
}

func paginate(prods []entities.Product, pageNum int) (page entities.BrowsePage) {
	page.Total = len(prods)
	page.PageCount = (len(prods) + PageSize - 1) / PageSize
	if page.PageCount == 0 {
		page.PageCount = 1
	}
	if pageNum > page.PageCount {
		pageNum = page.PageCount
	}
	page.Page = pageNum
	start := (pageNum - 1) * PageSize
	end := start + PageSize
	if start > len(prods) {
		start = len(prods)
	}
	if end > len(prods) {
		end = len(prods)
	}
	page.Products = prods[start:end]
	return
}
