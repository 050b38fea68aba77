package repository

import (
	"tradehub/entities"
)

// CatalogRepository serves the static product catalog. The data never
// changes at runtime, so everything lives in memory.
type CatalogRepository interface {
	GetAllProducts() (prods []entities.Product)
	GetProductById(id string) (prod entities.Product, exists bool)
	GetProductsByCategory(category string) (prods []entities.Product)
	GetAllCategories() (cats []entities.Category)
}

type CatalogRepo struct {
	products   []entities.Product
	categories []entities.Category
}

func NewCatalogRepository() CatalogRepository {
	return &CatalogRepo{
		products:   catalogProducts,
		categories: catalogCategories,
	}
}

func (c *CatalogRepo) GetAllProducts() (prods []entities.Product) {
	prods = make([]entities.Product, len(c.products))
	copy(prods, c.products)
	return
}

func (c *CatalogRepo) GetProductById(id string) (prod entities.Product, exists bool) {
	for _, p := range c.products {
		if p.Id == id {
			return p, true
		}
	}
	return
}

func (c *CatalogRepo) GetProductsByCategory(category string) (prods []entities.Product) {
	for _, p := range c.products {
		if p.Category == category {
			prods = append(prods, p)
		}
	}
	return
}

func (c *CatalogRepo) GetAllCategories() (cats []entities.Category) {
	cats = make([]entities.Category, len(c.categories))
	copy(cats, c.categories)
	return
}

var catalogCategories = []entities.Category{
	{Name: "All", Icon: "🏪"},
	{Name: "Electronics", Icon: "📱"},
	{Name: "Fashion", Icon: "👕"},
	{Name: "Home & Kitchen", Icon: "🏠"},
	{Name: "Beauty", Icon: "💄"},
	{Name: "Sports", Icon: "⚽"},
	{Name: "Books", Icon: "📚"},
	{Name: "Toys", Icon: "🧸"},
}

var catalogProducts = []entities.Product{
	{
		Id:            "1",
		Name:          "Premium Cotton T-Shirts",
		Price:         299,
		OriginalPrice: 399,
		Moq:           50,
		Image:         "/placeholder.svg?height=200&width=200",
		Category:      "Fashion",
		Rating:        4.2,
		Supplier:      "Fashion Hub Ltd.",
		Discount:      25,
	},
	{
		Id:            "2",
		Name:          "Wireless Bluetooth Earbuds",
		Price:         1299,
		OriginalPrice: 1999,
		Moq:           25,
		Image:         "/placeholder.svg?height=200&width=200",
		Category:      "Electronics",
		Rating:        4.5,
		Supplier:      "Tech Solutions",
		Discount:      35,
	},
	{
		Id:            "3",
		Name:          "Kitchen Storage Containers Set",
		Price:         599,
		OriginalPrice: 799,
		Moq:           30,
		Image:         "/placeholder.svg?height=200&width=200",
		Category:      "Home & Kitchen",
		Rating:        4.1,
		Supplier:      "Home Essentials",
		Discount:      25,
	},
	{
		Id:            "4",
		Name:          "Sports Water Bottles",
		Price:         199,
		OriginalPrice: 299,
		Moq:           100,
		Image:         "/placeholder.svg?height=200&width=200",
		Category:      "Sports",
		Rating:        4.3,
		Supplier:      "Sports World",
		Discount:      33,
	},
	{
		Id:            "5",
		Name:          "LED Desk Lamps",
		Price:         899,
		OriginalPrice: 1299,
		Moq:           20,
		Image:         "/placeholder.svg?height=200&width=200",
		Category:      "Electronics",
		Rating:        4.4,
		Supplier:      "Lighting Co.",
		Discount:      31,
	},
	{
		Id:            "6",
		Name:          "Face Care Beauty Kit",
		Price:         799,
		OriginalPrice: 1199,
		Moq:           40,
		Image:         "/placeholder.svg?height=200&width=200",
		Category:      "Beauty",
		Rating:        4.0,
		Supplier:      "Beauty Plus",
		Discount:      33,
	},
	{
		Id:            "7",
		Name:          "Formal Business Shirts",
		Price:         599,
		OriginalPrice: 799,
		Moq:           30,
		Image:         "/placeholder.svg?height=200&width=200",
		Category:      "Fashion",
		Rating:        4.3,
		Supplier:      "Corporate Wear Co.",
		Discount:      25,
		IsNew:         true,
	},
	{
		Id:            "8",
		Name:          "Casual Polo T-Shirts",
		Price:         399,
		OriginalPrice: 549,
		Moq:           40,
		Image:         "/placeholder.svg?height=200&width=200",
		Category:      "Fashion",
		Rating:        4.1,
		Supplier:      "Fashion Hub Ltd.",
		Discount:      27,
	},
	{
		Id:            "9",
		Name:          "Designer Hoodies",
		Price:         899,
		OriginalPrice: 1299,
		Moq:           25,
		Image:         "/placeholder.svg?height=200&width=200",
		Category:      "Fashion",
		Rating:        4.4,
		Supplier:      "Urban Style",
		Discount:      31,
		IsNew:         true,
	},
	{
		Id:            "10",
		Name:          "Cotton Bed Sheets Set",
		Price:         749,
		OriginalPrice: 999,
		Moq:           20,
		Image:         "/placeholder.svg?height=200&width=200",
		Category:      "Home & Kitchen",
		Rating:        4.2,
		Supplier:      "Home Essentials",
		Discount:      25,
	},
	{
		Id:            "11",
		Name:          "Children Story Books Pack",
		Price:         349,
		OriginalPrice: 499,
		Moq:           50,
		Image:         "/placeholder.svg?height=200&width=200",
		Category:      "Books",
		Rating:        4.6,
		Supplier:      "Page Turners",
		Discount:      30,
	},
	{
		Id:            "12",
		Name:          "Soft Plush Teddy Bears",
		Price:         249,
		OriginalPrice: 399,
		Moq:           60,
		Image:         "/placeholder.svg?height=200&width=200",
		Category:      "Toys",
		Rating:        4.5,
		Supplier:      "Toy Junction",
		Discount:      38,
	},
}
