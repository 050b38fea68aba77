package services

import (
	"log"
	"math"
	"tradehub/entities"
	"tradehub/models"
	"tradehub/repository"
)

const (
	FreeShippingThreshold = 5000
	ShippingFee           = 99
	TaxRate               = 0.18
)

type CartService struct {
	pr repository.CatalogRepository
	cr repository.CartRepository
}

func NewCartService(catalogRepo repository.CatalogRepository, cartRepo repository.CartRepository) CartService {
	return CartService{
		pr: catalogRepo,
		cr: cartRepo,
	}
}

func (cs *CartService) AddCartItem(sessionId string, req models.CartRequest) (err error) {
	p, ex := cs.pr.GetProductById(req.ProductId)
	if !ex {
		log.Printf("AddCartItem: product does not exist")
		err = models.ErrNotFoundError
		return
	}
	if req.Quantity < p.Moq {
		log.Printf("AddCartItem: quantity %d is below the minimum order quantity %d", req.Quantity, p.Moq)
		err = models.ErrNotAllowed
		return
	}
	cart, e := cs.cr.GetCart(sessionId)
	if e != nil {
		err = e
		return
	}
	found := false
	for i := range cart.Items {
		if cart.Items[i].Id == p.Id {
			cart.Items[i].Quantity = cart.Items[i].Quantity + req.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, entities.CartItem{
			Id:       p.Id,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: req.Quantity,
			Moq:      p.Moq,
			Image:    p.Image,
			Category: p.Category,
		})
	}
	err = cs.cr.SetCart(sessionId, cart)
	return
}

// UpdateQuantity sets an item's quantity. A result below the item's moq
// removes the line entirely; increments are unbounded.
func (cs *CartService) UpdateQuantity(sessionId string, productId string, quantity int) (err error) {
	cart, e := cs.cr.GetCart(sessionId)
	if e != nil {
		err = e
		return
	}
	idx := -1
	for i := range cart.Items {
		if cart.Items[i].Id == productId {
			idx = i
			break
		}
	}
	if idx < 0 {
		err = models.ErrNotFoundError
		return
	}
	if quantity < cart.Items[idx].Moq {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Quantity = quantity
	}
	err = cs.cr.SetCart(sessionId, cart)
	return
}

func (cs *CartService) RemoveCartItem(sessionId string, productId string) (err error) {
	cart, e := cs.cr.GetCart(sessionId)
	if e != nil {
		err = e
		return
	}
	for i := range cart.Items {
		if cart.Items[i].Id == productId {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			err = cs.cr.SetCart(sessionId, cart)
			return
		}
	}
	return
}

func (cs *CartService) GetCart(sessionId string) (resp entities.CartResponse, err error) {
	cart, e := cs.cr.GetCart(sessionId)
	if e != nil {
		err = e
		return
	}
	items := cart.Items
	if items == nil {
		items = []entities.CartItem{}
	}
	resp = entities.CartResponse{
		Items:     items,
		ItemCount: ItemCount(items),
		Breakdown: Totals(items),
	}
	return
}

// Totals derives the price breakdown: shipping is free strictly above the
// threshold, tax is 18% of the subtotal rounded to the nearest unit.
func Totals(items []entities.CartItem) (b entities.PriceBreakdown) {
	if len(items) == 0 {
		return
	}
	for _, item := range items {
		b.Subtotal = b.Subtotal + item.Price*float64(item.Quantity)
	}
	if b.Subtotal <= FreeShippingThreshold {
		b.Shipping = ShippingFee
		b.FreeShippingGap = FreeShippingThreshold - b.Subtotal
	}
	b.Tax = math.Round(b.Subtotal * TaxRate)
	b.Total = b.Subtotal + b.Shipping + b.Tax
	return
}

func ItemCount(items []entities.CartItem) (count int) {
	for _, item := range items {
		count = count + item.Quantity
	}
	return
}
