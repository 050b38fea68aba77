package services

import (
	"errors"
	"testing"
	"tradehub/entities"
	"tradehub/models"
	"tradehub/repository"
)

func newCartService() (CartService, *fakeCartRepo) {
	cr := newFakeCartRepo()
	cs := NewCartService(repository.NewCatalogRepository(), cr)
	return cs, cr
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name  string
		items []entities.CartItem
		want  entities.PriceBreakdown
	}{
		{
			name: "below free shipping threshold",
			items: []entities.CartItem{
				{Id: "1", Price: 299, Quantity: 2},
			},
			want: entities.PriceBreakdown{
				Subtotal:        598,
				Shipping:        99,
				Tax:             108,
				Total:           805,
				FreeShippingGap: 4402,
			},
		},
		{
			name: "above free shipping threshold",
			items: []entities.CartItem{
				{Id: "2", Price: 1200, Quantity: 5},
			},
			want: entities.PriceBreakdown{
				Subtotal: 6000,
				Shipping: 0,
				Tax:      1080,
				Total:    7080,
			},
		},
		{
			name: "exactly at threshold still pays shipping",
			items: []entities.CartItem{
				{Id: "3", Price: 100, Quantity: 50},
			},
			want: entities.PriceBreakdown{
				Subtotal:        5000,
				Shipping:        99,
				Tax:             900,
				Total:           5999,
				FreeShippingGap: 0,
			},
		},
		{
			name:  "empty cart",
			items: nil,
			want:  entities.PriceBreakdown{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Totals(tt.items)
			if got != tt.want {
				t.Errorf("Totals() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTotalsIdentity(t *testing.T) {
	carts := [][]entities.CartItem{
		{{Price: 299, Quantity: 50}},
		{{Price: 199, Quantity: 100}, {Price: 899, Quantity: 25}},
		{{Price: 1299, Quantity: 1}},
		{{Price: 49.5, Quantity: 33}},
	}
	for _, items := range carts {
		b := Totals(items)
		if b.Total != b.Subtotal+b.Shipping+b.Tax {
			t.Errorf("total %v is not subtotal %v + shipping %v + tax %v", b.Total, b.Subtotal, b.Shipping, b.Tax)
		}
		if (b.Shipping == 0) != (b.Subtotal > FreeShippingThreshold) {
			t.Errorf("shipping %v inconsistent with subtotal %v", b.Shipping, b.Subtotal)
		}
	}
}

func TestAddCartItem(t *testing.T) {
	cs, _ := newCartService()

	err := cs.AddCartItem("s1", models.CartRequest{ProductId: "1", Quantity: 50})
	if err != nil {
		t.Fatalf("AddCartItem: %v", err)
	}
	resp, err := cs.GetCart("s1")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Quantity != 50 {
		t.Fatalf("unexpected cart after add: %+v", resp.Items)
	}

	// same product again merges into the existing line
	err = cs.AddCartItem("s1", models.CartRequest{ProductId: "1", Quantity: 50})
	if err != nil {
		t.Fatalf("AddCartItem: %v", err)
	}
	resp, _ = cs.GetCart("s1")
	if len(resp.Items) != 1 || resp.Items[0].Quantity != 100 {
		t.Fatalf("expected merged line with quantity 100, got %+v", resp.Items)
	}
}

func TestAddCartItemBelowMoq(t *testing.T) {
	cs, _ := newCartService()

	err := cs.AddCartItem("s1", models.CartRequest{ProductId: "1", Quantity: 49})
	if !errors.Is(err, models.ErrNotAllowed) {
		t.Fatalf("expected ErrNotAllowed, got %v", err)
	}
	resp, _ := cs.GetCart("s1")
	if len(resp.Items) != 0 {
		t.Fatalf("cart should stay empty, got %+v", resp.Items)
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	cs, _ := newCartService()

	err := cs.AddCartItem("s1", models.CartRequest{ProductId: "999", Quantity: 10})
	if !errors.Is(err, models.ErrNotFoundError) {
		t.Fatalf("expected ErrNotFoundError, got %v", err)
	}
}

func TestUpdateQuantity(t *testing.T) {
	cs, _ := newCartService()
	if err := cs.AddCartItem("s1", models.CartRequest{ProductId: "1", Quantity: 50}); err != nil {
		t.Fatalf("AddCartItem: %v", err)
	}

	if err := cs.UpdateQuantity("s1", "1", 80); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	resp, _ := cs.GetCart("s1")
	if resp.Items[0].Quantity != 80 {
		t.Fatalf("expected quantity 80, got %d", resp.Items[0].Quantity)
	}
}

func TestUpdateQuantityBelowMoqRemovesLine(t *testing.T) {
	cs, _ := newCartService()
	if err := cs.AddCartItem("s1", models.CartRequest{ProductId: "1", Quantity: 50}); err != nil {
		t.Fatalf("AddCartItem: %v", err)
	}

	if err := cs.UpdateQuantity("s1", "1", 49); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	resp, _ := cs.GetCart("s1")
	if len(resp.Items) != 0 {
		t.Fatalf("expected line removed, got %+v", resp.Items)
	}
}

func TestUpdateQuantityMissingLine(t *testing.T) {
	cs, _ := newCartService()

	err := cs.UpdateQuantity("s1", "1", 50)
	if !errors.Is(err, models.ErrNotFoundError) {
		t.Fatalf("expected ErrNotFoundError, got %v", err)
	}
}

func TestRemoveCartItem(t *testing.T) {
	cs, _ := newCartService()
	cs.AddCartItem("s1", models.CartRequest{ProductId: "1", Quantity: 50})
	cs.AddCartItem("s1", models.CartRequest{ProductId: "2", Quantity: 25})

	if err := cs.RemoveCartItem("s1", "1"); err != nil {
		t.Fatalf("RemoveCartItem: %v", err)
	}
	resp, _ := cs.GetCart("s1")
	if len(resp.Items) != 1 || resp.Items[0].Id != "2" {
		t.Fatalf("unexpected cart after remove: %+v", resp.Items)
	}
}

func TestGetCartEmpty(t *testing.T) {
	cs, _ := newCartService()

	resp, err := cs.GetCart("s1")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if resp.Items == nil {
		t.Fatal("items must not be nil for an empty cart")
	}
	if resp.ItemCount != 0 || resp.Breakdown.Total != 0 {
		t.Fatalf("expected empty totals, got %+v", resp)
	}
}

func TestItemCount(t *testing.T) {
	items := []entities.CartItem{
		{Quantity: 50},
		{Quantity: 25},
	}
	if got := ItemCount(items); got != 75 {
		t.Fatalf("ItemCount = %d, want 75", got)
	}
}
