package services

import (
	"context"
	"log"
	"math/rand"
	"strconv"
	"time"
	"tradehub/entities"
	"tradehub/models"
	"tradehub/repository"
)

type OrderService struct {
	cr    repository.CartRepository
	nr    repository.NavRepository
	ar    repository.AddressRepository
	delay time.Duration
}

func NewOrderService(cartRepo repository.CartRepository, navRepo repository.NavRepository, addressRepo repository.AddressRepository, delay time.Duration) OrderService {
	return OrderService{
		cr:    cartRepo,
		nr:    navRepo,
		ar:    addressRepo,
		delay: delay,
	}
}

// PlaceOrder snapshots the cart into an OrderSummary, keeps it as the
// session's transient confirmation payload and empties the cart. Nothing
// is mutated if the request is cancelled during the simulated placement.
func (os *OrderService) PlaceOrder(ctx context.Context, sessionId string) (order entities.OrderSummary, err error) {
	cart, e := os.cr.GetCart(sessionId)
	if e != nil {
		err = e
		return
	}
	if len(cart.Items) == 0 {
		log.Printf("PlaceOrder: cart is empty")
		err = models.ErrBadRequest
		return
	}

	err = waitFor(ctx, os.delay)
	if err != nil {
		return
	}

	b := Totals(cart.Items)
	addrs, e := os.ar.LoadAddresses()
	if e != nil {
		err = e
		return
	}
	addr, ok := pickDefault(addrs)
	if !ok {
		addr = fallbackAddress
	}

	now := time.Now()
	order = entities.OrderSummary{
		OrderId:           orderIdFrom(now),
		Items:             cart.Items,
		Subtotal:          b.Subtotal,
		Shipping:          b.Shipping,
		Tax:               b.Tax,
		Total:             b.Total,
		EstimatedDelivery: now.AddDate(0, 0, 3+rand.Intn(3)).Format("Monday, 2 January"),
		PaymentMethod:     "Cash on Delivery",
		DeliveryAddress:   addr,
	}

	err = os.nr.SetOrder(sessionId, order)
	if err != nil {
		return
	}
	err = os.cr.ClearCart(sessionId)
	if err != nil {
		return
	}

	state, _, e := os.nr.GetState(sessionId)
	if e != nil {
		err = e
		return
	}
	state.Screen = entities.ScreenOrderConfirmation
	state.ProductId = ""
	state.Category = ""
	err = os.nr.SetState(sessionId, state)
	return
}

func (os *OrderService) GetConfirmation(sessionId string) (order entities.OrderSummary, err error) {
	order, exists, e := os.nr.GetOrder(sessionId)
	if e != nil {
		err = e
		return
	}
	if !exists {
		err = models.ErrNotFoundError
	}
	return
}

// GetOrderHistory serves the static order list behind the orders screen,
// split into the active and completed tabs.
func (os *OrderService) GetOrderHistory() (active []entities.OrderPreview, completed []entities.OrderPreview) {
	for _, o := range mockOrders {
		if o.Status == "delivered" {
			completed = append(completed, o)
		} else {
			active = append(active, o)
		}
	}
	return
}

// Order ids are "ORD" plus the last 8 digits of the placement timestamp.
func orderIdFrom(t time.Time) string {
	ts := strconv.FormatInt(t.UnixMilli(), 10)
	return "ORD" + ts[len(ts)-8:]
}

var fallbackAddress = entities.Address{
	Name:    "Default User",
	Phone:   "9876543210",
	Street:  "Default Address",
	City:    "Your City",
	State:   "Your State",
	Pincode: "123456",
}

var mockOrders = []entities.OrderPreview{
	{
		Id:               "ORD001",
		Date:             "2024-01-15",
		Status:           "shipped",
		Total:            2499,
		Items:            3,
		Supplier:         "Fashion Hub Ltd.",
		ExpectedDelivery: "2024-01-18",
		TrackingId:       "TRK123456789",
		Products:         []string{"Premium Cotton T-Shirts", "Casual Shirts", "Polo T-Shirts"},
	},
	{
		Id:          "ORD002",
		Date:        "2024-01-10",
		Status:      "delivered",
		Total:       1299,
		Items:       1,
		Supplier:    "Tech Solutions",
		DeliveredOn: "2024-01-12",
		Products:    []string{"Wireless Bluetooth Earbuds"},
	},
	{
		Id:               "ORD003",
		Date:             "2024-01-08",
		Status:           "processing",
		Total:            899,
		Items:            2,
		Supplier:         "Home Essentials",
		ExpectedDelivery: "2024-01-20",
		Products:         []string{"Kitchen Storage Containers", "Water Bottles"},
	},
}
