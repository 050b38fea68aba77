package entities

type Product struct {
	Id            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Moq           int     `json:"moq"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	Supplier      string  `json:"supplier"`
	Discount      int     `json:"discount"`
	IsNew         bool    `json:"isNew,omitempty"`
}

type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type CartItem struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Moq      int     `json:"moq"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
}

type Cart struct {
	Items []CartItem
}

type PriceBreakdown struct {
	Subtotal        float64 `json:"subtotal"`
	Shipping        float64 `json:"shipping"`
	Tax             float64 `json:"tax"`
	Total           float64 `json:"total"`
	FreeShippingGap float64 `json:"freeShippingGap,omitempty"`
}

type CartResponse struct {
	Items     []CartItem     `json:"items"`
	ItemCount int            `json:"itemCount"`
	Breakdown PriceBreakdown `json:"breakdown"`
}

type Address struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Pincode     string `json:"pincode"`
	City        string `json:"city"`
	State       string `json:"state"`
	Street      string `json:"street"`
	Landmark    string `json:"landmark,omitempty"`
	AddressType string `json:"addressType"`
	IsDefault   bool   `json:"isDefault"`
}

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type OrderSummary struct {
	OrderId           string     `json:"orderId"`
	Items             []CartItem `json:"items"`
	Subtotal          float64    `json:"subtotal"`
	Shipping          float64    `json:"shipping"`
	Tax               float64    `json:"tax"`
	Total             float64    `json:"total"`
	EstimatedDelivery string     `json:"estimatedDelivery"`
	PaymentMethod     string     `json:"paymentMethod"`
	DeliveryAddress   Address    `json:"deliveryAddress"`
}

type OrderPreview struct {
	Id               string   `json:"id"`
	Date             string   `json:"date"`
	Status           string   `json:"status"`
	Total            float64  `json:"total"`
	Items            int      `json:"items"`
	Supplier         string   `json:"supplier"`
	ExpectedDelivery string   `json:"expectedDelivery,omitempty"`
	DeliveredOn      string   `json:"deliveredOn,omitempty"`
	TrackingId       string   `json:"trackingId,omitempty"`
	Products         []string `json:"products"`
}

type Screen string

const (
	ScreenLocationPermission Screen = "location-permission"
	ScreenLogin              Screen = "login"
	ScreenAddressSetup       Screen = "address-setup"
	ScreenHome               Screen = "home"
	ScreenCategory           Screen = "category"
	ScreenProduct            Screen = "product"
	ScreenCart               Screen = "cart"
	ScreenOrders             Screen = "orders"
	ScreenProfile            Screen = "profile"
	ScreenAddressManagement  Screen = "address-management"
	ScreenOrderConfirmation  Screen = "order-confirmation"
	ScreenHelpSupport        Screen = "help-support"
)

type BrowseQuery struct {
	Search    string  `json:"search,omitempty"`
	Category  string  `json:"category,omitempty"`
	SortBy    string  `json:"sortBy,omitempty"`
	MinPrice  float64 `json:"minPrice,omitempty"`
	MaxPrice  float64 `json:"maxPrice,omitempty"`
	MinRating float64 `json:"minRating,omitempty"`
	Page      int     `json:"page,omitempty"`
}

type BrowsePage struct {
	Products  []Product `json:"products"`
	Page      int       `json:"page"`
	PageCount int       `json:"pageCount"`
	Total     int       `json:"total"`
}

type NavState struct {
	Screen    Screen      `json:"screen"`
	ProductId string      `json:"productId,omitempty"`
	Category  string      `json:"category,omitempty"`
	Browse    BrowseQuery `json:"browse"`
}

type GateStatus struct {
	Screen        Screen `json:"screen"`
	LocationAsked bool   `json:"locationAsked"`
	LoggedIn      bool   `json:"loggedIn"`
	HasAddress    bool   `json:"hasAddress"`
	Phone         string `json:"phone,omitempty"`
}

type FaqItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SupportInfo struct {
	Faq           []FaqItem `json:"faq"`
	ChatAvailable bool      `json:"chatAvailable"`
	ChatWidgetUrl string    `json:"chatWidgetUrl,omitempty"`
}
