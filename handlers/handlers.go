package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"tradehub/entities"
	"tradehub/models"
	"tradehub/services"

	"github.com/gorilla/mux"
)

type Handler struct {
	as  services.AuthService
	cs  services.CartService
	cts services.CatalogService
	ors services.OrderService
	ads services.AddressService
	ls  services.LocationService
	ns  services.NavigationService
	ss  services.SupportService
}

type HandlerParams struct {
	AuthService services.AuthService
	CrtService  services.CartService
	CatService  services.CatalogService
	OrdService  services.OrderService
	AddrService services.AddressService
	LocService  services.LocationService
	NavService  services.NavigationService
	SupService  services.SupportService
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		as:  params.AuthService,
		cs:  params.CrtService,
		cts: params.CatService,
		ors: params.OrdService,
		ads: params.AddrService,
		ls:  params.LocService,
		ns:  params.NavService,
		ss:  params.SupService,
	}
}

func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	var name string

	c, err := r.Cookie("sessionId")
	if err != nil {
		name = "guest"
	} else {
		phone, exists, _ := h.as.Phone(c.Value)
		if !exists {
			name = "guest"
		} else {
			name = "+91 " + phone
		}
	}
	w.Write([]byte("Welcome to TradeHub, " + name + "!"))
}

// auth

func (h *Handler) SendOtp(w http.ResponseWriter, r *http.Request) {
	req := models.PhoneRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	err = h.as.SendOtp(r.Context(), req.Phone)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) VerifyOtp(w http.ResponseWriter, r *http.Request) {
	req := models.OtpRequest{}
	var sessionId string

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	sessionId, err = h.as.VerifyOtp(r.Context(), req.Phone, req.Code)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:    "sessionId",
		Value:   sessionId,
		Path:    "/",
		Expires: time.Now().Add(24 * time.Hour),
	})
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, _ := r.Cookie("sessionId")
	sessionId := c.Value

	err := h.as.Logout(sessionId)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:    "sessionId",
		Value:   "",
		Path:    "/",
		Expires: time.Now(),
	})
	w.WriteHeader(http.StatusOK)
}

// onboarding

func (h *Handler) Gate(w http.ResponseWriter, r *http.Request) {
	var sessionId string
	if c, err := r.Cookie("sessionId"); err == nil {
		sessionId = c.Value
	}

	status, err := h.ns.Gate(sessionId)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	jsonData, err2 := json.MarshalIndent(status, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

func (h *Handler) DetectLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := h.ls.DetectLocation(r.Context())
	if err != nil {
		if kind := locationKind(err); kind != "" {
			resp := map[string]string{
				"status":  "error",
				"kind":    kind,
				"message": services.LocationErrorMessage(err),
			}
			jsonData, _ := json.MarshalIndent(resp, "", "  ")
			w.Write(jsonData)
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	jsonData, err2 := json.MarshalIndent(loc, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

func (h *Handler) SkipLocation(w http.ResponseWriter, r *http.Request) {
	err := h.ls.SkipLocation()
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	loc, exists, err := h.ls.LastLocation()
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	if !exists {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	jsonData, err2 := json.MarshalIndent(loc, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

// catalog

func (h *Handler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	cats := h.cts.GetAllCategories()
	jsonData, err := json.MarshalIndent(cats, "", "  ")
	if err != nil {
		log.Printf("Marshal err:%v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

func (h *Handler) BrowseProducts(w http.ResponseWriter, r *http.Request) {
	c, _ := r.Cookie("sessionId")
	sessionId := c.Value

	q, err := parseBrowseQuery(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	page, err := h.cts.Browse(sessionId, q)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	jsonData, err2 := json.MarshalIndent(page, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	prod, err := h.cts.GetProductById(vars["id"])
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	jsonData, err2 := json.MarshalIndent(prod, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

// cart

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	c, _ := r.Cookie("sessionId")
	sessionId := c.Value

	cart, err := h.cs.GetCart(sessionId)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	jsonData, err2 := json.MarshalIndent(cart, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	c, _ := r.Cookie("sessionId")
	sessionId := c.Value

	req := models.CartRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	err = h.cs.AddCartItem(sessionId, req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) UpdateCartQuantity(w http.ResponseWriter, r *http.Request) {
	c, _ := r.Cookie("sessionId")
	sessionId := c.Value

	req := models.CartRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	err = h.cs.UpdateQuantity(sessionId, req.ProductId, req.Quantity)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteFromCart(w http.ResponseWriter, r *http.Request) {
	c, _ := r.Cookie("sessionId")
	sessionId := c.Value

	req := models.CartRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	err = h.cs.RemoveCartItem(sessionId, req.ProductId)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// orders

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	c, _ := r.Cookie("sessionId")
	sessionId := c.Value

	order, err := h.ors.PlaceOrder(r.Context(), sessionId)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	jsonData, err2 := json.MarshalIndent(order, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

func (h *Handler) GetOrderConfirmation(w http.ResponseWriter, r *http.Request) {
	c, _ := r.Cookie("sessionId")
	sessionId := c.Value

	order, err := h.ors.GetConfirmation(sessionId)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	jsonData, err2 := json.MarshalIndent(order, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	active, completed := h.ors.GetOrderHistory()
	resp := map[string][]entities.OrderPreview{
		"active":    active,
		"completed": completed,
	}
	jsonData, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Printf("Marshal err:%v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

// addresses

func (h *Handler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	addrs, err := h.ads.ListAddresses()
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	jsonData, err2 := json.MarshalIndent(addrs, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

func (h *Handler) AddAddress(w http.ResponseWriter, r *http.Request) {
	req := models.AddressRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	addr, err := h.ads.AddAddress(req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	jsonData, err2 := json.MarshalIndent(addr, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

func (h *Handler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	req := models.AddressRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	addr, err := h.ads.UpdateAddress(vars["id"], req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	jsonData, err2 := json.MarshalIndent(addr, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

func (h *Handler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	err := h.ads.DeleteAddress(vars["id"])
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) SetDefaultAddress(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	err := h.ads.SetDefaultAddress(vars["id"])
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) PrefillAddress(w http.ResponseWriter, r *http.Request) {
	prefill, err := h.ls.PrefillAddress(r.Context())
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	jsonData, err2 := json.MarshalIndent(prefill, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

// profile and support

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	c, _ := r.Cookie("sessionId")
	sessionId := c.Value

	phone, exists, err := h.as.Phone(sessionId)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	if !exists {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	addrs, err := h.ads.ListAddresses()
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	profile := models.ProfileData{
		Phone:     phone,
		Addresses: len(addrs),
	}
	jsonData, err2 := json.MarshalIndent(profile, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

func (h *Handler) GetSupport(w http.ResponseWriter, r *http.Request) {
	info := h.ss.GetSupportInfo()
	jsonData, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		log.Printf("Marshal err:%v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

// navigation

func (h *Handler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	c, _ := r.Cookie("sessionId")
	sessionId := c.Value

	state, err := h.ns.Current(sessionId)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	jsonData, err2 := json.MarshalIndent(state, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	c, _ := r.Cookie("sessionId")
	sessionId := c.Value

	req := models.NavigateRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	state, err := h.ns.Navigate(sessionId, req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	jsonData, err2 := json.MarshalIndent(state, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Write(jsonData)
}

// middleware

func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionId, err := r.Cookie("sessionId")
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		ok, e := h.as.CheckAuth(sessionId.Value)
		if !ok {
			if e != nil {
				http.Error(w, "server error", http.StatusInternalServerError)
			} else {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
			}
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) ErrorHandleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic occured: %v \n stacktrace: %v", rec, string(debug.Stack()))
				http.Error(w, "something went wrong, contact with service administration", http.StatusBadGateway)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func WriteErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrServerError):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	case errors.Is(err, models.ErrUnautorized):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrBadRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrNotFoundError):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrLastAddress):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrNotAllowed):
		http.Error(w, err.Error(), http.StatusNotAcceptable)
	}
}

func locationKind(err error) string {
	switch {
	case errors.Is(err, models.ErrLocationDenied):
		return "permission-denied"
	case errors.Is(err, models.ErrLocationUnavailable):
		return "unavailable"
	case errors.Is(err, models.ErrLocationTimeout):
		return "timeout"
	case errors.Is(err, models.ErrLocationUnknown):
		return "unknown"
	}
	return ""
}

func parseBrowseQuery(r *http.Request) (q entities.BrowseQuery, err error) {
	q.Search = r.URL.Query().Get("search")
	q.Category = r.URL.Query().Get("category")
	q.SortBy = r.URL.Query().Get("sort")

	if v := r.URL.Query().Get("page"); v != "" {
		q.Page, err = strconv.Atoi(v)
		if err != nil {
			return
		}
	}
	if v := r.URL.Query().Get("min_price"); v != "" {
		q.MinPrice, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return
		}
	}
	if v := r.URL.Query().Get("max_price"); v != "" {
		q.MaxPrice, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return
		}
	}
	if v := r.URL.Query().Get("min_rating"); v != "" {
		q.MinRating, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return
		}
	}
	return
}
