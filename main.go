package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"
	"tradehub/config"
	"tradehub/handlers"
	"tradehub/repository"
	"tradehub/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/redis/go-redis/v9"
)

var db *sql.DB
var rdb *redis.Client

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using environment")
	}
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	initDB(cfg)
	defer db.Close()
	defer rdb.Close()

	stR, err := repository.NewStoreRepository(db)
	sR, err2 := repository.NewSessionRepository(rdb, context.Background())
	cartR, _ := repository.NewCartRepository(rdb, context.Background())
	navR, _ := repository.NewNavRepository(rdb, context.Background())
	catR := repository.NewCatalogRepository()
	if err != nil {
		panic(err)
	}
	log.Printf("store connected")
	if err2 != nil {
		panic(err2)
	}
	log.Printf("redis connected")
	addrR, err := repository.NewAddressRepository(stR)
	if err != nil {
		panic(err)
	}

	hp := handlers.HandlerParams{
		AuthService: services.NewAuthService(sR, cartR, navR, cfg.OtpDelay, cfg.VerifyDelay, cfg.OtpStrict),
		CrtService:  services.NewCartService(catR, cartR),
		CatService:  services.NewCatalogService(catR, navR),
		OrdService:  services.NewOrderService(cartR, navR, addrR, cfg.OrderDelay),
		AddrService: services.NewAddressService(addrR),
		LocService:  services.NewLocationService(stR, cfg.LocationDelay, cfg.LocationOutcome),
		NavService:  services.NewNavigationService(navR, sR, stR, addrR, catR),
		SupService:  services.NewSupportService(cfg.ChatWidgetUrl),
	}
	ha := handlers.NewHandler(hp)
	router := mux.NewRouter()
	router.Use(ha.ErrorHandleMiddleware)
	subAuth := router.NewRoute().Subrouter()
	subAuth.Use(ha.AuthMiddleware)

	router.HandleFunc("/", ha.Welcome)
	router.HandleFunc("/gate", ha.Gate).Methods("GET")
	router.HandleFunc("/auth/otp/send", ha.SendOtp).Methods("POST")
	router.HandleFunc("/auth/otp/verify", ha.VerifyOtp).Methods("POST")
	subAuth.HandleFunc("/auth/logout", ha.Logout).Methods("POST")

	router.HandleFunc("/location/detect", ha.DetectLocation).Methods("POST")
	router.HandleFunc("/location/skip", ha.SkipLocation).Methods("POST")
	router.HandleFunc("/location", ha.GetLocation).Methods("GET")

	router.HandleFunc("/catalog/categories", ha.GetAllCategories).Methods("GET")
	subAuth.HandleFunc("/catalog/products", ha.BrowseProducts).Methods("GET")
	subAuth.HandleFunc("/catalog/products/{id:[0-9]+}", ha.GetProduct).Methods("GET")

	subAuth.HandleFunc("/cart", ha.GetCart).Methods("GET")
	subAuth.HandleFunc("/cart", ha.AddToCart).Methods("POST")
	subAuth.HandleFunc("/cart", ha.UpdateCartQuantity).Methods("PUT")
	subAuth.HandleFunc("/cart", ha.DeleteFromCart).Methods("DELETE")
	subAuth.HandleFunc("/cart/checkout", ha.CreateOrder).Methods("POST")

	subAuth.HandleFunc("/orders/confirmation", ha.GetOrderConfirmation).Methods("GET")
	subAuth.HandleFunc("/orders", ha.GetOrders).Methods("GET")

	subAuth.HandleFunc("/addresses", ha.GetAddresses).Methods("GET")
	subAuth.HandleFunc("/addresses", ha.AddAddress).Methods("POST")
	subAuth.HandleFunc("/addresses/prefill", ha.PrefillAddress).Methods("GET")
	subAuth.HandleFunc("/addresses/{id}", ha.UpdateAddress).Methods("PUT")
	subAuth.HandleFunc("/addresses/{id}", ha.DeleteAddress).Methods("DELETE")
	subAuth.HandleFunc("/addresses/{id}/default", ha.SetDefaultAddress).Methods("POST")

	subAuth.HandleFunc("/profile", ha.GetProfile).Methods("GET")
	router.HandleFunc("/support", ha.GetSupport).Methods("GET")

	subAuth.HandleFunc("/navigation", ha.GetNavigation).Methods("GET")
	subAuth.HandleFunc("/navigation", ha.Navigate).Methods("POST")

	log.Printf("starting server...")
	http.ListenAndServe(":"+cfg.Port, router)
}

func initDB(cfg *config.Config) {
	var err error

	db, err = sql.Open("sqlite3", cfg.StorePath)
	if err != nil {
		panic(err)
	}

	rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
		Password: "",
		DB:       0,
	})
	ctx, cncl := context.WithTimeout(context.Background(), 5*time.Second)
	defer cncl()
	if status := rdb.Ping(ctx); status.Err() != nil {
		panic("redis is not working: " + status.Err().Error())
	}
}
