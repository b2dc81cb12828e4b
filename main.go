package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopcheckout/lib/myevents"
	"github.com/MarcGrol/shopcheckout/lib/myhttpclient"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mypublisher"
	"github.com/MarcGrol/shopcheckout/lib/mypubsub"
	"github.com/MarcGrol/shopcheckout/lib/myqueue"
	"github.com/MarcGrol/shopcheckout/lib/mysession"
	"github.com/MarcGrol/shopcheckout/lib/mystore"
	"github.com/MarcGrol/shopcheckout/lib/mytime"
	"github.com/MarcGrol/shopcheckout/lib/myuuid"
	"github.com/MarcGrol/shopcheckout/services/cart"
	"github.com/MarcGrol/shopcheckout/services/checkout"
	"github.com/MarcGrol/shopcheckout/services/orderapi"
	"github.com/MarcGrol/shopcheckout/services/orders"
	"github.com/MarcGrol/shopcheckout/services/refdata"
	"github.com/MarcGrol/shopcheckout/services/warmup"
)

func main() {
	c := context.Background()
	cfg := loadConfig()

	router := mux.NewRouter()
	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}
	sessions := mysession.New(cfg.SessionSecret, uuider)

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating queue: %s", err)
	}
	defer queueCleanup()

	outboxStore, outboxStoreCleanup, err := mystore.New[myevents.EventEnvelope](c)
	if err != nil {
		log.Fatalf("Error creating outbox store: %s", err)
	}
	defer outboxStoreCleanup()

	publisher := mypublisher.New(c, outboxStore, pubsub, queue, nower)
	publisher.RegisterEndpoints(c, router)

	refdataService := createReferenceDataService(c, router, nower)
	warmup.NewService(refdataService).RegisterEndpoints(c, router)
	cartService := createCartService(c, router, sessions, nower)

	orderStore, orderStoreCleanup, err := mystore.New[orders.OrderRecord](c)
	if err != nil {
		log.Fatalf("Error creating order store: %s", err)
	}
	defer orderStoreCleanup()

	orderService := orders.NewService(orderStore, nower, uuider, mylog.New("orders"), publisher, pubsub)
	orders.NewWebService(orderService, mylog.New("orders")).RegisterEndpoints(c, router)
	err = orderService.Subscribe(c)
	if err != nil {
		log.Fatalf("Error subscribing to order events: %s", err)
	}

	var placer orderapi.OrderPlacer = orderService
	if cfg.OrderBackendURL != "" {
		placer = orderapi.NewHTTPOrderPlacer(myhttpclient.New(), cfg.OrderBackendURL)
	}

	checkoutService := checkout.NewWebService(refdataService, cartService, placer, sessions, nower, uuider, cfg.ContinueShoppingURL, mylog.New("checkout"))
	checkoutService.RegisterEndpoints(c, router)
	defer checkoutService.Close()

	startWebServerBlocking(c, cfg.Port, router)
}

func createReferenceDataService(c context.Context, router *mux.Router, nower mytime.Nower) *refdata.Service {
	countryStore, _, err := mystore.New[refdata.Country](c)
	if err != nil {
		log.Fatalf("Error creating country store: %s", err)
	}
	stateStore, _, err := mystore.New[refdata.State](c)
	if err != nil {
		log.Fatalf("Error creating state store: %s", err)
	}

	logger := mylog.New("refdata")
	service := refdata.NewService(countryStore, stateStore, nower, logger)
	err = service.Seed(c)
	if err != nil {
		log.Fatalf("Error seeding reference data: %s", err)
	}
	refdata.NewWebService(service, logger).RegisterEndpoints(c, router)

	return service
}

func createCartService(c context.Context, router *mux.Router, sessions *mysession.Sessions, nower mytime.Nower) *cart.Service {
	cartStore, _, err := mystore.New[cart.Cart](c)
	if err != nil {
		log.Fatalf("Error creating cart store: %s", err)
	}

	logger := mylog.New("cart")
	service := cart.NewService(cartStore, nower, logger)
	cart.NewWebService(service, sessions, logger).RegisterEndpoints(c, router)

	return service
}

func startWebServerBlocking(c context.Context, port string, router *mux.Router) {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
		<-signals

		log.Printf("Stopping webserver on port %s", port)
		err := server.Shutdown(c)
		if err != nil {
			log.Printf("Error stopping webserver: %s", err)
		}
	}()

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
