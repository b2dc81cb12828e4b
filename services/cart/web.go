package cart

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopcheckout/lib/mycontext"
	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/lib/myhttp"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mysession"
)

type webService struct {
	service  *Service
	sessions *mysession.Sessions
	decoder  *form.Decoder
	logger   mylog.Logger
}

func NewWebService(service *Service, sessions *mysession.Sessions, logger mylog.Logger) *webService {
	return &webService{
		service:  service,
		sessions: sessions,
		decoder:  form.NewDecoder(),
		logger:   logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/", s.cartPage()).Methods("GET")
	router.HandleFunc("/cart", s.cartPage()).Methods("GET")
	router.HandleFunc("/cart/items", s.addItemPage()).Methods("POST")
	router.HandleFunc("/cart/items/{productUID}/decrement", s.decrementItemPage()).Methods("POST")
	router.HandleFunc("/cart/items/{productUID}/remove", s.removeItemPage()).Methods("POST")

	router.HandleFunc("/api/cart", s.cartSummary()).Methods("GET")
}

//go:embed templates
var templateFolder embed.FS
var (
	cartPageTemplate *template.Template
)

func init() {
	cartPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/cart.html"))
}

type addItemForm struct {
	ProductUID string `form:"productUID"`
	Quantity   int    `form:"quantity"`
}

type cartPageInfo struct {
	Products []Product
	Summary  Summary
}

func (s webService) cartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID, err := s.sessions.CartUID(w, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}

		summary, err := s.service.Summary(c, cartUID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = cartPageTemplate.Execute(w, cartPageInfo{
			Products: listProducts(),
			Summary:  summary,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 3, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s webService) addItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID, err := s.sessions.CartUID(w, r)
		if err != nil {
			errorWriter.WriteError(c, w, 4, myerrors.NewInternalError(err))
			return
		}

		err = r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 5, myerrors.NewInvalidInputError(err))
			return
		}

		item := addItemForm{Quantity: 1}
		err = s.decoder.Decode(&item, r.Form)
		if err != nil {
			errorWriter.WriteError(c, w, 6, myerrors.NewInvalidInputError(err))
			return
		}

		_, err = s.service.AddToCart(c, cartUID, item.ProductUID, item.Quantity)
		if err != nil {
			errorWriter.WriteError(c, w, 7, err)
			return
		}

		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	}
}

func (s webService) decrementItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID, err := s.sessions.CartUID(w, r)
		if err != nil {
			errorWriter.WriteError(c, w, 8, myerrors.NewInternalError(err))
			return
		}

		_, err = s.service.DecrementQuantity(c, cartUID, mux.Vars(r)["productUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 9, err)
			return
		}

		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	}
}

func (s webService) removeItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID, err := s.sessions.CartUID(w, r)
		if err != nil {
			errorWriter.WriteError(c, w, 10, myerrors.NewInternalError(err))
			return
		}

		_, err = s.service.Remove(c, cartUID, mux.Vars(r)["productUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 11, err)
			return
		}

		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	}
}

func (s webService) cartSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID, err := s.sessions.CartUID(w, r)
		if err != nil {
			errorWriter.WriteError(c, w, 12, myerrors.NewInternalError(err))
			return
		}

		summary, err := s.service.Summary(c, cartUID)
		if err != nil {
			errorWriter.WriteError(c, w, 13, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, summary)
	}
}
