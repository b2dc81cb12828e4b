package checkout

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopcheckout/lib/mycontext"
	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/lib/myhttp"
	"github.com/MarcGrol/shopcheckout/lib/myhttpclient"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mysession"
	"github.com/MarcGrol/shopcheckout/lib/mytime"
	"github.com/MarcGrol/shopcheckout/lib/myuuid"
	"github.com/MarcGrol/shopcheckout/services/orderapi"
)

const settleTimeout = 5 * time.Second

// Placing an order waits for the order backend, so it gets at least the time the backend call may take
const purchaseTimeout = myhttpclient.Timeout + settleTimeout

type webService struct {
	visits          *visitRegistry
	sessions        *mysession.Sessions
	refData         ReferenceData
	cartSummary     CartSummary
	placer          orderapi.OrderPlacer
	nower           mytime.Nower
	uuider          myuuid.UUIDer
	decoder         *form.Decoder
	continueURL     string
	settleTimeout   time.Duration
	purchaseTimeout time.Duration
	logger          mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(refData ReferenceData, cartSummary CartSummary, placer orderapi.OrderPlacer, sessions *mysession.Sessions, nower mytime.Nower, uuider myuuid.UUIDer, continueURL string, logger mylog.Logger) *webService {
	return &webService{
		visits:          newVisitRegistry(),
		sessions:        sessions,
		refData:         refData,
		cartSummary:     cartSummary,
		placer:          placer,
		nower:           nower,
		uuider:          uuider,
		decoder:         form.NewDecoder(),
		continueURL:     continueURL,
		settleTimeout:   settleTimeout,
		purchaseTimeout: purchaseTimeout,
		logger:          logger,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	// Endpoints that compose the userinterface
	router.HandleFunc("/checkout", s.startVisitPage()).Methods("GET")
	router.HandleFunc("/checkout/{visitUID}", s.formPage()).Methods("GET")
	router.HandleFunc("/checkout/{visitUID}/input", s.inputPage()).Methods("POST")
	router.HandleFunc("/checkout/{visitUID}/billing", s.billingPage()).Methods("POST")
	router.HandleFunc("/checkout/{visitUID}/purchase", s.purchasePage()).Methods("POST")

	router.HandleFunc("/api/checkout/{visitUID}", s.visitSnapshot()).Methods("GET")
}

// Close ends all running visits
func (s *webService) Close() {
	s.visits.closeAll()
}

//go:embed templates
var templateFolder embed.FS
var (
	checkoutPageTemplate     *template.Template
	confirmationPageTemplate *template.Template
)

func init() {
	checkoutPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/checkout.html"))
	confirmationPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/confirmation.html"))
}

func (s *webService) startVisitPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID, err := s.sessions.CartUID(w, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}

		visitUID := s.uuider.Create()

		s.logger.Log(c, visitUID, mylog.SeverityInfo, "Start checkout visit %s for cart %s", visitUID, cartUID)

		// The visit outlives this request
		visitContext := mycontext.WithTrace(context.Background(), mycontext.TraceFromContext(c))
		ctl := NewController(visitContext, visitUID, cartUID, s.refData, s.cartSummary, s.placer, s.nower, s.continueURL, s.logger)
		ctl.Initialize()
		s.visits.add(visitUID, ctl)

		http.Redirect(w, r, fmt.Sprintf("%s/checkout/%s", myhttp.HostnameWithScheme(r), visitUID), http.StatusSeeOther)
	}
}

func (s *webService) formPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		visitUID := mux.Vars(r)["visitUID"]
		ctl, err := s.lookupVisit(visitUID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		view, err := s.settledView(c, ctl, s.settleTimeout)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		// The order was placed after the purchase request stopped waiting for it
		if view.TrackingNumber != "" {
			err = s.showConfirmation(w, visitUID, view)
			if err != nil {
				errorWriter.WriteError(c, w, 19, err)
			}
			return
		}

		err = s.renderForm(c, w, ctl)
		if err != nil {
			errorWriter.WriteError(c, w, 20, err)
			return
		}
	}
}

func (s *webService) inputPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		ctl, err := s.lookupVisit(mux.Vars(r)["visitUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		input, err := s.decodeInput(r)
		if err != nil {
			errorWriter.WriteError(c, w, 5, err)
			return
		}

		ctl.ApplyInput(input)

		err = s.renderForm(c, w, ctl)
		if err != nil {
			errorWriter.WriteError(c, w, 6, err)
			return
		}
	}
}

func (s *webService) billingPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		ctl, err := s.lookupVisit(mux.Vars(r)["visitUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 7, err)
			return
		}

		input, err := s.decodeInput(r)
		if err != nil {
			errorWriter.WriteError(c, w, 8, err)
			return
		}

		ctl.ApplyInput(input)
		// Copy the shipping states as they are after the input has been processed
		err = s.settle(c, ctl, s.settleTimeout)
		if err != nil {
			errorWriter.WriteError(c, w, 9, err)
			return
		}
		ctl.ToggleBillingSameAsShipping(input.BillingSameAsShipping)

		err = s.renderForm(c, w, ctl)
		if err != nil {
			errorWriter.WriteError(c, w, 10, err)
			return
		}
	}
}

func (s *webService) purchasePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		visitUID := mux.Vars(r)["visitUID"]
		ctl, err := s.lookupVisit(visitUID)
		if err != nil {
			errorWriter.WriteError(c, w, 11, err)
			return
		}

		input, err := s.decodeInput(r)
		if err != nil {
			errorWriter.WriteError(c, w, 12, err)
			return
		}

		// States requested by earlier input must have arrived before the input is matched against them
		err = s.settle(c, ctl, s.settleTimeout)
		if err != nil {
			errorWriter.WriteError(c, w, 13, err)
			return
		}
		ctl.SubmitInput(input)

		view, err := s.settledView(c, ctl, s.purchaseTimeout)
		if err != nil {
			errorWriter.WriteError(c, w, 14, err)
			return
		}

		if view.TrackingNumber == "" {
			err = s.renderForm(c, w, ctl)
			if err != nil {
				errorWriter.WriteError(c, w, 15, err)
			}
			return
		}

		err = s.showConfirmation(w, visitUID, view)
		if err != nil {
			errorWriter.WriteError(c, w, 16, err)
			return
		}
	}
}

func (s *webService) visitSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		ctl, err := s.lookupVisit(mux.Vars(r)["visitUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 17, err)
			return
		}

		view, err := s.settledView(c, ctl, s.settleTimeout)
		if err != nil {
			errorWriter.WriteError(c, w, 18, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, view)
	}
}

func (s *webService) lookupVisit(visitUID string) (*Controller, error) {
	ctl, found := s.visits.get(visitUID)
	if !found {
		return nil, myerrors.NewNotFoundError(fmt.Errorf("checkout visit with uid %s not found", visitUID))
	}
	return ctl, nil
}

func (s *webService) decodeInput(r *http.Request) (FormInput, error) {
	err := r.ParseForm()
	if err != nil {
		return FormInput{}, myerrors.NewInvalidInputError(err)
	}

	input := FormInput{}
	err = s.decoder.Decode(&input, r.PostForm)
	if err != nil {
		return FormInput{}, myerrors.NewInvalidInputError(err)
	}

	return input, nil
}

func (s *webService) settle(c context.Context, ctl *Controller, timeout time.Duration) error {
	c, cancel := context.WithTimeout(c, timeout)
	defer cancel()

	err := ctl.Settle(c)
	if err != nil {
		return myerrors.NewUnavailableError(err)
	}
	return nil
}

func (s *webService) settledView(c context.Context, ctl *Controller, timeout time.Duration) (View, error) {
	err := s.settle(c, ctl, timeout)
	if err != nil {
		return View{}, err
	}

	view, err := ctl.Snapshot(c)
	if err != nil {
		return View{}, myerrors.NewUnavailableError(err)
	}
	return view, nil
}

// renderForm shows notices only once
func (s *webService) renderForm(c context.Context, w http.ResponseWriter, ctl *Controller) error {
	err := s.settle(c, ctl, s.settleTimeout)
	if err != nil {
		return err
	}

	view, err := ctl.TakeView(c)
	if err != nil {
		return myerrors.NewUnavailableError(err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = checkoutPageTemplate.Execute(w, view)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}

// showConfirmation ends the visit: the form is gone once the order has been placed
func (s *webService) showConfirmation(w http.ResponseWriter, visitUID string, view View) error {
	s.visits.remove(visitUID)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := confirmationPageTemplate.Execute(w, view)
	if err != nil {
		return myerrors.NewInternalError(err)
	}
	return nil
}
