package refdata

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopcheckout/lib/mycontext"
	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/lib/myhttp"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
)

type webService struct {
	service *Service
	logger  mylog.Logger
}

func NewWebService(service *Service, logger mylog.Logger) *webService {
	return &webService{
		service: service,
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/countries", s.countries()).Methods("GET")
	router.HandleFunc("/api/states", s.states()).Methods("GET")
	router.HandleFunc("/api/creditcard/months", s.creditCardMonths()).Methods("GET")
	router.HandleFunc("/api/creditcard/years", s.creditCardYears()).Methods("GET")
}

func (s webService) countries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		countries, err := s.service.GetCountries(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, countries)
	}
}

func (s webService) states() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		states, err := s.service.GetStates(c, r.URL.Query().Get("code"))
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, states)
	}
}

func (s webService) creditCardMonths() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		startMonth := 1
		if start := r.URL.Query().Get("start"); start != "" {
			var err error
			startMonth, err = strconv.Atoi(start)
			if err != nil {
				errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(err))
				return
			}
		}

		months, err := s.service.GetCreditCardMonths(c, startMonth)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, months)
	}
}

func (s webService) creditCardYears() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		years, err := s.service.GetCreditCardYears(c)
		if err != nil {
			errorWriter.WriteError(c, w, 5, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, years)
	}
}
