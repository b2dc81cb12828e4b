package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopcheckout/lib/mycontext"
	"github.com/MarcGrol/shopcheckout/lib/myhttp"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/services/refdata"
)

//go:generate mockgen -source=web.go -package warmup -destination countrylister_mock.go CountryLister
type CountryLister interface {
	GetCountries(c context.Context) ([]refdata.Country, error)
}

type webService struct {
	logger    mylog.Logger
	countries CountryLister
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(countries CountryLister) *webService {
	return &webService{
		logger:    mylog.New("warmup"),
		countries: countries,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

// warmupPage touches the reference data store before the first visitor needs it
func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		countries, err := s.countries.GetCountries(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}
		s.logger.Log(c, "", mylog.SeverityInfo, "Warmed up with %d countries", len(countries))

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}
