package refdata

import (
	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mystore"
	"github.com/MarcGrol/shopcheckout/lib/mytime"
)

const yearsAhead = 10

type Service struct {
	countryStore mystore.Store[Country]
	stateStore   mystore.Store[State]
	nower        mytime.Nower
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(countryStore mystore.Store[Country], stateStore mystore.Store[State], nower mytime.Nower, logger mylog.Logger) *Service {
	return &Service{
		countryStore: countryStore,
		stateStore:   stateStore,
		nower:        nower,
		logger:       logger,
	}
}
