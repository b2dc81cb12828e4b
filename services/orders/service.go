package orders

import (
	"github.com/go-playground/validator/v10"

	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mypublisher"
	"github.com/MarcGrol/shopcheckout/lib/mypubsub"
	"github.com/MarcGrol/shopcheckout/lib/mystore"
	"github.com/MarcGrol/shopcheckout/lib/mytime"
	"github.com/MarcGrol/shopcheckout/lib/myuuid"
)

type Service struct {
	orderStore mystore.Store[OrderRecord]
	publisher  mypublisher.Publisher
	pubsub     mypubsub.PubSub
	nower      mytime.Nower
	uuider     myuuid.UUIDer
	validate   *validator.Validate
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(store mystore.Store[OrderRecord], nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher, pubsub mypubsub.PubSub) *Service {
	return &Service{
		orderStore: store,
		publisher:  pub,
		pubsub:     pubsub,
		nower:      nower,
		uuider:     uuider,
		validate:   validator.New(),
		logger:     logger,
	}
}
