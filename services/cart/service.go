package cart

import (
	"sync"

	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mystore"
	"github.com/MarcGrol/shopcheckout/lib/mytime"
)

type subscriber struct {
	id       int
	onChange func(Summary)
}

type Service struct {
	cartStore mystore.Store[Cart]
	nower     mytime.Nower
	logger    mylog.Logger

	mutex            sync.Mutex
	lastSubscriberID int
	subscribers      map[string][]subscriber
	// changes of a cart and the notifications about them happen in commit order
	cartLocks map[string]*sync.Mutex
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(store mystore.Store[Cart], nower mytime.Nower, logger mylog.Logger) *Service {
	return &Service{
		cartStore:   store,
		nower:       nower,
		logger:      logger,
		subscribers: map[string][]subscriber{},
		cartLocks:   map[string]*sync.Mutex{},
	}
}

func (s *Service) lockCart(cartUID string) func() {
	s.mutex.Lock()
	lock, found := s.cartLocks[cartUID]
	if !found {
		lock = &sync.Mutex{}
		s.cartLocks[cartUID] = lock
	}
	s.mutex.Unlock()

	lock.Lock()
	return lock.Unlock
}
