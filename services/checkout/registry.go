package checkout

import "sync"

// TODO expire visits that were abandoned without placing an order
type visitRegistry struct {
	sync.Mutex
	controllers map[string]*Controller
}

func newVisitRegistry() *visitRegistry {
	return &visitRegistry{
		controllers: map[string]*Controller{},
	}
}

func (r *visitRegistry) add(visitUID string, ctl *Controller) {
	r.Lock()
	defer r.Unlock()

	r.controllers[visitUID] = ctl
}

func (r *visitRegistry) get(visitUID string) (*Controller, bool) {
	r.Lock()
	defer r.Unlock()

	ctl, found := r.controllers[visitUID]
	return ctl, found
}

func (r *visitRegistry) remove(visitUID string) {
	r.Lock()
	ctl, found := r.controllers[visitUID]
	delete(r.controllers, visitUID)
	r.Unlock()

	if found {
		ctl.Close()
	}
}

func (r *visitRegistry) closeAll() {
	r.Lock()
	controllers := r.controllers
	r.controllers = map[string]*Controller{}
	r.Unlock()

	for _, ctl := range controllers {
		ctl.Close()
	}
}
