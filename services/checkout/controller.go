package checkout

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mytime"
	"github.com/MarcGrol/shopcheckout/services/cart"
	"github.com/MarcGrol/shopcheckout/services/orderapi"
	"github.com/MarcGrol/shopcheckout/services/refdata"
)

const mailboxSize = 32

var ErrClosed = errors.New("checkout visit is closed")

const reviewMessage = "Please review your address and payment details before placing the order."

type state struct {
	form                  Form
	touched               map[string]bool
	billingSameAsShipping bool
	countries             []refdata.Country
	shippingStates        []refdata.State
	billingStates         []refdata.State
	creditCardMonths      []int
	creditCardYears       []int
	totalPrice            decimal.Decimal
	totalQuantity         int
	lineItems             []cart.CartItem
	notices               []Notice
	submitting            bool
	trackingNumber        string
	redirectURL           string
}

func newState() state {
	return state{
		touched:    map[string]bool{},
		totalPrice: decimal.Zero,
		lineItems:  []cart.CartItem{},
	}
}

func (s *state) address(kind AddressKind) *Address {
	if kind == BillingAddress {
		return &s.form.BillingAddress
	}
	return &s.form.ShippingAddress
}

// selectsFor reports whether input changes a country or expiration year; the controller then picks the
// first state or the month range itself.
func (s *state) selectsFor(input FormInput) bool {
	return s.form.ShippingAddress.CountryCode() != input.ShippingAddress.Country ||
		s.form.BillingAddress.CountryCode() != input.BillingAddress.Country ||
		s.form.CreditCard.ExpirationYear != input.CreditCard.ExpirationYear
}

func (s *state) states(kind AddressKind) *[]refdata.State {
	if kind == BillingAddress {
		return &s.billingStates
	}
	return &s.shippingStates
}

// Controller holds the checkout form of a single visit.
//
// All state is owned by one goroutine that executes actions from a mailbox. Public methods only post
// actions. Collaborators are called from separate goroutines and their outcome is posted back as an action.
type Controller struct {
	ctx         context.Context
	visitUID    string
	cartUID     string
	refdata     ReferenceData
	cart        CartSummary
	placer      orderapi.OrderPlacer
	nower       mytime.Nower
	validator   *formValidator
	continueURL string
	logger      mylog.Logger

	actions   chan func()
	done      chan struct{}
	closeOnce sync.Once

	// owned by the loop
	state         state
	inFlight      int
	settleWaiters []chan struct{}
	unsubscribe   func()
}

func NewController(c context.Context, visitUID string, cartUID string, refData ReferenceData, cartSummary CartSummary, placer orderapi.OrderPlacer, nower mytime.Nower, continueURL string, logger mylog.Logger) *Controller {
	ctl := &Controller{
		ctx:         c,
		visitUID:    visitUID,
		cartUID:     cartUID,
		refdata:     refData,
		cart:        cartSummary,
		placer:      placer,
		nower:       nower,
		validator:   newFormValidator(),
		continueURL: continueURL,
		logger:      logger,
		actions:     make(chan func(), mailboxSize),
		done:        make(chan struct{}),
		state:       newState(),
	}
	go ctl.run()

	return ctl
}

func (ctl *Controller) run() {
	for {
		select {
		case action := <-ctl.actions:
			action()
		case <-ctl.done:
			return
		}
	}
}

func (ctl *Controller) post(action func()) bool {
	select {
	case <-ctl.done:
		return false
	default:
	}

	select {
	case ctl.actions <- action:
		return true
	case <-ctl.done:
		return false
	}
}

// call runs work outside the loop and applies the completion it returns on the loop
func (ctl *Controller) call(work func(c context.Context) func()) {
	ctl.inFlight++
	go func() {
		completion := work(ctl.ctx)
		ctl.post(func() {
			ctl.inFlight--
			completion()
			ctl.releaseSettled()
		})
	}()
}

func (ctl *Controller) releaseSettled() {
	if ctl.inFlight > 0 {
		return
	}
	for _, waiter := range ctl.settleWaiters {
		close(waiter)
	}
	ctl.settleWaiters = nil
}

// Initialize starts with an empty form and fetches everything needed to fill it in
func (ctl *Controller) Initialize() {
	ctl.post(func() {
		ctl.state = newState()
		ctl.subscribeToCart()
		ctl.requestCreditCardMonths(int(ctl.nower.Now().Month()))
		ctl.requestCreditCardYears()
		ctl.requestCountries()
	})
}

func (ctl *Controller) ApplyInput(input FormInput) {
	ctl.post(func() {
		ctl.applyInput(input)
	})
}

func (ctl *Controller) ToggleBillingSameAsShipping(checked bool) {
	ctl.post(func() {
		ctl.toggleBillingSameAsShipping(checked)
	})
}

func (ctl *Controller) OnCountrySelected(kind AddressKind) {
	ctl.post(func() {
		ctl.onCountrySelected(kind)
	})
}

func (ctl *Controller) OnExpirationYearChanged() {
	ctl.post(ctl.onExpirationYearChanged)
}

func (ctl *Controller) Submit() {
	ctl.post(ctl.submit)
}

// SubmitInput applies input and places the order, unless input makes the controller choose a value the
// user has not seen yet. Then the form is only updated and the user is asked to review it.
func (ctl *Controller) SubmitInput(input FormInput) {
	ctl.post(func() {
		review := ctl.state.selectsFor(input)
		ctl.applyInput(input)
		if review {
			ctl.state.notices = append(ctl.state.notices, Notice{
				Kind:    NoticeInfo,
				Message: reviewMessage,
			})
			return
		}
		ctl.submit()
	})
}

func (ctl *Controller) ClearNotices() {
	ctl.post(func() {
		ctl.state.notices = nil
	})
}

// Settle waits until all posted actions have been executed and no collaborator call is pending
func (ctl *Controller) Settle(c context.Context) error {
	settled := make(chan struct{})
	posted := ctl.post(func() {
		ctl.settleWaiters = append(ctl.settleWaiters, settled)
		ctl.releaseSettled()
	})
	if !posted {
		return ErrClosed
	}

	select {
	case <-settled:
		return nil
	case <-c.Done():
		return c.Err()
	case <-ctl.done:
		return ErrClosed
	}
}

func (ctl *Controller) Snapshot(c context.Context) (View, error) {
	return ctl.snapshot(c, false)
}

// TakeView returns the current view and clears its notices in the same action, so every notice is shown exactly once
func (ctl *Controller) TakeView(c context.Context) (View, error) {
	return ctl.snapshot(c, true)
}

func (ctl *Controller) snapshot(c context.Context, clearNotices bool) (View, error) {
	views := make(chan View, 1)
	posted := ctl.post(func() {
		views <- ctl.view()
		if clearNotices {
			ctl.state.notices = nil
		}
	})
	if !posted {
		return View{}, ErrClosed
	}

	select {
	case view := <-views:
		return view, nil
	case <-c.Done():
		return View{}, c.Err()
	case <-ctl.done:
		return View{}, ErrClosed
	}
}

// Close ends the visit: the cart subscription is cancelled and later actions are dropped
func (ctl *Controller) Close() {
	ctl.closeOnce.Do(func() {
		ctl.post(func() {
			if ctl.unsubscribe != nil {
				go ctl.unsubscribe()
				ctl.unsubscribe = nil
			}
			close(ctl.done)
		})
	})
}

func (ctl *Controller) subscribeToCart() {
	ctl.inFlight++
	go func() {
		unsubscribe, err := ctl.cart.Subscribe(ctl.ctx, ctl.cartUID, ctl.onCartChanged)
		posted := ctl.post(func() {
			ctl.inFlight--
			if err != nil {
				ctl.warn("cart summary", err)
			} else {
				ctl.unsubscribe = unsubscribe
			}
			ctl.releaseSettled()
		})
		if !posted && err == nil {
			unsubscribe()
		}
	}()
}

func (ctl *Controller) onCartChanged(summary cart.Summary) {
	ctl.post(func() {
		ctl.state.totalPrice = summary.TotalPrice
		ctl.state.totalQuantity = summary.TotalQuantity
		ctl.state.lineItems = summary.Items
	})
}

func (ctl *Controller) requestCreditCardMonths(startMonth int) {
	ctl.call(func(c context.Context) func() {
		months, err := ctl.refdata.GetCreditCardMonths(c, startMonth)
		return func() {
			if err != nil {
				ctl.warn("credit card months", err)
				return
			}
			ctl.state.creditCardMonths = months
		}
	})
}

func (ctl *Controller) requestCreditCardYears() {
	ctl.call(func(c context.Context) func() {
		years, err := ctl.refdata.GetCreditCardYears(c)
		return func() {
			if err != nil {
				ctl.warn("credit card years", err)
				return
			}
			ctl.state.creditCardYears = years
		}
	})
}

func (ctl *Controller) requestCountries() {
	ctl.call(func(c context.Context) func() {
		countries, err := ctl.refdata.GetCountries(c)
		return func() {
			if err != nil {
				ctl.warn("countries", err)
				return
			}
			ctl.state.countries = countries
		}
	})
}

// requestStates does not cancel earlier requests: the last response to arrive wins
func (ctl *Controller) requestStates(kind AddressKind, countryCode string) {
	ctl.call(func(c context.Context) func() {
		states, err := ctl.refdata.GetStates(c, countryCode)
		return func() {
			if err != nil {
				ctl.warn("states", err)
				return
			}
			*ctl.state.states(kind) = states

			address := ctl.state.address(kind)
			address.State = nil
			if len(states) > 0 {
				first := states[0]
				address.State = &first
			}
		}
	})
}

func (ctl *Controller) warn(what string, err error) {
	ctl.logger.Log(ctl.ctx, ctl.visitUID, mylog.SeverityWarn, "Error fetching %s: %s", what, err)
	ctl.state.notices = append(ctl.state.notices, Notice{
		Kind:    NoticeWarning,
		Message: fmt.Sprintf("Could not load %s: %s", what, myerrors.Cause(err)),
	})
}

func (ctl *Controller) touch(field string) {
	ctl.state.touched[field] = true
}

func (ctl *Controller) touchAll() {
	for _, field := range allFields {
		ctl.touch(field)
	}
}

func (ctl *Controller) setString(target *string, value string, field string) {
	if *target == value {
		return
	}
	*target = value
	ctl.touch(field)
}

func (ctl *Controller) setInt(target *int, value int, field string) bool {
	if *target == value {
		return false
	}
	*target = value
	ctl.touch(field)
	return true
}

func (ctl *Controller) applyInput(input FormInput) {
	form := &ctl.state.form

	ctl.setString(&form.Customer.FirstName, input.Customer.FirstName, "customer.firstName")
	ctl.setString(&form.Customer.LastName, input.Customer.LastName, "customer.lastName")
	ctl.setString(&form.Customer.Email, input.Customer.Email, "customer.email")

	ctl.applyAddress(ShippingAddress, input.ShippingAddress)
	ctl.applyAddress(BillingAddress, input.BillingAddress)

	card := &form.CreditCard
	ctl.setString(&card.CardType, input.CreditCard.CardType, "creditCard.cardType")
	ctl.setString(&card.NameOnCard, input.CreditCard.NameOnCard, "creditCard.nameOnCard")
	ctl.setString(&card.CardNumber, input.CreditCard.CardNumber, "creditCard.cardNumber")
	ctl.setString(&card.SecurityCode, input.CreditCard.SecurityCode, "creditCard.securityCode")
	ctl.setInt(&card.ExpirationMonth, input.CreditCard.ExpirationMonth, "creditCard.expirationMonth")
	if ctl.setInt(&card.ExpirationYear, input.CreditCard.ExpirationYear, "creditCard.expirationYear") {
		ctl.onExpirationYearChanged()
	}
}

func (ctl *Controller) applyAddress(kind AddressKind, input AddressInput) {
	prefix := string(kind) + "."
	address := ctl.state.address(kind)

	ctl.setString(&address.Street, input.Street, prefix+"street")
	ctl.setString(&address.City, input.City, prefix+"city")
	ctl.setString(&address.ZipCode, input.ZipCode, prefix+"zipCode")

	if address.CountryCode() != input.Country {
		ctl.touch(prefix + "country")
		address.Country = findCountry(ctl.state.countries, input.Country)
		// The submitted state belongs to the previous country
		ctl.onCountrySelected(kind)
		return
	}

	if address.StateName() != input.State {
		ctl.touch(prefix + "state")
		address.State = findState(*ctl.state.states(kind), input.State)
	}
}

func findCountry(countries []refdata.Country, code string) *refdata.Country {
	for _, country := range countries {
		if country.Code == code {
			found := country
			return &found
		}
	}
	return nil
}

func findState(states []refdata.State, name string) *refdata.State {
	for _, state := range states {
		if state.Name == name {
			found := state
			return &found
		}
	}
	return nil
}

func (ctl *Controller) toggleBillingSameAsShipping(checked bool) {
	ctl.state.billingSameAsShipping = checked

	if checked {
		ctl.state.form.BillingAddress = ctl.state.form.ShippingAddress.clone()
		ctl.state.billingStates = append([]refdata.State{}, ctl.state.shippingStates...)
		return
	}

	ctl.state.form.BillingAddress = Address{}
	ctl.state.billingStates = []refdata.State{}
	for _, field := range allFields {
		if strings.HasPrefix(field, string(BillingAddress)+".") {
			delete(ctl.state.touched, field)
		}
	}
}

func (ctl *Controller) onCountrySelected(kind AddressKind) {
	address := ctl.state.address(kind)
	address.State = nil

	if address.Country == nil {
		*ctl.state.states(kind) = []refdata.State{}
		return
	}

	ctl.requestStates(kind, address.Country.Code)
}

func (ctl *Controller) onExpirationYearChanged() {
	now := ctl.nower.Now()

	startMonth := 1
	if ctl.state.form.CreditCard.ExpirationYear == now.Year() {
		startMonth = int(now.Month())
	}

	ctl.requestCreditCardMonths(startMonth)
}

func (ctl *Controller) submit() {
	if ctl.state.submitting {
		ctl.logger.Log(ctl.ctx, ctl.visitUID, mylog.SeverityInfo, "Ignore submit: order placement in progress")
		return
	}

	problems := ctl.formProblems()
	if len(problems) > 0 {
		ctl.logger.Log(ctl.ctx, ctl.visitUID, mylog.SeverityInfo, "Submit rejected: %d invalid fields", len(problems))
		ctl.touchAll()
		return
	}

	purchase := ctl.state.purchase()
	ctl.state.submitting = true
	ctl.state.notices = nil

	ctl.call(func(c context.Context) func() {
		resp, err := ctl.placer.PlaceOrder(c, purchase)
		if err != nil {
			return func() {
				ctl.onOrderFailed(err)
			}
		}

		resetErr := ctl.cart.Reset(c, ctl.cartUID)
		return func() {
			ctl.onOrderPlaced(resp, resetErr)
		}
	})
}

func (ctl *Controller) onOrderPlaced(resp orderapi.PurchaseResponse, resetErr error) {
	ctl.logger.Log(ctl.ctx, ctl.visitUID, mylog.SeverityInfo, "Order placed with tracking number %s", resp.OrderTrackingNumber)
	if resetErr != nil {
		ctl.logger.Log(ctl.ctx, ctl.visitUID, mylog.SeverityWarn, "Error resetting cart %s: %s", ctl.cartUID, resetErr)
	}

	ctl.state.submitting = false
	ctl.state.notices = append(ctl.state.notices, Notice{
		Kind:    NoticeInfo,
		Message: fmt.Sprintf("Your order has been received.\nOrder tracking number: %s", resp.OrderTrackingNumber),
	})

	ctl.state.form = Form{}
	ctl.state.touched = map[string]bool{}
	ctl.state.billingSameAsShipping = false
	ctl.state.shippingStates = []refdata.State{}
	ctl.state.billingStates = []refdata.State{}

	ctl.state.totalPrice = decimal.Zero
	ctl.state.totalQuantity = 0
	ctl.state.lineItems = []cart.CartItem{}

	ctl.state.trackingNumber = resp.OrderTrackingNumber
	ctl.state.redirectURL = ctl.continueURL
}

func (ctl *Controller) onOrderFailed(err error) {
	ctl.logger.Log(ctl.ctx, ctl.visitUID, mylog.SeverityWarn, "Error placing order: %s", err)

	ctl.state.submitting = false
	ctl.state.notices = append(ctl.state.notices, Notice{
		Kind:    NoticeError,
		Message: fmt.Sprintf("There was an error: %s", myerrors.Cause(err)),
	})
}

// formProblems also rejects an expiration month that is no longer offered for the chosen year
func (ctl *Controller) formProblems() map[string]string {
	problems := ctl.validator.validateForm(ctl.state.form)

	month := ctl.state.form.CreditCard.ExpirationMonth
	_, invalid := problems["creditCard.expirationMonth"]
	if !invalid && len(ctl.state.creditCardMonths) > 0 && !slices.Contains(ctl.state.creditCardMonths, month) {
		problems["creditCard.expirationMonth"] = "is not available for the chosen year"
	}
	return problems
}

func (ctl *Controller) view() View {
	s := ctl.state

	touched := make(map[string]bool, len(s.touched))
	for field, value := range s.touched {
		touched[field] = value
	}
	problems := ctl.formProblems()

	return View{
		VisitUID:              ctl.visitUID,
		Form:                  s.form.clone(),
		Touched:               touched,
		Errors:                problems,
		Valid:                 len(problems) == 0,
		BillingSameAsShipping: s.billingSameAsShipping,
		Countries:             append([]refdata.Country{}, s.countries...),
		ShippingAddressStates: append([]refdata.State{}, s.shippingStates...),
		BillingAddressStates:  append([]refdata.State{}, s.billingStates...),
		CreditCardMonths:      append([]int{}, s.creditCardMonths...),
		CreditCardYears:       append([]int{}, s.creditCardYears...),
		TotalPrice:            s.totalPrice,
		TotalQuantity:         s.totalQuantity,
		LineItems:             append([]cart.CartItem{}, s.lineItems...),
		Notices:               append([]Notice{}, s.notices...),
		Submitting:            s.submitting,
		TrackingNumber:        s.trackingNumber,
		RedirectURL:           s.redirectURL,
	}
}
