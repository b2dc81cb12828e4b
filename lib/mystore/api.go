package mystore

import (
	"context"
	"os"
)

type ctxTransactionKey struct{}

// Filter mimics a datastore property filter; the in-memory store only supports the "=" comparison
type Filter struct {
	Field   string
	Compare string
	Value   any
}

// Store keeps the records of one kind of the shop: countries and their states, carts, placed orders and
// the outbox of order events. Records are addressed by uid.
type Store[T any] interface {
	// RunInTransaction commits a read-modify-write, such as adding an item to a cart, as a whole.
	// Calls on this store made with the context passed to f join the transaction.
	RunInTransaction(c context.Context, f func(c context.Context) error) error
	Put(c context.Context, uid string, value T) error
	// Get reports false when no record exists for uid
	Get(c context.Context, uid string) (T, bool, error)
	List(c context.Context) ([]T, error)
	// Query returns the records matching all filters, for example the states of a country ordered by name
	Query(c context.Context, filters []Filter, orderByField string) ([]T, error)
}

// New uses datastore when the shop runs on Google Cloud and keeps records in memory otherwise
func New[T any](c context.Context) (Store[T], func(), error) {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		return newGcloudStore[T](c)
	}

	return NewInMemoryStore[T](c)
}
