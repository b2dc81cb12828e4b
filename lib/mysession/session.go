package mysession

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/MarcGrol/shopcheckout/lib/myuuid"
)

const (
	sessionName = "shopcheckout"
	cartUIDKey  = "cartUID"
)

// Sessions binds a browser to a shopping cart by means of a signed cookie
type Sessions struct {
	store  sessions.Store
	uuider myuuid.UUIDer
}

func New(secret string, uuider myuuid.UUIDer) *Sessions {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Sessions{
		store:  store,
		uuider: uuider,
	}
}

// CartUID returns the cart bound to this browser, creating and remembering a fresh one on first visit
func (s *Sessions) CartUID(w http.ResponseWriter, r *http.Request) (string, error) {
	// An invalid cookie still yields a usable new session
	session, _ := s.store.Get(r, sessionName)

	cartUID, ok := session.Values[cartUIDKey].(string)
	if ok && cartUID != "" {
		return cartUID, nil
	}

	cartUID = s.uuider.Create()
	session.Values[cartUIDKey] = cartUID
	err := session.Save(r, w)
	if err != nil {
		return "", fmt.Errorf("error saving session: %s", err)
	}

	return cartUID, nil
}
