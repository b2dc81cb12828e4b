package mysession

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopcheckout/lib/myuuid"
)

func TestCartUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uuider := myuuid.NewMockUUIDer(ctrl)
	sut := New("my-secret", uuider)

	t.Run("first visit creates cart", func(t *testing.T) {
		// given
		uuider.EXPECT().Create().Return("cart-1")
		request := httptest.NewRequest(http.MethodGet, "/cart", nil)
		response := httptest.NewRecorder()

		// when
		cartUID, err := sut.CartUID(response, request)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "cart-1", cartUID)
		assert.NotEmpty(t, response.Result().Cookies())
	})

	t.Run("returning visit reuses cart", func(t *testing.T) {
		// given
		uuider.EXPECT().Create().Return("cart-2")
		first := httptest.NewRecorder()
		_, err := sut.CartUID(first, httptest.NewRequest(http.MethodGet, "/cart", nil))
		assert.NoError(t, err)

		request := httptest.NewRequest(http.MethodGet, "/checkout", nil)
		for _, cookie := range first.Result().Cookies() {
			request.AddCookie(cookie)
		}

		// when
		cartUID, err := sut.CartUID(httptest.NewRecorder(), request)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "cart-2", cartUID)
	})
}
