package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shopcheckout/services/refdata"
)

var (
	canada  = refdata.Country{ID: 2, Code: "CA", Name: "Canada"}
	alberta = refdata.State{ID: 8, Name: "Alberta", CountryCode: "CA"}
	ontario = refdata.State{ID: 13, Name: "Ontario", CountryCode: "CA"}
)

func validForm() Form {
	return Form{
		Customer: Customer{FirstName: "Eva", LastName: "Grol", Email: "eva@example.com"},
		ShippingAddress: Address{
			Street: "Heemstrakwartier 79", City: "De Bilt", State: &alberta, Country: &canada, ZipCode: "3731TB",
		},
		BillingAddress: Address{
			Street: "Heemstrakwartier 79", City: "De Bilt", State: &ontario, Country: &canada, ZipCode: "3731TB",
		},
		CreditCard: CreditCard{
			CardType: "Visa", NameOnCard: "Eva Grol", CardNumber: "4111111111111111", SecurityCode: "737",
			ExpirationMonth: 3, ExpirationYear: 2030,
		},
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, NotOnlyWhitespace("a"))
	assert.True(t, NotOnlyWhitespace(" a "))
	assert.False(t, NotOnlyWhitespace(""))
	assert.False(t, NotOnlyWhitespace(" \t  "))

	assert.True(t, IsEmailAddress("eva@example.com"))
	assert.True(t, IsEmailAddress("eva.grol+shop@mail.example.nl"))
	assert.False(t, IsEmailAddress("Eva@Example.com"))
	assert.False(t, IsEmailAddress("eva@example"))
	assert.False(t, IsEmailAddress("eva@example.museum"))

	assert.True(t, HasDigits("4111111111111111", 16))
	assert.False(t, HasDigits("123456789012345", 16))
	assert.False(t, HasDigits("41111111111111112", 16))
	assert.False(t, HasDigits("4111 1111 1111 1", 16))
	assert.True(t, HasDigits("737", 3))
	assert.False(t, HasDigits("７３７", 3))
}

func TestValidateForm(t *testing.T) {
	sut := newFormValidator()

	t.Run("valid form", func(t *testing.T) {
		assert.Empty(t, sut.validateForm(validForm()))
	})

	t.Run("empty form reports every field as required", func(t *testing.T) {
		problems := sut.validateForm(Form{})

		assert.Len(t, problems, len(allFields))
		for _, field := range allFields {
			assert.Equal(t, "is required", problems[field], field)
		}
	})

	testCases := []struct {
		name     string
		modify   func(f *Form)
		field    string
		expected string
	}{
		{
			name:     "first name of spaces only",
			modify:   func(f *Form) { f.Customer.FirstName = "     " },
			field:    "customer.firstName",
			expected: "is required",
		},
		{
			name:     "last name too short",
			modify:   func(f *Form) { f.Customer.LastName = "G" },
			field:    "customer.lastName",
			expected: "must be at least 2 characters long",
		},
		{
			name:     "street too short",
			modify:   func(f *Form) { f.ShippingAddress.Street = "Main 1" },
			field:    "shippingAddress.street",
			expected: "must be at least 10 characters long",
		},
		{
			name:     "street of spaces only",
			modify:   func(f *Form) { f.BillingAddress.Street = "            " },
			field:    "billingAddress.street",
			expected: "is required",
		},
		{
			name:     "city of spaces only",
			modify:   func(f *Form) { f.BillingAddress.City = "  " },
			field:    "billingAddress.city",
			expected: "is required",
		},
		{
			name:     "zip code of spaces only",
			modify:   func(f *Form) { f.ShippingAddress.ZipCode = "    " },
			field:    "shippingAddress.zipCode",
			expected: "is required",
		},
		{
			name:     "name on card of spaces only",
			modify:   func(f *Form) { f.CreditCard.NameOnCard = "   " },
			field:    "creditCard.nameOnCard",
			expected: "is required",
		},
		{
			name:     "email with uppercase",
			modify:   func(f *Form) { f.Customer.Email = "Eva@Example.com" },
			field:    "customer.email",
			expected: "must be a valid email address format",
		},
		{
			name:     "missing state",
			modify:   func(f *Form) { f.ShippingAddress.State = nil },
			field:    "shippingAddress.state",
			expected: "is required",
		},
		{
			name:     "missing country",
			modify:   func(f *Form) { f.BillingAddress.Country = nil },
			field:    "billingAddress.country",
			expected: "is required",
		},
		{
			name:     "card number of 15 digits",
			modify:   func(f *Form) { f.CreditCard.CardNumber = "123456789012345" },
			field:    "creditCard.cardNumber",
			expected: "must be 16 digits long",
		},
		{
			name:     "security code with letters",
			modify:   func(f *Form) { f.CreditCard.SecurityCode = "12a" },
			field:    "creditCard.securityCode",
			expected: "must be 3 digits long",
		},
		{
			name:     "missing expiration month",
			modify:   func(f *Form) { f.CreditCard.ExpirationMonth = 0 },
			field:    "creditCard.expirationMonth",
			expected: "is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			form := validForm()
			tc.modify(&form)

			// when
			problems := sut.validateForm(form)

			// then
			assert.Equal(t, map[string]string{tc.field: tc.expected}, problems)
		})
	}
}
