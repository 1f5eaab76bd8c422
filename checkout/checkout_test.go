package checkout

import (
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/storefront-api/cart"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/storage"
)

func validForm() Form {
	return Form{
		FullName: "John Doe",
		Address:  "221B Baker Street, London",
		Phone:    "123-456-7890",
		Payment:  models.PaymentCOD,
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Form)
		wantKey string
	}{
		{"valid", func(*Form) {}, ""},
		{"short name", func(f *Form) { f.FullName = "Jo" }, "fullName"},
		{"empty name", func(f *Form) { f.FullName = "   " }, "fullName"},
		{"short address", func(f *Form) { f.Address = "nowhere" }, "address"},
		{"empty address", func(f *Form) { f.Address = "" }, "address"},
		{"short phone", func(f *Form) { f.Phone = "12345" }, "phone"},
		{"empty phone", func(f *Form) { f.Phone = "" }, "phone"},
		{"long phone", func(f *Form) { f.Phone = "123456789012" }, "phone"},
		{"bad payment", func(f *Form) { f.Payment = "CHEQUE" }, "payment"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			errs := Validate(form)
			if tc.wantKey == "" {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, tc.wantKey)
			}
		})
	}
}

func TestValidateNormalizesPhone(t *testing.T) {
	form := validForm()
	form.Phone = "(123) 456-7890"
	assert.Empty(t, Validate(form))
}

type fixture struct {
	kv       *storage.MemoryStore
	sessions *session.Store
	carts    *cart.Manager
	recorder *Recorder
	redirects atomic.Int32
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{kv: storage.NewMemory()}
	f.sessions = session.New(f.kv)
	f.carts = cart.New(f.kv, f.sessions)

	var err error
	f.recorder, err = New(f.kv, f.sessions, f.carts, 20*time.Millisecond, func(string) {
		f.redirects.Add(1)
	})
	require.NoError(t, err)
	return f
}

func (f *fixture) loginWithItem(t *testing.T) {
	t.Helper()
	require.True(t, f.sessions.Login("john_doe", "password123"))
	f.carts.Add(models.Product{ID: 1, Title: "Hat", Price: decimal.RequireFromString("9.99")}, 2)
}

func TestSubmitRecordsOrderAndClearsCart(t *testing.T) {
	f := newFixture(t)
	f.loginWithItem(t)

	order, fieldErrs, err := f.recorder.Submit(validForm())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, order)

	assert.True(t, order.Total.Equal(decimal.RequireFromString("19.98")), "got %s", order.Total)
	assert.Contains(t, order.OrderID, "ORD-")
	assert.Equal(t, "1234567890", order.Phone)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// appended to the user's order log
	data, err := f.kv.Get("orders_1")
	require.NoError(t, err)
	var logged []models.Order
	require.NoError(t, json.Unmarshal(data, &logged))
	require.Len(t, logged, 1)
	assert.Equal(t, order.OrderID, logged[0].OrderID)

	// cart emptied in memory and in storage
	assert.Empty(t, f.carts.Items())
	data, err = f.kv.Get("cart_1")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	assert.Equal(t, StatePlaced, f.recorder.State())
}

func TestSubmitValidationKeepsFilling(t *testing.T) {
	f := newFixture(t)
	f.loginWithItem(t)

	form := validForm()
	form.FullName = "Jo"
	order, fieldErrs, err := f.recorder.Submit(form)
	require.NoError(t, err)
	assert.Nil(t, order)
	assert.Contains(t, fieldErrs, "fullName")
	assert.Equal(t, StateFilling, f.recorder.State())
	assert.NotEmpty(t, f.carts.Items(), "failed submit must not touch the cart")
}

func TestSubmitRequiresAuthentication(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.recorder.Submit(validForm())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSubmitRequiresNonEmptyCart(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.sessions.Login("john_doe", "password123"))
	_, _, err := f.recorder.Submit(validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestConfirmationRedirectFiresExactlyOnce(t *testing.T) {
	f := newFixture(t)
	f.loginWithItem(t)

	_, _, err := f.recorder.Submit(validForm())
	require.NoError(t, err)

	// duplicate submits are rejected while Placed
	_, _, err = f.recorder.Submit(validForm())
	assert.ErrorIs(t, err, ErrAlreadyPlaced)

	require.Eventually(t, func() bool {
		return f.recorder.State() == StateFilling
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), f.redirects.Load())

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), f.redirects.Load(), "redirect must fire exactly once")
}

func TestOrdersAccumulateAndSurviveCorruptionChecks(t *testing.T) {
	f := newFixture(t)
	f.loginWithItem(t)
	_, _, err := f.recorder.Submit(validForm())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return f.recorder.State() == StateFilling
	}, time.Second, 5*time.Millisecond)

	f.carts.Add(models.Product{ID: 2, Title: "Mug", Price: decimal.RequireFromString("4.50")}, 1)
	_, _, err = f.recorder.Submit(validForm())
	require.NoError(t, err)

	assert.Len(t, f.recorder.Orders(), 2)

	// a corrupt log degrades to empty, never errors
	require.NoError(t, f.kv.Set("orders_1", []byte("~nope~")))
	assert.Empty(t, f.recorder.Orders())
}

func TestOrderIDsAreUniqueAcrossRapidCheckouts(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.sessions.Login("john_doe", "password123"))

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		f.carts.Add(models.Product{ID: 1, Price: decimal.New(100, -2)}, 1)
		order, fieldErrs, err := f.recorder.Submit(validForm())
		require.NoError(t, err)
		require.Empty(t, fieldErrs)
		assert.False(t, seen[order.OrderID], "duplicate order id %s", order.OrderID)
		seen[order.OrderID] = true

		require.Eventually(t, func() bool {
			return f.recorder.State() == StateFilling
		}, time.Second, time.Millisecond)
	}
}
