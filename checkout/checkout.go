// Package checkout drives the two-state checkout flow (Filling, Placed)
// and records completed orders to the active user's order log.
package checkout

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/cart"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/storage"
)

type State string

const (
	StateFilling State = "filling"
	StatePlaced  State = "placed"
)

var (
	ErrNotAuthenticated = errors.New("checkout requires an authenticated user")
	ErrEmptyCart        = errors.New("checkout requires a non-empty cart")
	ErrAlreadyPlaced    = errors.New("order already placed")
)

// dateLayout renders order dates the way the storefront displays them.
const dateLayout = "January 2, 2006 03:04 PM"

// Form carries the checkout fields as submitted.
type Form struct {
	FullName string               `json:"fullName"`
	Address  string               `json:"address"`
	Phone    string               `json:"phone"`
	Payment  models.PaymentMethod `json:"payment"`
}

// FieldErrors maps a form field name to its inline validation message.
type FieldErrors map[string]string

// Validate applies the submit-time field rules. An empty result means
// the form may be placed.
func Validate(form Form) FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(form.FullName)
	switch {
	case name == "":
		errs["fullName"] = "Full name is required"
	case len(name) < 3:
		errs["fullName"] = "Full name must be at least 3 characters"
	}

	address := strings.TrimSpace(form.Address)
	switch {
	case address == "":
		errs["address"] = "Address is required"
	case len(address) < 10:
		errs["address"] = "Address must be at least 10 characters"
	}

	phone := strings.TrimSpace(form.Phone)
	switch {
	case phone == "":
		errs["phone"] = "Phone number is required"
	case len(digitsOnly(phone)) != 10:
		errs["phone"] = "Phone number must be 10 digits"
	}

	if form.Payment != "" && !form.Payment.Valid() {
		errs["payment"] = "Payment method must be COD, CARD or UPI"
	}
	return errs
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Recorder is the checkout state machine. A successful Submit snapshots
// the cart into an immutable order, appends it to the user's order log,
// clears the cart and holds in Placed until the confirmation delay
// elapses, after which it navigates back to the catalog root and resets
// to Filling.
type Recorder struct {
	mu       sync.Mutex
	kv       storage.Store
	sessions *session.Store
	carts    *cart.Manager
	node     *snowflake.Node
	state    State

	redirectAfter time.Duration
	navigate      func(path string)
	onPlaced      []func(models.Order)
	now           func() time.Time
}

// New builds a Recorder in the Filling state. navigate is invoked once
// per placed order, redirectAfter after the order confirmation.
func New(kv storage.Store, sessions *session.Store, carts *cart.Manager, redirectAfter time.Duration, navigate func(path string)) (*Recorder, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}
	if navigate == nil {
		navigate = func(string) {}
	}
	return &Recorder{
		kv:            kv,
		sessions:      sessions,
		carts:         carts,
		node:          node,
		state:         StateFilling,
		redirectAfter: redirectAfter,
		navigate:      navigate,
		now:           time.Now,
	}, nil
}

// OnPlaced registers a hook invoked with every recorded order (used for
// the live order feed).
func (r *Recorder) OnPlaced(fn func(models.Order)) {
	r.mu.Lock()
	r.onPlaced = append(r.onPlaced, fn)
	r.mu.Unlock()
}

// State returns the current checkout state.
func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Submit attempts to place an order from the current cart. Field
// violations keep the machine in Filling and come back as FieldErrors;
// authentication and cart preconditions come back as errors.
func (r *Recorder) Submit(form Form) (*models.Order, FieldErrors, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StatePlaced {
		return nil, nil, ErrAlreadyPlaced
	}
	user := r.sessions.Current()
	if user == nil {
		return nil, nil, ErrNotAuthenticated
	}
	items := r.carts.Items()
	if len(items) == 0 {
		return nil, nil, ErrEmptyCart
	}
	if errs := Validate(form); len(errs) > 0 {
		return nil, errs, nil
	}
	if form.Payment == "" {
		form.Payment = models.PaymentCOD
	}

	order := models.Order{
		OrderID:  "ORD-" + r.node.Generate().String(),
		Date:     r.now().Format(dateLayout),
		FullName: strings.TrimSpace(form.FullName),
		Address:  strings.TrimSpace(form.Address),
		Phone:    digitsOnly(form.Phone),
		Payment:  form.Payment,
		Items:    items,
		Total:    r.carts.TotalPrice(),
	}
	r.appendOrder(user.ID, order)
	r.carts.Clear()
	r.state = StatePlaced

	zap.L().Info("order placed",
		zap.String("order_id", order.OrderID),
		zap.String("user_id", user.ID),
		zap.String("total", order.Total.String()))

	for _, fn := range r.onPlaced {
		fn(order)
	}
	// One-shot confirmation timer; AfterFunc fires exactly once.
	time.AfterFunc(r.redirectAfter, r.confirm)
	return &order, nil, nil
}

// confirm leaves the Placed state and returns the user to the catalog.
func (r *Recorder) confirm() {
	r.mu.Lock()
	if r.state == StatePlaced {
		r.state = StateFilling
	}
	r.mu.Unlock()
	r.navigate("/")
}

// Orders returns the active user's order log, oldest first. No user or
// an unreadable log yields an empty slice.
func (r *Recorder) Orders() []models.Order {
	user := r.sessions.Current()
	if user == nil {
		return nil
	}
	return r.readLog(user.ID)
}

func (r *Recorder) readLog(userID string) []models.Order {
	key := storage.ScopedKey("orders", userID)
	data, err := r.kv.Get(key)
	if err != nil {
		zap.L().Warn("order log read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		zap.L().Warn("discarding unparseable order log", zap.String("key", key), zap.Error(err))
		return nil
	}
	return orders
}

func (r *Recorder) appendOrder(userID string, order models.Order) {
	orders := append(r.readLog(userID), order)
	data, err := json.Marshal(orders)
	if err != nil {
		zap.L().Error("order log marshal failed", zap.Error(err))
		return
	}
	key := storage.ScopedKey("orders", userID)
	if err := r.kv.Set(key, data); err != nil {
		zap.L().Error("order log write failed", zap.String("key", key), zap.Error(err))
	}
}
