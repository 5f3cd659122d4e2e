package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/example/coursemart/internal/client/api"
	"github.com/example/coursemart/internal/client/store"
	"github.com/example/coursemart/internal/logging"
)

// TaxRate is applied to the cart total in the order summary.
const TaxRate = 0.15

// CheckoutState is the phase of one checkout attempt.
type CheckoutState string

const (
	CheckoutEmpty      CheckoutState = "empty"
	CheckoutFilling    CheckoutState = "filling"
	CheckoutSubmitting CheckoutState = "submitting"
	CheckoutSucceeded  CheckoutState = "succeeded"
	CheckoutFailed     CheckoutState = "failed"
)

// Payment methods. Card details are validated only for PaymentCard.
const (
	PaymentCard   = "card"
	PaymentPaypal = "paypal"
)

// CheckoutForm carries billing and payment fields.
type CheckoutForm struct {
	Country       string
	State         string
	PaymentMethod string
	CardName      string
	CardNumber    string
	ExpiryDate    string
	CVV           string
}

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidateCheckoutForm runs the local form checks and returns field-scoped
// error messages. An empty map means the form may be submitted. Validation
// never touches the network.
func ValidateCheckoutForm(f CheckoutForm) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Country) == "" {
		errs["country"] = "Country is required"
	}
	if strings.TrimSpace(f.State) == "" {
		errs["state"] = "State is required"
	}

	if f.PaymentMethod == PaymentCard {
		if strings.TrimSpace(f.CardName) == "" {
			errs["cardName"] = "Name on card is required"
		}

		number := strings.ReplaceAll(f.CardNumber, " ", "")
		if strings.TrimSpace(f.CardNumber) == "" {
			errs["cardNumber"] = "Card number is required"
		} else if !cardNumberRe.MatchString(number) {
			errs["cardNumber"] = "Please enter a valid 16-digit card number"
		}

		if strings.TrimSpace(f.ExpiryDate) == "" {
			errs["expiryDate"] = "Expiry date is required"
		} else if !expiryRe.MatchString(f.ExpiryDate) {
			errs["expiryDate"] = "Please enter date in MM/YY format"
		}

		if strings.TrimSpace(f.CVV) == "" {
			errs["cvv"] = "CVV is required"
		} else if !cvvRe.MatchString(f.CVV) {
			errs["cvv"] = "Please enter a valid CVV"
		}
	}

	return errs
}

// Checkout is the state machine for one checkout attempt:
//
//	Empty → Filling → Submitting → Succeeded
//	                            ↘ Failed → Filling (on the next edit)
//
// Submitting is entered only after validation passes. On success the cart is
// cleared; on any failure the cart is untouched.
type Checkout struct {
	client api.Client
	store  *store.Store
	cart   CartService
	log    logging.Logger

	state       CheckoutState
	form        CheckoutForm
	fieldErrors map[string]string
	submitError string
}

func NewCheckout(client api.Client, st *store.Store, cart CartService, log logging.Logger) *Checkout {
	return &Checkout{
		client: client,
		store:  st,
		cart:   cart,
		log:    log,
		state:  CheckoutEmpty,
		form:   CheckoutForm{PaymentMethod: PaymentCard},
	}
}

func (c *Checkout) State() CheckoutState           { return c.state }
func (c *Checkout) Form() CheckoutForm             { return c.form }
func (c *Checkout) FieldErrors() map[string]string { return c.fieldErrors }
func (c *Checkout) SubmitError() string            { return c.submitError }

// Summary returns the order totals: cart subtotal, tax and final amount.
func (c *Checkout) Summary() (subtotal, tax, total float64) {
	subtotal = c.cart.Total()
	tax = subtotal * TaxRate
	return subtotal, tax, subtotal + tax
}

// Begin moves Empty → Filling. It requires an authenticated session and a
// non-empty cart.
func (c *Checkout) Begin() error {
	if !c.store.Auth.Get().IsAuthenticated {
		return ErrNotAuthenticated
	}
	if c.cart.Count() == 0 {
		return ErrCartEmpty
	}
	c.state = CheckoutFilling
	return nil
}

// SetForm records edited fields. Editing after a failed submit returns the
// machine to Filling and clears the stale annotations.
func (c *Checkout) SetForm(f CheckoutForm) {
	c.form = f
	c.fieldErrors = nil
	c.submitError = ""
	if c.state == CheckoutFailed {
		c.state = CheckoutFilling
	}
}

// Submit validates the form and, if it passes, posts the enrollment.
// Validation failure keeps the machine in Filling with field errors and
// sends nothing. Remote failure moves to Failed with a submit-level error;
// the cart is not mutated. Success clears the cart and moves to Succeeded.
func (c *Checkout) Submit(ctx context.Context) error {
	if c.state != CheckoutFilling {
		return fmt.Errorf("checkout is not being filled (state %s)", c.state)
	}

	if errs := ValidateCheckoutForm(c.form); len(errs) > 0 {
		c.fieldErrors = errs
		return ErrValidation
	}

	courseIDs, err := cartCourseIDs(c.cart)
	if err != nil {
		c.fieldErrors = nil
		c.submitError = "Enrollment failed. Please try again."
		c.state = CheckoutFailed
		return err
	}

	c.state = CheckoutSubmitting
	if err := c.client.Checkout(ctx, courseIDs); err != nil {
		c.log.Error(ctx, "checkout failed", "error", err)
		c.submitError = "Enrollment failed. Please try again."
		c.state = CheckoutFailed
		return err
	}

	c.cart.Clear(ctx)
	c.state = CheckoutSucceeded
	c.log.Info(ctx, "checkout succeeded", "courses", len(courseIDs))
	return nil
}

// cartCourseIDs converts the cart's string course ids to the numeric form
// the enrollment endpoint expects.
func cartCourseIDs(cart CartService) ([]int64, error) {
	items := cart.Items()
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		id, err := strconv.ParseInt(item.CourseID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("course id %q is not numeric: %w", item.CourseID, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
