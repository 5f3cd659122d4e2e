package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/example/coursemart/internal/client/services"
)

// Checkout walks the user through the billing form and submits the order.
// Field errors are re-prompted inline; a remote failure leaves the cart
// intact and offers a retry.
func (a *App) Checkout(ctx context.Context) error {
	co := services.NewCheckout(a.client, a.store, a.cartService, a.log)

	if err := co.Begin(); err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			fmt.Println("Please log in to continue.")
		case errors.Is(err, services.ErrCartEmpty):
			fmt.Println("Your cart is empty. Browse courses first.")
		}
		return nil
	}

	form, err := a.promptCheckoutForm()
	if err != nil {
		return err
	}
	co.SetForm(form)

	subtotal, tax, total := co.Summary()
	fmt.Printf("Subtotal $%.2f + tax $%.2f = $%.2f\n", subtotal, tax, total)

	confirm, err := getSimpleText(a.reader, "Type 'pay' to confirm the order", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "pay" {
		fmt.Println("Checkout cancelled.")
		return nil
	}

	if err := co.Submit(ctx); err != nil {
		if errors.Is(err, services.ErrValidation) {
			for field, msg := range co.FieldErrors() {
				fmt.Printf("  %s: %s\n", field, msg)
			}
			fmt.Println("Please run 'checkout' again with corrected details.")
			return nil
		}
		fmt.Println(co.SubmitError())
		return err
	}

	fmt.Println("Payment successful! You are now enrolled. See 'enrollments'.")
	return nil
}

func (a *App) promptCheckoutForm() (services.CheckoutForm, error) {
	var form services.CheckoutForm
	var err error

	if form.Country, err = getSimpleText(a.reader, "Country", os.Stdout); err != nil {
		return form, err
	}
	if form.State, err = getSimpleText(a.reader, "State", os.Stdout); err != nil {
		return form, err
	}

	method, err := getSimpleText(a.reader, "Payment method (card/paypal)", os.Stdout)
	if err != nil {
		return form, err
	}
	if method == services.PaymentPaypal {
		form.PaymentMethod = services.PaymentPaypal
		return form, nil
	}
	form.PaymentMethod = services.PaymentCard

	if form.CardName, err = getSimpleText(a.reader, "Name on card", os.Stdout); err != nil {
		return form, err
	}
	if form.CardNumber, err = getSimpleText(a.reader, "Card number (16 digits)", os.Stdout); err != nil {
		return form, err
	}
	if form.ExpiryDate, err = getSimpleText(a.reader, "Expiry (MM/YY)", os.Stdout); err != nil {
		return form, err
	}
	if form.CVV, err = getSimpleText(a.reader, "CVV", os.Stdout); err != nil {
		return form, err
	}
	return form, nil
}
