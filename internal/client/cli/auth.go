package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/example/coursemart/internal/client/api"
	"github.com/example/coursemart/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the backend.
// A 401 is reported as invalid credentials; transport failures get a generic
// message with a retry hint. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.authService.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrInvalidCredentials):
			fmt.Println("Invalid email or password.")
		default:
			fmt.Println("Login failed. Please try again.")
		}
		return err
	}

	a.userEmail = session.User.Email
	fmt.Printf("Logged in as %s.\n", a.userEmail)
	return nil
}

// Register prompts for an email and password and creates an account. The
// backend does not log the new user in; a separate login follows.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, email, password); err != nil {
		fmt.Println("Registration failed. Please try again.")
		return err
	}

	fmt.Println("Account created. Use 'login' to sign in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.userEmail = ""
	fmt.Println("Logged out.")
	return nil
}
