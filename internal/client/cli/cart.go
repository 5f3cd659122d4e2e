package cli

import (
	"context"
	"fmt"
)

// AddToCart snapshots a course from the loaded catalog into the cart.
// Adding a course twice is a friendly no-op.
func (a *App) AddToCart(ctx context.Context, id string) error {
	for _, c := range a.store.Courses.Get() {
		if c.ID == id {
			if a.cartService.Add(ctx, c) {
				fmt.Printf("Added %q to the cart.\n", c.Title)
			} else {
				fmt.Println("Already in the cart.")
			}
			return nil
		}
	}
	fmt.Println("No such course in the catalog. Use 'courses' to browse.")
	return nil
}

func (a *App) RemoveFromCart(ctx context.Context, id string) error {
	if a.cartService.Remove(ctx, id) {
		fmt.Println("Removed.")
	} else {
		fmt.Println("That course is not in the cart.")
	}
	return nil
}

func (a *App) ShowCart(ctx context.Context) error {
	items := a.cartService.Items()
	if len(items) == 0 {
		fmt.Println("Your cart is empty. Use 'add <id>' while browsing.")
		return nil
	}
	for _, item := range items {
		fmt.Printf("[%s] %s — $%.2f (added %s)\n",
			item.CourseID, item.Course.Title, item.Course.Price, item.AddedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("%d item(s), total $%.2f\n", a.cartService.Count(), a.cartService.Total())
	return nil
}

func (a *App) ShowEnrollments(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first.")
		return nil
	}
	enrollments, err := a.catalogService.Enrollments(ctx)
	if err != nil {
		fmt.Println("Failed to load enrollments. Please try again.")
		return err
	}
	if len(enrollments) == 0 {
		fmt.Println("You are not enrolled in any courses yet.")
		return nil
	}
	for _, e := range enrollments {
		fmt.Printf("%s (enrolled %s)\n", e.CourseTitle, e.EnrolledAt.Format("2006-01-02"))
	}
	return nil
}
