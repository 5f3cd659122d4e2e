package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error

	ListCourses(ctx context.Context) error
	Search(ctx context.Context, query string) error
	FilterCategory(ctx context.Context, id string) error
	FilterLevel(ctx context.Context, level string) error
	SortBy(ctx context.Context, key string) error
	GoToPage(ctx context.Context, page string) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	ClearFilters(ctx context.Context) error
	ShowCourse(ctx context.Context, id string) error
	ListCategories(ctx context.Context) error
	ListInstructors(ctx context.Context) error
	RefreshCatalog(ctx context.Context) error

	AddToCart(ctx context.Context, id string) error
	RemoveFromCart(ctx context.Context, id string) error
	ShowCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	ShowEnrollments(ctx context.Context) error
}

// runREPL starts the storefront's read–eval–print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own section-scoped messages. This keeps the loop resilient: no failed
// backend call ever takes the REPL down.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		fmt.Printf("coursemart %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]
		rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help":
			printHelp(a.isLoggedIn())

		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "courses", "list", "l":
			_ = a.ListCourses(ctx)
		case "search":
			_ = a.Search(ctx, rest)
		case "category":
			if len(args) == 0 {
				printlnFn("Usage: category <id|all>")
				continue
			}
			_ = a.FilterCategory(ctx, args[0])
		case "level":
			if len(args) == 0 {
				printlnFn("Usage: level <beginner|intermediate|advanced|all>")
				continue
			}
			_ = a.FilterLevel(ctx, args[0])
		case "sort":
			if len(args) == 0 {
				printlnFn("Usage: sort <newest|oldest|price-low|price-high|rating|popular>")
				continue
			}
			_ = a.SortBy(ctx, args[0])
		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <number>")
				continue
			}
			_ = a.GoToPage(ctx, args[0])
		case "next", "n":
			_ = a.NextPage(ctx)
		case "prev", "p":
			_ = a.PrevPage(ctx)
		case "clear":
			_ = a.ClearFilters(ctx)
		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <course id>")
				continue
			}
			_ = a.ShowCourse(ctx, args[0])
		case "categories":
			_ = a.ListCategories(ctx)
		case "instructors":
			_ = a.ListInstructors(ctx)
		case "refresh":
			_ = a.RefreshCatalog(ctx)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <course id>")
				continue
			}
			_ = a.AddToCart(ctx, args[0])
		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <course id>")
				continue
			}
			_ = a.RemoveFromCart(ctx, args[0])
		case "cart":
			_ = a.ShowCart(ctx)
		case "checkout":
			_ = a.Checkout(ctx)
		case "enrollments":
			_ = a.ShowEnrollments(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(loggedIn bool) {
	printlnFn("Browse:   courses, search <text>, category <id|all>, level <x|all>, sort <key>,")
	printlnFn("          page <n>, next, prev, clear, show <id>, categories, instructors, refresh")
	printlnFn("Cart:     add <id>, remove <id>, cart, checkout")
	if loggedIn {
		printlnFn("Account:  enrollments, logout, exit")
	} else {
		printlnFn("Account:  login, register, exit")
	}
}
