// Package api is the typed client surface for the library-management REST
// API. Each resource gets a small service over the shared transport client;
// authentication and 401 handling live in the transport layer, not here.
package api

import (
	"fmt"

	"github.com/openshelf/openshelf/internal/transport"
)

// Services bundles every resource client over one transport.
type Services struct {
	Users      *Users
	Books      *Books
	Authors    *Authors
	Publishers *Publishers
	Categories *Categories
	Loans      *Loans
	Fines      *Fines
}

// New wires all resource clients to the given transport.
func New(client *transport.Client) *Services {
	return &Services{
		Users:      NewUsers(client),
		Books:      NewBooks(client),
		Authors:    NewAuthors(client),
		Publishers: NewPublishers(client),
		Categories: NewCategories(client),
		Loans:      NewLoans(client),
		Fines:      NewFines(client),
	}
}

func resourcePath(resource string, id int64) string {
	return fmt.Sprintf("%s/%d", resource, id)
}
