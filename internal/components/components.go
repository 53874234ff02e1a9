// Package components derives the set of URL parts that get displayed.
package components

import (
	"github.com/kula-app/urlparse/internal/parser"
)

// DisplayComponents is the presence-resolved view of a parsed URL.
// Nil optional fields are not displayed at all.
type DisplayComponents struct {
	Scheme   string
	User     *string
	Password *string
	Host     *string
	Port     *uint16
	Path     string
	Fragment *string

	// Query is nil when the URL has no query component. A present but empty
	// query (a trailing "?") is a non-nil Query with no pairs.
	Query *Query
}

// Query is the query section of a URL.
type Query struct {
	Raw   string
	Pairs []parser.QueryPair
}

// Extract derives the display components of u. It never fails: u has already
// been validated by the parser.
func Extract(u *parser.URL) DisplayComponents {
	c := DisplayComponents{
		Scheme:   u.Scheme,
		Password: u.Password,
		Host:     u.Host,
		Port:     u.Port,
		Path:     u.Path,
		Fragment: u.Fragment,
	}

	// An empty username means there is no user to show
	if u.Username != "" {
		user := u.Username
		c.User = &user
	}

	if u.RawQuery != nil {
		c.Query = &Query{
			Raw:   *u.RawQuery,
			Pairs: u.QueryPairs(),
		}
	}

	return c
}
