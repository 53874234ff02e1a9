// Package parser turns URL text into the accessor-level facts the rest of the
// program displays. Parsing is delegated to net/url; this package normalizes
// the result the way a WHATWG-style parser reports it (default ports elided,
// special-scheme hosts lower-cased, absent versus empty query and fragment kept
// apart).
package parser

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var (
	// ErrRelativeURL is returned for input that has no scheme.
	ErrRelativeURL = errors.New("relative URL without a base")

	// ErrInvalidPort is returned when the port does not fit in 16 bits.
	ErrInvalidPort = errors.New("invalid port number")
)

// defaultPorts lists the special schemes and the port each implies.
// A zero value means the scheme is special but has no default port.
var defaultPorts = map[string]uint16{
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
	"ftp":   21,
	"file":  0,
}

// URL is a parsed absolute URL. Optional parts are nil when the URL does not
// carry them; a non-nil pointer to an empty string means present but empty.
type URL struct {
	Scheme string

	// Username is empty when the URL has no userinfo.
	Username string
	Password *string

	Host *string
	Port *uint16

	// Path is always set; it is "/" for special schemes with no path.
	Path string

	Fragment *string
	RawQuery *string

	pairs []QueryPair
}

// QueryPair is one decoded key/value entry of a query string.
type QueryPair struct {
	Key   string
	Value string
}

// QueryPairs returns the form-decoded pairs of the query in the order they
// appear. Duplicate keys are kept. It returns nil when the URL has no query.
func (u *URL) QueryPairs() []QueryPair {
	if u.RawQuery == nil {
		return nil
	}
	return u.pairs
}

var stripper = strings.NewReplacer("\t", "", "\n", "", "\r", "")

// Parse parses raw as an absolute URL.
func Parse(raw string) (*URL, error) {
	s := strings.TrimFunc(raw, func(r rune) bool { return r <= ' ' })
	s = stripper.Replace(s)

	parsed, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if parsed.Scheme == "" {
		return nil, ErrRelativeURL
	}

	defaultPort, special := defaultPorts[parsed.Scheme]

	u := &URL{
		Scheme: parsed.Scheme,
		Path:   parsed.EscapedPath(),
	}

	if parsed.User != nil {
		user, pass, hasPass := strings.Cut(parsed.User.String(), ":")
		u.Username = user
		if hasPass {
			u.Password = &pass
		}
	}

	host, port := splitHostPort(parsed.Host)
	if host != "" {
		if special {
			host = strings.ToLower(host)
		}
		u.Host = &host
	}
	if port != "" {
		n, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPort, port)
		}
		p := uint16(n)
		if !special || defaultPort == 0 || p != defaultPort {
			u.Port = &p
		}
	}

	if parsed.Opaque != "" {
		u.Path = parsed.Opaque
	}
	if special && u.Path == "" {
		u.Path = "/"
	}

	// net/url cannot tell "no fragment" from "empty fragment"; the raw text can.
	if strings.Contains(s, "#") {
		frag := parsed.EscapedFragment()
		u.Fragment = &frag
	}

	if parsed.ForceQuery || parsed.RawQuery != "" {
		q := parsed.RawQuery
		u.RawQuery = &q
		u.pairs = parsePairs(q)
	}

	return u, nil
}

// splitHostPort separates an authority host from its port. net/url has already
// checked that the port, if any, is numeric.
func splitHostPort(hostport string) (host, port string) {
	colon := strings.LastIndexByte(hostport, ':')
	if colon < 0 || strings.LastIndexByte(hostport, ']') > colon {
		return hostport, ""
	}
	return hostport[:colon], hostport[colon+1:]
}
