package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/kula-app/urlparse/internal/components"
)

// Text writes c as labelled, tab-aligned lines. Values are printed verbatim.
func Text(w io.Writer, c components.DisplayComponents) error {
	var buf bytes.Buffer

	buf.WriteString("URL Components:\n")
	fmt.Fprintf(&buf, "  scheme\t: %s\n", c.Scheme)
	if c.User != nil {
		fmt.Fprintf(&buf, "  user\t\t: %s\n", *c.User)
	}
	if c.Password != nil {
		fmt.Fprintf(&buf, "  password\t: %s\n", *c.Password)
	}
	if c.Host != nil {
		fmt.Fprintf(&buf, "  host\t\t: %s\n", *c.Host)
	}
	if c.Port != nil {
		fmt.Fprintf(&buf, "  port\t\t: %d\n", *c.Port)
	}
	fmt.Fprintf(&buf, "  path\t\t: %s\n", c.Path)
	if c.Fragment != nil {
		fmt.Fprintf(&buf, "  fragment\t: %s\n", *c.Fragment)
	}
	if c.Query != nil {
		fmt.Fprintf(&buf, "  query\t\t: %s\n", c.Query.Raw)
		for _, pair := range c.Query.Pairs {
			fmt.Fprintf(&buf, "    %s = %s\n", pair.Key, pair.Value)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}
