package render

import (
	"bytes"
	"io"
	"strconv"

	"github.com/kula-app/urlparse/internal/components"
)

// JSON writes c as one JSON object on a single line followed by a newline.
// Absent fields are omitted and query members keep their order, so a repeated
// query key appears repeatedly in the object.
func JSON(w io.Writer, c components.DisplayComponents) error {
	o := object{}

	o.str("scheme", c.Scheme)
	if c.User != nil {
		o.str("user", *c.User)
	}
	if c.Password != nil {
		o.str("password", *c.Password)
	}
	if c.Host != nil {
		o.str("host", *c.Host)
	}
	if c.Port != nil {
		o.key("port")
		o.buf.WriteString(strconv.FormatUint(uint64(*c.Port), 10))
	}
	o.str("path", c.Path)
	if c.Fragment != nil {
		o.str("fragment", *c.Fragment)
	}
	if c.Query != nil {
		o.key("query")
		q := object{}
		for _, pair := range c.Query.Pairs {
			q.str(pair.Key, pair.Value)
		}
		o.buf.Write(q.bytes())
	}

	out := append(o.bytes(), '\n')
	_, err := w.Write(out)
	return err
}

// object accumulates the members of a JSON object in insertion order.
type object struct {
	buf bytes.Buffer
	n   int
}

func (o *object) key(k string) {
	if o.n == 0 {
		o.buf.WriteByte('{')
	} else {
		o.buf.WriteByte(',')
	}
	o.n++
	o.quote(k)
	o.buf.WriteByte(':')
}

func (o *object) str(k, v string) {
	o.key(k)
	o.quote(v)
}

func (o *object) quote(s string) {
	o.buf.WriteByte('"')
	o.buf.WriteString(EscapeJSON(s))
	o.buf.WriteByte('"')
}

func (o *object) bytes() []byte {
	if o.n == 0 {
		return []byte("{}")
	}
	return append(o.buf.Bytes(), '}')
}
