package appform

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// address is the best-effort split of the form's combined
// "street, city, state zip" string. Every component is optional;
// malformed input leaves components blank rather than failing.
type address struct {
	Street string
	City   string
	State  string
	Zip    string
}

// splitAddress splits the combined address on commas into street, city and
// a state/zip remainder, which is further split on whitespace. The one-line
// format is ambiguous for multi-word states, so this parse stays lossy on
// purpose.
func splitAddress(full string) address {
	var a address
	if full == "" {
		return a
	}
	parts := strings.Split(full, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	a.Street = parts[0]
	if len(parts) > 1 {
		a.City = parts[1]
	}
	if len(parts) > 2 {
		rest := strings.Fields(parts[2])
		if len(rest) > 0 {
			a.State = rest[0]
		}
		if len(rest) > 1 {
			a.Zip = rest[1]
		}
	}
	return a
}

// splitSupervisorContact parses the combined "Name - Phone" string used by
// older form submissions that lack discrete supervisor fields.
func splitSupervisorContact(contact string) (name, phone string) {
	if contact == "" {
		return "", ""
	}
	parts := strings.SplitN(contact, " - ", 2)
	name = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		phone = strings.TrimSpace(parts[1])
	}
	return name, phone
}

// formatMoney renders an amount of cents as dollars with thousands
// separators, dropping the fraction when it is zero and any trailing zero
// otherwise: 450000 -> "$4,500", 450050 -> "$4,500.5".
func formatMoney(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := groupThousands(cents / 100)
	if rem := cents % 100; rem != 0 {
		s += "." + strings.TrimRight(fmt.Sprintf("%02d", rem), "0")
	}
	if neg {
		s = "-" + s
	}
	return "$" + s
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// absoluteURL turns a relative upload path into an absolute URL for use in
// a clickable link region. Already-absolute URLs pass through, as does
// anything unparseable.
func absoluteURL(raw, base string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	if base == "" {
		base = "http://localhost:3000"
	}
	b, err := url.Parse(base)
	if err != nil {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return b.ResolveReference(u).String()
}
