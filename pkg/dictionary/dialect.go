package dictionary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDialect is returned when a dialect name cannot be parsed.
var ErrUnknownDialect = errors.New("unknown dialect")

// Dialect selects the regional spelling conventions used when checking words.
type Dialect uint8

// Supported dialects. American is the default.
const (
	American Dialect = iota
	British
	Australian
	Canadian
)

// Dialects lists every supported dialect in declaration order.
func Dialects() []Dialect {
	return []Dialect{American, British, Australian, Canadian}
}

// String returns the lowercase dialect name.
func (d Dialect) String() string {
	switch d {
	case American:
		return "american"
	case British:
		return "british"
	case Australian:
		return "australian"
	case Canadian:
		return "canadian"
	default:
		return fmt.Sprintf("dialect(%d)", uint8(d))
	}
}

// Code returns the two-letter region code used in the word list.
func (d Dialect) Code() string {
	switch d {
	case American:
		return "US"
	case British:
		return "GB"
	case Australian:
		return "AU"
	case Canadian:
		return "CA"
	default:
		return ""
	}
}

// ParseDialect accepts a dialect name or region code, case-insensitively.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "american", "us", "en-us":
		return American, nil
	case "british", "gb", "uk", "en-gb":
		return British, nil
	case "australian", "au", "en-au":
		return Australian, nil
	case "canadian", "ca", "en-ca":
		return Canadian, nil
	default:
		return American, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
	}
}

// dialectSet is a bit set of dialects. The zero value means every dialect.
type dialectSet uint8

func (s dialectSet) has(d Dialect) bool {
	return s == 0 || s&(1<<d) != 0
}

func parseDialectSet(codes string) (dialectSet, error) {
	var set dialectSet
	for _, code := range strings.Split(codes, ",") {
		d, err := ParseDialect(code)
		if err != nil {
			return 0, err
		}
		set |= 1 << d
	}
	return set, nil
}

// dialects expands the set into a list, or nil when the set is unrestricted.
func (s dialectSet) dialects() []Dialect {
	if s == 0 {
		return nil
	}
	var out []Dialect
	for _, d := range Dialects() {
		if s&(1<<d) != 0 {
			out = append(out, d)
		}
	}
	return out
}
