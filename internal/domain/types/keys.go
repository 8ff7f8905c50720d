package types

import (
	"fmt"
	"strings"
)

// Key is a single user intent routed to the controller.
type Key string

const (
	KeyDecimal    Key = "."
	KeyEquals     Key = "="
	KeyPercent    Key = "%"
	KeyNegate     Key = "±"
	KeyClear      Key = "C"
	KeyClearEntry Key = "CE"
	KeyBackspace  Key = "⌫"
	KeyAdd        Key = "+"
	KeySubtract   Key = "-"
	KeyMultiply   Key = "*"
	KeyDivide     Key = "/"
)

const digits = "0123456789"

// IsDigit reports whether k is one of 0-9.
func (k Key) IsDigit() bool {
	return len(k) == 1 && strings.Contains(digits, string(k))
}

// Operator returns the binary operator for k, if it is one.
func (k Key) Operator() (Operator, bool) {
	return ParseOperator(string(k))
}

// String returns the key label.
func (k Key) String() string { return string(k) }

// aliases maps alternate spellings used by keyboards and the CLI.
var aliases = map[string]Key{
	"+/-":       KeyNegate,
	"neg":       KeyNegate,
	"negate":    KeyNegate,
	"Backspace": KeyBackspace,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"ce":        KeyClearEntry,
	"c":         KeyClear,
	"Enter":     KeyEquals,
	"Return":    KeyEquals,
	"×":         KeyMultiply,
	"÷":         KeyDivide,
	"−":         KeySubtract,
}

// ParseKey maps a label (or one of its aliases) to a Key.
func ParseKey(s string) (Key, error) {
	if k, ok := aliases[s]; ok {
		return k, nil
	}
	k := Key(s)
	if k.IsDigit() {
		return k, nil
	}
	if op, ok := k.Operator(); ok {
		return Key(op), nil
	}
	switch k {
	case KeyDecimal, KeyEquals, KeyPercent, KeyNegate, KeyClear, KeyClearEntry, KeyBackspace:
		return k, nil
	}
	return "", fmt.Errorf("unknown key %q", s)
}

// ParseKeys splits a key sequence. Each word is either a named key
// ("CE", "neg", "bs") or a run of single-character keys ("12+3=").
func ParseKeys(words []string) ([]Key, error) {
	var keys []Key
	for _, w := range words {
		if k, err := ParseKey(w); err == nil {
			keys = append(keys, k)
			continue
		}
		for _, r := range w {
			if r == ' ' {
				continue
			}
			k, err := ParseKey(string(r))
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}
