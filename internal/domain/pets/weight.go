package pets

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	weightMaxDigits     = 5
	weightDecimalPlaces = 2
	weightWholeDigits   = weightMaxDigits - weightDecimalPlaces
)

const (
	msgWeightInvalid   = "A valid number is required."
	msgWeightMaxDigits = "Ensure that there are no more than 5 digits in total."
	msgWeightDecimals  = "Ensure that there are no more than 2 decimal places."
	msgWeightWhole     = "Ensure that there are no more than 3 digits before the decimal point."
)

// Weight es un decimal(5,2) guardado en centésimas. En JSON viaja como
// string ("30.50") para no perder precisión.
type Weight int64

func (w Weight) String() string {
	v := int64(w)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (w Weight) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w Weight) Value() (driver.Value, error) {
	return w.String(), nil
}

func (w *Weight) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case float64:
		s = strconv.FormatFloat(v, 'f', weightDecimalPlaces, 64)
	case int64:
		s = strconv.FormatInt(v, 10)
	default:
		return fmt.Errorf("pets: cannot scan %T into Weight", src)
	}
	parsed, msg := parseDecimal(s)
	if msg != "" {
		return fmt.Errorf("pets: scan weight %q: %s", s, msg)
	}
	*w = parsed
	return nil
}

// ParseWeight acepta un número JSON o un string numérico.
// Devuelve un mensaje de validación (vacío = ok).
func ParseWeight(raw json.RawMessage) (Weight, string) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, msgWeightInvalid
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, msgWeightInvalid
		}
		return parseDecimal(s)
	}
	return parseDecimal(string(raw))
}

// parseDecimal valida dígitos totales, decimales y enteros como un
// DecimalField(max_digits=5, decimal_places=2).
func parseDecimal(s string) (Weight, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, msgWeightInvalid
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	exp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return 0, msgWeightInvalid
		}
		exp = e
		s = s[:i]
	}

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return 0, msgWeightInvalid
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return 0, msgWeightInvalid
	}

	digits := strings.TrimLeft(intPart+fracPart, "0")
	if digits == "" {
		digits = "0"
	}
	exp -= len(fracPart)

	var total, whole, places int
	switch {
	case exp >= 0:
		total = len(digits) + exp
		whole = total
	case len(digits) > -exp:
		total = len(digits)
		places = -exp
		whole = total - places
	default:
		places = -exp
		total = places
	}

	if total > weightMaxDigits {
		return 0, msgWeightMaxDigits
	}
	if places > weightDecimalPlaces {
		return 0, msgWeightDecimals
	}
	if whole > weightWholeDigits {
		return 0, msgWeightWhole
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, msgWeightInvalid
	}
	for i := 0; i < exp+weightDecimalPlaces; i++ {
		n *= 10
	}
	if neg {
		n = -n
	}
	return Weight(n), ""
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
