// Package filtering parsea los query params de los listados
// (ordering, search, booleanos e ids) y ofrece helpers para aplicarlos
// sobre slices en memoria. Los repos SQL usan los mismos tipos.
package filtering

import (
	"strconv"
	"strings"
	"unicode"

	"pet-health-record/internal/platform/apperr"
)

// OrderField es un campo de ordenamiento. Desc = prefijo "-".
type OrderField struct {
	Field string
	Desc  bool
}

// ParseOrdering lee "name,-created_at". Campos fuera de allowed se descartan.
// Si no queda ninguno devuelve nil y el caller aplica su default.
func ParseOrdering(raw string, allowed ...string) []OrderField {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	ok := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		ok[a] = struct{}{}
	}

	out := make([]OrderField, 0)
	seen := map[string]struct{}{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")
		if _, valid := ok[name]; !valid {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, OrderField{Field: name, Desc: desc})
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// SearchTerms separa por espacios y comas. Vacío => nil (sin búsqueda).
func SearchTerms(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// MatchesAll: cada término debe aparecer (case-insensitive) en al menos un campo.
func MatchesAll(terms []string, fields ...string) bool {
	for _, term := range terms {
		t := strings.ToLower(term)
		hit := false
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), t) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// ParseBool sigue la semántica de un NullBoolean: valores no reconocidos
// cuentan como ausentes.
func ParseBool(raw string) (value bool, present bool) {
	switch strings.TrimSpace(raw) {
	case "true", "True", "1":
		return true, true
	case "false", "False", "0":
		return false, true
	default:
		return false, false
	}
}

// ParseID lee un filtro numérico. Vacío => nil. No numérico => error de campo.
func ParseID(field, raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperr.Field(field, "Enter a number.")
	}
	return &id, nil
}

// Compare aplica una lista de OrderField usando cmp por campo.
// cmp devuelve <0, 0, >0 como strings.Compare.
func Compare(order []OrderField, cmp func(field string) int) int {
	for _, o := range order {
		c := cmp(o.Field)
		if c == 0 {
			continue
		}
		if o.Desc {
			return -c
		}
		return c
	}
	return 0
}
