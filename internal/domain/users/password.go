package users

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minPasswordLength = 8
	maxSimilarity     = 0.7
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

var (
	commonPasswords = loadCommonPasswords(commonPasswordsRaw)
	nonWord         = regexp.MustCompile(`\W+`)
)

func loadCommonPasswords(raw string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out[line] = struct{}{}
	}
	return out
}

// ValidatePassword aplica la política de contraseñas y devuelve todos los
// mensajes que correspondan (vacío = ok). email puede venir vacío.
func ValidatePassword(password, email string) []string {
	msgs := make([]string, 0)

	if email != "" && tooSimilar(password, email) {
		msgs = append(msgs, "The password is too similar to the email.")
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		msgs = append(msgs, fmt.Sprintf(
			"This password is too short. It must contain at least %d characters.", minPasswordLength))
	}
	if _, common := commonPasswords[strings.ToLower(strings.TrimSpace(password))]; common {
		msgs = append(msgs, "This password is too common.")
	}
	if isNumeric(password) {
		msgs = append(msgs, "This password is entirely numeric.")
	}
	return msgs
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// tooSimilar compara contra el valor completo y contra cada parte separada
// por caracteres no alfanuméricos ("owner1@example.com" -> owner1, example, com).
func tooSimilar(password, value string) bool {
	password = strings.ToLower(password)
	value = strings.ToLower(value)

	parts := append(nonWord.Split(value, -1), value)
	for _, part := range parts {
		if part == "" || exceedsLengthRatio(password, part) {
			continue
		}
		if quickRatio(password, part) >= maxSimilarity {
			return true
		}
	}
	return false
}

// Partes muy cortas frente al password no pueden ser "parecidas".
func exceedsLengthRatio(password, part string) bool {
	pwdLen := utf8.RuneCountInString(password)
	partLen := utf8.RuneCountInString(part)
	bound := maxSimilarity / 2 * float64(pwdLen)
	return pwdLen >= 10*partLen && float64(partLen) < bound
}

// quickRatio: 2*M/T con M = intersección de multiconjuntos de runas.
func quickRatio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1
	}

	avail := map[rune]int{}
	for _, r := range b {
		avail[r]++
	}
	matches := 0
	for _, r := range a {
		if avail[r] > 0 {
			avail[r]--
			matches++
		}
	}
	return 2 * float64(matches) / float64(total)
}
