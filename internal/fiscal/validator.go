// Package fiscal validates Spanish tax identifiers (NIF, NIE, CIF).
//
// Validation is a pure function over the input string: the identifier is
// normalized (whitespace stripped, uppercased), classified by shape, and its
// control character is recomputed and compared. No I/O, no state.
package fiscal

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind classifies a fiscal identifier.
type Kind string

const (
	KindNIF     Kind = "NIF"
	KindNIE     Kind = "NIE"
	KindCIF     Kind = "CIF"
	KindUnknown Kind = "UNKNOWN"
)

// User-facing validation messages, kept in Spanish as the application shows
// them verbatim in forms.
const (
	ErrRequired         = "Campo requerido"
	ErrControlLetter    = "Letra de control incorrecta"
	ErrControlDigit     = "Dígito de control incorrecto"
	ErrInvalidFormat    = "Formato no válido. Use NIF (12345678A), NIE (X1234567A) o CIF (A12345674)"
	controlLetters      = "TRWAGMYFPDXBNJZSQVHLCKE"
	cifControlLetters   = "JABCDEFGHI"
	cifLetterControlSet = "KPQSN"
)

var (
	reNIF = regexp.MustCompile(`^\d{8}[A-Z]$`)
	reNIE = regexp.MustCompile(`^[XYZ]\d{7}[A-Z]$`)
	reCIF = regexp.MustCompile(`^[ABCDEFGHJKLMNPQRSUVW]\d{7}[0-9A-J]$`)

	nieSubstitutions = map[byte]string{'X': "0", 'Y': "1", 'Z': "2"}
)

// Result is the outcome of validating one identifier. Normalized is always
// derived deterministically from Raw; Kind and Valid are functions of
// Normalized alone. Err is set iff Valid is false.
type Result struct {
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`
	Kind       Kind   `json:"kind"`
	Valid      bool   `json:"valid"`
	Err        string `json:"error,omitempty"`
}

// Normalize strips all whitespace and uppercases the input.
func Normalize(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}

// Validate classifies and checks a fiscal identifier. Patterns are tried in
// order NIF, NIE, CIF; the first shape match fixes the kind even when the
// control character turns out to be wrong.
func Validate(raw string) Result {
	normalized := Normalize(raw)
	res := Result{Raw: raw, Normalized: normalized}

	if normalized == "" {
		res.Kind = KindUnknown
		res.Err = ErrRequired
		return res
	}

	switch {
	case reNIF.MatchString(normalized):
		res.Kind = KindNIF
		if expectedNIFLetter(normalized[:8]) == normalized[8:] {
			res.Valid = true
		} else {
			res.Err = ErrControlLetter
		}

	case reNIE.MatchString(normalized):
		res.Kind = KindNIE
		// Substitute the leading letter and reuse the NIF algorithm on the
		// resulting 8-digit number.
		equivalent := nieSubstitutions[normalized[0]] + normalized[1:8]
		if expectedNIFLetter(equivalent) == normalized[8:] {
			res.Valid = true
		} else {
			res.Err = ErrControlLetter
		}

	case reCIF.MatchString(normalized):
		res.Kind = KindCIF
		if expectedCIFControl(normalized) == normalized[8:] {
			res.Valid = true
		} else {
			res.Err = ErrControlDigit
		}

	default:
		res.Kind = KindUnknown
		res.Err = ErrInvalidFormat
	}

	return res
}

// expectedNIFLetter returns the control letter for an 8-digit string.
func expectedNIFLetter(digits string) string {
	n, _ := strconv.Atoi(digits)
	return string(controlLetters[n%23])
}

// expectedCIFControl computes the CIF control character. Digits at even
// 0-based positions are doubled and digit-summed, odd positions are added
// as-is; the control digit is (10 - sum mod 10) mod 10. Organization types
// K, P, Q, S and N carry a control letter instead of the digit.
func expectedCIFControl(cif string) string {
	sum := 0
	for i := 0; i < 7; i++ {
		digit := int(cif[i+1] - '0')
		if i%2 == 0 {
			doubled := digit * 2
			sum += doubled/10 + doubled%10
		} else {
			sum += digit
		}
	}
	controlDigit := (10 - sum%10) % 10

	if strings.ContainsRune(cifLetterControlSet, rune(cif[0])) {
		return string(cifControlLetters[controlDigit])
	}
	return strconv.Itoa(controlDigit)
}
