// Package vehicle resolves Spanish license plates against the public vehicle
// report service, best effort.
package vehicle

import (
	"regexp"
	"strings"
)

// Spanish plates since year 2000: four digits and three consonants.
var rePlate = regexp.MustCompile(`^\d{4}[A-Z]{3}$`)

// ErrPlateFormat is the user-facing message for malformed plates.
const ErrPlateFormat = "Formato de matrícula no válido. Use formato 1234ABC"

// NormalizePlate strips whitespace and uppercases.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.Join(strings.Fields(plate), ""))
}

// ValidPlate reports whether the plate matches the current Spanish format.
func ValidPlate(plate string) bool {
	return rePlate.MatchString(NormalizePlate(plate))
}

// BuildModelLabel assembles the display label stored on vehicle records:
// "MARCA MODELO (año) - combustible, NN CV", omitting absent parts.
func BuildModelLabel(marca, modelo, ano, combustible, cv string) string {
	label := marca + " " + modelo

	if ano != "" {
		label += " (" + ano + ")"
	}

	var extras []string
	if combustible != "" {
		extras = append(extras, combustible)
	}
	if cv != "" {
		extras = append(extras, cv+" CV")
	}
	if len(extras) > 0 {
		label += " - " + strings.Join(extras, ", ")
	}
	return label
}
