// Package phone normalizes community-submitted phone numbers so every report
// for the same number lands under one key, whether it was typed with spaces,
// dashes, a leading zero or a country code.
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	apperrors "github.com/rajendra-kc/scamlens/pkg/errors"
)

// Normalize parses a raw phone number and returns its E.164 form.
// defaultRegion (ISO 3166-1 alpha-2) is assumed when the input carries no
// country code. Unparseable or invalid numbers yield ErrInvalidInput.
func Normalize(raw, defaultRegion string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty phone number", apperrors.ErrInvalidInput)
	}

	num, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: not a valid phone number for region %s", apperrors.ErrInvalidInput, defaultRegion)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
