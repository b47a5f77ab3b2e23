package reports

import (
	"fmt"
	"strings"
	"unicode/utf8"

	apperrors "github.com/rajendra-kc/scamlens/pkg/errors"
)

// ValidateCreateReportRequest checks the fields binding tags cannot express.
// It also trims the message in place so length limits apply to real content.
// Lengths count runes, matching the binding tags, so multibyte scripts get
// the same limits as ASCII.
func ValidateCreateReportRequest(req *CreateReportRequest) error {
	if !Category(req.Category).Valid() {
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrInvalidInput, req.Category)
	}

	req.Message = strings.TrimSpace(req.Message)
	length := utf8.RuneCountInString(req.Message)
	if length < 4 {
		return fmt.Errorf("%w: message too short", apperrors.ErrInvalidInput)
	}
	if length > 2000 {
		return fmt.Errorf("%w: message too long", apperrors.ErrInvalidInput)
	}

	return nil
}
