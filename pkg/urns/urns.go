// Package urns implements normalized contact addresses of the form scheme:path.
//
// Two validity tiers apply. Normalize produces a syntactically well-formed URN
// or fails; Validate layers scheme-specific semantic rules on top, notably
// that phone numbers must carry a country code. Normalization is idempotent:
// normalizing an already-normalized URN yields the same value.
package urns

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"

	dErrors "pulse/pkg/domain-errors"
)

// URN is a normalized contact address, e.g. "tel:+12065551212".
type URN string

// Recognized address schemes.
const (
	SchemeTel      = "tel"
	SchemeMailto   = "mailto"
	SchemeTwitter  = "twitter"
	SchemeTelegram = "telegram"
	SchemeWhatsApp = "whatsapp"
	SchemeExt      = "ext"
)

// MaxLength bounds the string form of a valid URN.
const MaxLength = 255

var validSchemes = map[string]bool{
	SchemeTel:      true,
	SchemeMailto:   true,
	SchemeTwitter:  true,
	SchemeTelegram: true,
	SchemeWhatsApp: true,
	SchemeExt:      true,
}

var (
	// Deliberately loose: mailbox deliverability is not this layer's concern.
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)
	handleRegex  = regexp.MustCompile(`^[a-z0-9_]{1,15}$`)
	digitsRegex  = regexp.MustCompile(`^[0-9]+$`)
	telSeparator = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// IsValidScheme reports whether s is a recognized address scheme.
func IsValidScheme(s string) bool {
	return validSchemes[s]
}

// Normalize canonicalizes a raw address into scheme:path form. A raw value
// without a scheme separator is taken to be a phone number. Fails with
// CodeInvalidInput when the value cannot be parsed into any recognized scheme.
//
// Normalize is lexical only: a phone number lacking a country code still
// normalizes, and is caught by Validate.
func Normalize(raw string) (URN, error) {
	trimmed := strings.TrimSpace(raw)

	scheme, path := SchemeTel, trimmed
	if i := strings.Index(trimmed, ":"); i >= 0 {
		scheme = strings.ToLower(strings.TrimSpace(trimmed[:i]))
		path = strings.TrimSpace(trimmed[i+1:])
	}

	if !validSchemes[scheme] {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unrecognized URN scheme: "+scheme)
	}

	path = normalizePath(scheme, path)
	if path == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "URN path cannot be empty")
	}

	return URN(scheme + ":" + path), nil
}

// FromParts assembles a URN from a scheme and an already-normalized path.
func FromParts(scheme, path string) (URN, error) {
	if !validSchemes[scheme] {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unrecognized URN scheme: "+scheme)
	}
	if path == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "URN path cannot be empty")
	}
	return URN(scheme + ":" + path), nil
}

func normalizePath(scheme, path string) string {
	switch scheme {
	case SchemeTel:
		return normalizeTel(path)
	case SchemeMailto:
		return strings.ToLower(path)
	case SchemeTwitter:
		return strings.ToLower(strings.TrimLeft(path, "@"))
	case SchemeTelegram, SchemeWhatsApp:
		return strings.TrimLeft(path, "+")
	default:
		// ext paths are opaque and case-sensitive
		return path
	}
}

func normalizeTel(path string) string {
	cleaned := telSeparator.Replace(path)
	if num, err := phonenumbers.Parse(cleaned, ""); err == nil && phonenumbers.IsValidNumber(num) {
		return phonenumbers.Format(num, phonenumbers.E164)
	}
	return strings.ToLower(cleaned)
}

// Validate applies scheme-specific semantic checks. It does not mutate.
// Phone numbers must parse as complete international numbers, which requires
// a country code.
func (u URN) Validate() bool {
	if len(u) > MaxLength {
		return false
	}

	switch u.Scheme() {
	case SchemeTel:
		num, err := phonenumbers.Parse(u.Path(), "")
		return err == nil && phonenumbers.IsValidNumber(num)
	case SchemeMailto:
		return emailRegex.MatchString(u.Path())
	case SchemeTwitter:
		return handleRegex.MatchString(u.Path())
	case SchemeTelegram, SchemeWhatsApp:
		return digitsRegex.MatchString(u.Path())
	case SchemeExt:
		return u.Path() != ""
	default:
		return false
	}
}

// Scheme returns the part before the first colon, or "" if there is none.
func (u URN) Scheme() string {
	if i := strings.Index(string(u), ":"); i >= 0 {
		return string(u[:i])
	}
	return ""
}

// Path returns the part after the first colon, or the whole string if there
// is no colon.
func (u URN) Path() string {
	if i := strings.Index(string(u), ":"); i >= 0 {
		return string(u[i+1:])
	}
	return string(u)
}

func (u URN) String() string { return string(u) }
