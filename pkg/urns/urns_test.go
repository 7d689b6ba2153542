package urns

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "pulse/pkg/domain-errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  URN
	}{
		{"bare phone number defaults to tel", "+12065551212", "tel:+12065551212"},
		{"prefixed phone number", "tel:+12065551212", "tel:+12065551212"},
		{"phone formatting stripped", "tel:+1 (206) 555-1212", "tel:+12065551212"},
		{"phone without country code kept lexically", "5551212", "tel:5551212"},
		{"scheme case folded", "TEL:+12065551212", "tel:+12065551212"},
		{"email case folded", "mailto:Bob@Example.COM", "mailto:bob@example.com"},
		{"twitter handle stripped and folded", "twitter:@BillyBob", "twitter:billybob"},
		{"twitter repeated at signs stripped", "twitter:@@billybob", "twitter:billybob"},
		{"telegram plus stripped", "telegram:+123456789", "telegram:123456789"},
		{"telegram repeated plus stripped", "telegram:++123456789", "telegram:123456789"},
		{"whatsapp plus stripped", "whatsapp:+250788123123", "whatsapp:250788123123"},
		{"whatsapp repeated plus stripped", "whatsapp:++250788123123", "whatsapp:250788123123"},
		{"ext path kept verbatim", "ext:ABC-123", "ext:ABC-123"},
		{"surrounding whitespace trimmed", "  tel: +250 788 123 123  ", "tel:+250788123123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"whitespace only", "   "},
		{"unrecognized scheme", "facebook:12345"},
		{"empty scheme", ":12345"},
		{"empty path", "tel:"},
		{"twitter path of only at signs", "twitter:@@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.input)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}

// Normalization is idempotent: normalizing an already-normalized URN yields
// the same value.
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"+12065551212",
		"tel:+1 (206) 555-1212",
		"5551212",
		"tel:ABC-DEF",
		"MAILTO:Bob@Example.COM",
		"twitter:@BillyBob",
		"telegram:+123456789",
		"telegram:++123456789",
		"whatsapp:+250788123123",
		"whatsapp:++250788123123",
		"ext:ABC-123",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once, err := Normalize(input)
			require.NoError(t, err)

			twice, err := Normalize(once.String())
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		urn  URN
		want bool
	}{
		{"phone with country code", "tel:+12065551212", true},
		{"phone without country code", "tel:5551212", false},
		{"phone too short to be real", "tel:+1234", false},
		{"phone with letters", "tel:abcdef", false},
		{"rwandan mobile", "tel:+250788123123", true},
		{"email", "mailto:bob@example.com", true},
		{"email missing domain", "mailto:bob@", false},
		{"twitter handle", "twitter:billybob", true},
		{"twitter handle too long", "twitter:" + URN(strings.Repeat("a", 16)), false},
		{"telegram chat id", "telegram:123456789", true},
		{"telegram non-numeric", "telegram:bob", false},
		{"whatsapp number", "whatsapp:250788123123", true},
		{"external id", "ext:ABC-123", true},
		{"unrecognized scheme", "facebook:12345", false},
		{"no scheme at all", "12065551212", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.urn.Validate())
		})
	}
}

func TestValidate_MaxLength(t *testing.T) {
	longPath := strings.Repeat("a", MaxLength)
	u, err := FromParts(SchemeExt, longPath)
	require.NoError(t, err)

	assert.False(t, u.Validate(), "URN over %d chars must fail validation", MaxLength)
}

func TestFromParts(t *testing.T) {
	t.Run("assembles scheme and path", func(t *testing.T) {
		u, err := FromParts(SchemeTel, "+12065551212")
		require.NoError(t, err)
		assert.Equal(t, URN("tel:+12065551212"), u)
		assert.Equal(t, SchemeTel, u.Scheme())
		assert.Equal(t, "+12065551212", u.Path())
	})

	t.Run("rejects unknown scheme", func(t *testing.T) {
		_, err := FromParts("carrier-pigeon", "coop-7")
		require.Error(t, err)
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := FromParts(SchemeTel, "")
		require.Error(t, err)
	})
}

func TestSchemeAndPath(t *testing.T) {
	u := URN("mailto:bob@example.com")

	assert.Equal(t, "mailto", u.Scheme())
	assert.Equal(t, "bob@example.com", u.Path())

	// Colon-less values have no scheme.
	assert.Equal(t, "", URN("12065551212").Scheme())
	assert.Equal(t, "12065551212", URN("12065551212").Path())
}
