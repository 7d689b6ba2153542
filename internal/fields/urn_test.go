package fields

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/tenancy"
	id "pulse/pkg/domain"
	dErrors "pulse/pkg/domain-errors"
	"pulse/pkg/urns"
)

func testScope(anonymized bool) tenancy.Scope {
	return tenancy.Scope{TenantID: id.TenantID(uuid.New()), Anonymized: anonymized}
}

func TestURNField_ToInternal(t *testing.T) {
	field := NewURNField()

	t.Run("normalizes valid addresses", func(t *testing.T) {
		urn, err := field.ToInternal("+12065551212")
		require.NoError(t, err)
		assert.Equal(t, urns.URN("tel:+12065551212"), urn)
	})

	t.Run("rejects numbers without country code under strict default", func(t *testing.T) {
		_, err := field.ToInternal("5551212")
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid URN: 5551212. Ensure phone numbers contain country codes.")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects unparseable addresses with the same error kind", func(t *testing.T) {
		_, err := field.ToInternal("facebook:12345")

		var urnErr *InvalidURNError
		require.ErrorAs(t, err, &urnErr)
		assert.Equal(t, "facebook:12345", urnErr.Raw)
	})

	t.Run("lenient field keeps normalization tier only", func(t *testing.T) {
		lenient := NewURNField(WithLenientURNs())

		urn, err := lenient.ToInternal("5551212")
		require.NoError(t, err)
		assert.Equal(t, urns.URN("tel:5551212"), urn)

		// Unparseable input still fails even when lenient.
		_, err = lenient.ToInternal("facebook:12345")
		require.Error(t, err)
	})
}

func TestURNField_ToExternal(t *testing.T) {
	field := NewURNField()
	urn := urns.URN("tel:+12065551212")

	t.Run("anonymized tenant always gets null", func(t *testing.T) {
		assert.Nil(t, field.ToExternal(urn, testScope(true)))
		assert.Nil(t, field.ToExternal(urns.URN("mailto:bob@example.com"), testScope(true)))
	})

	t.Run("plain tenant gets the exact string form", func(t *testing.T) {
		got := field.ToExternal(urn, testScope(false))
		require.NotNil(t, got)
		assert.Equal(t, "tel:+12065551212", *got)
	})
}

func TestURNList(t *testing.T) {
	list := NewURNList(NewURNField())

	t.Run("guard runs before any element is parsed", func(t *testing.T) {
		// Every element is garbage that would fail with InvalidURNError;
		// the guard error proves none of them was ever inspected.
		raws := make([]string, MaxListSize)
		for i := range raws {
			raws[i] = "not-even-close"
		}

		_, err := list.ToInternal(raws)
		var sizeErr *ListSizeError
		require.ErrorAs(t, err, &sizeErr)
	})

	t.Run("validates in order, first failure aborts", func(t *testing.T) {
		_, err := list.ToInternal([]string{"+12065551212", "5551212", "+250788123123"})

		var urnErr *InvalidURNError
		require.ErrorAs(t, err, &urnErr)
		assert.Equal(t, "5551212", urnErr.Raw)
	})

	t.Run("preserves input order", func(t *testing.T) {
		got, err := list.ToInternal([]string{"+250788123123", "+12065551212"})
		require.NoError(t, err)
		assert.Equal(t, []urns.URN{"tel:+250788123123", "tel:+12065551212"}, got)
	})

	t.Run("renders per tenant privacy policy", func(t *testing.T) {
		values := []urns.URN{"tel:+12065551212", "mailto:bob@example.com"}

		rendered := list.ToExternal(values, testScope(false))
		require.Len(t, rendered, 2)
		assert.Equal(t, "tel:+12065551212", *rendered[0])
		assert.Equal(t, "mailto:bob@example.com", *rendered[1])

		anonymized := list.ToExternal(values, testScope(true))
		require.Len(t, anonymized, 2)
		assert.Nil(t, anonymized[0])
		assert.Nil(t, anonymized[1])
	})
}
