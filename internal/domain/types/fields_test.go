package types_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/domain/types"
)

func TestFields_ValidValuesRoundTrip(t *testing.T) {
	tests := []struct {
		field string
		raw   string
		build func(string) (string, error)
	}{
		{"name", "Amy Bee", wrap(types.NewName)},
		{"name", "Capital Tan 2nd", wrap(types.NewName)},
		{"name", "José Ñúñez", wrap(types.NewName)},
		{"phone", "911", wrap(types.NewPhone)},
		{"phone", "11111111", wrap(types.NewPhone)},
		{"email", "amy@example.com", wrap(types.NewEmail)},
		{"email", "a.b@c", wrap(types.NewEmail)},
		{"address", "Block 312, Amy Street 1", wrap(types.NewAddress)},
		{"address", "-", wrap(types.NewAddress)},
	}
	for _, tc := range tests {
		t.Run(tc.field+"/"+tc.raw, func(t *testing.T) {
			got, err := tc.build(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.raw, got)
		})
	}
}

func TestFields_InvalidValues(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		build      func(string) (string, error)
		constraint string
	}{
		{"empty name", "", wrap(types.NewName), types.NameConstraint},
		{"symbol in name", "James&", wrap(types.NewName), types.NameConstraint},
		{"leading space name", " Amy", wrap(types.NewName), types.NameConstraint},
		{"letter in phone", "911a", wrap(types.NewPhone), types.PhoneConstraint},
		{"short phone", "91", wrap(types.NewPhone), types.PhoneConstraint},
		{"signed phone", "-123", wrap(types.NewPhone), types.PhoneConstraint},
		{"email without at", "bob!yahoo", wrap(types.NewEmail), types.EmailConstraint},
		{"email without domain", "bob@", wrap(types.NewEmail), types.EmailConstraint},
		{"blank address", "", wrap(types.NewAddress), types.AddressConstraint},
		{"whitespace address", "  ", wrap(types.NewAddress), types.AddressConstraint},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build(tc.raw)
			require.Error(t, err)

			var ive *types.IllegalValueError
			require.True(t, errors.As(err, &ive))
			assert.Equal(t, tc.raw, ive.Value)
			assert.Equal(t, tc.constraint, err.Error())
		})
	}
}

func TestTag_Validation(t *testing.T) {
	for _, ok := range []string{"friend", "college friend", "2024"} {
		tag, err := types.NewTag(ok)
		require.NoError(t, err, ok)
		assert.Equal(t, ok, tag.Name())
		assert.Equal(t, "["+ok+"]", tag.String())
	}
	for _, bad := range []string{"", "#friend", "two  spaces", " lead"} {
		_, err := types.NewTag(bad)
		assert.EqualError(t, err, types.TagConstraint, bad)
	}
}

func TestName_SameAsIgnoresCase(t *testing.T) {
	a := mustName(t, "Amy Bee")
	b := mustName(t, "AMY BEE")
	c := mustName(t, "Amy Be")

	assert.True(t, a.SameAs(b))
	assert.False(t, a.Equal(b))
	assert.False(t, a.SameAs(c))
}

func mustName(t *testing.T, raw string) types.Name {
	t.Helper()
	n, err := types.NewName(raw)
	require.NoError(t, err)
	return n
}

type stringer interface{ String() string }

func wrap[T stringer](ctor func(string) (T, error)) func(string) (string, error) {
	return func(raw string) (string, error) {
		v, err := ctor(raw)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}
}
