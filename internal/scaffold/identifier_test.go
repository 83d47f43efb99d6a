package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	id, err := ParseIdentifier("us/ein")
	require.NoError(t, err)
	assert.Equal(t, Identifier{Group: "us", Name: "ein"}, id)
	assert.Equal(t, "us/ein", id.String())
}

func TestParseIdentifierErrors(t *testing.T) {
	tests := []struct {
		raw  string
		want error
	}{
		{"us.ein", ErrInvalidIdentifierShape},
		{"a/b/c", ErrInvalidIdentifierShape},
		{"", ErrInvalidIdentifierShape},
		{"/ein", ErrInvalidIdentifierShape},
		{"us/", ErrInvalidIdentifierShape},
		{"../ein", ErrInvalidIdentifierShape},
		{"us/..", ErrInvalidIdentifierShape},
		{"./ein", ErrInvalidIdentifierShape},
		{`u\s/ein`, ErrInvalidIdentifierShape},
		{"us/ein.v2", ErrReservedCharacter},
		{"us/.ein", ErrReservedCharacter},
		{`us/e\in`, ErrReservedCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := ParseIdentifier(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIdentifierParams(t *testing.T) {
	id := Identifier{Group: "us", Name: "ein"}
	params := id.Params()

	assert.Equal(t, "us", params[ParamGroup])
	assert.Equal(t, "ein", params[ParamName])
	assert.Equal(t, "EIN", params[ParamNameUpper])
}

func TestIdentifierParamsUpper(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"steuer_nr", "STEUER_NR"},
		{"vkn2", "VKN2"},
		{"Cedula", "CEDULA"},
		{"straße", "STRASSE"},
	}

	for _, tt := range tests {
		params := Identifier{Group: "xx", Name: tt.name}.Params()
		assert.Equal(t, tt.want, params[ParamNameUpper], "upper of %q", tt.name)
		assert.Equal(t, tt.name, params[ParamName])
	}
}

func TestIndexLine(t *testing.T) {
	assert.Equal(t, "export * as ein from './ein';\n", IndexLine(Identifier{Group: "us", Name: "ein"}))
}
