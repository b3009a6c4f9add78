package header_test

import (
	"testing"

	"github.com/picatz/strlib/pkg/header"
	"github.com/picatz/strlib/pkg/jwa"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		Name      string
		Text      string
		Typ       string
		TypErr    error
		Alg       jwa.Algorithm
		AlgErr    error
		Symmetric bool
	}{
		{
			Name:      "HS256 token",
			Text:      `{"typ":"JWT","alg":"HS256"}`,
			Typ:       header.TypeJWT,
			Alg:       jwa.HS256,
			Symmetric: true,
		},
		{
			Name: "unsecured token",
			Text: `{"alg":"none","typ":"JWT","kid":"key-id"}`,
			Typ:  header.TypeJWT,
			Alg:  jwa.None,
		},
		{
			Name:      "no typ",
			Text:      `{"alg":"HS512"}`,
			TypErr:    header.ErrParameterNotFound,
			Alg:       jwa.HS512,
			Symmetric: true,
		},
		{
			Name:   "no alg",
			Text:   `{"typ":"JWT"}`,
			Typ:    header.TypeJWT,
			AlgErr: header.ErrParameterNotFound,
		},
		{
			Name:   "numeric values",
			Text:   `{"typ":1,"alg":2}`,
			TypErr: header.ErrInvalidParameterType,
			AlgErr: header.ErrInvalidParameterType,
		},
		{
			Name: "asymmetric alg",
			Text: `{"alg":"RS256"}`,
			Alg:  "RS256",
			// RS256 is only a name here; nothing can sign with it.
			TypErr: header.ErrParameterNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			params, err := header.Parse(test.Text)
			require.NoError(t, err)

			typ, err := params.Type()
			if test.TypErr != nil {
				require.ErrorIs(t, err, test.TypErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, test.Typ, typ)

			alg, err := params.Algorithm()
			if test.AlgErr != nil {
				require.ErrorIs(t, err, test.AlgErr)

				_, err = params.SymmetricAlgorithm()
				require.ErrorIs(t, err, test.AlgErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.Alg, alg)

			symmetric, err := params.SymmetricAlgorithm()
			require.NoError(t, err)
			require.Equal(t, test.Symmetric, symmetric)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, text := range []string{"", "{", "null", `["alg"]`, `"JWT"`} {
		_, err := header.Parse(text)
		require.Error(t, err, text)
	}
}

func TestGet(t *testing.T) {
	params, err := header.Parse(`{"alg":"HS256","kid":"key-id"}`)
	require.NoError(t, err)

	kid, err := params.Get(header.KeyID)
	require.NoError(t, err)
	require.Equal(t, "key-id", kid)

	_, err = params.Get(header.ContentType)
	require.ErrorIs(t, err, header.ErrParameterNotFound)
}

func TestText(t *testing.T) {
	params := header.Parameters{
		header.Type:      header.TypeJWT,
		header.Algorithm: jwa.HS256,
	}

	text, err := params.Text()
	require.NoError(t, err)
	require.Equal(t, `{"alg":"HS256","typ":"JWT"}`, text)

	parsed, err := header.Parse(text)
	require.NoError(t, err)
	require.Equal(t, params, parsed)

	_, err = header.Parameters{"bad": make(chan int)}.Text()
	require.Error(t, err)
}
