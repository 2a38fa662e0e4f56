package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginResponseAccessors(t *testing.T) {
	cases := []struct {
		name  string
		token string
		exp   int64
	}{
		{"jwt", "eyJhbGciOiJIUzI1NiJ9.e30.sig", 3600},
		{"empty token", "", 0},
		{"unicode", "令牌-✓", 86400},
		{"large", "t", 1 << 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &LoginResponse{}
			got := r.SetToken(tc.token)
			require.Same(t, r, got)
			got = r.SetExpiresIn(tc.exp)
			require.Same(t, r, got)
			require.Equal(t, tc.token, r.GetToken())
			require.Equal(t, tc.exp, r.GetExpiresIn())
		})
	}
}

func TestLoginResponseSetterOrder(t *testing.T) {
	a := new(LoginResponse).SetToken("abc").SetExpiresIn(60)
	b := new(LoginResponse).SetExpiresIn(60).SetToken("abc")
	require.Equal(t, *a, *b)
	require.Equal(t, "abc", b.GetToken())
	require.Equal(t, int64(60), b.GetExpiresIn())
}

func TestLoginResponseOverwrite(t *testing.T) {
	r := new(LoginResponse).SetToken("first").SetToken("second")
	require.Equal(t, "second", r.GetToken())
}

func TestLoginResponseJSON(t *testing.T) {
	r := new(LoginResponse).SetToken("abc123").SetExpiresIn(3600)
	b, err := json.Marshal(r)
	require.NoError(t, err)
	require.JSONEq(t, `{"token":"abc123","expiresIn":3600}`, string(b))

	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	require.Len(t, fields, 2)

	empty, err := json.Marshal(new(LoginResponse).SetToken(""))
	require.NoError(t, err)
	require.JSONEq(t, `{"token":"","expiresIn":0}`, string(empty))
}
