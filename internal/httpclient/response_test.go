package httpclient

import (
	"errors"
	"testing"
)

func TestUnwrap(t *testing.T) {
	data, err := Unwrap([]byte(`{"success": true, "data": {"code": 1456}}`))
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if string(data) != `{"code": 1456}` {
		t.Errorf("data = %s", data)
	}

	data, err = Unwrap([]byte(`{"success": true}`))
	if err != nil || string(data) != "null" {
		t.Errorf("missing data: %s, %v", data, err)
	}

	if _, err := Unwrap([]byte(`[]`)); !errors.Is(err, ErrNotFound) {
		t.Errorf("non-object body: %v", err)
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrNotFound, ""},
		{&APIError{Message: "Inconnue"}, "Erreur API : Inconnue"},
		{&ConnectionError{Err: errors.New("refused")}, "Erreur : impossible de se connecter à l'API. Vérifie ta connexion internet."},
		{&TimeoutError{Err: errors.New("deadline")}, "Erreur : l'API ne répond pas (timeout)."},
		{&RequestError{Err: errors.New("502 Bad Gateway")}, "Erreur : 502 Bad Gateway"},
	}
	for _, tc := range cases {
		if got := Describe(tc.err); got != tc.want {
			t.Errorf("Describe(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
