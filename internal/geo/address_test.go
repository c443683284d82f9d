package geo

import (
	"errors"
	"testing"
)

func TestValidateAddress(t *testing.T) {
	cases := []struct {
		addr  string
		valid bool
	}{
		{"Rua Teste 123, São Paulo, SP", true},
		{"Av. Paulista, 1000", true},
		{"Rua Teste", false},
		{"Avenida Sem Numero, SP", false},
		{"Rua 7,", false},
		{"   ", false},
	}
	for _, tc := range cases {
		err := ValidateAddress(tc.addr)
		if tc.valid && err != nil {
			t.Fatalf("expected %q to be valid, got %v", tc.addr, err)
		}
		if !tc.valid && !errors.Is(err, ErrInvalidAddress) {
			t.Fatalf("expected %q to be rejected, got %v", tc.addr, err)
		}
	}
}
