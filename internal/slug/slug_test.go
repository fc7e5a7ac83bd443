package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Passeio ao Museu", want: "passeio-ao-museu"},
		{in: "Excursão à Serra da Canastra", want: "excursao-a-serra-da-canastra"},
		{in: "  São João -- 2025! ", want: "sao-joao-2025"},
		{in: "Açaí & Cia", want: "acai-cia"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}
