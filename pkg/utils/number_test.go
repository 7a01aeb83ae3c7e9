package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	testCases := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "zero", input: 0, expected: 0},
		{name: "inteiro permanece inteiro", input: 100, expected: 100},
		{name: "duas casas permanecem", input: 10.55, expected: 10.55},
		{name: "meio arredonda para longe do zero", input: 0.125, expected: 0.13},
		{name: "meio negativo arredonda para longe do zero", input: -0.125, expected: -0.13},
		{name: "terceira casa abaixo do meio trunca", input: 100.994, expected: 100.99},
		{name: "terceira casa acima do meio sobe", input: 100.995, expected: 101},
		{name: "ruído binário de soma de floats", input: 0.1 + 0.2, expected: 0.3},
		{name: "valor negativo", input: -10.005, expected: -10.01},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RoundWithTwoDecimalPlace(tc.input))
		})
	}
}

func TestRoundWithTwoDecimalPlaceIsDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, 33.42, RoundWithTwoDecimalPlace(100.255/3))
	}
}
