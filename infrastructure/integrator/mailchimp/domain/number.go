package domain

import (
	"bytes"
	"math"
	"strconv"
)

// Number é um campo numérico tolerante: aceita número, string numérica ou null.
// Qualquer outro valor vira zero em vez de invalidar o documento inteiro.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}

	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		*n = 0
		return nil
	}

	*n = Number(value)
	return nil
}

func (n Number) Float() float64 {
	return float64(n)
}

func (n Number) Int() int {
	return int(math.Round(float64(n)))
}
