package domain

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Text é um campo de texto tolerante: qualquer valor que não seja string
// (número, objeto, lista) vira string vazia em vez de invalidar o documento.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		*t = ""
		return nil
	}

	*t = Text(value)
	return nil
}

func (t Text) String() string {
	return string(t)
}

func isJSONObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

// decodeObject decodifica data em dest apenas quando é um objeto válido;
// caso contrário dest fica com o valor zero
func decodeObject[T any](data []byte, dest *T) {
	var decoded T
	if isJSONObject(data) {
		if err := json.Unmarshal(data, &decoded); err != nil {
			decoded = *new(T)
		}
	}
	*dest = decoded
}
