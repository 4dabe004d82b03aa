package domain

import (
	"encoding/json"
	"strconv"
)

// ValueKind identifica o tipo escalar armazenado em um Value.
type ValueKind int

const (
	KindString ValueKind = iota
	KindFloat
	KindInt
)

// Value é um escalar tipado (string | número) de uma célula do dataset.
// Substitui o registro "qualquer objeto JSON" das variantes originais por
// um valor com tag explícita de tipo.
type Value struct {
	Kind ValueKind
	Text string
	Num  float64
}

func StringValue(s string) Value {
	return Value{Kind: KindString, Text: s}
}

func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Num: f}
}

func IntValue(n int) Value {
	return Value{Kind: KindInt, Num: float64(n)}
}

// String retorna a representação textual do valor, qualquer que seja o tipo.
func (v Value) String() string {
	switch v.Kind {
	case KindFloat:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindInt:
		return strconv.FormatInt(int64(v.Num), 10)
	default:
		return v.Text
	}
}

// Float retorna o valor numérico; strings retornam 0.
func (v Value) Float() float64 {
	if v.Kind == KindString {
		return 0
	}
	return v.Num
}

// Int retorna o valor numérico truncado; strings retornam 0.
func (v Value) Int() int {
	if v.Kind == KindString {
		return 0
	}
	return int(v.Num)
}

// MarshalJSON serializa o valor como o tipo JSON nativo correspondente.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindFloat:
		return json.Marshal(v.Num)
	case KindInt:
		return json.Marshal(int64(v.Num))
	default:
		return json.Marshal(v.Text)
	}
}

// UnmarshalJSON aceita string ou número, preservando a tag de tipo.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch t := raw.(type) {
	case float64:
		if t == float64(int64(t)) {
			*v = IntValue(int(t))
			return nil
		}
		*v = FloatValue(t)
	case string:
		*v = StringValue(t)
	default:
		*v = StringValue("")
	}

	return nil
}
