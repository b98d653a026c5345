package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
)

// Ключи полей формы, не относящихся к опциям.
const (
	FieldPrice  = "price"
	FieldReason = "reason"
)

type amountState uint8

const (
	amountUnset amountState = iota
	amountEmpty
	amountSet
)

// Amount хранит значение поля формы в одном из трёх состояний:
// не задано (поле не трогали), пусто (пользователь очистил поле) или целое число.
// Нулевое значение Amount — "не задано".
type Amount struct {
	state amountState
	n     int
}

// Unset возвращает незаданное значение.
func Unset() Amount { return Amount{} }

// Empty возвращает пустое значение.
func Empty() Amount { return Amount{state: amountEmpty} }

// Int возвращает целое значение n.
func Int(n int) Amount { return Amount{state: amountSet, n: n} }

// IsUnset сообщает, что значение не задано.
func (a Amount) IsUnset() bool { return a.state == amountUnset }

// IsEmpty сообщает, что поле очищено пользователем.
func (a Amount) IsEmpty() bool { return a.state == amountEmpty }

// Defined сообщает, что значение задано (пустое или целое).
func (a Amount) Defined() bool { return a.state != amountUnset }

// Int возвращает целое значение и признак его наличия.
func (a Amount) Int() (int, bool) { return a.n, a.state == amountSet }

// Value возвращает значение для арифметики: пустое и незаданное считаются нулём.
func (a Amount) Value() int {
	if a.state != amountSet {
		return 0
	}
	return a.n
}

func (a Amount) String() string {
	switch a.state {
	case amountEmpty:
		return `""`
	case amountSet:
		return strconv.Itoa(a.n)
	default:
		return "unset"
	}
}

// MarshalJSON кодирует незаданное значение как null, пустое как "" и целое как число.
func (a Amount) MarshalJSON() ([]byte, error) {
	switch a.state {
	case amountEmpty:
		return []byte(`""`), nil
	case amountSet:
		return []byte(strconv.Itoa(a.n)), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON принимает null, число или строку с числом.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Unset()
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*a = Empty()
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("amount: invalid value %q", s)
		}
		*a = Int(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	*a = Int(n)
	return nil
}

// Values — значения формы настройки пакета: выбранные количества по ключам полей,
// итоговая цена (не задана — рассчитывается автоматически) и обоснование.
type Values struct {
	Amounts map[string]Amount `json:"amounts,omitempty"`
	Price   Amount            `json:"price,omitzero"`
	Reason  string            `json:"reason,omitempty"`
}

// Amount возвращает значение поля по ключу.
func (v Values) Amount(key string) Amount {
	return v.Amounts[key]
}

// Form — состояние формы, которым владеет вызывающая сторона.
// Ошибки пересчитываются при каждом изменении, dirty выставляется только
// при явном взаимодействии пользователя.
type Form struct {
	Values Values            `json:"values"`
	Errors map[string]string `json:"errors,omitempty"`
	Dirty  map[string]bool   `json:"dirty,omitempty"`
}

// ValuesPatch — изменения значений. Nil-поля не меняются.
type ValuesPatch struct {
	Amounts map[string]Amount `json:"amounts,omitempty"`
	Price   *Amount           `json:"price,omitempty"`
	Reason  *string           `json:"reason,omitempty"`
}

// Patch — изменение состояния формы, которое вызывающая сторона применяет целиком.
// Пустая строка в Errors снимает ошибку поля.
type Patch struct {
	Values ValuesPatch       `json:"values"`
	Errors map[string]string `json:"errors,omitempty"`
	Dirty  map[string]bool   `json:"dirty,omitempty"`
}

// SetAmount записывает значение, ошибку и флаг dirty поля опции.
func (p *Patch) SetAmount(key string, value Amount, errMsg string, dirty bool) {
	if p.Values.Amounts == nil {
		p.Values.Amounts = make(map[string]Amount)
	}
	p.Values.Amounts[key] = value
	p.SetError(key, errMsg)
	p.SetDirty(key, dirty)
}

// SetPrice записывает цену, её ошибку и флаг dirty.
func (p *Patch) SetPrice(value Amount, errMsg string, dirty bool) {
	p.Values.Price = &value
	p.SetError(FieldPrice, errMsg)
	p.SetDirty(FieldPrice, dirty)
}

// SetReason записывает обоснование, его ошибку и флаг dirty.
func (p *Patch) SetReason(value string, errMsg string, dirty bool) {
	p.Values.Reason = &value
	p.SetError(FieldReason, errMsg)
	p.SetDirty(FieldReason, dirty)
}

// SetError записывает ошибку поля.
func (p *Patch) SetError(key, msg string) {
	if p.Errors == nil {
		p.Errors = make(map[string]string)
	}
	p.Errors[key] = msg
}

// SetDirty записывает флаг dirty поля.
func (p *Patch) SetDirty(key string, dirty bool) {
	if p.Dirty == nil {
		p.Dirty = make(map[string]bool)
	}
	p.Dirty[key] = dirty
}

// Apply возвращает копию формы с применённым изменением. Исходная форма не меняется.
func (f Form) Apply(p Patch) Form {
	out := Form{
		Values: Values{
			Amounts: maps.Clone(f.Values.Amounts),
			Price:   f.Values.Price,
			Reason:  f.Values.Reason,
		},
		Errors: maps.Clone(f.Errors),
		Dirty:  maps.Clone(f.Dirty),
	}
	if out.Values.Amounts == nil {
		out.Values.Amounts = make(map[string]Amount)
	}
	if out.Errors == nil {
		out.Errors = make(map[string]string)
	}
	if out.Dirty == nil {
		out.Dirty = make(map[string]bool)
	}

	for k, v := range p.Values.Amounts {
		if v.IsUnset() {
			delete(out.Values.Amounts, k)
			continue
		}
		out.Values.Amounts[k] = v
	}
	if p.Values.Price != nil {
		out.Values.Price = *p.Values.Price
	}
	if p.Values.Reason != nil {
		out.Values.Reason = *p.Values.Reason
	}
	for k, msg := range p.Errors {
		if msg == "" {
			delete(out.Errors, k)
			continue
		}
		out.Errors[k] = msg
	}
	for k, d := range p.Dirty {
		if !d {
			delete(out.Dirty, k)
			continue
		}
		out.Dirty[k] = true
	}
	return out
}

// Visible возвращает ошибки, которые нужно показать: поле dirty или включён показ всех ошибок.
func (f Form) Visible(showAll bool) map[string]string {
	out := make(map[string]string)
	for k, msg := range f.Errors {
		if msg != "" && (showAll || f.Dirty[k]) {
			out[k] = msg
		}
	}
	return out
}
