// Package money переводит суммы из раппенов (минорных единиц) в франки для отображения.
// Внутри сервиса все цены хранятся целыми числами в раппенах.
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// MinorPerMajor — количество раппенов во франке.
const MinorPerMajor = 100

// Currency — код валюты, используемый в подписях.
const Currency = "CHF"

// Major возвращает сумму во франках.
func Major(minor int) decimal.Decimal {
	return decimal.New(int64(minor), -2)
}

// ToMinor переводит целые франки в раппены. Результат насыщается на границах int.
func ToMinor(major int) int {
	return Mul(major, MinorPerMajor)
}

// Mul перемножает суммы с насыщением до math.MaxInt или math.MinInt.
func Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		if (a > 0) == (b > 0) {
			return math.MaxInt
		}
		return math.MinInt
	}
	return p
}

// Add складывает суммы с насыщением до math.MaxInt или math.MinInt.
func Add(a, b int) int {
	s := a + b
	switch {
	case a > 0 && b > 0 && s < 0:
		return math.MaxInt
	case a < 0 && b < 0 && s >= 0:
		return math.MinInt
	}
	return s
}

// FormatCHF форматирует сумму в раппенах как "CHF 1'200" или "CHF 12.50".
func FormatCHF(minor int) string {
	return Currency + " " + Format(minor)
}

// Format форматирует сумму без кода валюты. Дробная часть выводится только если она есть.
func Format(minor int) string {
	d := Major(minor)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	var s string
	if d.IsInteger() {
		s = d.StringFixed(0)
	} else {
		s = d.StringFixed(2)
	}

	intPart, frac, hasFrac := strings.Cut(s, ".")
	out := sign + group(intPart)
	if hasFrac {
		out += "." + frac
	}
	return out
}

// group расставляет апостроф как разделитель тысяч.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('\'')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
