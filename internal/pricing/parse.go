package pricing

import (
	"errors"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/pledge-customizer/internal/lib/money"
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
)

// ParseAmount разбирает ввод поля количества. Пустая строка остаётся пустым
// значением, нечисловой ввод становится нулём.
func ParseAmount(raw string) models.Amount {
	if raw == "" {
		return models.Empty()
	}
	n, _ := leadingInt(raw)
	return models.Int(n)
}

// ParsePrice разбирает ввод цены во франках и возвращает цену в раппенах.
// Дробная часть отбрасывается, пустой и нечисловой ввод дают ноль.
func ParsePrice(raw string) int {
	n, _ := leadingInt(raw)
	return money.ToMinor(n)
}

// leadingInt читает целое число в начале строки: пробелы, необязательный знак
// и цифры до первого постороннего символа. Значения вне диапазона int
// насыщаются до math.MaxInt или math.MinInt, чтобы проверки границ срабатывали.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		end = 1
	}
	digits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return int(n), true
}
