// Package pricing реализует расчёт цены настраиваемых пакетов пледжа:
// разрешение количеств опций, минимальную цену, бонусные предложения
// и переходы состояния формы настройки.
//
// Пакет не хранит состояния между вызовами: всё состояние формы передаётся
// вызывающей стороной и возвращается в виде patch-изменений.
package pricing

import (
	"strings"

	"github.com/magabrotheeeer/pledge-customizer/internal/models"
)

const periodsSuffix = "-periods"

// OptionFieldKey возвращает ключ поля количества опции: непустые части
// из группы опции и идентификатора шаблона, соединённые через "-".
func OptionFieldKey(o *models.Option) string {
	parts := make([]string, 0, 2)
	if o.OptionGroup != "" {
		parts = append(parts, o.OptionGroup)
	}
	if o.TemplateID != "" {
		parts = append(parts, o.TemplateID)
	}
	return strings.Join(parts, "-")
}

// OptionPeriodsFieldKey возвращает ключ поля числа периодов опции.
func OptionPeriodsFieldKey(o *models.Option) string {
	return OptionFieldKey(o) + periodsSuffix
}

// ResolveAmount возвращает действующее количество опции: значение из формы,
// если оно задано (пустое поле считается нулём), иначе количество по умолчанию,
// иначе минимальное количество.
func ResolveAmount(o *models.Option, v models.Values) int {
	if a := v.Amount(OptionFieldKey(o)); a.Defined() {
		return a.Value()
	}
	if o.DefaultAmount != nil && *o.DefaultAmount != 0 {
		return *o.DefaultAmount
	}
	return o.MinAmount
}

// ResolvePeriods возвращает действующее число периодов опции: значение из формы,
// иначе периоды по умолчанию из вознаграждения, иначе минимальные периоды, иначе 1.
func ResolvePeriods(o *models.Option, v models.Values) int {
	if a := v.Amount(OptionPeriodsFieldKey(o)); a.Defined() {
		return a.Value()
	}
	if r := o.Reward; r != nil {
		if r.DefaultPeriods != nil && *r.DefaultPeriods != 0 {
			return *r.DefaultPeriods
		}
		if r.MinPeriods != nil {
			return *r.MinPeriods
		}
	}
	return 1
}

// OptionValue возвращает значение поля опции для проверки выбора:
// значение из формы, иначе количество по умолчанию, иначе 0.
func OptionValue(o *models.Option, v models.Values) int {
	if a := v.Amount(OptionFieldKey(o)); a.Defined() {
		return a.Value()
	}
	if o.DefaultAmount != nil {
		return *o.DefaultAmount
	}
	return 0
}

// Selected сообщает, выбрана ли опция (ненулевое значение поля).
func Selected(o *models.Option, v models.Values) bool {
	return OptionValue(o, v) != 0
}
