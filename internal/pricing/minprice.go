package pricing

import (
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/money"
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
)

// AbsoluteMinPrice — абсолютный минимум цены в раппенах.
const AbsoluteMinPrice = 100

// CalculateMinPrice возвращает минимальную допустимую цену для выбранных опций.
//
// Сумма по опциям: количество × периоды × цена. В режиме userPrice опции
// с флагом UserPrice в сумму не входят. Если сумма не превышает абсолютный
// минимум, а в пакете есть опции с группой, берётся минимальная цена среди
// них: для пакетов "выбери один вариант" до выбора сумма равна нулю.
func CalculateMinPrice(pkg *models.Package, v models.Values, userPrice bool) int {
	sum := 0
	for i := range pkg.Options {
		o := &pkg.Options[i]
		if userPrice && o.UserPrice {
			continue
		}
		sum = money.Add(sum, money.Mul(money.Mul(o.Price, ResolveAmount(o, v)), ResolvePeriods(o, v)))
	}
	if sum > AbsoluteMinPrice {
		return sum
	}

	groupMin, found := 0, false
	for i := range pkg.Options {
		o := &pkg.Options[i]
		if o.OptionGroup == "" {
			continue
		}
		price := o.Price
		if userPrice && o.UserPrice {
			price = 0
		}
		if !found || price < groupMin {
			groupMin, found = price, true
		}
	}
	if found && groupMin != 0 {
		return groupMin
	}
	return AbsoluteMinPrice
}

// Price возвращает цену для отображения. Заданная пользователем цена возвращается
// как есть. В режиме userPrice без заданной цены предложения нет (пустое значение),
// так же как и при минимальной цене, равной абсолютному минимуму.
func Price(pkg *models.Package, v models.Values, userPrice bool) models.Amount {
	if v.Price.Defined() {
		return v.Price
	}
	if userPrice {
		return models.Empty()
	}
	return floorPrice(CalculateMinPrice(pkg, v, userPrice))
}

// floorPrice переводит минимальную цену в значение поля цены.
func floorPrice(minPrice int) models.Amount {
	if minPrice == AbsoluteMinPrice {
		return models.Empty()
	}
	return models.Int(minPrice)
}

// FixedPrice сообщает, что цена пакета не редактируется пользователем.
func FixedPrice(pkg *models.Package) bool {
	return pkg.Name == models.PackageMonthlyAbo
}
