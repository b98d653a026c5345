package pricing

import (
	"strconv"
	"strings"

	"github.com/magabrotheeeer/pledge-customizer/internal/lib/money"
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
)

// Translator возвращает перевод первого найденного ключа из списка,
// подставляя параметры вида {name}.
type Translator interface {
	First(keys []string, params map[string]string) string
}

// Ключи сообщений об ошибках.
const (
	keyOptionMax   = "package/customize/option/error/max"
	keyOptionMin   = "package/customize/option/error/min"
	keyPriceError  = "package/customize/price/error"
	keyReasonError = "package/customize/userPrice/reason/error"
	keyPriceNeeded = "package/customize/price/required"
)

// LabelKeys возвращает ключи подписи поля в порядке приоритета:
// подарок, интервал периодов, значение, "other", общая подпись;
// ключи конкретного пакета идут раньше общих.
func LabelKeys(pkg *models.Package, f Field, value models.Amount, give bool) []string {
	reward := ""
	if f.Option.Reward != nil {
		reward = f.Option.Reward.Name
	}
	v := value.String()
	if n, ok := value.Int(); ok {
		v = strconv.Itoa(n)
	}

	var keys []string
	if give {
		keys = append(keys,
			"option/"+pkg.Name+"/"+reward+"/label/give",
			"option/"+reward+"/label/give",
		)
	}
	if f.Interval != "" {
		for _, prefix := range []string{"option/" + pkg.Name + "/" + reward, "option/" + reward} {
			base := prefix + "/interval/" + f.Interval + "/label"
			keys = append(keys, base+"/"+v, base+"/other", base)
		}
	}
	for _, prefix := range []string{"option/" + pkg.Name + "/" + reward, "option/" + reward} {
		base := prefix + "/label"
		keys = append(keys, base+"/"+v, base+"/other", base)
	}
	return keys
}

// Label возвращает подпись поля. give выбирает подписи подарка членства
// другому пользователю.
func Label(t Translator, pkg *models.Package, f Field, value models.Amount, give bool) string {
	params := map[string]string{"count": strconv.Itoa(value.Value())}
	return t.First(LabelKeys(pkg, f, value, give), params)
}

// PriceLabel возвращает подпись цены одной опции в группе с выбором галочкой.
func PriceLabel(t Translator, pkg *models.Package, o *models.Option, give bool) string {
	var keys []string
	if give {
		keys = append(keys, "package/"+pkg.Name+"/price/give")
	}
	keys = append(keys, "package/"+pkg.Name+"/price", "package/price")
	return t.First(keys, map[string]string{"formattedCHF": money.FormatCHF(o.Price)})
}

// boundsError возвращает ошибку выхода значения за границы поля или пустую строку.
// Пустое значение сравнивается как ноль.
func boundsError(t Translator, label string, f Field, value models.Amount) string {
	n := value.Value()
	var msg string
	if n > f.Max {
		msg = t.First([]string{keyOptionMax}, map[string]string{
			"label":     label,
			"maxAmount": strconv.Itoa(f.Max),
		})
	}
	if n < f.Min {
		msg = t.First([]string{keyOptionMin}, map[string]string{
			"label":     label,
			"minAmount": strconv.Itoa(f.Min),
		})
	}
	return msg
}

// priceError возвращает ошибку цены ниже минимальной. Незаданная и пустая цена не проверяются.
func priceError(t Translator, price models.Amount, minPrice int) string {
	n, ok := price.Int()
	if !ok || n >= minPrice {
		return ""
	}
	return t.First([]string{keyPriceError}, map[string]string{
		"formattedCHF": money.FormatCHF(minPrice),
	})
}

// reasonError возвращает ошибку пустого обоснования.
func reasonError(t Translator, reason string) string {
	if strings.TrimSpace(reason) != "" {
		return ""
	}
	return t.First([]string{keyReasonError}, nil)
}
