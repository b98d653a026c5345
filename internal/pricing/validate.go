package pricing

import "github.com/magabrotheeeer/pledge-customizer/internal/models"

// ValidateSubmit проверяет форму перед сохранением пледжа и возвращает ошибки по ключам полей.
// Пустой результат означает, что форму можно отправлять.
func ValidateSubmit(pkg *models.Package, v models.Values, userPrice, give bool, t Translator) map[string]string {
	errs := make(map[string]string)

	for _, f := range ConfigurableFields(pkg) {
		value := models.Int(ResolveAmount(f.Option, v))
		if f.Periods {
			value = models.Int(ResolvePeriods(f.Option, v))
		}
		if a := v.Amount(f.Key); a.IsEmpty() {
			value = a
		}
		if msg := boundsError(t, Label(t, pkg, f, value, give), f, value); msg != "" {
			errs[f.Key] = msg
		}
	}

	minPrice := CalculateMinPrice(pkg, v, userPrice)
	price := v.Price
	if FixedPrice(pkg) && !price.Defined() {
		price = models.Int(minPrice)
	}
	if _, ok := price.Int(); !ok {
		errs[models.FieldPrice] = t.First([]string{keyPriceNeeded, keyPriceError}, nil)
	} else if msg := priceError(t, price, minPrice); msg != "" {
		errs[models.FieldPrice] = msg
	}

	if userPrice {
		if msg := reasonError(t, v.Reason); msg != "" {
			errs[models.FieldReason] = msg
		}
	}
	return errs
}
