package pricing

import (
	"math"
	"time"

	"github.com/magabrotheeeer/pledge-customizer/internal/lib/days"
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/money"
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
)

// SuggestionKey — смысловая метка предложения "заплатить больше".
type SuggestionKey string

const (
	SuggestNormal      SuggestionKey = "normal" // Обычная цена в режиме userPrice
	SuggestBonus       SuggestionKey = "bonus"  // Минимальная цена плюс стоимость бонусных дней
	SuggestOneAndAHalf SuggestionKey = "1.5"    // Полуторная минимальная цена
)

const oneAndAHalfMultiple = 1.5

// Suggestion — вариант более высокой цены.
type Suggestion struct {
	Key      SuggestionKey `json:"key"`
	Value    int           `json:"value"`
	Achieved bool          `json:"achieved"` // Цена уже не ниже предложения, ссылка неактивна
}

// BonusValue возвращает стоимость бонусных периодов выбранных опций.
//
// Для каждой опции с хотя бы одним периодом BONUS и ненулевым количеством:
// ceil(цена / регулярные дни × бонусные дни / 100) × 100 × количество.
// Округление вверх до 100 раппенов сохранено без изменений.
func BonusValue(pkg *models.Package, v models.Values) int {
	total := 0
	for i := range pkg.Options {
		o := &pkg.Options[i]
		if !hasBonusPeriod(o) {
			continue
		}
		amount := ResolveAmount(o, v)
		if amount == 0 {
			continue
		}
		bonusDays := periodDays(o, models.PeriodBonus)
		regularDays := periodDays(o, models.PeriodRegular)
		if regularDays == 0 {
			continue
		}
		perUnit := math.Ceil(float64(o.Price)/float64(regularDays)*float64(bonusDays)/100) * 100
		total = money.Add(total, money.Mul(int(perUnit), amount))
	}
	return total
}

func hasBonusPeriod(o *models.Option) bool {
	for _, p := range o.AdditionalPeriods {
		if p.Kind == models.PeriodBonus {
			return true
		}
	}
	return false
}

func periodDays(o *models.Option, kind models.PeriodKind) int {
	var intervals [][2]time.Time
	for _, p := range o.AdditionalPeriods {
		if p.Kind == kind {
			intervals = append(intervals, [2]time.Time{p.BeginDate, p.EndDate})
		}
	}
	return days.Sum(intervals)
}

// SuggestionInput — данные для расчёта предложений.
type SuggestionInput struct {
	Price           models.Amount
	MinPrice        int
	RegularMinPrice int // Минимальная цена без режима userPrice
	BonusValue      int
	UserPrice       bool
}

// Suggestions возвращает упорядоченный список предложений "заплатить больше".
// Для пожертвований и подарка месяцев список всегда пуст.
func Suggestions(pkg *models.Package, in SuggestionInput) []Suggestion {
	if pkg.Name == models.PackageDonate || pkg.Name == models.PackageAboGiveMonths {
		return nil
	}

	price := in.Price.Value()
	var out []Suggestion
	if in.UserPrice {
		out = append(out, Suggestion{Key: SuggestNormal, Value: in.RegularMinPrice})
	} else if price >= in.MinPrice {
		if in.BonusValue > 0 {
			out = append(out, Suggestion{Key: SuggestBonus, Value: money.Add(in.MinPrice, in.BonusValue)})
		}
		out = append(out, Suggestion{
			Key:   SuggestOneAndAHalf,
			Value: oneAndAHalf(in.MinPrice),
		})
	}

	for i := range out {
		out[i].Achieved = price >= out[i].Value
	}
	return out
}

// ThankYou сообщает, что достигнуто последнее предложение и нужно показать благодарность.
func ThankYou(suggestions []Suggestion) bool {
	return len(suggestions) > 0 && suggestions[len(suggestions)-1].Achieved
}

// OfferUserPrice сообщает, можно ли предложить режим "плати сколько хочешь":
// только для продления, когда каждая опция либо не выбрана, либо допускает свою цену.
func OfferUserPrice(pkg *models.Package, v models.Values, userPrice bool) bool {
	if userPrice || pkg.Name != models.PackageProlong {
		return false
	}
	for i := range pkg.Options {
		o := &pkg.Options[i]
		if Selected(o, v) && !o.UserPrice {
			return false
		}
	}
	return true
}

// oneAndAHalf возвращает полторы цены с округлением и насыщением до math.MaxInt.
func oneAndAHalf(minPrice int) int {
	f := math.Round(float64(minPrice) * oneAndAHalfMultiple)
	if f >= math.MaxInt {
		return math.MaxInt
	}
	return int(f)
}
