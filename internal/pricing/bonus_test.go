package pricing

import (
	"math"
	"testing"

	"github.com/magabrotheeeer/pledge-customizer/internal/models"
	"github.com/stretchr/testify/assert"
)

func bonusPackage(amount int) *models.Package {
	return &models.Package{
		Name: models.PackageProlong,
		Options: []models.Option{{
			TemplateID:    "abo",
			MinAmount:     0,
			MaxAmount:     5,
			DefaultAmount: intPtr(amount),
			Price:         10000,
			AdditionalPeriods: []models.AdditionalPeriod{
				{Kind: models.PeriodRegular, BeginDate: date(2023, 1, 1), EndDate: date(2024, 1, 1)},
				{Kind: models.PeriodBonus, BeginDate: date(2024, 1, 1), EndDate: date(2024, 1, 31)},
			},
		}},
	}
}

func TestBonusValue(t *testing.T) {
	tests := []struct {
		name   string
		pkg    *models.Package
		values models.Values
		want   int
	}{
		{name: "два членства с 30 бонусными днями", pkg: bonusPackage(2), want: 1800},
		{name: "одно членство", pkg: bonusPackage(1), want: 900},
		{
			name:   "нулевое количество",
			pkg:    bonusPackage(2),
			values: values(map[string]models.Amount{"abo": models.Int(0)}),
			want:   0,
		},
		{name: "без бонусных периодов", pkg: prolongPackage(), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BonusValue(tt.pkg, tt.values))
		})
	}
}

func TestBonusValueWithoutRegularDays(t *testing.T) {
	pkg := bonusPackage(1)
	pkg.Options[0].AdditionalPeriods = pkg.Options[0].AdditionalPeriods[1:]
	assert.Equal(t, 0, BonusValue(pkg, models.Values{}))
}

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name    string
		pkg     *models.Package
		in      SuggestionInput
		want    []Suggestion
		thanked bool
	}{
		{
			name: "бонус и полуторная цена",
			pkg:  prolongPackage(),
			in:   SuggestionInput{Price: models.Int(24000), MinPrice: 24000, BonusValue: 1800},
			want: []Suggestion{
				{Key: SuggestBonus, Value: 25800},
				{Key: SuggestOneAndAHalf, Value: 36000},
			},
		},
		{
			name: "достигнута бонусная цена",
			pkg:  prolongPackage(),
			in:   SuggestionInput{Price: models.Int(30000), MinPrice: 24000, BonusValue: 1800},
			want: []Suggestion{
				{Key: SuggestBonus, Value: 25800, Achieved: true},
				{Key: SuggestOneAndAHalf, Value: 36000},
			},
		},
		{
			name: "достигнуто последнее предложение",
			pkg:  prolongPackage(),
			in:   SuggestionInput{Price: models.Int(36000), MinPrice: 24000},
			want: []Suggestion{
				{Key: SuggestOneAndAHalf, Value: 36000, Achieved: true},
			},
			thanked: true,
		},
		{
			name: "цена ниже минимальной",
			pkg:  prolongPackage(),
			in:   SuggestionInput{Price: models.Int(100), MinPrice: 24000, BonusValue: 1800},
			want: nil,
		},
		{
			name: "режим userPrice",
			pkg:  userPricePackage(),
			in:   SuggestionInput{Price: models.Int(5000), MinPrice: 100, RegularMinPrice: 24000, UserPrice: true},
			want: []Suggestion{{Key: SuggestNormal, Value: 24000}},
		},
		{
			name: "пожертвование",
			pkg:  &models.Package{Name: models.PackageDonate},
			in:   SuggestionInput{Price: models.Int(24000), MinPrice: 24000},
			want: nil,
		},
		{
			name: "подарок месяцев",
			pkg:  &models.Package{Name: models.PackageAboGiveMonths},
			in:   SuggestionInput{Price: models.Int(24000), MinPrice: 24000},
			want: nil,
		},
		{
			name: "полуторная цена округляется",
			pkg:  prolongPackage(),
			in:   SuggestionInput{Price: models.Int(101), MinPrice: 101},
			want: []Suggestion{{Key: SuggestOneAndAHalf, Value: 152}},
		},
		{
			name: "предложения насыщаются на границе int",
			pkg:  prolongPackage(),
			in:   SuggestionInput{Price: models.Int(math.MaxInt), MinPrice: math.MaxInt, BonusValue: 1800},
			want: []Suggestion{
				{Key: SuggestBonus, Value: math.MaxInt, Achieved: true},
				{Key: SuggestOneAndAHalf, Value: math.MaxInt, Achieved: true},
			},
			thanked: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggestions(tt.pkg, tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.thanked, ThankYou(got))
		})
	}
}

func TestOfferUserPrice(t *testing.T) {
	tests := []struct {
		name      string
		pkg       *models.Package
		values    models.Values
		userPrice bool
		want      bool
	}{
		{name: "ничего не выбрано", pkg: userPricePackage(), want: true},
		{
			name:   "выбрана опция с userPrice",
			pkg:    userPricePackage(),
			values: values(map[string]models.Amount{"abo": models.Int(1)}),
			want:   true,
		},
		{
			name:   "выбран блокнот",
			pkg:    userPricePackage(),
			values: values(map[string]models.Amount{"notebook": models.Int(1)}),
			want:   false,
		},
		{name: "уже в режиме userPrice", pkg: userPricePackage(), userPrice: true, want: false},
		{name: "не продление", pkg: groupedPackage(), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OfferUserPrice(tt.pkg, tt.values, tt.userPrice))
		})
	}
}
