package pledge

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/pledge-customizer/internal/lib/money"
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
	"github.com/magabrotheeeer/pledge-customizer/internal/pricing"
)

// Quote — расчёт цены для текущих значений формы.
type Quote struct {
	Package         string                `json:"package"`
	MinPrice        int                   `json:"min_price"`
	RegularMinPrice int                   `json:"regular_min_price"`
	Price           models.Amount         `json:"price"`
	FormattedPrice  string                `json:"formatted_price,omitempty"`
	FormattedMin    string                `json:"formatted_min_price"`
	BonusValue      int                   `json:"bonus_value"`
	Suggestions     []pricing.Suggestion  `json:"suggestions"`
	ThankYou        bool                  `json:"thank_you"`
	Groups          []pricing.OptionGroup `json:"groups"`
	Labels          map[string]string     `json:"labels"`
	PriceLabels     map[string]string     `json:"price_labels,omitempty"` // Цены опций в группах с выбором галочкой
	FixedPrice      bool                  `json:"fixed_price"`
	OfferUserPrice  bool                  `json:"offer_user_price"`
	Errors          map[string]string     `json:"errors,omitempty"` // Ошибки, которые помешают оформлению
}

// Quote рассчитывает минимальную цену, цену для отображения, бонус и предложения.
func (s *Service) Quote(ctx context.Context, name string, req models.QuoteRequest) (*Quote, error) {
	const op = "pledge.Quote"

	pkg, err := s.Package(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.Quotes.WithLabelValues(pkg.Name).Inc()

	return buildQuote(pkg, req, s.translator), nil
}

func buildQuote(pkg *models.Package, req models.QuoteRequest, t pricing.Translator) *Quote {
	v := req.Values
	minPrice := pricing.CalculateMinPrice(pkg, v, req.UserPrice)
	regularMinPrice := pricing.CalculateMinPrice(pkg, v, false)
	price := pricing.Price(pkg, v, req.UserPrice)
	bonus := pricing.BonusValue(pkg, v)

	suggestions := pricing.Suggestions(pkg, pricing.SuggestionInput{
		Price:           price,
		MinPrice:        minPrice,
		RegularMinPrice: regularMinPrice,
		BonusValue:      bonus,
		UserPrice:       req.UserPrice,
	})

	groups := pricing.OptionGroups(pkg, v)
	labels := make(map[string]string)
	var priceLabels map[string]string
	for _, g := range groups {
		for _, f := range g.Fields {
			labels[f.Key] = pricing.Label(t, pkg, f, f.Value(v), req.Give)
			if g.Name != "" && !f.Periods && f.Min == 0 && f.Max == 1 {
				if priceLabels == nil {
					priceLabels = make(map[string]string)
				}
				priceLabels[f.Key] = pricing.PriceLabel(t, pkg, f.Option, req.Give)
			}
		}
	}

	q := &Quote{
		Package:         pkg.Name,
		MinPrice:        minPrice,
		RegularMinPrice: regularMinPrice,
		Price:           price,
		FormattedMin:    money.FormatCHF(minPrice),
		BonusValue:      bonus,
		Suggestions:     suggestions,
		ThankYou:        pricing.ThankYou(suggestions),
		Groups:          groups,
		Labels:          labels,
		PriceLabels:     priceLabels,
		FixedPrice:      pricing.FixedPrice(pkg),
		OfferUserPrice:  pricing.OfferUserPrice(pkg, v, req.UserPrice),
	}
	if n, ok := price.Int(); ok {
		q.FormattedPrice = money.FormatCHF(n)
	}
	submit := v
	submit.Price = price
	if errs := pricing.ValidateSubmit(pkg, submit, req.UserPrice, req.Give, t); len(errs) > 0 {
		q.Errors = errs
	}
	return q
}
