package pricing

import (
	"errors"

	"github.com/magabrotheeeer/pledge-customizer/internal/lib/money"
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
)

// Шаг кнопок увеличения и уменьшения цены в раппенах.
const priceStep = 1000

var (
	ErrUnknownField         = errors.New("unknown field")
	ErrUnknownGroup         = errors.New("unknown option group")
	ErrNoUserPriceOption    = errors.New("package has no user price option")
	ErrUserPriceUnavailable = errors.New("user price is not available for current selection")
	ErrNotConvertible       = errors.New("package cannot be converted")
	ErrFixedPrice           = errors.New("package price is fixed")
)

// Navigator выполняет навигацию, которой владеет вызывающая сторона.
type Navigator interface {
	ExitUserPrice()
	EnterUserPrice()
	SwitchPackage(name string)
}

// NopNavigator игнорирует навигацию.
type NopNavigator struct{}

func (NopNavigator) ExitUserPrice()       {}
func (NopNavigator) EnterUserPrice()      {}
func (NopNavigator) SwitchPackage(string) {}

// State — состояние формы вместе с флагом ручного ввода цены.
type State struct {
	Form        models.Form `json:"form"`
	CustomPrice bool        `json:"custom_price"`
}

// Result — изменение формы и новое значение флага ручного ввода цены.
type Result struct {
	Patch       models.Patch `json:"patch"`
	CustomPrice bool         `json:"custom_price"`
}

// Customizer выполняет действия пользователя над формой настройки одного пакета.
// Каждое действие возвращает одно изменение формы, которое применяется целиком.
type Customizer struct {
	pkg       *models.Package
	userPrice bool
	give      bool
	t         Translator
	nav       Navigator
}

func NewCustomizer(pkg *models.Package, userPrice bool, t Translator, nav Navigator) *Customizer {
	if nav == nil {
		nav = NopNavigator{}
	}
	return &Customizer{
		pkg:       pkg,
		userPrice: userPrice,
		t:         t,
		nav:       nav,
	}
}

// ForGift помечает форму как подарок членства другому пользователю.
// Подписи полей в сообщениях об ошибках берутся из ключей подарка.
func (c *Customizer) ForGift(give bool) *Customizer {
	c.give = give
	return c
}

// Mount выставляет начальную цену и ошибки при открытии формы.
func (c *Customizer) Mount(st State) Result {
	v := st.Form.Values
	price := Price(c.pkg, v, c.userPrice)
	minPrice := CalculateMinPrice(c.pkg, v, c.userPrice)

	var p models.Patch
	p.Values.Price = &price
	p.SetError(models.FieldPrice, priceError(c.t, price, minPrice))
	if c.userPrice {
		p.SetError(models.FieldReason, reasonError(c.t, v.Reason))
	}
	return Result{Patch: p, CustomPrice: st.CustomPrice}
}

// ChangeField меняет количество опции или число периодов.
// Ненулевое значение любого поля опции из группы, в том числе числа периодов,
// обнуляет остальные опции группы в том же изменении.
func (c *Customizer) ChangeField(st State, key, raw string, validate bool) (Result, error) {
	f, ok := FindField(c.pkg, key)
	if !ok {
		return Result{}, ErrUnknownField
	}

	value := ParseAmount(raw)
	label := Label(c.t, c.pkg, f, value, c.give)

	var p models.Patch
	p.SetAmount(key, value, boundsError(c.t, label, f, value), validate)

	if value.Value() != 0 && f.Option.OptionGroup != "" {
		if g, ok := groupOf(OptionGroups(c.pkg, st.Form.Values), key); ok {
			for _, o := range g.Options {
				if o == f.Option {
					continue
				}
				p.SetAmount(OptionFieldKey(o), models.Int(0), "", false)
			}
		}
	}

	if value.Value() != 0 && c.userPrice && !f.Option.UserPrice {
		c.nav.ExitUserPrice()
	}

	return c.nextPrice(st, p), nil
}

// ResetGroup обнуляет все опции группы ("ничего из этого").
func (c *Customizer) ResetGroup(st State, group string) (Result, error) {
	if group == "" {
		return Result{}, ErrUnknownGroup
	}
	var found *OptionGroup
	groups := OptionGroups(c.pkg, st.Form.Values)
	for i := range groups {
		if groups[i].Name == group {
			found = &groups[i]
			break
		}
	}
	if found == nil {
		return Result{}, ErrUnknownGroup
	}

	var p models.Patch
	for _, o := range found.Options {
		p.SetAmount(OptionFieldKey(o), models.Int(0), "", false)
	}
	if c.userPrice {
		c.nav.ExitUserPrice()
	}
	return c.nextPrice(st, p), nil
}

// ChangePrice выставляет цену, введённую во франках. Дробная часть отбрасывается.
func (c *Customizer) ChangePrice(st State, raw string, validate bool) (Result, error) {
	if FixedPrice(c.pkg) {
		return Result{}, ErrFixedPrice
	}
	return c.setPrice(st, ParsePrice(raw), validate), nil
}

// IncPrice увеличивает цену на один шаг.
func (c *Customizer) IncPrice(st State) (Result, error) {
	if FixedPrice(c.pkg) {
		return Result{}, ErrFixedPrice
	}
	price := Price(c.pkg, st.Form.Values, c.userPrice).Value()
	return c.setPrice(st, money.Add(price, priceStep), st.Form.Dirty[models.FieldPrice]), nil
}

// DecPrice уменьшает цену на один шаг, если она не опустится ниже минимальной.
// Иначе возвращает пустое изменение.
func (c *Customizer) DecPrice(st State) (Result, error) {
	if FixedPrice(c.pkg) {
		return Result{}, ErrFixedPrice
	}
	v := st.Form.Values
	price := Price(c.pkg, v, c.userPrice).Value()
	if money.Add(price, -priceStep) < CalculateMinPrice(c.pkg, v, c.userPrice) {
		return Result{CustomPrice: st.CustomPrice}, nil
	}
	return c.setPrice(st, money.Add(price, -priceStep), st.Form.Dirty[models.FieldPrice]), nil
}

// ChooseSuggestion выставляет цену предложения, округлённую вниз до целых
// франков, и выходит из режима userPrice.
func (c *Customizer) ChooseSuggestion(st State, s Suggestion) (Result, error) {
	if FixedPrice(c.pkg) {
		return Result{}, ErrFixedPrice
	}
	minPrice := CalculateMinPrice(c.pkg, st.Form.Values, c.userPrice)
	price := models.Int(s.Value / money.MinorPerMajor * money.MinorPerMajor)

	var p models.Patch
	p.SetPrice(price, priceError(c.t, price, minPrice), true)
	if c.userPrice {
		c.nav.ExitUserPrice()
	}
	return Result{Patch: p, CustomPrice: true}, nil
}

// ChangeReason меняет обоснование. Ошибка выставляется только в режиме userPrice.
func (c *Customizer) ChangeReason(st State, value string, validate bool) Result {
	errMsg := ""
	if c.userPrice {
		errMsg = reasonError(c.t, value)
	}
	var p models.Patch
	p.SetReason(value, errMsg, validate)
	return Result{Patch: p, CustomPrice: st.CustomPrice}
}

// ResetPrice сбрасывает цену, её ошибку и флаг dirty.
func (c *Customizer) ResetPrice() Result {
	var p models.Patch
	p.SetPrice(models.Unset(), "", false)
	return Result{Patch: p}
}

// EnterUserPrice переводит форму в режим "плати сколько хочешь".
// Если ни одна опция с UserPrice не выбрана, выбирается первая с максимальным количеством.
func (c *Customizer) EnterUserPrice(st State) (Result, error) {
	v := st.Form.Values
	if !OfferUserPrice(c.pkg, v, c.userPrice) {
		return Result{}, ErrUserPriceUnavailable
	}

	var first *models.Option
	selected := false
	for i := range c.pkg.Options {
		o := &c.pkg.Options[i]
		if !o.UserPrice {
			continue
		}
		if first == nil {
			first = o
		}
		if Selected(o, v) {
			selected = true
			break
		}
	}
	if first == nil {
		return Result{}, ErrNoUserPriceOption
	}

	p := c.ResetPrice().Patch
	if !selected {
		p.SetAmount(OptionFieldKey(first), models.Int(first.MaxAmount), "", false)
	}
	c.nav.EnterUserPrice()
	return Result{Patch: p}, nil
}

// ConvertToAboGive переносит выбор подарка месяцев в пакет подарка годов:
// количество членства и совпадающие по имени подарки, ограниченные границами
// целевого пакета. Цена сбрасывается, затем выполняется переход к целевому пакету.
func (c *Customizer) ConvertToAboGive(st State, target *models.Package) (Result, error) {
	if c.pkg.Name != models.PackageAboGiveMonths || target == nil || target.Name != models.PackageAboGive {
		return Result{}, ErrNotConvertible
	}
	v := st.Form.Values
	p := c.ResetPrice().Patch

	months := findReward(c.pkg, func(r *models.Reward) bool { return r.IsMembership() })
	years := findReward(target, func(r *models.Reward) bool { return r.IsMembership() })
	if months != nil && years != nil {
		p.SetAmount(OptionFieldKey(years), models.Int(clamp(OptionValue(months, v), years.MinAmount, years.MaxAmount)), "", true)
	}

	for i := range target.Options {
		oYears := &target.Options[i]
		if oYears.Reward == nil || oYears.Reward.Type != models.RewardGoodie {
			continue
		}
		oMonths := findReward(c.pkg, func(r *models.Reward) bool {
			return r.Type == oYears.Reward.Type && r.Name == oYears.Reward.Name
		})
		if oMonths == nil {
			continue
		}
		p.SetAmount(OptionFieldKey(oYears), models.Int(clamp(OptionValue(oMonths, v), oYears.MinAmount, oYears.MaxAmount)), "", true)
	}

	c.nav.SwitchPackage(target.Name)
	return Result{Patch: p}, nil
}

// setPrice выставляет цену в раппенах как ручной ввод и выходит из режима
// userPrice, если цена не ниже обычной минимальной.
func (c *Customizer) setPrice(st State, minor int, validate bool) Result {
	v := st.Form.Values
	minPrice := CalculateMinPrice(c.pkg, v, c.userPrice)
	price := models.Int(minor)

	var p models.Patch
	p.SetPrice(price, priceError(c.t, price, minPrice), validate)
	if c.userPrice && minor >= CalculateMinPrice(c.pkg, v, false) {
		c.nav.ExitUserPrice()
	}
	return Result{Patch: p, CustomPrice: true}
}

// nextPrice дополняет изменение пересчитанной ценой. Ручная цена сохраняется,
// пока минимальная цена её не превышает; иначе цена заменяется минимальной.
func (c *Customizer) nextPrice(st State, p models.Patch) Result {
	v := st.Form.Apply(p).Values
	minPrice := CalculateMinPrice(c.pkg, v, c.userPrice)

	if !st.CustomPrice || minPrice > v.Price.Value() {
		price := floorPrice(minPrice)
		p.SetPrice(price, priceError(c.t, price, minPrice), false)
		return Result{Patch: p, CustomPrice: false}
	}
	p.SetError(models.FieldPrice, priceError(c.t, v.Price, minPrice))
	return Result{Patch: p, CustomPrice: true}
}

func findReward(pkg *models.Package, match func(r *models.Reward) bool) *models.Option {
	for i := range pkg.Options {
		o := &pkg.Options[i]
		if o.Reward != nil && match(o.Reward) {
			return o
		}
	}
	return nil
}

func clamp(n, lo, hi int) int {
	return min(max(n, lo), hi)
}
