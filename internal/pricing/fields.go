package pricing

import "github.com/magabrotheeeer/pledge-customizer/internal/models"

// Field — настраиваемое поле формы: количество опции или число периодов членства.
type Field struct {
	Option   *models.Option `json:"-"`
	Key      string         `json:"key"`
	Min      int            `json:"min"`
	Max      int            `json:"max"`
	Default  *int           `json:"default,omitempty"`
	Interval string         `json:"interval,omitempty"` // Задан только для поля периодов
	Periods  bool           `json:"periods,omitempty"`
}

// Value возвращает значение поля для отображения: значение из формы или значение по умолчанию.
func (f Field) Value(v models.Values) models.Amount {
	if a := v.Amount(f.Key); a.Defined() {
		return a
	}
	if f.Default != nil {
		return models.Int(*f.Default)
	}
	return models.Unset()
}

// OptionGroup — настраиваемые поля одной группы опций.
type OptionGroup struct {
	Name     string           `json:"name"`
	Options  []*models.Option `json:"-"`
	Fields   []Field          `json:"fields"`
	Selected *models.Option   `json:"-"`
	Checkbox bool             `json:"checkbox"` // Одна опция с границами 0..1: выбор галочкой
}

// ConfigurableFields возвращает поля, которые пользователь может менять.
// Опция с совпадающими границами количества в список не попадает.
func ConfigurableFields(pkg *models.Package) []Field {
	var fields []Field
	for i := range pkg.Options {
		o := &pkg.Options[i]
		if o.MinAmount != o.MaxAmount {
			fields = append(fields, Field{
				Option:  o,
				Key:     OptionFieldKey(o),
				Min:     o.MinAmount,
				Max:     o.MaxAmount,
				Default: o.DefaultAmount,
			})
		}
		if r := o.Reward; r.IsMembership() &&
			r.MinPeriods != nil && r.MaxPeriods != nil &&
			*r.MinPeriods != *r.MaxPeriods {
			fields = append(fields, Field{
				Option:   o,
				Key:      OptionPeriodsFieldKey(o),
				Min:      *r.MinPeriods,
				Max:      *r.MaxPeriods,
				Default:  r.DefaultPeriods,
				Interval: r.Interval,
				Periods:  true,
			})
		}
	}
	return fields
}

// FindField ищет настраиваемое поле по ключу.
func FindField(pkg *models.Package, key string) (Field, bool) {
	for _, f := range ConfigurableFields(pkg) {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// OptionGroups группирует настраиваемые поля по группе опции в порядке первого появления.
// Поля без группы попадают в группу с пустым именем.
func OptionGroups(pkg *models.Package, v models.Values) []OptionGroup {
	var groups []OptionGroup
	index := make(map[string]int)

	for _, f := range ConfigurableFields(pkg) {
		name := f.Option.OptionGroup
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, OptionGroup{Name: name})
		}
		g := &groups[i]
		g.Fields = append(g.Fields, f)
		if !containsOption(g.Options, f.Option) {
			g.Options = append(g.Options, f.Option)
		}
	}

	for i := range groups {
		g := &groups[i]
		if g.Name != "" {
			for _, o := range g.Options {
				if Selected(o, v) {
					g.Selected = o
					break
				}
			}
		}
		base := g.Selected
		if base == nil {
			base = g.Options[0]
		}
		g.Checkbox = g.Name != "" && len(g.Fields) == 1 &&
			base.MinAmount == 0 && base.MaxAmount == 1
	}
	return groups
}

// groupOf возвращает группу, содержащую поле с ключом key.
func groupOf(groups []OptionGroup, key string) (OptionGroup, bool) {
	for _, g := range groups {
		for _, f := range g.Fields {
			if f.Key == key {
				return g, true
			}
		}
	}
	return OptionGroup{}, false
}

func containsOption(options []*models.Option, o *models.Option) bool {
	for _, x := range options {
		if x == o {
			return true
		}
	}
	return false
}
