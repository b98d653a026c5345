package pricing

import (
	"strings"
	"testing"

	"github.com/magabrotheeeer/pledge-customizer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogTranslator ищет первый известный ключ и подставляет параметры.
type catalogTranslator map[string]string

func (c catalogTranslator) First(keys []string, params map[string]string) string {
	for _, key := range keys {
		if msg, ok := c[key]; ok {
			for k, v := range params {
				msg = strings.ReplaceAll(msg, "{"+k+"}", v)
			}
			return msg
		}
	}
	return keys[len(keys)-1]
}

func TestLabelKeys(t *testing.T) {
	pkg := prolongPackage()
	pkg.Options[0].Reward.MinPeriods = intPtr(1)
	pkg.Options[0].Reward.MaxPeriods = intPtr(3)
	pkg.Options[0].Reward.Interval = "year"
	f, ok := FindField(pkg, "abo-periods")
	require.True(t, ok)

	keys := LabelKeys(pkg, f, models.Int(2), true)
	assert.Equal(t, []string{
		"option/PROLONG/ABO/label/give",
		"option/ABO/label/give",
		"option/PROLONG/ABO/interval/year/label/2",
	}, keys[:3])

	keys = LabelKeys(pkg, f, models.Int(2), false)
	assert.Equal(t, "option/PROLONG/ABO/interval/year/label/2", keys[0])
	assert.Equal(t, "option/ABO/label", keys[len(keys)-1])
}

func TestLabel(t *testing.T) {
	tr := catalogTranslator{
		"option/ABO/label":      "Jahresmitgliedschaft",
		"option/ABO/label/give": "Mitgliedschaften verschenken",
	}
	pkg := userPricePackage()
	f, ok := FindField(pkg, "abo")
	require.True(t, ok)

	assert.Equal(t, "Jahresmitgliedschaft", Label(tr, pkg, f, models.Int(1), false))
	assert.Equal(t, "Mitgliedschaften verschenken", Label(tr, pkg, f, models.Int(1), true))
}

func TestPriceLabel(t *testing.T) {
	pkg := groupedPackage()
	o := &pkg.Options[0]

	assert.Equal(t, "package/BENEFACTOR/price/give", PriceLabel(keyTranslator{}, pkg, o, true))
	assert.Equal(t, "package/BENEFACTOR/price", PriceLabel(keyTranslator{}, pkg, o, false))
	assert.Equal(t, "ab CHF 90", PriceLabel(catalogTranslator{"package/price": "ab {formattedCHF}"}, pkg, o, true))
}

func TestCustomizerChangeFieldGiftLabel(t *testing.T) {
	tr := catalogTranslator{
		"option/ABO/label":      "Jahresmitgliedschaft",
		"option/ABO/label/give": "Mitgliedschaften verschenken",
		keyOptionMax:            "{label}: maximal {maxAmount}",
	}

	c := NewCustomizer(userPricePackage(), false, tr, nil).ForGift(true)
	res, err := c.ChangeField(State{}, "abo", "2", true)
	require.NoError(t, err)
	assert.Equal(t, "Mitgliedschaften verschenken: maximal 1", res.Patch.Errors["abo"])

	c = NewCustomizer(userPricePackage(), false, tr, nil)
	res, err = c.ChangeField(State{}, "abo", "2", true)
	require.NoError(t, err)
	assert.Equal(t, "Jahresmitgliedschaft: maximal 1", res.Patch.Errors["abo"])
}
