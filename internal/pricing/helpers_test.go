package pricing

import (
	"time"

	"github.com/magabrotheeeer/pledge-customizer/internal/models"
)

// keyTranslator возвращает первый ключ, чтобы тесты сравнивали сообщения по ключам.
type keyTranslator struct{}

func (keyTranslator) First(keys []string, _ map[string]string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

type navRecorder struct {
	events []string
}

func (n *navRecorder) ExitUserPrice()  { n.events = append(n.events, "exit") }
func (n *navRecorder) EnterUserPrice() { n.events = append(n.events, "enter") }
func (n *navRecorder) SwitchPackage(name string) {
	n.events = append(n.events, "switch:"+name)
}

func intPtr(n int) *int { return &n }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func values(amounts map[string]models.Amount) models.Values {
	return models.Values{Amounts: amounts}
}

// prolongPackage: членство с фиксированным количеством и блокнот с настраиваемым количеством.
func prolongPackage() *models.Package {
	return &models.Package{
		Name: models.PackageProlong,
		Options: []models.Option{
			{
				TemplateID: "abo",
				MinAmount:  1,
				MaxAmount:  1,
				Price:      24000,
				Reward:     &models.Reward{Type: models.RewardMembershipType, Name: "ABO"},
			},
			{
				TemplateID: "notebook",
				MinAmount:  0,
				MaxAmount:  10,
				Price:      2000,
				Reward:     &models.Reward{Type: models.RewardGoodie, Name: "NOTEBOOK"},
			},
		},
	}
}

// userPricePackage: продление, где членство допускает свою цену.
func userPricePackage() *models.Package {
	return &models.Package{
		Name: models.PackageProlong,
		Options: []models.Option{
			{
				TemplateID: "abo",
				MinAmount:  0,
				MaxAmount:  1,
				Price:      24000,
				UserPrice:  true,
				Reward:     &models.Reward{Type: models.RewardMembershipType, Name: "ABO"},
			},
			{
				TemplateID: "notebook",
				MinAmount:  0,
				MaxAmount:  10,
				Price:      2000,
				Reward:     &models.Reward{Type: models.RewardGoodie, Name: "NOTEBOOK"},
			},
		},
	}
}

// groupedPackage: две взаимоисключающие опции.
func groupedPackage() *models.Package {
	return &models.Package{
		Name: "BENEFACTOR",
		Options: []models.Option{
			{TemplateID: "a", OptionGroup: "G", MinAmount: 0, MaxAmount: 1, Price: 9000},
			{TemplateID: "b", OptionGroup: "G", MinAmount: 0, MaxAmount: 1, Price: 24000},
		},
	}
}

// groupedMembershipPackage: членство с выбором числа периодов и альтернатива в той же группе.
func groupedMembershipPackage() *models.Package {
	return &models.Package{
		Name: "BENEFACTOR",
		Options: []models.Option{
			{
				TemplateID:  "abo",
				OptionGroup: "G",
				MinAmount:   1,
				MaxAmount:   1,
				Price:       9000,
				Reward: &models.Reward{
					Type:       models.RewardMembershipType,
					Name:       "ABO",
					MinPeriods: intPtr(1),
					MaxPeriods: intPtr(3),
				},
			},
			{TemplateID: "b", OptionGroup: "G", MinAmount: 0, MaxAmount: 1, Price: 24000},
		},
	}
}
