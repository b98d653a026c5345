// Package models содержит доменные структуры пакетов (предложений) для пледжа,
// состояние формы настройки пакета и DTO для HTTP-запросов и ответов.
package models

import "time"

// Имена пакетов, для которых действуют отдельные продуктовые правила.
const (
	PackageProlong       = "PROLONG"
	PackageDonate        = "DONATE"
	PackageMonthlyAbo    = "MONTHLY_ABO"
	PackageAboGive       = "ABO_GIVE"
	PackageAboGiveMonths = "ABO_GIVE_MONTHS"
)

// RewardType описывает тип вознаграждения опции.
type RewardType string

const (
	RewardMembershipType RewardType = "MembershipType" // Членство с настраиваемым числом периодов
	RewardGoodie         RewardType = "Goodie"         // Физический товар (блокнот, сумка)
)

// PeriodKind описывает тип дополнительного периода опции.
type PeriodKind string

const (
	PeriodRegular PeriodKind = "REGULAR"
	PeriodBonus   PeriodKind = "BONUS"
)

// Package представляет собой предложение, состоящее из упорядоченного набора опций.
// После загрузки список опций не изменяется: движок расчёта только читает его.
type Package struct {
	ID      string   `json:"id"`              // Идентификатор пакета
	Name    string   `json:"name"`            // Имя пакета, например PROLONG
	Group   string   `json:"group,omitempty"` // Группа пакетов на странице выбора
	Title   string   `json:"title"`           // Заголовок для отображения
	Options []Option `json:"options"`         // Опции пакета
}

// Option — одна настраиваемая позиция пакета.
type Option struct {
	ID                string             `json:"id"`
	TemplateID        string             `json:"template_id"`
	OptionGroup       string             `json:"option_group,omitempty"` // Опции с одной группой взаимоисключающие
	MinAmount         int                `json:"min_amount"`
	MaxAmount         int                `json:"max_amount"`
	DefaultAmount     *int               `json:"default_amount,omitempty"`
	Price             int                `json:"price"`                // Цена за единицу и период в раппенах
	UserPrice         bool               `json:"user_price,omitempty"` // Стоимость не входит в минимальную цену в режиме "плати сколько хочешь"
	Reward            *Reward            `json:"reward,omitempty"`
	AdditionalPeriods []AdditionalPeriod `json:"additional_periods,omitempty"`
}

// Reward описывает вознаграждение опции. Для членства задаются границы числа периодов.
type Reward struct {
	Type           RewardType `json:"type"`
	Name           string     `json:"name"`
	MinPeriods     *int       `json:"min_periods,omitempty"`
	MaxPeriods     *int       `json:"max_periods,omitempty"`
	DefaultPeriods *int       `json:"default_periods,omitempty"`
	Interval       string     `json:"interval,omitempty"` // Метка интервала периода, например month
}

// AdditionalPeriod — датированный интервал опции, используется для расчёта бонусной стоимости.
type AdditionalPeriod struct {
	Kind      PeriodKind `json:"kind"`
	BeginDate time.Time  `json:"begin_date"`
	EndDate   time.Time  `json:"end_date"`
}

// IsMembership сообщает, является ли вознаграждение членством.
func (r *Reward) IsMembership() bool {
	return r != nil && r.Type == RewardMembershipType
}
