package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы пледжа.
const (
	PledgeSubmitted = "SUBMITTED"
)

// Pledge — сохранённый пледж: выбранный пакет, опции и итоговая цена.
type Pledge struct {
	ID          uuid.UUID      `json:"id"`
	PackageID   string         `json:"package_id"`
	PackageName string         `json:"package_name"`
	Total       int            `json:"total"`      // Итоговая цена в раппенах
	UserPrice   bool           `json:"user_price"` // Пледж оформлен в режиме "плати сколько хочешь"
	Reason      string         `json:"reason,omitempty"`
	Email       string         `json:"email"`
	Status      string         `json:"status"`
	Options     []PledgeOption `json:"options"`
	CreatedAt   time.Time      `json:"created_at"`
}

// PledgeOption — количество и число периодов одной опции пледжа.
type PledgeOption struct {
	OptionID   string `json:"option_id"`
	TemplateID string `json:"template_id"`
	Amount     int    `json:"amount"`
	Periods    int    `json:"periods"`
	Price      int    `json:"price"` // Цена опции за единицу и период на момент оформления
}

// PledgeEvent публикуется в брокер после сохранения пледжа.
type PledgeEvent struct {
	PledgeID    uuid.UUID `json:"pledge_id"`
	PackageName string    `json:"package_name"`
	Total       int       `json:"total"`
	UserPrice   bool      `json:"user_price"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuoteRequest используется для расчёта цены по текущим значениям формы.
type QuoteRequest struct {
	UserPrice bool   `json:"user_price"`
	Give      bool   `json:"give"` // Членство оформляется в подарок другому пользователю
	Values    Values `json:"values"`
}

// Действия формы настройки пакета.
const (
	ActionMount            = "mount"
	ActionChangeField      = "change_field"
	ActionResetGroup       = "reset_group"
	ActionChangePrice      = "change_price"
	ActionIncPrice         = "inc_price"
	ActionDecPrice         = "dec_price"
	ActionChooseSuggestion = "choose_suggestion"
	ActionChangeReason     = "change_reason"
	ActionResetPrice       = "reset_price"
	ActionEnterUserPrice   = "enter_user_price"
	ActionConvertToAboGive = "convert_to_abo_give"
)

// Action описывает одно действие пользователя над формой.
type Action struct {
	Type       string `json:"type" validate:"required,oneof=mount change_field reset_group change_price inc_price dec_price choose_suggestion change_reason reset_price enter_user_price convert_to_abo_give"`
	Field      string `json:"field,omitempty"`
	Value      string `json:"value,omitempty"`    // Сырой ввод поля, цены во франках или обоснования
	Validate   bool   `json:"validate,omitempty"` // Показывать ошибку поля сразу
	Group      string `json:"group,omitempty"`
	Suggestion int    `json:"suggestion,omitempty" validate:"omitempty,gt=0"` // Цена выбранного предложения в раппенах
	Target     string `json:"target,omitempty"`                               // Пакет, в который переносится выбор
}

// CustomizeRequest — состояние формы, которым владеет клиент, и действие над ним.
type CustomizeRequest struct {
	UserPrice   bool   `json:"user_price"`
	Give        bool   `json:"give"`
	ShowAll     bool   `json:"show_all"` // Показать ошибки всех полей, а не только изменённых
	Form        Form   `json:"form"`
	CustomPrice bool   `json:"custom_price"`
	Action      Action `json:"action" validate:"required"`
}

// PledgeRequest используется для оформления пледжа.
type PledgeRequest struct {
	Package   string `json:"package" validate:"required"`
	UserPrice bool   `json:"user_price"`
	Give      bool   `json:"give"`
	Values    Values `json:"values"`
	Email     string `json:"email" validate:"required,email"`
}
