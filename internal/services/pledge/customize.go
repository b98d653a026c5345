package pledge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/pledge-customizer/internal/lib/sl"
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
	"github.com/magabrotheeeer/pledge-customizer/internal/pricing"
)

// Типы событий навигации.
const (
	NavExitUserPrice  = "exit_user_price"
	NavEnterUserPrice = "enter_user_price"
	NavSwitchPackage  = "switch_package"
)

// NavigationEvent — переход, который должна выполнить страница клиента.
type NavigationEvent struct {
	Type    string `json:"type"`
	Package string `json:"package,omitempty"`
}

// CustomizeResponse — результат действия над формой.
type CustomizeResponse struct {
	Patch       models.Patch      `json:"patch"`
	CustomPrice bool              `json:"custom_price"`
	Form        models.Form       `json:"form"`   // Форма после применения изменения
	Errors      map[string]string `json:"errors"` // Ошибки, которые нужно показать
	Navigation  []NavigationEvent `json:"navigation,omitempty"`
}

// navigationRecorder собирает навигацию, запрошенную действием.
type navigationRecorder struct {
	events []NavigationEvent
}

func (n *navigationRecorder) ExitUserPrice() {
	n.events = append(n.events, NavigationEvent{Type: NavExitUserPrice})
}

func (n *navigationRecorder) EnterUserPrice() {
	n.events = append(n.events, NavigationEvent{Type: NavEnterUserPrice})
}

func (n *navigationRecorder) SwitchPackage(name string) {
	n.events = append(n.events, NavigationEvent{Type: NavSwitchPackage, Package: name})
}

// Customize выполняет одно действие пользователя над формой пакета.
func (s *Service) Customize(ctx context.Context, name string, req models.CustomizeRequest) (*CustomizeResponse, error) {
	const op = "pledge.Customize"
	log := s.log.With(slog.String("op", op), sl.Package(name),
		slog.String("action", req.Action.Type), sl.Field(req.Action.Field))

	pkg, err := s.Package(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	nav := &navigationRecorder{}
	c := pricing.NewCustomizer(pkg, req.UserPrice, s.translator, nav).ForGift(req.Give)
	st := pricing.State{Form: req.Form, CustomPrice: req.CustomPrice}

	res, err := s.dispatch(ctx, pkg, c, st, req)
	if err != nil {
		log.Debug("action rejected", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.Actions.WithLabelValues(pkg.Name, req.Action.Type).Inc()

	form := req.Form.Apply(res.Patch)
	return &CustomizeResponse{
		Patch:       res.Patch,
		CustomPrice: res.CustomPrice,
		Form:        form,
		Errors:      form.Visible(req.ShowAll),
		Navigation:  nav.events,
	}, nil
}

func (s *Service) dispatch(ctx context.Context, pkg *models.Package, c *pricing.Customizer,
	st pricing.State, req models.CustomizeRequest) (pricing.Result, error) {
	a := req.Action
	switch a.Type {
	case models.ActionMount:
		return c.Mount(st), nil
	case models.ActionChangeField:
		if a.Field == "" {
			return pricing.Result{}, fmt.Errorf("%w: field is required", ErrInvalidAction)
		}
		return c.ChangeField(st, a.Field, a.Value, a.Validate)
	case models.ActionResetGroup:
		return c.ResetGroup(st, a.Group)
	case models.ActionChangePrice:
		return c.ChangePrice(st, a.Value, a.Validate)
	case models.ActionIncPrice:
		return c.IncPrice(st)
	case models.ActionDecPrice:
		return c.DecPrice(st)
	case models.ActionChooseSuggestion:
		q := buildQuote(pkg, models.QuoteRequest{UserPrice: req.UserPrice, Give: req.Give, Values: st.Form.Values}, s.translator)
		for _, sug := range q.Suggestions {
			if sug.Value == a.Suggestion && !sug.Achieved {
				return c.ChooseSuggestion(st, sug)
			}
		}
		return pricing.Result{}, ErrUnknownSuggestion
	case models.ActionChangeReason:
		return c.ChangeReason(st, a.Value, a.Validate), nil
	case models.ActionResetPrice:
		return c.ResetPrice(), nil
	case models.ActionEnterUserPrice:
		return c.EnterUserPrice(st)
	case models.ActionConvertToAboGive:
		if a.Target == "" {
			return pricing.Result{}, fmt.Errorf("%w: target is required", ErrInvalidAction)
		}
		target, err := s.Package(ctx, a.Target)
		if err != nil {
			return pricing.Result{}, err
		}
		return c.ConvertToAboGive(st, target)
	default:
		return pricing.Result{}, fmt.Errorf("%w: %q", ErrInvalidAction, a.Type)
	}
}
