// Package pledge содержит сценарии работы с пакетами пледжа: чтение каталога
// с кешированием, расчёт цены, действия формы настройки и оформление пледжа.
package pledge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/pledge-customizer/internal/lib/metrics"
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/money"
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/sl"
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
	"github.com/magabrotheeeer/pledge-customizer/internal/pricing"
)

const packagesCacheKey = "packages"

var (
	ErrInvalidPledge     = errors.New("invalid pledge")
	ErrInvalidAction     = errors.New("invalid action")
	ErrUnknownSuggestion = errors.New("unknown suggestion")
)

// ValidationError содержит ошибки формы, из-за которых пледж не может быть оформлен.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	return fmt.Sprintf("%s: %s", ErrInvalidPledge, strings.Join(keys, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidPledge
}

// Repository определяет методы хранилища пакетов и пледжей.
type Repository interface {
	// GetPackage возвращает пакет по имени.
	GetPackage(ctx context.Context, name string) (*models.Package, error)
	// ListPackages возвращает все пакеты.
	ListPackages(ctx context.Context) ([]*models.Package, error)
	// CreatePledge сохраняет пледж.
	CreatePledge(ctx context.Context, p *models.Pledge) error
	// GetPledge возвращает пледж по идентификатору.
	GetPledge(ctx context.Context, id uuid.UUID) (*models.Pledge, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Publisher публикует события о пледжах.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Service реализует сценарии настройки пакетов и оформления пледжей.
type Service struct {
	repo       Repository
	cache      Cache
	publisher  Publisher
	translator pricing.Translator
	metrics    *metrics.Metrics
	log        *slog.Logger
	cacheTTL   time.Duration
}

// NewService создаёт новый экземпляр Service.
func NewService(repo Repository, cache Cache, publisher Publisher, translator pricing.Translator,
	m *metrics.Metrics, log *slog.Logger, cacheTTL time.Duration) *Service {
	return &Service{
		repo:       repo,
		cache:      cache,
		publisher:  publisher,
		translator: translator,
		metrics:    m,
		log:        log,
		cacheTTL:   cacheTTL,
	}
}

func packageCacheKey(name string) string {
	return "package:" + name
}

// Package возвращает пакет по имени, сначала из кеша, затем из хранилища.
func (s *Service) Package(ctx context.Context, name string) (*models.Package, error) {
	const op = "pledge.Package"
	log := s.log.With(slog.String("op", op), sl.Package(name))

	key := packageCacheKey(name)
	var cached models.Package
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn("failed to read package from cache", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	pkg, err := s.repo.GetPackage(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, key, pkg, s.cacheTTL); err != nil {
		log.Warn("failed to cache package", sl.Err(err))
	}
	return pkg, nil
}

// Packages возвращает все пакеты, сначала из кеша, затем из хранилища.
func (s *Service) Packages(ctx context.Context) ([]*models.Package, error) {
	const op = "pledge.Packages"
	log := s.log.With(slog.String("op", op))

	var cached []*models.Package
	found, err := s.cache.Get(ctx, packagesCacheKey, &cached)
	if err != nil {
		log.Warn("failed to read packages from cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	packages, err := s.repo.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, packagesCacheKey, packages, s.cacheTTL); err != nil {
		log.Warn("failed to cache packages", sl.Err(err))
	}
	return packages, nil
}

// InvalidatePackages удаляет каталог и перечисленные пакеты из кеша.
func (s *Service) InvalidatePackages(ctx context.Context, names ...string) error {
	keys := []string{packagesCacheKey}
	for _, name := range names {
		keys = append(keys, packageCacheKey(name))
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		return fmt.Errorf("pledge.InvalidatePackages: %w", err)
	}
	return nil
}

// Pledge возвращает оформленный пледж.
func (s *Service) Pledge(ctx context.Context, id uuid.UUID) (*models.Pledge, error) {
	p, err := s.repo.GetPledge(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("pledge.Pledge: %w", err)
	}
	return p, nil
}

// Submit проверяет форму, сохраняет пледж и публикует событие pledge.created.
// Ошибка публикации не отменяет оформление.
func (s *Service) Submit(ctx context.Context, req models.PledgeRequest) (*models.Pledge, error) {
	const op = "pledge.Submit"
	log := s.log.With(slog.String("op", op), sl.Package(req.Package))

	pkg, err := s.Package(ctx, req.Package)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if errs := pricing.ValidateSubmit(pkg, req.Values, req.UserPrice, req.Give, s.translator); len(errs) > 0 {
		s.metrics.Rejected.WithLabelValues(pkg.Name).Inc()
		return nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: errs})
	}

	total, ok := req.Values.Price.Int()
	if !ok {
		total = pricing.CalculateMinPrice(pkg, req.Values, req.UserPrice)
	}

	p := &models.Pledge{
		ID:          uuid.New(),
		PackageID:   pkg.ID,
		PackageName: pkg.Name,
		Total:       total,
		UserPrice:   req.UserPrice,
		Email:       req.Email,
		Status:      models.PledgeSubmitted,
		Options:     pledgeOptions(pkg, req.Values),
	}
	if req.UserPrice {
		p.Reason = strings.TrimSpace(req.Values.Reason)
	}

	if err := s.repo.CreatePledge(ctx, p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log.Info("pledge created", slog.String("id", p.ID.String()), slog.Int("total", p.Total))

	s.metrics.Pledges.WithLabelValues(pkg.Name, strconv.FormatBool(p.UserPrice)).Inc()
	total64, _ := money.Major(p.Total).Float64()
	s.metrics.PledgeTotal.WithLabelValues(pkg.Name).Observe(total64)

	event := models.PledgeEvent{
		PledgeID:    p.ID,
		PackageName: p.PackageName,
		Total:       p.Total,
		UserPrice:   p.UserPrice,
		Email:       p.Email,
		CreatedAt:   p.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, rabbitmq.RoutingKeyPledgeCreated, event); err != nil {
		s.metrics.PublishErrors.Inc()
		log.Error("failed to publish pledge event", sl.Err(err))
	}
	return p, nil
}

// pledgeOptions возвращает выбранные опции с ненулевым количеством.
func pledgeOptions(pkg *models.Package, v models.Values) []models.PledgeOption {
	var options []models.PledgeOption
	for i := range pkg.Options {
		o := &pkg.Options[i]
		amount := pricing.ResolveAmount(o, v)
		if amount == 0 {
			continue
		}
		options = append(options, models.PledgeOption{
			OptionID:   o.ID,
			TemplateID: o.TemplateID,
			Amount:     amount,
			Periods:    pricing.ResolvePeriods(o, v),
			Price:      o.Price,
		})
	}
	return options
}
