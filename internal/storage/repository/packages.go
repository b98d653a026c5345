package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/pledge-customizer/internal/models"
)

// GetPackage возвращает пакет по имени вместе с опциями и их периодами.
func (s *Storage) GetPackage(ctx context.Context, name string) (*models.Package, error) {
	const op = "storage.GetPackage"

	query := `SELECT id, name, group_name, title FROM packages WHERE name = $1`
	var pkg models.Package
	err := s.DB.QueryRowContext(ctx, query, name).Scan(&pkg.ID, &pkg.Name, &pkg.Group, &pkg.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrPackageNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if pkg.Options, err = s.loadOptions(ctx, pkg.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &pkg, nil
}

// ListPackages возвращает все пакеты в порядке отображения.
func (s *Storage) ListPackages(ctx context.Context) ([]*models.Package, error) {
	const op = "storage.ListPackages"

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, group_name, title FROM packages ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var packages []*models.Package
	for rows.Next() {
		var pkg models.Package
		if err = rows.Scan(&pkg.ID, &pkg.Name, &pkg.Group, &pkg.Title); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		packages = append(packages, &pkg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, pkg := range packages {
		if pkg.Options, err = s.loadOptions(ctx, pkg.ID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return packages, nil
}

func (s *Storage) loadOptions(ctx context.Context, packageID string) ([]models.Option, error) {
	query := `SELECT id, template_id, option_group, min_amount, max_amount, default_amount,
				price, user_price, reward_type, reward_name, min_periods, max_periods,
				default_periods, period_interval
			  FROM package_options WHERE package_id = $1
			  ORDER BY position, template_id`
	rows, err := s.DB.QueryContext(ctx, query, packageID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var options []models.Option
	for rows.Next() {
		var (
			o                                     models.Option
			defaultAmount                         sql.NullInt64
			rewardType, rewardName, interval      sql.NullString
			minPeriods, maxPeriods, defaultPeriod sql.NullInt64
		)
		if err = rows.Scan(&o.ID, &o.TemplateID, &o.OptionGroup, &o.MinAmount, &o.MaxAmount,
			&defaultAmount, &o.Price, &o.UserPrice, &rewardType, &rewardName,
			&minPeriods, &maxPeriods, &defaultPeriod, &interval); err != nil {
			return nil, err
		}
		o.DefaultAmount = intPtr(defaultAmount)
		if rewardType.Valid {
			o.Reward = &models.Reward{
				Type:           models.RewardType(rewardType.String),
				Name:           rewardName.String,
				MinPeriods:     intPtr(minPeriods),
				MaxPeriods:     intPtr(maxPeriods),
				DefaultPeriods: intPtr(defaultPeriod),
				Interval:       interval.String,
			}
		}
		options = append(options, o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range options {
		if options[i].AdditionalPeriods, err = s.loadPeriods(ctx, options[i].ID); err != nil {
			return nil, err
		}
	}
	return options, nil
}

func (s *Storage) loadPeriods(ctx context.Context, optionID string) ([]models.AdditionalPeriod, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT kind, begin_date, end_date FROM option_periods WHERE option_id = $1 ORDER BY begin_date, id`,
		optionID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var periods []models.AdditionalPeriod
	for rows.Next() {
		var p models.AdditionalPeriod
		if err = rows.Scan(&p.Kind, &p.BeginDate, &p.EndDate); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
