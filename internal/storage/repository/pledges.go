package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/pledge-customizer/internal/models"
)

// CreatePledge сохраняет пледж с опциями в одной транзакции и заполняет CreatedAt.
func (s *Storage) CreatePledge(ctx context.Context, p *models.Pledge) error {
	const op = "storage.CreatePledge"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO pledges (id, package_id, package_name, total, user_price, reason, email, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING created_at`
	err = tx.QueryRowContext(ctx, query,
		p.ID, p.PackageID, p.PackageName, p.Total, p.UserPrice, p.Reason, p.Email, p.Status).
		Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, o := range p.Options {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO pledge_options (pledge_id, option_id, template_id, amount, periods, price)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, o.OptionID, o.TemplateID, o.Amount, o.Periods, o.Price)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetPledge возвращает пледж по идентификатору.
func (s *Storage) GetPledge(ctx context.Context, id uuid.UUID) (*models.Pledge, error) {
	const op = "storage.GetPledge"

	query := `SELECT id, package_id, package_name, total, user_price, reason, email, status, created_at
			  FROM pledges WHERE id = $1`
	var p models.Pledge
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.PackageID, &p.PackageName,
		&p.Total, &p.UserPrice, &p.Reason, &p.Email, &p.Status, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrPledgeNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT option_id, template_id, amount, periods, price
		 FROM pledge_options WHERE pledge_id = $1 ORDER BY template_id`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var o models.PledgeOption
		if err = rows.Scan(&o.OptionID, &o.TemplateID, &o.Amount, &o.Periods, &o.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p.Options = append(p.Options, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
