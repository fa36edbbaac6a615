package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"realty_analyzer/internal/domain"
	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/pkg/errcodes"
	"realty_analyzer/pkg/lox"
)

const dealColumns = `
	id, owner_id, name, location, params, cash_flow, roi, cap_rate,
	cash_on_cash_return, verdict, ai_summary, created_at, updated_at`

type DealRepository struct {
	db *sqlx.DB
}

func NewDealRepository(db *sqlx.DB) *DealRepository {
	return &DealRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *DealRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

func (r *DealRepository) Create(ctx context.Context, deal entity.Deal) error {
	schema, err := fromDeal(deal)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to encode deal")
	}

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO deals (` + dealColumns + `)
			VALUES (
				:id, :owner_id, :name, :location, :params, :cash_flow, :roi, :cap_rate,
				:cash_on_cash_return, :verdict, :ai_summary, :created_at, :updated_at
			)`

		if _, err := tx.NamedExecContext(ctx, query, schema); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to create deal")
		}

		return nil
	})
}

// Get возвращает сделку владельца. Чужая сделка неотличима от отсутствующей.
func (r *DealRepository) Get(ctx context.Context, id value.DealID, ownerID int64) (entity.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1 AND owner_id = $2`

	var schema dealSchema

	if err := r.db.GetContext(ctx, &schema, query, uuid.UUID(id), ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Deal{}, domain.NewError(errcodes.DealNotFound, "deal not found")
		}

		return entity.Deal{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get deal")
	}

	deal, err := schema.toDomain()
	if err != nil {
		return entity.Deal{}, domain.WrapError(err, errcodes.InternalServerError, "failed to decode deal")
	}

	return deal, nil
}

// List возвращает сделки владельца, новые первыми.
func (r *DealRepository) List(ctx context.Context, ownerID int64, limit, offset int) ([]entity.Deal, error) {
	query := `SELECT ` + dealColumns + `
		FROM deals
		WHERE owner_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`

	var schemas []dealSchema

	if err := r.db.SelectContext(ctx, &schemas, query, ownerID, limit, offset); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list deals")
	}

	deals, err := lox.MapErr(schemas, func(s dealSchema) (entity.Deal, error) { return s.toDomain() })
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to decode deals")
	}

	return deals, nil
}

func (r *DealRepository) Delete(ctx context.Context, id value.DealID, ownerID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM deals WHERE id = $1 AND owner_id = $2`, uuid.UUID(id), ownerID)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to delete deal")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check rows")
	}

	if rows == 0 {
		return domain.NewError(errcodes.DealNotFound, "deal not found")
	}

	return nil
}

func (r *DealRepository) SetAISummary(ctx context.Context, id value.DealID, summary string) error {
	query := `UPDATE deals SET ai_summary = $1, updated_at = $2 WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, summary, time.Now().UTC(), uuid.UUID(id))
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to update deal summary")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check rows")
	}

	if rows == 0 {
		return domain.NewError(errcodes.DealNotFound, "deal not found")
	}

	return nil
}
