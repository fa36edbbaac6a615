package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"realty_analyzer/internal/domain"
	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/pkg/errcodes"
)

const pgUniqueViolation = "23505"

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create сохраняет пользователя и возвращает его с присвоенным ID.
func (r *UserRepository) Create(ctx context.Context, user entity.User) (entity.User, error) {
	query := `
		INSERT INTO users (email, name, password_hash, created_at)
		VALUES (:email, :name, :password_hash, :created_at)
		RETURNING id`

	rows, err := r.db.NamedQueryContext(ctx, query, fromUser(user))
	if err != nil {
		if isUniqueViolation(err) {
			return entity.User{}, domain.NewError(errcodes.EmailAlreadyInUse, "email already in use")
		}

		return entity.User{}, domain.WrapError(err, errcodes.InternalServerError, "failed to create user")
	}

	defer rows.Close()

	if !rows.Next() {
		return entity.User{}, domain.WrapError(rows.Err(), errcodes.InternalServerError, "failed to read user id")
	}

	if err = rows.Scan(&user.ID); err != nil {
		return entity.User{}, domain.WrapError(err, errcodes.InternalServerError, "failed to scan user id")
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email value.Email) (entity.User, error) {
	return r.getOne(ctx, `SELECT id, email, name, password_hash, created_at FROM users WHERE email = $1`, email.String())
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (entity.User, error) {
	return r.getOne(ctx, `SELECT id, email, name, password_hash, created_at FROM users WHERE id = $1`, id)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (entity.User, error) {
	var schema userSchema

	if err := r.db.GetContext(ctx, &schema, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, domain.NewError(errcodes.UserNotFound, "user not found")
		}

		return entity.User{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get user")
	}

	return schema.toDomain(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
