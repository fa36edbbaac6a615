package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// userSchema: внутренняя структура для маппинга строки users.
type userSchema struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func fromUser(u entity.User) userSchema {
	return userSchema{
		ID:           u.ID,
		Email:        u.Email.String(),
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func (s userSchema) toDomain() entity.User {
	return entity.User{
		ID:           s.ID,
		Email:        value.Email(s.Email),
		Name:         s.Name,
		PasswordHash: s.PasswordHash,
		CreatedAt:    s.CreatedAt,
	}
}

// dealSchema: представление таблицы deals. Параметры хранятся в JSONB.
type dealSchema struct {
	ID               uuid.UUID `db:"id"`
	OwnerID          int64     `db:"owner_id"`
	Name             string    `db:"name"`
	Location         string    `db:"location"`
	Params           []byte    `db:"params"`
	CashFlow         float64   `db:"cash_flow"`
	ROI              *float64  `db:"roi"`
	CapRate          float64   `db:"cap_rate"`
	CashOnCashReturn *float64  `db:"cash_on_cash_return"`
	Verdict          string    `db:"verdict"`
	AISummary        *string   `db:"ai_summary"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func fromDeal(d entity.Deal) (dealSchema, error) {
	params, err := json.Marshal(d.Params)
	if err != nil {
		return dealSchema{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return dealSchema{
		ID:               uuid.UUID(d.ID),
		OwnerID:          d.OwnerID,
		Name:             d.Name,
		Location:         d.Location.String(),
		Params:           params,
		CashFlow:         d.CashFlow,
		ROI:              d.ROI,
		CapRate:          d.CapRate,
		CashOnCashReturn: d.CashOnCashReturn,
		Verdict:          d.Verdict.String(),
		AISummary:        d.AISummary,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}, nil
}

func (s dealSchema) toDomain() (entity.Deal, error) {
	var params entity.PropertyParameters

	if err := json.Unmarshal(s.Params, &params); err != nil {
		return entity.Deal{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return entity.Deal{
		ID:               value.DealID(s.ID),
		OwnerID:          s.OwnerID,
		Name:             s.Name,
		Location:         value.Location(s.Location),
		Params:           params,
		CashFlow:         s.CashFlow,
		ROI:              s.ROI,
		CapRate:          s.CapRate,
		CashOnCashReturn: s.CashOnCashReturn,
		Verdict:          value.Verdict(s.Verdict),
		AISummary:        s.AISummary,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}, nil
}
