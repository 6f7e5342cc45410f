package config

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/e-voting/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ConfigRepository interface {
	ListActive(ctx context.Context) ([]model.ConfigEntity, error)
	GetByKey(ctx context.Context, key string) (*model.ConfigEntity, error)
	UpdateValue(ctx context.Context, key, value string, at time.Time) error
}

func NewConfigRepository(conn *sqlx.DB) ConfigRepository {
	return &SQL{conn: conn}
}

const (
	configColumns     = `id, config_key, value, type, description, is_active, updated_at`
	listActiveConfig  = `SELECT ` + configColumns + ` FROM app_config WHERE is_active = 1 ORDER BY id`
	getConfigByKey    = `SELECT ` + configColumns + ` FROM app_config WHERE config_key = ?`
	updateConfigValue = `UPDATE app_config SET value = ?, updated_at = ? WHERE config_key = ?`
)

func (s *SQL) ListActive(ctx context.Context) ([]model.ConfigEntity, error) {
	items := make([]model.ConfigEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listActiveConfig); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetByKey(ctx context.Context, key string) (*model.ConfigEntity, error) {
	var entity model.ConfigEntity
	if err := s.conn.QueryRowxContext(ctx, getConfigByKey, key).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateValue(ctx context.Context, key, value string, at time.Time) error {
	res, err := s.conn.ExecContext(ctx, updateConfigValue, value, at, key)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
