package category

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/e-voting/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]model.CategoryEntity, error)
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

const listActiveCategories = `SELECT id, name, description, display_order, is_active, icon FROM category WHERE is_active = 1 ORDER BY display_order, id`

func (s *SQL) ListActive(ctx context.Context) ([]model.CategoryEntity, error) {
	items := make([]model.CategoryEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listActiveCategories); err != nil {
		return nil, err
	}
	return items, nil
}
