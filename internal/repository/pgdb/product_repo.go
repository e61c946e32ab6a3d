package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/DRSN-tech/inventory-service/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
// Все методы работают в транзакции из контекста, если она есть.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// List возвращает все товары по возрастанию id.
func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	q := tr.QuerierFromCtx(ctx, p.pool)

	query := `
		SELECT id, name, category, quantity, price, supplier, created_at, updated_at
		FROM products
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, e.Storage(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Category, &model.Quantity,
			&model.Price, &model.Supplier, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Storage(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Storage(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func (p *ProductRepo) Get(ctx context.Context, id int64) (*domain.Product, error) {
	q := tr.QuerierFromCtx(ctx, p.pool)

	query := `
		SELECT id, name, category, quantity, price, supplier, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var model converter.ProductModel
	err := q.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Category, &model.Quantity,
		&model.Price, &model.Supplier, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Storage(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Create вставляет товар с id = max(id) + 1 (1 для пустой таблицы).
// Эксклюзивная блокировка таблицы не даёт двум вставкам получить один id.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, e.Storage(whereami.WhereAmI(), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "LOCK TABLE products IN SHARE ROW EXCLUSIVE MODE"); err != nil {
		return nil, e.Storage(whereami.WhereAmI(), err)
	}

	// VALUES ($1, $2, $3, $4, $5) name, category, quantity, price, supplier
	query := `
		INSERT INTO products (id, name, category, quantity, price, supplier)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5
		FROM products
		RETURNING id, name, category, quantity, price, supplier, created_at, updated_at
	`

	model := p.conv.ToModel(product)
	if err := tx.QueryRow(ctx, query,
		model.Name, model.Category, model.Quantity, model.Price, model.Supplier,
	).Scan(
		&model.ID, &model.Name, &model.Category, &model.Quantity,
		&model.Price, &model.Supplier, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		return nil, e.Storage(whereami.WhereAmI(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.Storage(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update меняет только переданные поля: nil в патче оставляет значение в строке как есть.
func (p *ProductRepo) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	q := tr.QuerierFromCtx(ctx, p.pool)

	query := `
		UPDATE products
		SET quantity = COALESCE($2, quantity),
			price = COALESCE($3, price),
			supplier = COALESCE($4, supplier),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, category, quantity, price, supplier, created_at, updated_at
	`

	var model converter.ProductModel
	if err := q.QueryRow(ctx, query, id, patch.Quantity, patch.Price, patch.Supplier).Scan(
		&model.ID, &model.Name, &model.Category, &model.Quantity,
		&model.Price, &model.Supplier, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Storage(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	q := tr.QuerierFromCtx(ctx, p.pool)

	tag, err := q.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return e.Storage(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// DecrementStock атомарно уменьшает остаток: условие quantity >= qty проверяется
// в том же UPDATE, поэтому конкурентные списания не уводят остаток в минус.
// false — товара нет или остатка не хватает.
func (p *ProductRepo) DecrementStock(ctx context.Context, id int64, qty int64) (bool, error) {
	q := tr.QuerierFromCtx(ctx, p.pool)

	query := `
		UPDATE products
		SET quantity = quantity - $2, updated_at = NOW()
		WHERE id = $1 AND quantity >= $2
	`

	tag, err := q.Exec(ctx, query, id, qty)
	if err != nil {
		return false, e.Storage(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() == 1, nil
}
