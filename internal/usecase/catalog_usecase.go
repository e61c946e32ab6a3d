package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
)

// CatalogUseCase реализует операции над каталогом товаров.
type CatalogUseCase struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, logger: logger}
}

// List возвращает свежий снимок каталога.
func (c *CatalogUseCase) List(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogUseCase.List"

	products, err := c.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// Snapshot возвращает каталог, проиндексированный по id.
func (c *CatalogUseCase) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	products, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewCatalog(products), nil
}

func (c *CatalogUseCase) Find(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "CatalogUseCase.Find"

	product, err := c.productRepo.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// Add проверяет количество и цену и добавляет товар со следующим по порядку id.
func (c *CatalogUseCase) Add(ctx context.Context, req *AddProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.Add"

	product := domain.NewProduct(req.Name, req.Category, req.Quantity, req.Price, req.Supplier)
	if err := product.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}

	created, err := c.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Infof("product added: id=%d name=%q qty=%d", created.ID, created.Name, created.Quantity)
	return created, nil
}

// Update применяет только переданные поля. Пустой патч — успешный no-op.
// Непереданные поля не перезаписываются, поэтому параллельное списание остатка не теряется.
func (c *CatalogUseCase) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	const op = "CatalogUseCase.Update"

	if err := patch.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}

	if patch.IsEmpty() {
		product, err := c.productRepo.Get(ctx, id)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		return product, nil
	}

	product, err := c.productRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

func (c *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.Delete"

	if err := c.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	c.logger.Infof("product deleted: id=%d", id)
	return nil
}

// DecrementStock — единственная точка, защищающая от продажи сверх остатка.
func (c *CatalogUseCase) DecrementStock(ctx context.Context, id int64, qty int64) (bool, error) {
	const op = "CatalogUseCase.DecrementStock"

	if qty <= 0 {
		return false, e.Wrap(op, e.ErrInvalidOrderQuantity)
	}

	ok, err := c.productRepo.DecrementStock(ctx, id, qty)
	if err != nil {
		return false, e.Wrap(op, err)
	}

	return ok, nil
}

// LowStock возвращает товары с остатком не выше threshold.
func (c *CatalogUseCase) LowStock(ctx context.Context, threshold int64) ([]domain.Product, error) {
	catalog, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.LowStock(threshold), nil
}
