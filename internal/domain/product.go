package domain

import "github.com/DRSN-tech/inventory-service/pkg/e"

// Product описывает товар на складе. Количество и цена никогда не бывают отрицательными.
type Product struct {
	ID       int64
	Name     string
	Category string
	Quantity int64
	Price    float64
	Supplier string
}

func NewProduct(name string, category string, quantity int64, price float64, supplier string) *Product {
	return &Product{
		Name:     name,
		Category: category,
		Quantity: quantity,
		Price:    price,
		Supplier: supplier,
	}
}

// Validate проверяет инварианты товара.
func (p *Product) Validate() error {
	if p.Quantity < 0 {
		return e.ErrNegativeQuantity
	}
	if p.Price < 0 {
		return e.ErrNegativePrice
	}
	return nil
}

// ProductPatch — частичное обновление товара, nil означает «не менять».
type ProductPatch struct {
	Quantity *int64
	Price    *float64
	Supplier *string
}

func (p ProductPatch) Validate() error {
	if p.Quantity != nil && *p.Quantity < 0 {
		return e.ErrNegativeQuantity
	}
	if p.Price != nil && *p.Price < 0 {
		return e.ErrNegativePrice
	}
	return nil
}

func (p ProductPatch) IsEmpty() bool {
	return p.Quantity == nil && p.Price == nil && p.Supplier == nil
}

// Apply применяет только заданные поля патча.
func (p *Product) Apply(patch ProductPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Supplier != nil {
		p.Supplier = *patch.Supplier
	}
	return nil
}
