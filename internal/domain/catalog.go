package domain

// Catalog — снимок таблицы товаров на момент чтения. Между операциями не переиспользуется.
type Catalog struct {
	products []Product
	byID     map[int64]int
}

func NewCatalog(products []Product) *Catalog {
	byID := make(map[int64]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Catalog{products: products, byID: byID}
}

// Find возвращает копию товара по id.
func (c *Catalog) Find(id int64) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Products возвращает товары в порядке, в котором их отдало хранилище.
func (c *Catalog) Products() []Product {
	return c.products
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// LowStock возвращает товары, остаток которых не превышает threshold.
func (c *Catalog) LowStock(threshold int64) []Product {
	res := make([]Product, 0)
	for _, p := range c.products {
		if p.Quantity <= threshold {
			res = append(res, p)
		}
	}
	return res
}
