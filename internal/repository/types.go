package repository

import "github.com/shopspring/decimal"

// ProductListFilter 商品列表查询条件,零值字段不参与过滤。
type ProductListFilter struct {
	Page     int
	Limit    int
	Sort     string
	Order    string
	Vehicle  string
	Category string
	Model    string
	Status   string
	Year     string
	Search   string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
}

// OrderListFilter 订单列表查询条件。
type OrderListFilter struct {
	Page  int
	Limit int
}
