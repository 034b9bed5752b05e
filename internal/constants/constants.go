package constants

// 商品库存状态常量
const (
	ProductStatusInStock    = "in_stock"
	ProductStatusOutOfStock = "out_of_stock"
)

// 订单状态常量
// 结算即记账：收银台结算的订单直接进入 completed。
const (
	OrderStatusCompleted = "completed"
	OrderStatusPaid      = "paid"
	OrderStatusDone      = "done"
	OrderStatusSuccess   = "success"
)

// CompletedOrderStatuses 月度营收统计认可的完成状态集合
func CompletedOrderStatuses() []string {
	return []string{
		OrderStatusCompleted,
		OrderStatusPaid,
		OrderStatusDone,
		OrderStatusSuccess,
	}
}

// 发票编号常量
const (
	// DefaultInvoicePrefix 默认发票前缀（4 位字母）
	DefaultInvoicePrefix = "NDNH"
	// InvoiceSequenceWidth 序号补零宽度
	InvoiceSequenceWidth = 5
)

// DefaultCartKey 默认购物车标识
// 系统当前只开通一辆购物车，但仓库层始终按 key 寻址。
const DefaultCartKey = "default"
