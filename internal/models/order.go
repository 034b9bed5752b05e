package models

import "time"

// Order 订单表，结算后不可变更
type Order struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                       // 主键
	InvoiceCode     string    `gorm:"uniqueIndex;not null" json:"invoice_code"`                   // 发票编号
	CustomerName    string    `gorm:"type:varchar(200)" json:"customer_name"`                     // 客户姓名
	CustomerPhone   string    `gorm:"type:varchar(50);index" json:"customer_phone"`               // 客户电话
	CustomerAddress string    `gorm:"type:varchar(500)" json:"customer_address"`                  // 客户地址
	Note            string    `gorm:"type:text" json:"note"`                                      // 备注
	Status          string    `gorm:"type:varchar(20);not null;index" json:"status"`              // 订单状态
	TotalAmount     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`  // 合计金额
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                                    // 创建时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单项表，结算时快照购物车项
type OrderItem struct {
	ID        uint   `gorm:"primarykey" json:"-"`            // 主键
	OrderID   uint   `gorm:"index;not null" json:"-"`        // 订单ID
	ProductID uint   `gorm:"index;not null" json:"product_id"` // 商品ID
	Name      string `gorm:"not null" json:"name"`           // 商品名称快照
	Image     string `gorm:"type:varchar(500)" json:"image"` // 图片快照
	Price     Money  `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价快照
	Quantity  int    `gorm:"not null" json:"quantity"`       // 数量
	Vehicle   string `json:"vehicle"`                        // 车系快照
	Model     string `json:"model"`                          // 车型快照
	Category  string `json:"category"`                       // 分类快照
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
