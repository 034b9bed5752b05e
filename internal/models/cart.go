package models

import "time"

// Cart 购物车表
// 按 cart_key 寻址；系统当前只开通 default 一辆购物车。
type Cart struct {
	ID          uint      `gorm:"primarykey" json:"id"`                               // 主键
	CartKey     string    `gorm:"uniqueIndex;not null" json:"cart_key"`               // 购物车标识
	TotalAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 合计金额
	CreatedAt   time.Time `json:"created_at"`                                         // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                         // 更新时间

	Items []CartItem `gorm:"foreignKey:CartID" json:"items"` // 购物车项
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}

// CartItem 购物车项，加入时快照商品信息
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"-"`                                // 主键
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_items_cart_product" json:"-"`       // 购物车ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_items_cart_product" json:"product_id"` // 商品ID
	Name      string    `gorm:"not null" json:"name"`                               // 商品名称快照
	Image     string    `gorm:"type:varchar(500)" json:"image"`                     // 图片快照
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价快照
	Quantity  int       `gorm:"not null" json:"quantity"`                           // 数量
	Vehicle   string    `json:"vehicle"`                                            // 车系快照
	Model     string    `json:"model"`                                              // 车型快照
	Category  string    `json:"category"`                                           // 分类快照
	CreatedAt time.Time `json:"-"`                                                  // 创建时间
	UpdatedAt time.Time `json:"-"`                                                  // 更新时间
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
