package models

import (
	"time"

	"github.com/motorparts-api/internal/constants"
)

// Product 配件商品表
// vehicle/model/category 冗余存储名称，自然键为 name+vehicle+model+category。
type Product struct {
	ID             uint      `gorm:"primarykey" json:"id"`                                                        // 主键
	Name           string    `gorm:"not null;index" json:"name"`                                                  // 商品名称
	Vehicle        string    `gorm:"not null;index:idx_products_vehicle_model_category" json:"vehicle"`           // 车系名称
	Model          string    `gorm:"not null;index:idx_products_vehicle_model_category" json:"model"`             // 车型名称
	Category       string    `gorm:"not null;index:idx_products_vehicle_model_category" json:"category"`          // 分类名称
	Price          Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`                          // 单价
	Description    string    `gorm:"type:text" json:"description"`                                                // 描述
	Year           string    `gorm:"type:varchar(20)" json:"year"`                                                // 适用年份
	Specifications string    `gorm:"type:text" json:"specifications"`                                             // 规格说明
	Quantity       int       `gorm:"not null;default:0" json:"quantity"`                                          // 库存数量
	Origin         string    `gorm:"type:varchar(100)" json:"origin"`                                             // 产地
	Image          string    `gorm:"type:varchar(500)" json:"image"`                                              // 图片路径
	Status         string    `gorm:"type:varchar(20);not null;default:'in_stock'" json:"status"`                  // 库存状态（in_stock/out_of_stock）
	CreatedAt      time.Time `gorm:"index" json:"created_at"`                                                     // 创建时间
	UpdatedAt      time.Time `json:"updated_at"`                                                                  // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// DisplayStatus 读取时的库存状态投影
// 库存 <= 0 一律按缺货展示，存储值保持不变。
func (p Product) DisplayStatus() string {
	if p.Quantity <= 0 {
		return constants.ProductStatusOutOfStock
	}
	if p.Status == "" {
		return constants.ProductStatusInStock
	}
	return p.Status
}
