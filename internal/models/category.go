package models

import "time"

// Category 配件分类表
// name+vehicle 组合唯一，由数据库唯一索引兜底。
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                            // 主键
	Name        string    `gorm:"not null;uniqueIndex:idx_categories_name_vehicle" json:"name"`    // 分类名称
	Vehicle     string    `gorm:"not null;uniqueIndex:idx_categories_name_vehicle" json:"vehicle"` // 所属车系名称
	Description string    `gorm:"type:text" json:"description"`                                    // 描述
	Image       string    `gorm:"type:varchar(500)" json:"image"`                                  // 图片路径
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                         // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                                      // 更新时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
