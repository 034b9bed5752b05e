package models

import "time"

// Vehicle 车系表（按品牌/车型系列维护）
type Vehicle struct {
	ID          uint      `gorm:"primarykey" json:"id"`           // 主键
	Name        string    `gorm:"not null;index" json:"name"`     // 车系名称
	Description string    `gorm:"type:text" json:"description"`   // 描述
	Image       string    `gorm:"type:varchar(500)" json:"image"` // 图片路径
	CreatedAt   time.Time `gorm:"index" json:"created_at"`        // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                     // 更新时间
}

// TableName 指定表名
func (Vehicle) TableName() string {
	return "vehicles"
}
