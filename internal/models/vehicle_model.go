package models

import "time"

// VehicleModel 车型表，按名称引用所属车系
type VehicleModel struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                       // 主键
	Name        string    `gorm:"not null;index:idx_models_name_vehicle" json:"name"`         // 车型名称
	Vehicle     string    `gorm:"not null;index:idx_models_name_vehicle" json:"vehicle"`      // 所属车系名称
	Description string    `gorm:"type:text" json:"description"`                               // 描述
	Image       string    `gorm:"type:varchar(500)" json:"image"`                             // 图片路径
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                                 // 更新时间
}

// TableName 指定表名
func (VehicleModel) TableName() string {
	return "models"
}
