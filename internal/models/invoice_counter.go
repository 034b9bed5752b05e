package models

import "time"

// InvoiceCounter 发票序号计数器
// 每个前缀一行，序号通过原子自增分配，避免并发结算撞号。
type InvoiceCounter struct {
	ID        uint      `gorm:"primarykey" json:"id"`            // 主键
	Prefix    string    `gorm:"uniqueIndex;not null" json:"prefix"` // 发票前缀
	Value     int64     `gorm:"not null;default:0" json:"value"` // 当前已分配的最大序号
	UpdatedAt time.Time `json:"updated_at"`                      // 更新时间
}

// TableName 指定表名
func (InvoiceCounter) TableName() string {
	return "invoice_counters"
}
