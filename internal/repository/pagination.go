package repository

import "gorm.io/gorm"

// applyPagination 统一的分页查询辅助,page/limit 均从 1 开始,非法值回退默认。
func applyPagination(query *gorm.DB, page, limit int) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return query.Offset((page - 1) * limit).Limit(limit)
}

// TotalPages 根据总条数与每页大小计算总页数。
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		limit = 10
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}
	return pages
}
