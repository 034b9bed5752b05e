package repository

import "gorm.io/gorm"

// monthBucketExpr 按方言返回把 created_at 格式化为 "YYYY-MM" 的 SQL 表达式。
func monthBucketExpr(db *gorm.DB) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "to_char(created_at, 'YYYY-MM')"
	default:
		return "strftime('%Y-%m', created_at)"
	}
}

// escapeLike 转义 LIKE 模式中的通配符,配合 ESCAPE '\' 使用。
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '%', '_':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
