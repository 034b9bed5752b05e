package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/motorparts-api/internal/constants"
)

// FormatInvoiceCode 生成前缀加五位零填充序号的单号,如 NDNH00042。
func FormatInvoiceCode(prefix string, seq int64) string {
	return fmt.Sprintf("%s%0*d", prefix, constants.InvoiceSequenceWidth, seq)
}

// ParseInvoiceSeq 解析单号的数字后缀,解析失败按 0 处理。
func ParseInvoiceSeq(code, prefix string) int64 {
	suffix := strings.TrimPrefix(code, prefix)
	seq, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || seq < 0 {
		return 0
	}
	return seq
}
