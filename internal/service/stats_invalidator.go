package service

// StatsInvalidator 统计缓存失效钩子,商品或订单数据变更后调用。
type StatsInvalidator interface {
	Invalidate()
}

// invalidateStats 空实现安全的失效调用。
func invalidateStats(inv StatsInvalidator) {
	if inv != nil {
		inv.Invalidate()
	}
}
