package console

import (
	"sort"

	"github.com/devjaesung/sowa-admin/internal/api"
)

// Derived view model: sorted projections and counts computed from the cache,
// consumed by presentation. Readers get copies; nothing here mutates state.

// Categories returns the cached category list ordered by the order field,
// stable for equal values.
func (c *Console) Categories() []api.Category {
	list := listData[api.Category](c.Cache, CategoriesKey())
	sorted := make([]api.Category, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	return sorted
}

func (c *Console) Portfolio() []api.PortfolioItem {
	list := listData[api.PortfolioItem](c.Cache, PortfolioKey())
	sorted := make([]api.PortfolioItem, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	return sorted
}

func (c *Console) Inquiries() []api.InquiryListItem {
	return listData[api.InquiryListItem](c.Cache, InquiriesKey())
}

// InquiryDetail yields data only for the currently selected id. Entries for
// previously selected ids stay cached but are never surfaced.
func (c *Console) InquiryDetail() (api.InquiryDetail, bool) {
	if c.SelectedInquiry == 0 {
		return api.InquiryDetail{}, false
	}
	entry, ok := c.Cache.Get(InquiryDetailKey(c.SelectedInquiry))
	if !ok || entry.Err != nil {
		return api.InquiryDetail{}, false
	}
	detail, ok := entry.Data.(api.InquiryDetail)
	return detail, ok
}

func (c *Console) Settings() (api.SiteSettings, bool) {
	entry, ok := c.Cache.Get(SettingsKey())
	if !ok || entry.Err != nil {
		return api.SiteSettings{}, false
	}
	settings, ok := entry.Data.(api.SiteSettings)
	return settings, ok
}

func (c *Console) PendingCount() int {
	count := 0
	for _, item := range c.Inquiries() {
		if !item.HasReply {
			count++
		}
	}
	return count
}

// Stats returns the dashboard aggregate, falling back to counts derived from
// the cached lists while the stats endpoint has not loaded.
func (c *Console) Stats() api.DashboardStats {
	if entry, ok := c.Cache.Get(StatsKey()); ok && entry.Err == nil {
		if stats, ok := entry.Data.(api.DashboardStats); ok {
			return stats
		}
	}
	total := len(c.Inquiries())
	pending := c.PendingCount()
	replied := total - pending
	if replied < 0 {
		replied = 0
	}
	return api.DashboardStats{
		TotalInquiries:   total,
		PendingInquiries: pending,
		RepliedInquiries: replied,
		TotalPortfolio:   len(c.Portfolio()),
	}
}

func listData[T any](cache *Cache, key Key) []T {
	entry, ok := cache.Get(key)
	if !ok {
		return nil
	}
	list, _ := entry.Data.([]T)
	return list
}
