package tui

import (
	"context"

	"github.com/devjaesung/sowa-admin/internal/api"
)

// Remote is the admin API surface the console consumes, one method per
// operation. *api.Client satisfies it; tests substitute a fake.
type Remote interface {
	Login(ctx context.Context, creds api.Credentials) (api.Detail, error)
	Logout(ctx context.Context) (api.Detail, error)
	Stats(ctx context.Context) (api.DashboardStats, error)
	ListCategories(ctx context.Context) ([]api.Category, error)
	CreateCategory(ctx context.Context, in api.CategoryInput) (api.Category, error)
	UpdateCategory(ctx context.Context, id int, in api.CategoryInput) (api.Category, error)
	DeleteCategory(ctx context.Context, id int) error
	ListPortfolio(ctx context.Context) ([]api.PortfolioItem, error)
	CreatePortfolio(ctx context.Context, in api.PortfolioInput) (api.PortfolioItem, error)
	UpdatePortfolio(ctx context.Context, id int, in api.PortfolioInput) (api.PortfolioItem, error)
	DeletePortfolio(ctx context.Context, id int) error
	ListInquiries(ctx context.Context) ([]api.InquiryListItem, error)
	GetInquiry(ctx context.Context, id int) (api.InquiryDetail, error)
	DeleteInquiry(ctx context.Context, id int) error
	CreateComment(ctx context.Context, inquiryID int, content string) (api.Comment, error)
	DeleteComment(ctx context.Context, id int) error
	GetSettings(ctx context.Context) (api.SiteSettings, error)
	UpdateSettings(ctx context.Context, in api.SettingsInput) (api.SiteSettings, error)
}
