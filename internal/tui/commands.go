package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/devjaesung/sowa-admin/internal/api"
	"github.com/devjaesung/sowa-admin/internal/console"
)

func (a *App) probeCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := a.remote.Stats(a.ctx)
		return probeDoneMsg{err: err}
	}
}

func (a *App) fetchCmd(key console.Key, gen uint64) tea.Cmd {
	return func() tea.Msg {
		var (
			data any
			err  error
		)
		switch key.Kind {
		case console.KindStats:
			data, err = a.remote.Stats(a.ctx)
		case console.KindCategories:
			data, err = a.remote.ListCategories(a.ctx)
		case console.KindPortfolio:
			data, err = a.remote.ListPortfolio(a.ctx)
		case console.KindInquiries:
			data, err = a.remote.ListInquiries(a.ctx)
		case console.KindInquiryDetail:
			data, err = a.remote.GetInquiry(a.ctx, key.ID)
		case console.KindSettings:
			data, err = a.remote.GetSettings(a.ctx)
		}
		return fetchDoneMsg{key: key, gen: gen, data: data, err: err}
	}
}

func (a *App) loginCmd(creds api.Credentials) tea.Cmd {
	return func() tea.Msg {
		detail, err := a.remote.Login(a.ctx, creds)
		return mutationDoneMsg{op: console.OpLogin, detail: detail.Detail, err: err}
	}
}

func (a *App) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		detail, err := a.remote.Logout(a.ctx)
		return mutationDoneMsg{op: console.OpLogout, detail: detail.Detail, err: err}
	}
}

func (a *App) createCategoryCmd(in api.CategoryInput) tea.Cmd {
	return func() tea.Msg {
		_, err := a.remote.CreateCategory(a.ctx, in)
		return mutationDoneMsg{op: console.OpCreateCategory, err: err}
	}
}

func (a *App) updateCategoryCmd(id int, in api.CategoryInput) tea.Cmd {
	return func() tea.Msg {
		_, err := a.remote.UpdateCategory(a.ctx, id, in)
		return mutationDoneMsg{op: console.OpUpdateCategory, err: err}
	}
}

func (a *App) deleteCategoryCmd(id int) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: console.OpDeleteCategory, err: a.remote.DeleteCategory(a.ctx, id)}
	}
}

func (a *App) createPortfolioCmd(in api.PortfolioInput) tea.Cmd {
	return func() tea.Msg {
		_, err := a.remote.CreatePortfolio(a.ctx, in)
		return mutationDoneMsg{op: console.OpCreatePortfolio, err: err}
	}
}

func (a *App) updatePortfolioCmd(id int, in api.PortfolioInput) tea.Cmd {
	return func() tea.Msg {
		_, err := a.remote.UpdatePortfolio(a.ctx, id, in)
		return mutationDoneMsg{op: console.OpUpdatePortfolio, err: err}
	}
}

func (a *App) deletePortfolioCmd(id int) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: console.OpDeletePortfolio, err: a.remote.DeletePortfolio(a.ctx, id)}
	}
}

func (a *App) deleteInquiryCmd(id int) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: console.OpDeleteInquiry, err: a.remote.DeleteInquiry(a.ctx, id)}
	}
}

func (a *App) createCommentCmd(inquiryID int, content string) tea.Cmd {
	return func() tea.Msg {
		_, err := a.remote.CreateComment(a.ctx, inquiryID, content)
		return mutationDoneMsg{op: console.OpCreateComment, err: err}
	}
}

func (a *App) deleteCommentCmd(id int) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: console.OpDeleteComment, err: a.remote.DeleteComment(a.ctx, id)}
	}
}

func (a *App) updateSettingsCmd(in api.SettingsInput) tea.Cmd {
	return func() tea.Msg {
		_, err := a.remote.UpdateSettings(a.ctx, in)
		return mutationDoneMsg{op: console.OpUpdateSettings, err: err}
	}
}

// reorderCategoriesCmd realizes a new visual sequence as N concurrent
// per-item updates. The plain errgroup never cancels siblings: all N run to
// completion (wait-for-all), and the first error, if any, fails the batch as
// a whole. The collection is refetched afterwards no matter what, since a
// partial failure leaves the server in an unknown order.
func (a *App) reorderCategoriesCmd(next []api.Category) tea.Cmd {
	updates := console.PlanCategoryReorder(next)
	batch := uuid.NewString()
	return func() tea.Msg {
		var g errgroup.Group
		for _, u := range updates {
			g.Go(func() error {
				_, err := a.remote.UpdateCategory(a.ctx, u.ID, u.Input)
				return err
			})
		}
		err := g.Wait()
		a.log.Debug("reorder batch settled", "batch", batch, "entity", "category", "count", len(updates), "err", err)
		return reorderDoneMsg{op: console.OpReorderCategories, batch: batch, err: err}
	}
}

func (a *App) reorderPortfolioCmd(next []api.PortfolioItem) tea.Cmd {
	updates := console.PlanPortfolioReorder(next)
	batch := uuid.NewString()
	return func() tea.Msg {
		var g errgroup.Group
		for _, u := range updates {
			g.Go(func() error {
				_, err := a.remote.UpdatePortfolio(a.ctx, u.ID, u.Input)
				return err
			})
		}
		err := g.Wait()
		a.log.Debug("reorder batch settled", "batch", batch, "entity", "portfolio", "count", len(updates), "err", err)
		return reorderDoneMsg{op: console.OpReorderPortfolio, batch: batch, err: err}
	}
}

func rearmProbeCmd() tea.Cmd {
	return func() tea.Msg { return rearmProbeMsg{} }
}
