package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/devjaesung/sowa-admin/internal/api"
	"github.com/devjaesung/sowa-admin/internal/config"
	"github.com/devjaesung/sowa-admin/internal/console"
)

// App ties the console engine to the terminal. All remote work happens in
// tea.Cmd closures; Update is the only place state changes, one message at a
// time.
type App struct {
	ctx    context.Context
	remote Remote
	con    *console.Console
	cfg    config.Config
	log    *slog.Logger

	tab      tab
	width    int
	height   int
	quitting bool

	loginForm     *form
	categoryForm  *form
	portfolioForm *form
	settingsForm  *form
	commentInput  *form

	categoryCursor  int
	portfolioCursor int
	inquiryCursor   int

	drag     dragState
	listArea rowArea

	palette *palette
}

type tab string

const (
	tabDashboard  tab = "dashboard"
	tabCategories tab = "categories"
	tabPortfolio  tab = "portfolio"
	tabInquiries  tab = "inquiries"
	tabSettings   tab = "settings"
)

func New(ctx context.Context, cfg config.Config, remote Remote, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &App{
		ctx:    ctx,
		remote: remote,
		con:    console.New(),
		cfg:    cfg,
		log:    log,
		tab:    tabDashboard,
		loginForm: newForm([]formField{
			{key: "username", label: "Username"},
			{key: "password", label: "Password", mask: true},
		}),
	}
}

func (a *App) Init() tea.Cmd {
	return a.pump()
}

// pump issues the session probe when the gate is idle and a fetch for every
// mounted key that is missing or stale. It is called after every message, so
// invalidations become refetches on the next cycle without any extra
// bookkeeping at the invalidation site.
func (a *App) pump() tea.Cmd {
	var cmds []tea.Cmd
	if a.con.Gate.ShouldProbe() {
		a.con.Gate.BeginProbe()
		cmds = append(cmds, a.probeCmd())
	}
	for _, key := range a.con.PendingFetches() {
		gen := a.con.Cache.BeginFetch(key)
		cmds = append(cmds, a.fetchCmd(key, gen))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil

	case probeDoneMsg:
		a.con.Gate.ResolveProbe(m.err)
		if a.con.Gate.Authenticated() {
			a.log.Debug("session probe authenticated")
		}
		return a, a.pump()

	case fetchDoneMsg:
		if a.con.Cache.Resolve(m.key, m.gen, m.data, m.err) && api.IsUnauthorized(m.err) {
			// the session died between probe and fetch
			a.con.Cache.RemoveAll()
			a.con.Gate.Disarm()
			a.con.Gate.Tick()
		}
		return a, a.pump()

	case mutationDoneMsg:
		if m.err != nil {
			a.con.ApplyFailure(m.op, m.err)
			return a, a.pump()
		}
		a.con.ApplySuccess(m.op, m.detail)
		if m.op == console.OpLogout {
			a.resetForms()
			return a, rearmProbeCmd()
		}
		a.syncEditorForms()
		return a, a.pump()

	case reorderDoneMsg:
		kind := console.KindCategories
		if m.op == console.OpReorderPortfolio {
			kind = console.KindPortfolio
		}
		if m.err != nil {
			a.log.Warn("reorder batch failed", "batch", m.batch, "err", m.err)
			a.con.ApplyFailure(m.op, m.err)
			// the server order is unknown after a partial failure
			a.con.Cache.InvalidateKind(kind)
		} else {
			a.con.ApplySuccess(m.op, "")
		}
		return a, a.pump()

	case rearmProbeMsg:
		a.con.Gate.Tick()
		return a, a.pump()

	case tea.MouseMsg:
		cmd := a.handleMouse(m)
		return a, tea.Batch(cmd, a.pump())

	case tea.KeyMsg:
		cmd := a.handleKey(m)
		if a.quitting {
			return a, tea.Quit
		}
		return a, tea.Batch(cmd, a.pump())
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return nil
	}
	if a.palette != nil {
		done, cmd := a.updatePalette(msg)
		if done {
			a.palette = nil
		}
		return cmd
	}
	if msg.String() == "ctrl+k" {
		a.palette = newPalette(a.paletteCommands())
		return nil
	}

	if !a.con.Gate.Authenticated() {
		return a.handleLoginKey(msg)
	}

	switch msg.String() {
	case "1":
		a.tab = tabDashboard
		return nil
	case "2":
		a.tab = tabCategories
		return nil
	case "3":
		a.tab = tabPortfolio
		return nil
	case "4":
		a.tab = tabInquiries
		return nil
	case "5":
		a.tab = tabSettings
		return nil
	case "ctrl+l":
		return a.logoutCmd()
	}

	switch a.tab {
	case tabCategories:
		return a.handleCategoriesKey(msg)
	case tabPortfolio:
		return a.handlePortfolioKey(msg)
	case tabInquiries:
		return a.handleInquiriesKey(msg)
	case tabSettings:
		return a.handleSettingsKey(msg)
	}
	return nil
}

func (a *App) handleLoginKey(msg tea.KeyMsg) tea.Cmd {
	if !a.con.Gate.Resolved() {
		return nil
	}
	if msg.String() == "enter" {
		creds, ok := a.con.SubmitLogin(a.loginForm.Value("username"), a.loginForm.Value("password"))
		if !ok {
			return nil
		}
		return a.loginCmd(creds)
	}
	return a.loginForm.Update(msg)
}

func (a *App) handleCategoriesKey(msg tea.KeyMsg) tea.Cmd {
	cats := a.con.Categories()
	if a.con.CategoryEditor.Mode != console.EditorClosed {
		switch msg.String() {
		case "esc":
			a.con.CategoryEditor.Close()
			a.categoryForm = nil
			return nil
		case "enter":
			a.flushCategoryForm()
			in, targetID, ok := a.con.SubmitCategory()
			if !ok {
				return nil
			}
			if targetID > 0 {
				return a.updateCategoryCmd(targetID, in)
			}
			return a.createCategoryCmd(in)
		}
		return a.categoryForm.Update(msg)
	}

	switch msg.String() {
	case "up", "k":
		if a.categoryCursor > 0 {
			a.categoryCursor--
		}
	case "down", "j":
		if a.categoryCursor < len(cats)-1 {
			a.categoryCursor++
		}
	case "K", "J":
		// keyboard reorder: move the row and commit the whole sequence
		to := a.categoryCursor - 1
		if msg.String() == "J" {
			to = a.categoryCursor + 1
		}
		if to < 0 || to >= len(cats) {
			return nil
		}
		next := console.Move(cats, a.categoryCursor, to)
		a.categoryCursor = to
		return a.reorderCategoriesCmd(next)
	case "n":
		a.openCategoryCreate()
	case "enter", "e":
		if a.categoryCursor < len(cats) {
			a.con.CategoryEditor.OpenEdit(cats[a.categoryCursor])
			a.categoryForm = newForm([]formField{
				{key: "name", label: "이름", value: a.con.CategoryEditor.Form.Name},
				{key: "order", label: "순서", value: a.con.CategoryEditor.Form.Order},
			})
		}
	case "d":
		if a.categoryCursor < len(cats) {
			return a.deleteCategoryCmd(cats[a.categoryCursor].ID)
		}
	}
	return nil
}

func (a *App) openCategoryCreate() {
	a.con.CategoryEditor.OpenCreate()
	a.categoryForm = newForm([]formField{
		{key: "name", label: "이름"},
		{key: "order", label: "순서", value: "0"},
	})
}

func (a *App) flushCategoryForm() {
	if a.categoryForm == nil {
		return
	}
	a.con.CategoryEditor.Form.Name = a.categoryForm.Value("name")
	a.con.CategoryEditor.Form.Order = a.categoryForm.Value("order")
}

func (a *App) handlePortfolioKey(msg tea.KeyMsg) tea.Cmd {
	items := a.con.Portfolio()
	if a.con.PortfolioEditor.Mode != console.EditorClosed {
		switch msg.String() {
		case "esc":
			a.con.PortfolioEditor.Close()
			a.portfolioForm = nil
			return nil
		case "ctrl+f":
			a.con.PortfolioEditor.Form.IsFeatured = !a.con.PortfolioEditor.Form.IsFeatured
			return nil
		case "enter":
			a.flushPortfolioForm()
			in, targetID, ok := a.con.SubmitPortfolio()
			if !ok {
				return nil
			}
			if targetID > 0 {
				return a.updatePortfolioCmd(targetID, in)
			}
			return a.createPortfolioCmd(in)
		}
		return a.portfolioForm.Update(msg)
	}

	switch msg.String() {
	case "up", "k":
		if a.portfolioCursor > 0 {
			a.portfolioCursor--
		}
	case "down", "j":
		if a.portfolioCursor < len(items)-1 {
			a.portfolioCursor++
		}
	case "K", "J":
		to := a.portfolioCursor - 1
		if msg.String() == "J" {
			to = a.portfolioCursor + 1
		}
		if to < 0 || to >= len(items) {
			return nil
		}
		next := console.Move(items, a.portfolioCursor, to)
		a.portfolioCursor = to
		return a.reorderPortfolioCmd(next)
	case "n":
		a.openPortfolioCreate()
	case "enter", "e":
		if a.portfolioCursor < len(items) {
			a.con.PortfolioEditor.OpenEdit(items[a.portfolioCursor])
			a.portfolioForm = a.newPortfolioForm()
		}
	case "d":
		if a.portfolioCursor < len(items) {
			return a.deletePortfolioCmd(items[a.portfolioCursor].ID)
		}
	}
	return nil
}

func (a *App) openPortfolioCreate() {
	a.con.PortfolioEditor.OpenCreate()
	a.portfolioForm = a.newPortfolioForm()
}

func (a *App) newPortfolioForm() *form {
	f := a.con.PortfolioEditor.Form
	return newForm([]formField{
		{key: "title", label: "제목", value: f.Title},
		{key: "description", label: "설명", value: f.Description},
		{key: "category", label: "카테고리 ID", value: f.CategoryID},
		{key: "order", label: "순서", value: f.Order},
		{key: "image", label: "이미지 경로", value: f.ImagePath},
	})
}

func (a *App) flushPortfolioForm() {
	if a.portfolioForm == nil {
		return
	}
	form := &a.con.PortfolioEditor.Form
	form.Title = a.portfolioForm.Value("title")
	form.Description = a.portfolioForm.Value("description")
	form.CategoryID = a.portfolioForm.Value("category")
	form.Order = a.portfolioForm.Value("order")
	form.ImagePath = a.portfolioForm.Value("image")
}

func (a *App) handleInquiriesKey(msg tea.KeyMsg) tea.Cmd {
	list := a.con.Inquiries()

	if a.commentInput != nil {
		switch msg.String() {
		case "esc":
			a.commentInput = nil
			a.con.CommentDraft = ""
			return nil
		case "enter":
			a.con.CommentDraft = a.commentInput.Value("content")
			inquiryID, content, ok := a.con.SubmitComment()
			if !ok {
				return nil
			}
			a.commentInput = nil
			return a.createCommentCmd(inquiryID, content)
		}
		return a.commentInput.Update(msg)
	}

	switch msg.String() {
	case "up", "k":
		if a.inquiryCursor > 0 {
			a.inquiryCursor--
		}
	case "down", "j":
		if a.inquiryCursor < len(list)-1 {
			a.inquiryCursor++
		}
	case "enter":
		if a.inquiryCursor < len(list) {
			a.con.SelectInquiry(list[a.inquiryCursor].ID)
		}
	case "esc":
		a.con.SelectInquiry(0)
	case "r":
		if a.con.SelectedInquiry > 0 {
			a.commentInput = newForm([]formField{{key: "content", label: "답변"}})
		}
	case "x":
		// delete the focused reply on the open detail
		detail, ok := a.con.InquiryDetail()
		if ok && len(detail.Comments) > 0 {
			return a.deleteCommentCmd(detail.Comments[len(detail.Comments)-1].ID)
		}
	case "d":
		if id, ok := a.con.SubmitDeleteInquiry(); ok {
			return a.deleteInquiryCmd(id)
		}
	}
	return nil
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	if a.settingsForm == nil {
		if msg.String() == "enter" || msg.String() == "e" {
			a.settingsForm = a.newSettingsForm()
		}
		return nil
	}
	switch msg.String() {
	case "esc":
		a.settingsForm = nil
		a.con.SettingsDraft.Reset()
		return nil
	case "enter":
		a.flushSettingsForm()
		return a.updateSettingsCmd(a.con.SubmitSettings())
	}
	return a.settingsForm.Update(msg)
}

func (a *App) newSettingsForm() *form {
	current, _ := a.con.Settings()
	return newForm([]formField{
		{key: "site_title", label: "사이트 제목", value: current.SiteTitle},
		{key: "hero_title", label: "히어로 제목", value: current.HeroTitle},
		{key: "hero_subtitle", label: "히어로 부제목", value: current.HeroSubtitle},
		{key: "logo", label: "로고 경로"},
		{key: "hero", label: "히어로 이미지 경로"},
	})
}

func (a *App) flushSettingsForm() {
	if a.settingsForm == nil {
		return
	}
	siteTitle := a.settingsForm.Value("site_title")
	heroTitle := a.settingsForm.Value("hero_title")
	heroSubtitle := a.settingsForm.Value("hero_subtitle")
	a.con.SettingsDraft.SiteTitle = &siteTitle
	a.con.SettingsDraft.HeroTitle = &heroTitle
	a.con.SettingsDraft.HeroSubtitle = &heroSubtitle
	a.con.SettingsDraft.LogoPath = a.settingsForm.Value("logo")
	a.con.SettingsDraft.HeroPath = a.settingsForm.Value("hero")
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.tab != tabCategories && a.tab != tabPortfolio {
		return nil
	}
	m := tea.MouseEvent(msg)
	switch m.Action {
	case tea.MouseActionPress:
		if m.Button != tea.MouseButtonLeft {
			return nil
		}
		if row := a.listArea.rowAt(m.Y); row >= 0 && a.listArea.contains(m.Y) {
			a.drag.press(row, m.Y)
		}
	case tea.MouseActionMotion:
		a.drag.move(m.Y)
	case tea.MouseActionRelease:
		from, to, ok := a.drag.release(m.Y, a.listArea)
		if !ok {
			return nil
		}
		if a.tab == tabCategories {
			cats := a.con.Categories()
			if from >= len(cats) || to >= len(cats) {
				return nil
			}
			a.categoryCursor = to
			return a.reorderCategoriesCmd(console.Move(cats, from, to))
		}
		items := a.con.Portfolio()
		if from >= len(items) || to >= len(items) {
			return nil
		}
		a.portfolioCursor = to
		return a.reorderPortfolioCmd(console.Move(items, from, to))
	}
	return nil
}

// syncEditorForms drops the tui-side form when the console editor was reset
// by a successful mutation.
func (a *App) syncEditorForms() {
	if a.con.CategoryEditor.Mode == console.EditorClosed {
		a.categoryForm = nil
	}
	if a.con.PortfolioEditor.Mode == console.EditorClosed {
		a.portfolioForm = nil
	}
	if a.con.SettingsDraft == (console.SettingsDraft{}) {
		a.settingsForm = nil
	}
	if a.con.CommentDraft == "" {
		a.commentInput = nil
	}
}

func (a *App) resetForms() {
	a.categoryForm = nil
	a.portfolioForm = nil
	a.settingsForm = nil
	a.commentInput = nil
	a.palette = nil
	a.categoryCursor = 0
	a.portfolioCursor = 0
	a.inquiryCursor = 0
	a.loginForm = newForm([]formField{
		{key: "username", label: "Username"},
		{key: "password", label: "Password", mask: true},
	})
}
