package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/devjaesung/sowa-admin/internal/console"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	tabStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTab     = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	featuredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	repliedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	paletteStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// listTop is the terminal row where the first list row renders: title, tab
// bar, notice line, blank, list header.
const listTop = 5

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if !a.con.Gate.Resolved() {
		return titleStyle.Render("Sowa Admin") + "\n\n" + dimStyle.Render("세션 확인 중...")
	}
	if !a.con.Gate.Authenticated() {
		return a.renderLogin()
	}

	var body string
	switch a.tab {
	case tabCategories:
		body = a.renderCategories()
	case tabPortfolio:
		body = a.renderPortfolio()
	case tabInquiries:
		body = a.renderInquiries()
	case tabSettings:
		body = a.renderSettings()
	default:
		body = a.renderDashboard()
	}

	out := titleStyle.Render("Sowa Admin") + "\n" +
		a.renderTabs() + "\n" +
		a.renderNotice() + "\n\n" +
		body + "\n" +
		a.renderFooter()

	if a.palette != nil {
		out += "\n\n" + a.renderPalette()
	}
	return out
}

func (a *App) renderLogin() string {
	lines := []string{
		titleStyle.Render("Sowa Admin — 로그인"),
		"",
		a.loginForm.View(),
		"",
		a.renderNotice(),
		dimStyle.Render("enter 로그인 · tab 필드 이동 · ctrl+c 종료"),
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderTabs() string {
	labels := []struct {
		t     tab
		label string
	}{
		{tabDashboard, "1 대시보드"},
		{tabCategories, "2 카테고리"},
		{tabPortfolio, "3 포트폴리오"},
		{tabInquiries, "4 문의"},
		{tabSettings, "5 설정"},
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.t == a.tab {
			parts = append(parts, activeTab.Render(l.label))
		} else {
			parts = append(parts, tabStyle.Render(l.label))
		}
	}
	return strings.Join(parts, "")
}

func (a *App) renderNotice() string {
	n := a.con.Notice
	if n == nil {
		return ""
	}
	if n.Tone == console.ToneError {
		return errorStyle.Render(n.Message)
	}
	return successStyle.Render(n.Message)
}

func (a *App) renderDashboard() string {
	stats := a.con.Stats()
	cards := []string{
		boxStyle.Render(fmt.Sprintf("전체 문의\n%6d", stats.TotalInquiries)),
		boxStyle.Render(fmt.Sprintf("대기 문의\n%6d", stats.PendingInquiries)),
		boxStyle.Render(fmt.Sprintf("답변 완료\n%6d", stats.RepliedInquiries)),
		boxStyle.Render(fmt.Sprintf("포트폴리오\n%6d", stats.TotalPortfolio)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (a *App) renderCategories() string {
	cats := a.con.Categories()
	a.listArea = rowArea{top: listTop, rowHeight: 1, count: len(cats)}

	lines := []string{dimStyle.Render(fmt.Sprintf("  %-4s %-20s %s", "ID", "이름", "순서"))}
	for i, c := range cats {
		prefix := "  "
		if i == a.categoryCursor {
			prefix = "> "
		}
		if a.drag.active && i == a.drag.origin {
			prefix = "≡ "
		}
		lines = append(lines, fmt.Sprintf("%s%-4d %-20s %d", prefix, c.ID, truncate(c.Name, 20), c.Order))
	}
	if len(cats) == 0 {
		lines = append(lines, dimStyle.Render("  카테고리가 없습니다."))
	}
	body := strings.Join(lines, "\n")

	if a.con.CategoryEditor.Mode != console.EditorClosed && a.categoryForm != nil {
		header := "카테고리 추가"
		if a.con.CategoryEditor.Mode == console.EditorEdit {
			header = fmt.Sprintf("카테고리 수정 #%d", a.con.CategoryEditor.TargetID)
		}
		body += "\n\n" + boxStyle.Render(titleStyle.Render(header)+"\n"+a.categoryForm.View())
	}
	return body
}

func (a *App) renderPortfolio() string {
	items := a.con.Portfolio()
	a.listArea = rowArea{top: listTop, rowHeight: 1, count: len(items)}

	lines := []string{dimStyle.Render(fmt.Sprintf("  %-4s %-24s %-14s %s", "ID", "제목", "카테고리", "순서"))}
	for i, item := range items {
		prefix := "  "
		if i == a.portfolioCursor {
			prefix = "> "
		}
		if a.drag.active && i == a.drag.origin {
			prefix = "≡ "
		}
		catName := "-"
		if item.Category != nil {
			catName = item.Category.Name
		}
		title := truncate(item.Title, 24)
		if item.IsFeatured {
			title = featuredStyle.Render(title)
		}
		lines = append(lines, fmt.Sprintf("%s%-4d %-24s %-14s %d", prefix, item.ID, title, truncate(catName, 14), item.Order))
	}
	if len(items) == 0 {
		lines = append(lines, dimStyle.Render("  포트폴리오가 없습니다."))
	}
	body := strings.Join(lines, "\n")

	if a.con.PortfolioEditor.Mode != console.EditorClosed && a.portfolioForm != nil {
		header := "포트폴리오 추가"
		if a.con.PortfolioEditor.Mode == console.EditorEdit {
			header = fmt.Sprintf("포트폴리오 수정 #%d", a.con.PortfolioEditor.TargetID)
		}
		featured := "아니오"
		if a.con.PortfolioEditor.Form.IsFeatured {
			featured = "예"
		}
		body += "\n\n" + boxStyle.Render(titleStyle.Render(header)+"\n"+a.portfolioForm.View()+
			"\n"+dimStyle.Render("대표 지정 (ctrl+f): ")+featured)
	}
	return body
}

func (a *App) renderInquiries() string {
	list := a.con.Inquiries()
	lines := []string{dimStyle.Render(fmt.Sprintf("  %-4s %-12s %-14s %s", "ID", "이름", "연락처", "상태"))}
	for i, item := range list {
		prefix := "  "
		if i == a.inquiryCursor {
			prefix = "> "
		}
		status := pendingStyle.Render("대기")
		if item.HasReply {
			status = repliedStyle.Render("답변완료")
		}
		lines = append(lines, fmt.Sprintf("%s%-4d %-12s %-14s %s", prefix, item.ID, truncate(item.Name, 12), item.Phone, status))
	}
	if len(list) == 0 {
		lines = append(lines, dimStyle.Render("  문의가 없습니다."))
	}
	body := strings.Join(lines, "\n")

	if detail, ok := a.con.InquiryDetail(); ok {
		d := []string{
			titleStyle.Render(fmt.Sprintf("문의 #%d — %s", detail.ID, detail.Name)),
			fmt.Sprintf("연락처: %s  연령대: %s", detail.Phone, detail.Age),
			fmt.Sprintf("시공: %s  평수: %s  입주: %s", detail.InteriorType, detail.Area, detail.MoveInDate),
			fmt.Sprintf("요청: %s", detail.WorkRequest),
			"",
			detail.Content,
		}
		if len(detail.Comments) > 0 {
			d = append(d, "", dimStyle.Render("답변"))
			for _, c := range detail.Comments {
				d = append(d, fmt.Sprintf("  #%d %s", c.ID, c.Content))
			}
		}
		body += "\n\n" + boxStyle.Render(strings.Join(d, "\n"))
	}

	if a.commentInput != nil {
		body += "\n\n" + boxStyle.Render(titleStyle.Render("답변 작성")+"\n"+a.commentInput.View())
	}
	return body
}

func (a *App) renderSettings() string {
	current, ok := a.con.Settings()
	var lines []string
	if !ok {
		lines = append(lines, dimStyle.Render("설정을 불러오는 중..."))
	} else {
		lines = append(lines,
			fmt.Sprintf("사이트 제목: %s", current.SiteTitle),
			fmt.Sprintf("히어로 제목: %s", current.HeroTitle),
			fmt.Sprintf("히어로 부제목: %s", current.HeroSubtitle),
			fmt.Sprintf("로고: %s", valueOr(current.LogoImage, "-")),
			fmt.Sprintf("히어로 이미지: %s", valueOr(current.HeroImage, "-")),
			dimStyle.Render(fmt.Sprintf("마지막 수정: %s", a.formatDate(current.UpdatedAt))),
		)
	}
	body := boxStyle.Render(strings.Join(lines, "\n"))

	if a.settingsForm != nil {
		body += "\n\n" + boxStyle.Render(titleStyle.Render("사이트 설정 수정")+"\n"+a.settingsForm.View())
	} else {
		body += "\n" + dimStyle.Render("enter 수정 시작")
	}
	return body
}

func (a *App) renderPalette() string {
	p := a.palette
	lines := []string{p.input.View(), ""}
	for i, m := range p.matches {
		prefix := "  "
		if i == p.cursor {
			prefix = "> "
		}
		lines = append(lines, prefix+m.label)
	}
	if len(p.matches) == 0 {
		lines = append(lines, dimStyle.Render("  일치하는 명령이 없습니다."))
	}
	return paletteStyle.Render(strings.Join(lines, "\n"))
}

func (a *App) renderFooter() string {
	var hints string
	switch a.tab {
	case tabCategories:
		hints = "n 추가 · enter 수정 · d 삭제 · J/K 순서 이동 · 드래그 지원"
	case tabPortfolio:
		hints = "n 추가 · enter 수정 · d 삭제 · J/K 순서 이동 · 드래그 지원"
	case tabInquiries:
		hints = "enter 상세 · r 답변 · x 답변 삭제 · d 문의 삭제"
	case tabSettings:
		hints = "enter 수정 · esc 취소"
	default:
		hints = "1-5 탭 이동"
	}
	return dimStyle.Render(hints + " · ctrl+k 명령 · ctrl+l 로그아웃 · ctrl+c 종료")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// formatDate renders a server timestamp with the configured date format,
// passing unparseable values through untouched.
func (a *App) formatDate(raw string) string {
	if raw == "" {
		return "-"
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	format := a.cfg.UI.DateFormat
	if format == "" {
		format = "2006-01-02"
	}
	return ts.Format(format)
}
