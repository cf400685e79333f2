package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Command palette: fuzzy search over navigation and console actions. Matching
// is subsequence-first with a levenshtein fallback so a small typo still
// finds the command.

type command struct {
	id    string
	label string
	run   func(a *App) tea.Cmd
}

type commandMatch struct {
	command
	score int
}

type palette struct {
	input   textinput.Model
	matches []commandMatch
	cursor  int
}

func newPalette(commands []command) *palette {
	inp := textinput.New()
	inp.Prompt = "> "
	inp.Focus()
	p := &palette{input: inp}
	p.matches = searchCommands(commands, "")
	return p
}

func (a *App) paletteCommands() []command {
	cmds := []command{
		{id: "nav:dashboard", label: "대시보드 탭", run: func(a *App) tea.Cmd { a.tab = tabDashboard; return nil }},
		{id: "nav:categories", label: "카테고리 탭", run: func(a *App) tea.Cmd { a.tab = tabCategories; return nil }},
		{id: "nav:portfolio", label: "포트폴리오 탭", run: func(a *App) tea.Cmd { a.tab = tabPortfolio; return nil }},
		{id: "nav:inquiries", label: "문의/답변 탭", run: func(a *App) tea.Cmd { a.tab = tabInquiries; return nil }},
		{id: "nav:settings", label: "사이트 설정 탭", run: func(a *App) tea.Cmd { a.tab = tabSettings; return nil }},
		{id: "category:new", label: "카테고리 추가", run: func(a *App) tea.Cmd {
			a.tab = tabCategories
			a.openCategoryCreate()
			return nil
		}},
		{id: "portfolio:new", label: "포트폴리오 추가", run: func(a *App) tea.Cmd {
			a.tab = tabPortfolio
			a.openPortfolioCreate()
			return nil
		}},
		{id: "data:refresh", label: "전체 새로고침", run: func(a *App) tea.Cmd {
			for _, key := range a.con.MountedKeys() {
				a.con.Cache.Invalidate(key)
			}
			return nil
		}},
		{id: "session:logout", label: "로그아웃", run: func(a *App) tea.Cmd { return a.logoutCmd() }},
	}
	return cmds
}

func searchCommands(commands []command, query string) []commandMatch {
	q := strings.TrimSpace(strings.ToLower(query))
	out := make([]commandMatch, 0, len(commands))
	for _, cmd := range commands {
		matched, score := matchScore(cmd, q)
		if !matched {
			continue
		}
		out = append(out, commandMatch{command: cmd, score: score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].id < out[j].id
	})
	return out
}

func matchScore(cmd command, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	best := -1
	for _, field := range []string{cmd.label, cmd.id} {
		if matched, score := subsequenceScore(strings.ToLower(field), query); matched && score > best {
			best = score
		}
	}
	if best >= 0 {
		return true, best
	}
	// typo tolerance: accept a near miss against any word of the label or id
	for _, field := range []string{cmd.label, cmd.id} {
		for _, token := range strings.FieldsFunc(strings.ToLower(field), func(r rune) bool {
			return r == ' ' || r == ':' || r == '/'
		}) {
			dist := levenshtein.ComputeDistance(token, query)
			if dist <= len(query)/2 {
				return true, -dist
			}
		}
	}
	return false, 0
}

func subsequenceScore(label, query string) (bool, int) {
	idx := make([]int, 0, len(query))
	from := 0
	for i := 0; i < len(query); i++ {
		j := strings.IndexByte(label[from:], query[i])
		if j < 0 {
			return false, 0
		}
		idx = append(idx, from+j)
		from += j + 1
	}
	score := len(query)
	if len(idx) > 0 && idx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(idx); i++ {
		if idx[i] == idx[i-1]+1 {
			score += 3
		}
	}
	return true, score
}

// Update handles a key while the palette is open. done reports the palette
// should close; cmd carries the selected command's effect.
func (a *App) updatePalette(msg tea.KeyMsg) (done bool, cmd tea.Cmd) {
	p := a.palette
	switch msg.String() {
	case "esc":
		return true, nil
	case "up", "ctrl+p":
		if p.cursor > 0 {
			p.cursor--
		}
		return false, nil
	case "down", "ctrl+n":
		if p.cursor < len(p.matches)-1 {
			p.cursor++
		}
		return false, nil
	case "enter":
		if p.cursor < len(p.matches) {
			return true, p.matches[p.cursor].run(a)
		}
		return true, nil
	}
	var inputCmd tea.Cmd
	p.input, inputCmd = p.input.Update(msg)
	p.matches = searchCommands(a.paletteCommands(), p.input.Value())
	if p.cursor >= len(p.matches) {
		p.cursor = 0
	}
	return false, inputCmd
}
