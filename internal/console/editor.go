package console

import (
	"strconv"
	"strings"

	"github.com/devjaesung/sowa-admin/internal/api"
)

// Editor mode state machines for the inline category and portfolio editors.
// TargetID is meaningful only in edit mode; Close and every successful submit
// reset the whole editor, a failed submit leaves it untouched so the operator
// can retry without re-entering anything.

type EditorMode int

const (
	EditorClosed EditorMode = iota
	EditorCreate
	EditorEdit
)

type CategoryForm struct {
	Name  string
	Order string
}

type CategoryEditor struct {
	Mode     EditorMode
	TargetID int
	Form     CategoryForm
}

func (e *CategoryEditor) OpenCreate() {
	e.Mode = EditorCreate
	e.TargetID = 0
	e.Form = CategoryForm{Order: "0"}
}

// OpenEdit populates the draft from the row as cached at click time; it is
// not re-fetched.
func (e *CategoryEditor) OpenEdit(c api.Category) {
	e.Mode = EditorEdit
	e.TargetID = c.ID
	e.Form = CategoryForm{Name: c.Name, Order: strconv.Itoa(c.Order)}
}

func (e *CategoryEditor) Close() {
	*e = CategoryEditor{}
}

type PortfolioForm struct {
	CategoryID  string
	Title       string
	Description string
	IsFeatured  bool
	Order       string
	ImagePath   string
}

type PortfolioEditor struct {
	Mode     EditorMode
	TargetID int
	Form     PortfolioForm
}

func (e *PortfolioEditor) OpenCreate() {
	e.Mode = EditorCreate
	e.TargetID = 0
	e.Form = PortfolioForm{Order: "0"}
}

func (e *PortfolioEditor) OpenEdit(item api.PortfolioItem) {
	e.Mode = EditorEdit
	e.TargetID = item.ID
	form := PortfolioForm{
		Title:       item.Title,
		Description: item.Description,
		IsFeatured:  item.IsFeatured,
		Order:       strconv.Itoa(item.Order),
	}
	if item.Category != nil {
		form.CategoryID = strconv.Itoa(item.Category.ID)
	}
	e.Form = form
}

func (e *PortfolioEditor) Close() {
	*e = PortfolioEditor{}
}

// SettingsDraft holds partial edits to the singleton settings record. A nil
// text field means "not touched": on submit it falls back to the last-known
// server value, never to an empty string.
type SettingsDraft struct {
	SiteTitle    *string
	HeroTitle    *string
	HeroSubtitle *string
	LogoPath     string
	HeroPath     string
}

func (d *SettingsDraft) Reset() {
	*d = SettingsDraft{}
}

func (d SettingsDraft) merge(current api.SiteSettings) api.SettingsInput {
	in := api.SettingsInput{
		SiteTitle:    current.SiteTitle,
		HeroTitle:    current.HeroTitle,
		HeroSubtitle: current.HeroSubtitle,
		LogoPath:     d.LogoPath,
		HeroPath:     d.HeroPath,
	}
	if d.SiteTitle != nil {
		in.SiteTitle = *d.SiteTitle
	}
	if d.HeroTitle != nil {
		in.HeroTitle = *d.HeroTitle
	}
	if d.HeroSubtitle != nil {
		in.HeroSubtitle = *d.HeroSubtitle
	}
	return in
}

func parseOrder(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
