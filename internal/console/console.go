package console

import (
	"strings"

	"github.com/devjaesung/sowa-admin/internal/api"
)

// Console is the admin console's state engine: the cache, the session gate,
// the editors, the notice slot and the inquiry selection, with the submit and
// mutation bookkeeping that ties them together. It runs remote calls through
// whoever embeds it (the TUI), never by itself, so every method here is
// synchronous and unit-testable.
type Console struct {
	Cache *Cache
	Gate  SessionGate

	Notice          *Notice
	CategoryEditor  CategoryEditor
	PortfolioEditor PortfolioEditor
	SettingsDraft   SettingsDraft
	CommentDraft    string

	// SelectedInquiry is the active detail target; 0 means none.
	SelectedInquiry int
}

func New() *Console {
	return &Console{Cache: NewCache()}
}

func (c *Console) ShowSuccess(message string) {
	c.Notice = &Notice{Tone: ToneSuccess, Message: message}
}

func (c *Console) ShowError(message string) {
	c.Notice = &Notice{Tone: ToneError, Message: message}
}

// SelectInquiry switches the active detail target. The previous id's entry
// stays cached under its own key; no invalidation is needed, and a late
// response for the old id can only land under the old key.
func (c *Console) SelectInquiry(id int) {
	c.SelectedInquiry = id
}

// MountedKeys lists the cache keys eligible to fetch right now. Nothing is
// mounted while the gate reads anonymous, which is what prevents the burst of
// unauthorized requests on page load.
func (c *Console) MountedKeys() []Key {
	if !c.Gate.Authenticated() {
		return nil
	}
	keys := []Key{StatsKey(), CategoriesKey(), PortfolioKey(), InquiriesKey(), SettingsKey()}
	if c.SelectedInquiry > 0 {
		keys = append(keys, InquiryDetailKey(c.SelectedInquiry))
	}
	return keys
}

// PendingFetches is the pump input: mounted keys that are missing or stale.
func (c *Console) PendingFetches() []Key {
	var pending []Key
	for _, key := range c.MountedKeys() {
		if c.Cache.NeedsFetch(key) {
			pending = append(pending, key)
		}
	}
	return pending
}

// SubmitLogin validates the login form locally. ok false means an error
// notice was set and no remote call should be made.
func (c *Console) SubmitLogin(username, password string) (api.Credentials, bool) {
	if username == "" || password == "" {
		c.ShowError("관리자 로그인은 username/password 모두 필수입니다.")
		return api.Credentials{}, false
	}
	return api.Credentials{Username: username, Password: password}, true
}

// SubmitCategory resolves the category editor submit: create when the editor
// is in create mode, update scoped to the target row in edit mode. targetID
// zero means create.
func (c *Console) SubmitCategory() (in api.CategoryInput, targetID int, ok bool) {
	form := c.CategoryEditor.Form
	name := strings.TrimSpace(form.Name)
	if name == "" {
		c.ShowError("카테고리 name은 필수입니다.")
		return api.CategoryInput{}, 0, false
	}
	in = api.CategoryInput{Name: name, Order: parseOrder(form.Order)}
	if c.CategoryEditor.Mode == EditorEdit {
		if c.CategoryEditor.TargetID == 0 {
			c.ShowError("수정할 카테고리를 선택해주세요.")
			return api.CategoryInput{}, 0, false
		}
		return in, c.CategoryEditor.TargetID, true
	}
	return in, 0, true
}

// SubmitPortfolio resolves the portfolio editor submit. Creates require a
// title and an image; updates require a target row and keep the stored image
// when no new file was picked.
func (c *Console) SubmitPortfolio() (in api.PortfolioInput, targetID int, ok bool) {
	form := c.PortfolioEditor.Form
	if c.PortfolioEditor.Mode == EditorEdit {
		if c.PortfolioEditor.TargetID == 0 {
			c.ShowError("수정할 포트폴리오 ID를 입력해주세요.")
			return api.PortfolioInput{}, 0, false
		}
	} else if strings.TrimSpace(form.Title) == "" || form.ImagePath == "" {
		c.ShowError("포트폴리오 생성은 title/image가 필수입니다.")
		return api.PortfolioInput{}, 0, false
	}
	in = api.PortfolioInput{
		Title:       form.Title,
		Description: form.Description,
		IsFeatured:  form.IsFeatured,
		Order:       parseOrder(form.Order),
		ImagePath:   form.ImagePath,
	}
	if id := parseOrder(form.CategoryID); form.CategoryID != "" && id > 0 {
		in.CategoryID = &id
	}
	return in, c.PortfolioEditor.TargetID, true
}

// SubmitComment validates the reply form against the current selection.
func (c *Console) SubmitComment() (inquiryID int, content string, ok bool) {
	content = strings.TrimSpace(c.CommentDraft)
	if c.SelectedInquiry == 0 || content == "" {
		c.ShowError("답변 등록에는 문의 ID와 내용이 필요합니다.")
		return 0, "", false
	}
	return c.SelectedInquiry, content, true
}

// SubmitDeleteInquiry validates that a row is selected before deleting.
func (c *Console) SubmitDeleteInquiry() (int, bool) {
	if c.SelectedInquiry == 0 {
		c.ShowError("삭제할 문의 ID를 입력해주세요.")
		return 0, false
	}
	return c.SelectedInquiry, true
}

// SubmitSettings merges the draft over the last-known server values. Fields
// the operator never touched keep the server value, not an empty string.
func (c *Console) SubmitSettings() api.SettingsInput {
	current, _ := c.Settings()
	return c.SettingsDraft.merge(current)
}
