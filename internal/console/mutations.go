package console

import "github.com/devjaesung/sowa-admin/internal/api"

// Mutation coordinator. Every write operation's success effects — notice
// text, the exact cache keys to invalidate, which editor resets, whether the
// inquiry selection or drafts clear — live in one declarative table instead
// of being scattered across callbacks, so the cross-entity dependency graph
// is auditable in one place. Failures touch nothing but the notice slot.

type Op int

const (
	OpLogin Op = iota
	OpLogout
	OpCreateCategory
	OpUpdateCategory
	OpDeleteCategory
	OpReorderCategories
	OpCreatePortfolio
	OpUpdatePortfolio
	OpDeletePortfolio
	OpReorderPortfolio
	OpDeleteInquiry
	OpCreateComment
	OpDeleteComment
	OpUpdateSettings
)

type editorKind int

const (
	editorNone editorKind = iota
	editorCategory
	editorPortfolio
)

type opEffect struct {
	message       string
	invalidates   []Kind
	withDetail    bool // also invalidate the selected inquiry's detail entry
	resetEditor   editorKind
	clearSelected bool
	resetSettings bool
	clearComment  bool
}

var opEffects = map[Op]opEffect{
	OpLogin:             {message: "로그인 성공"},
	OpLogout:            {message: "로그아웃 성공"},
	OpCreateCategory:    {message: "카테고리 생성 완료", invalidates: []Kind{KindCategories}, resetEditor: editorCategory},
	OpUpdateCategory:    {message: "카테고리 수정 완료", invalidates: []Kind{KindCategories}, resetEditor: editorCategory},
	OpDeleteCategory:    {message: "카테고리 삭제 완료", invalidates: []Kind{KindCategories}},
	OpReorderCategories: {message: "카테고리 순서가 변경되었습니다.", invalidates: []Kind{KindCategories}},
	OpCreatePortfolio:   {message: "포트폴리오 생성 완료", invalidates: []Kind{KindPortfolio, KindStats}, resetEditor: editorPortfolio},
	OpUpdatePortfolio:   {message: "포트폴리오 수정 완료", invalidates: []Kind{KindPortfolio}, resetEditor: editorPortfolio},
	OpDeletePortfolio:   {message: "포트폴리오 삭제 완료", invalidates: []Kind{KindPortfolio, KindStats}},
	OpReorderPortfolio:  {message: "포트폴리오 순서가 변경되었습니다.", invalidates: []Kind{KindPortfolio}},
	OpDeleteInquiry:     {message: "문의 삭제 완료", invalidates: []Kind{KindInquiries, KindStats}, clearSelected: true},
	OpCreateComment:     {message: "답변 등록 완료", invalidates: []Kind{KindInquiries, KindStats}, withDetail: true, clearComment: true},
	OpDeleteComment:     {message: "답변 삭제 완료", invalidates: []Kind{KindInquiries, KindStats}, withDetail: true},
	OpUpdateSettings:    {message: "사이트 설정 수정 완료", invalidates: []Kind{KindSettings}, resetSettings: true},
}

// ApplySuccess runs an operation's success effects. serverDetail, when
// non-empty, overrides the canned notice (login/logout echo the server's
// detail string).
func (c *Console) ApplySuccess(op Op, serverDetail string) {
	eff := opEffects[op]

	message := eff.message
	if serverDetail != "" {
		message = serverDetail
	}
	c.ShowSuccess(message)

	switch op {
	case OpLogin:
		// The session may belong to a different admin now: re-probe and
		// refetch everything rather than trusting the previous cache.
		c.Gate.Rearm()
		for _, kind := range []Kind{KindStats, KindCategories, KindPortfolio, KindInquiries, KindInquiryDetail, KindSettings} {
			c.Cache.InvalidateKind(kind)
		}
		return
	case OpLogout:
		// Purge outright so no stale admin data can leak into whatever
		// session comes next, then re-arm the probe on the next tick.
		c.Cache.RemoveAll()
		c.Gate.Disarm()
		return
	}

	for _, kind := range eff.invalidates {
		c.Cache.InvalidateKind(kind)
	}
	if eff.withDetail && c.SelectedInquiry > 0 {
		c.Cache.Invalidate(InquiryDetailKey(c.SelectedInquiry))
	}
	switch eff.resetEditor {
	case editorCategory:
		c.CategoryEditor.Close()
	case editorPortfolio:
		c.PortfolioEditor.Close()
	}
	if eff.clearSelected {
		c.SelectedInquiry = 0
	}
	if eff.resetSettings {
		c.SettingsDraft.Reset()
	}
	if eff.clearComment {
		c.CommentDraft = ""
	}
}

// ApplyFailure surfaces the remote error and leaves editors, drafts and
// caches exactly as they were, so the operator can correct and resubmit.
func (c *Console) ApplyFailure(op Op, err error) {
	c.ShowError(api.UserMessage(err))
}
