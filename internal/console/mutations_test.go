package console

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devjaesung/sowa-admin/internal/api"
)

// seedAll populates every mounted key plus the detail for inquiry 5 so the
// tests can observe exactly which entries an operation invalidates.
func seedAll(t *testing.T, c *Console) {
	t.Helper()
	keys := []Key{StatsKey(), CategoriesKey(), PortfolioKey(), InquiriesKey(), SettingsKey(), InquiryDetailKey(5)}
	for _, key := range keys {
		gen := c.Cache.BeginFetch(key)
		require.True(t, c.Cache.Resolve(key, gen, "seed", nil))
	}
}

func staleKeys(c *Console) map[Key]bool {
	out := map[Key]bool{}
	for _, key := range []Key{StatsKey(), CategoriesKey(), PortfolioKey(), InquiriesKey(), SettingsKey(), InquiryDetailKey(5)} {
		out[key] = c.Cache.NeedsFetch(key)
	}
	return out
}

func TestApplySuccessInvalidationSets(t *testing.T) {
	tests := []struct {
		name  string
		op    Op
		stale []Key
	}{
		{"create category", OpCreateCategory, []Key{CategoriesKey()}},
		{"update category", OpUpdateCategory, []Key{CategoriesKey()}},
		{"delete category", OpDeleteCategory, []Key{CategoriesKey()}},
		{"reorder categories", OpReorderCategories, []Key{CategoriesKey()}},
		{"create portfolio", OpCreatePortfolio, []Key{PortfolioKey(), StatsKey()}},
		{"update portfolio", OpUpdatePortfolio, []Key{PortfolioKey()}},
		{"delete portfolio", OpDeletePortfolio, []Key{PortfolioKey(), StatsKey()}},
		{"reorder portfolio", OpReorderPortfolio, []Key{PortfolioKey()}},
		{"delete inquiry", OpDeleteInquiry, []Key{InquiriesKey(), StatsKey()}},
		{"create comment", OpCreateComment, []Key{InquiriesKey(), StatsKey(), InquiryDetailKey(5)}},
		{"delete comment", OpDeleteComment, []Key{InquiriesKey(), StatsKey(), InquiryDetailKey(5)}},
		{"update settings", OpUpdateSettings, []Key{SettingsKey()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Gate.BeginProbe()
			c.Gate.ResolveProbe(nil)
			c.SelectInquiry(5)
			seedAll(t, c)

			c.ApplySuccess(tt.op, "")

			want := map[Key]bool{}
			for _, key := range tt.stale {
				want[key] = true
			}
			for key, stale := range staleKeys(c) {
				require.Equal(t, want[key], stale, "key %+v", key)
			}
			require.Equal(t, ToneSuccess, c.Notice.Tone)
		})
	}
}

func TestApplySuccessLoginInvalidatesEverythingAndRearms(t *testing.T) {
	c := New()
	c.Gate.BeginProbe()
	c.Gate.ResolveProbe(errors.New("401"))
	c.SelectInquiry(5)
	// entries may exist from a previous session
	c.Gate.BeginProbe()
	c.Gate.ResolveProbe(nil)
	seedAll(t, c)
	c.Gate.BeginProbe()
	c.Gate.ResolveProbe(errors.New("401"))

	c.ApplySuccess(OpLogin, "로그인 성공")

	require.True(t, c.Gate.ShouldProbe(), "login re-arms the probe immediately")
	for key, stale := range staleKeys(c) {
		require.True(t, stale, "key %+v must be stale after login", key)
	}
	require.Equal(t, "로그인 성공", c.Notice.Message)
}

func TestApplySuccessLogoutPurgesAndDefersRearm(t *testing.T) {
	c := New()
	c.Gate.BeginProbe()
	c.Gate.ResolveProbe(nil)
	c.SelectInquiry(5)
	seedAll(t, c)

	c.ApplySuccess(OpLogout, "")

	_, ok := c.Cache.Get(CategoriesKey())
	require.False(t, ok, "logout purges, not just invalidates")
	require.False(t, c.Gate.Authenticated())
	require.False(t, c.Gate.ShouldProbe(), "probe must not re-arm in the same cycle")

	c.Gate.Tick()
	require.True(t, c.Gate.ShouldProbe())
}

func TestApplySuccessEditorAndDraftResets(t *testing.T) {
	c := New()
	c.Gate.BeginProbe()
	c.Gate.ResolveProbe(nil)

	c.CategoryEditor.OpenEdit(api.Category{ID: 3, Name: "거실", Order: 1})
	c.ApplySuccess(OpUpdateCategory, "")
	require.Equal(t, EditorClosed, c.CategoryEditor.Mode)
	require.Zero(t, c.CategoryEditor.TargetID)

	c.PortfolioEditor.OpenCreate()
	c.ApplySuccess(OpCreatePortfolio, "")
	require.Equal(t, EditorClosed, c.PortfolioEditor.Mode)

	c.SelectInquiry(9)
	c.CommentDraft = "empty"
	c.ApplySuccess(OpCreateComment, "")
	require.Empty(t, c.CommentDraft)
	require.Equal(t, 9, c.SelectedInquiry, "reply keeps the selection open")

	c.ApplySuccess(OpDeleteInquiry, "")
	require.Zero(t, c.SelectedInquiry, "deleting the inquiry clears the selection")

	title := "소와"
	c.SettingsDraft.SiteTitle = &title
	c.ApplySuccess(OpUpdateSettings, "")
	require.Nil(t, c.SettingsDraft.SiteTitle)
}

func TestApplyFailureTouchesOnlyTheNotice(t *testing.T) {
	c := New()
	c.Gate.BeginProbe()
	c.Gate.ResolveProbe(nil)
	c.SelectInquiry(5)
	seedAll(t, c)
	c.CategoryEditor.OpenEdit(api.Category{ID: 3, Name: "거실", Order: 1})

	c.ApplyFailure(OpUpdateCategory, errors.New("boom"))

	require.Equal(t, ToneError, c.Notice.Tone)
	require.Equal(t, EditorEdit, c.CategoryEditor.Mode, "failed submit keeps the draft")
	require.Equal(t, "거실", c.CategoryEditor.Form.Name)
	for key, stale := range staleKeys(c) {
		require.False(t, stale, "failure must not invalidate %+v", key)
	}
}

func TestApplyFailureUsesServerMessage(t *testing.T) {
	c := New()
	c.ApplyFailure(OpCreateCategory, &api.Error{Status: 400, Message: "이미 존재하는 이름입니다."})
	require.Equal(t, "이미 존재하는 이름입니다.", c.Notice.Message)

	c.ApplyFailure(OpCreateCategory, errors.New("dial tcp: connection refused"))
	require.Equal(t, "요청 처리 중 오류가 발생했습니다.", c.Notice.Message)
}
