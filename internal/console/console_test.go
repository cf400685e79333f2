package console

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devjaesung/sowa-admin/internal/api"
)

func authed(t *testing.T) *Console {
	t.Helper()
	c := New()
	c.Gate.BeginProbe()
	c.Gate.ResolveProbe(nil)
	return c
}

func TestMountedKeysGatedOnSession(t *testing.T) {
	c := New()
	require.Nil(t, c.MountedKeys(), "nothing mounts before the probe settles")

	c.Gate.BeginProbe()
	c.Gate.ResolveProbe(nil)
	require.Len(t, c.MountedKeys(), 5)

	c.SelectInquiry(3)
	keys := c.MountedKeys()
	require.Len(t, keys, 6)
	require.Contains(t, keys, InquiryDetailKey(3))

	c.SelectInquiry(0)
	require.Len(t, c.MountedKeys(), 5, "detail unmounts with the selection")
}

func TestPendingFetchesSkipsLoadedKeys(t *testing.T) {
	c := authed(t)
	require.Len(t, c.PendingFetches(), 5)

	gen := c.Cache.BeginFetch(CategoriesKey())
	require.Len(t, c.PendingFetches(), 4, "in-flight keys are not re-issued")

	require.True(t, c.Cache.Resolve(CategoriesKey(), gen, []api.Category{}, nil))
	require.Len(t, c.PendingFetches(), 4)
}

func TestSubmitLoginValidation(t *testing.T) {
	c := New()
	_, ok := c.SubmitLogin("", "pw")
	require.False(t, ok)
	require.Equal(t, ToneError, c.Notice.Tone)

	_, ok = c.SubmitLogin("admin", "")
	require.False(t, ok)

	creds, ok := c.SubmitLogin("admin", "pw")
	require.True(t, ok)
	require.Equal(t, api.Credentials{Username: "admin", Password: "pw"}, creds)
}

func TestSubmitCategoryValidation(t *testing.T) {
	c := authed(t)
	c.CategoryEditor.OpenCreate()

	_, _, ok := c.SubmitCategory()
	require.False(t, ok, "empty name rejected locally")
	require.Equal(t, "카테고리 name은 필수입니다.", c.Notice.Message)
	require.Equal(t, EditorCreate, c.CategoryEditor.Mode, "failed validation keeps the editor open")

	c.CategoryEditor.Form.Name = "  주방  "
	c.CategoryEditor.Form.Order = "2"
	in, targetID, ok := c.SubmitCategory()
	require.True(t, ok)
	require.Zero(t, targetID)
	require.Equal(t, api.CategoryInput{Name: "주방", Order: 2}, in)
}

func TestSubmitCategoryEditTargetsRow(t *testing.T) {
	c := authed(t)
	c.CategoryEditor.OpenEdit(api.Category{ID: 4, Name: "침실", Order: 3})

	in, targetID, ok := c.SubmitCategory()
	require.True(t, ok)
	require.Equal(t, 4, targetID)
	require.Equal(t, api.CategoryInput{Name: "침실", Order: 3}, in)
}

func TestSubmitPortfolioCreateRequiresTitleAndImage(t *testing.T) {
	c := authed(t)
	c.PortfolioEditor.OpenCreate()
	c.PortfolioEditor.Form.Title = "아파트 32평"

	_, _, ok := c.SubmitPortfolio()
	require.False(t, ok, "create without image rejected")

	c.PortfolioEditor.Form.ImagePath = "/tmp/cover.jpg"
	in, targetID, ok := c.SubmitPortfolio()
	require.True(t, ok)
	require.Zero(t, targetID)
	require.Equal(t, "/tmp/cover.jpg", in.ImagePath)
}

func TestSubmitPortfolioUpdateKeepsStoredImage(t *testing.T) {
	c := authed(t)
	c.PortfolioEditor.OpenEdit(api.PortfolioItem{
		ID: 11, Title: "빌라 리모델링", Order: 1,
		Category: &api.CategoryRef{ID: 2, Name: "주방"},
	})

	in, targetID, ok := c.SubmitPortfolio()
	require.True(t, ok)
	require.Equal(t, 11, targetID)
	require.Empty(t, in.ImagePath, "no new file picked keeps the stored image")
	require.NotNil(t, in.CategoryID)
	require.Equal(t, 2, *in.CategoryID)
}

func TestSubmitCommentRequiresSelectionAndContent(t *testing.T) {
	c := authed(t)

	c.CommentDraft = "답변 드립니다"
	_, _, ok := c.SubmitComment()
	require.False(t, ok, "no selection")

	c.SelectInquiry(8)
	c.CommentDraft = "   "
	_, _, ok = c.SubmitComment()
	require.False(t, ok, "blank content")

	c.CommentDraft = " 확인했습니다 "
	id, content, ok := c.SubmitComment()
	require.True(t, ok)
	require.Equal(t, 8, id)
	require.Equal(t, "확인했습니다", content)
}

func TestSubmitSettingsMergesDraftOverServerValues(t *testing.T) {
	c := authed(t)
	key := SettingsKey()
	gen := c.Cache.BeginFetch(key)
	require.True(t, c.Cache.Resolve(key, gen, api.SiteSettings{
		SiteTitle: "소와 인테리어", HeroTitle: "공간을 바꾸다", HeroSubtitle: "상담 환영",
	}, nil))

	title := "소와"
	c.SettingsDraft.SiteTitle = &title
	c.SettingsDraft.HeroPath = "/tmp/hero.jpg"

	in := c.SubmitSettings()
	require.Equal(t, "소와", in.SiteTitle)
	require.Equal(t, "공간을 바꾸다", in.HeroTitle, "untouched field keeps the server value")
	require.Equal(t, "상담 환영", in.HeroSubtitle)
	require.Equal(t, "/tmp/hero.jpg", in.HeroPath)
	require.Empty(t, in.LogoPath)
}
