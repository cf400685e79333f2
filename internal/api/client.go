package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const genericErrorMessage = "요청 처리 중 오류가 발생했습니다."

// Error is a failed API call. Message is extracted from the server's error
// payload when possible, otherwise a generic fallback.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: http %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is an authorization failure. The session
// gate treats these as "not authenticated" rather than displayable errors.
func IsUnauthorized(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && (ae.Status == http.StatusUnauthorized || ae.Status == http.StatusForbidden)
}

// UserMessage returns the text to surface for a failed call.
func UserMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return genericErrorMessage
}

// Client talks to the Sowa admin API. Session auth rides on the cookie jar,
// so a successful login makes subsequent privileged calls pass.
type Client struct {
	base string
	http *http.Client
	log  *slog.Logger
}

func NewClient(base string, timeout time.Duration, log *slog.Logger) *Client {
	jar, _ := cookiejar.New(nil)
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Client{
		base: base,
		http: &http.Client{Jar: jar, Timeout: timeout},
		log:  log,
	}
}

func (c *Client) Login(ctx context.Context, creds Credentials) (Detail, error) {
	var out Detail
	err := c.doJSON(ctx, http.MethodPost, "/api/admin/login/", creds, &out)
	return out, err
}

func (c *Client) Logout(ctx context.Context) (Detail, error) {
	var out Detail
	err := c.doJSON(ctx, http.MethodPost, "/api/admin/logout/", nil, &out)
	return out, err
}

func (c *Client) Stats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	err := c.doJSON(ctx, http.MethodGet, "/api/admin/stats/", nil, &out)
	return out, err
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/admin/categories/", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[Category](body), nil
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (Category, error) {
	var out Category
	err := c.doJSON(ctx, http.MethodPost, "/api/admin/categories/", in, &out)
	return out, err
}

func (c *Client) UpdateCategory(ctx context.Context, id int, in CategoryInput) (Category, error) {
	var out Category
	err := c.doJSON(ctx, http.MethodPut, "/api/admin/categories/"+strconv.Itoa(id)+"/", in, &out)
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/categories/"+strconv.Itoa(id)+"/", nil, "")
	return err
}

func (c *Client) ListPortfolio(ctx context.Context) ([]PortfolioItem, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/admin/portfolio/", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[PortfolioItem](body), nil
}

func (c *Client) CreatePortfolio(ctx context.Context, in PortfolioInput) (PortfolioItem, error) {
	var out PortfolioItem
	err := c.doPortfolioForm(ctx, http.MethodPost, "/api/admin/portfolio/", in, &out)
	return out, err
}

func (c *Client) UpdatePortfolio(ctx context.Context, id int, in PortfolioInput) (PortfolioItem, error) {
	var out PortfolioItem
	err := c.doPortfolioForm(ctx, http.MethodPut, "/api/admin/portfolio/"+strconv.Itoa(id)+"/", in, &out)
	return out, err
}

func (c *Client) DeletePortfolio(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/portfolio/"+strconv.Itoa(id)+"/", nil, "")
	return err
}

func (c *Client) ListInquiries(ctx context.Context) ([]InquiryListItem, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/admin/inquiries/", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[InquiryListItem](body), nil
}

func (c *Client) GetInquiry(ctx context.Context, id int) (InquiryDetail, error) {
	var out InquiryDetail
	err := c.doJSON(ctx, http.MethodGet, "/api/admin/inquiries/"+strconv.Itoa(id)+"/", nil, &out)
	return out, err
}

func (c *Client) DeleteInquiry(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/inquiries/"+strconv.Itoa(id)+"/", nil, "")
	return err
}

func (c *Client) CreateComment(ctx context.Context, inquiryID int, content string) (Comment, error) {
	var out Comment
	payload := map[string]string{"content": content}
	err := c.doJSON(ctx, http.MethodPost, "/api/admin/inquiries/"+strconv.Itoa(inquiryID)+"/comments/", payload, &out)
	return out, err
}

func (c *Client) DeleteComment(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/comments/"+strconv.Itoa(id)+"/", nil, "")
	return err
}

func (c *Client) GetSettings(ctx context.Context) (SiteSettings, error) {
	var out SiteSettings
	err := c.doJSON(ctx, http.MethodGet, "/api/admin/settings/", nil, &out)
	return out, err
}

func (c *Client) UpdateSettings(ctx context.Context, in SettingsInput) (SiteSettings, error) {
	var out SiteSettings
	fields := map[string]string{
		"site_title":    in.SiteTitle,
		"hero_title":    in.HeroTitle,
		"hero_subtitle": in.HeroSubtitle,
	}
	files := map[string]string{}
	if in.LogoPath != "" {
		files["logo_image"] = in.LogoPath
	}
	if in.HeroPath != "" {
		files["hero_image"] = in.HeroPath
	}
	err := c.doMultipart(ctx, http.MethodPut, "/api/admin/settings/", fields, files, &out)
	return out, err
}

func (c *Client) doPortfolioForm(ctx context.Context, method, path string, in PortfolioInput, out any) error {
	fields := map[string]string{
		"title":       in.Title,
		"description": in.Description,
		"is_featured": strconv.FormatBool(in.IsFeatured),
		"order":       strconv.Itoa(in.Order),
	}
	if in.CategoryID != nil {
		fields["category_id"] = strconv.Itoa(*in.CategoryID)
	}
	files := map[string]string{}
	if in.ImagePath != "" {
		files["image"] = in.ImagePath
	}
	return c.doMultipart(ctx, method, path, fields, files, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	body, err := c.do(ctx, method, path, reader, "application/json")
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Status: http.StatusOK, Message: genericErrorMessage}
	}
	return nil
}

func (c *Client) doMultipart(ctx context.Context, method, path string, fields, files map[string]string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}
	for name, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("open %s: %w", file, err)
		}
		part, err := w.CreateFormFile(name, filepath.Base(file))
		if err == nil {
			_, err = io.Copy(part, f)
		}
		f.Close()
		if err != nil {
			return fmt.Errorf("attach %s: %w", file, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish form: %w", err)
	}
	body, err := c.do(ctx, method, path, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Status: http.StatusOK, Message: genericErrorMessage}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", method, "path", path, "err", err)
		return nil, &Error{Status: 0, Message: genericErrorMessage}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: genericErrorMessage}
	}
	if resp.StatusCode >= 400 {
		msg := extractErrorMessage(data)
		c.log.Debug("request rejected", "method", method, "path", path, "status", resp.StatusCode, "msg", msg)
		return nil, &Error{Status: resp.StatusCode, Message: msg}
	}
	return data, nil
}

// extractErrorMessage pulls a human-readable message out of an error payload:
// "detail", then "message", then the first field error, else the generic
// fallback.
func extractErrorMessage(data []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return genericErrorMessage
	}
	for _, key := range []string{"detail", "message"} {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}
	for field, value := range payload {
		switch v := value.(type) {
		case string:
			if v != "" {
				return field + ": " + v
			}
		case []any:
			if len(v) > 0 {
				if s, ok := v[0].(string); ok && s != "" {
					return field + ": " + s
				}
			}
		}
	}
	return genericErrorMessage
}

// decodeList accepts both a bare JSON array and a {"results": [...]} envelope.
// Anything else normalizes to an empty list so callers never branch on shape.
func decodeList[T any](data []byte) []T {
	var plain []T
	if err := json.Unmarshal(data, &plain); err == nil && plain != nil {
		return plain
	}
	var wrapped struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Results != nil {
		return wrapped.Results
	}
	return []T{}
}
