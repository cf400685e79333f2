package api

// Wire types for the Sowa admin API. Field names mirror the JSON the server
// emits; ints for ids, snake_case tags throughout.

type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// CategoryRef is the embedded category on a portfolio item. The reference is
// weak: deleting a category does not cascade into portfolio rows client-side.
type CategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type PortfolioItem struct {
	ID          int          `json:"id"`
	Category    *CategoryRef `json:"category"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	IsFeatured  bool         `json:"is_featured"`
	Order       int          `json:"order"`
	Image       string       `json:"image"`
}

type InquiryListItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	HasReply bool   `json:"has_reply"`
}

type Comment struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
}

type InquiryDetail struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Age          string    `json:"age"`
	InteriorType string    `json:"interior_type"`
	Area         string    `json:"area"`
	MoveInDate   string    `json:"move_in_date"`
	WorkRequest  string    `json:"work_request"`
	Content      string    `json:"content"`
	HasReply     bool      `json:"has_reply"`
	Comments     []Comment `json:"comments"`
}

// SiteSettings is a singleton record; at most one instance exists server-side.
type SiteSettings struct {
	SiteTitle    string `json:"site_title"`
	HeroTitle    string `json:"hero_title"`
	HeroSubtitle string `json:"hero_subtitle"`
	LogoImage    string `json:"logo_image"`
	HeroImage    string `json:"hero_image"`
	UpdatedAt    string `json:"updated_at"`
}

type DashboardStats struct {
	TotalInquiries   int `json:"total_inquiries"`
	PendingInquiries int `json:"pending_inquiries"`
	RepliedInquiries int `json:"replied_inquiries"`
	TotalPortfolio   int `json:"total_portfolio"`
}

// Detail is the body of login/logout responses.
type Detail struct {
	Detail string `json:"detail"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CategoryInput struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// PortfolioInput covers create and update. CategoryID nil clears the
// reference. ImagePath, when set, points at a local file sent as multipart;
// updates may leave it empty to keep the stored image.
type PortfolioInput struct {
	CategoryID  *int
	Title       string
	Description string
	IsFeatured  bool
	Order       int
	ImagePath   string
}

// SettingsInput is a partial update; empty image paths mean "keep".
type SettingsInput struct {
	SiteTitle    string
	HeroTitle    string
	HeroSubtitle string
	LogoPath     string
	HeroPath     string
}
