package announcement

// TBA is the sentinel value used when the blog explicitly marks the
// ex-dividend date as "to be announced". It is distinct from an absent
// field: the post carried the label but deliberately gave no date.
const TBA = "TBA"

// Announcement represents a single dividend announcement post from the
// CSE dividends blog. All date fields hold the raw DD-Mon-YYYY text as
// scraped; use ParseDate to obtain a time.Time. Any field other than
// AnnouncementDate may be empty if the post omitted it or the layout
// was not recognized.
type Announcement struct {
	CompanyName      string `json:"company_name,omitempty"`
	CompanyCode      string `json:"company_code,omitempty"`
	PostDate         string `json:"post_date,omitempty"`
	AnnouncementDate string `json:"announcement_date"`
	ExDividendDate   string `json:"xd_date,omitempty"` // DD-Mon-YYYY or "TBA"
	FinancialYear    string `json:"financial_year,omitempty"`
	DividendRate     string `json:"dividend_rate,omitempty"`
}
