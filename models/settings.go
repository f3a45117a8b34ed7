package models

// ThemeType is one of the UI colour themes.
type ThemeType string

// AppSettings is the single-object "settings" dataset.
type AppSettings struct {
	Theme           ThemeType `json:"theme"`
	DarkMode        bool      `json:"darkMode"`
	CompanyLogo     string    `json:"companyLogo,omitempty"`
	InvoicePrefix   string    `json:"invoicePrefix"`
	PurchasePrefix  string    `json:"purchasePrefix"`
	Currency        string    `json:"currency"`
	FiscalYearStart string    `json:"fiscalYearStart"`
}

// DefaultSettings is what a fresh install starts with.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:           "light",
		InvoicePrefix:   "INV-",
		PurchasePrefix:  "PUR-",
		Currency:        "INR",
		FiscalYearStart: "04-01",
	}
}
