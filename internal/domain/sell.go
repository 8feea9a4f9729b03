package domain

// SubmissionForm is the full trade-in form collected across the sell wizard.
// ExpectedPrice is a derived field: it tracks the computed estimate while the
// device details change and is not independently editable at that step.
type SubmissionForm struct {
	Category      string `json:"category"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Condition     string `json:"condition"`
	Age           int    `json:"age"`
	Description   string `json:"description"`
	ExpectedPrice int    `json:"expectedPrice"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address1      string `json:"address1"`
	Address2      string `json:"address2"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
}
