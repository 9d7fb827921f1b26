package studio

import "strings"

// ClientListResponse mirrors /api/clients.
type ClientListResponse struct {
	Items []ClientRecord `json:"items" yaml:"items"`
}

// ClientRecord describes one new client as reported by the analytics
// backend. Every field is optional upstream; a zero value means absent and
// consumers substitute their own display default.
type ClientRecord struct {
	MemberID    string `json:"memberId" yaml:"memberId"`
	FirstName   string `json:"firstName" yaml:"firstName"`
	LastName    string `json:"lastName" yaml:"lastName"`
	Email       string `json:"email" yaml:"email"`
	PhoneNumber string `json:"phoneNumber" yaml:"phoneNumber"`

	HomeLocation       string `json:"homeLocation" yaml:"homeLocation"`
	FirstVisitDate     string `json:"firstVisitDate" yaml:"firstVisitDate"`
	FirstVisitLocation string `json:"firstVisitLocation" yaml:"firstVisitLocation"`
	FirstVisitType     string `json:"firstVisitType" yaml:"firstVisitType"`

	LTV                        float64 `json:"ltv" yaml:"ltv"`
	VisitsPostTrial            int     `json:"visitsPostTrial" yaml:"visitsPostTrial"`
	ConversionSpan             int     `json:"conversionSpan" yaml:"conversionSpan"`
	PurchaseCountPostTrial     int     `json:"purchaseCountPostTrial" yaml:"purchaseCountPostTrial"`
	MembershipsBoughtPostTrial int     `json:"membershipsBoughtPostTrial" yaml:"membershipsBoughtPostTrial"`

	// ConversionStatus and RetentionStatus are free text upstream. Only a
	// handful of literals carry meaning; see the ui badge parsers.
	ConversionStatus string `json:"conversionStatus" yaml:"conversionStatus"`
	RetentionStatus  string `json:"retentionStatus" yaml:"retentionStatus"`
	IsNew            string `json:"isNew" yaml:"isNew"`
	TrainerName      string `json:"trainerName" yaml:"trainerName"`

	FirstPurchase  string `json:"firstPurchase" yaml:"firstPurchase"`
	MembershipUsed string `json:"membershipUsed" yaml:"membershipUsed"`
	PaymentMethod  string `json:"paymentMethod" yaml:"paymentMethod"`
	ClassNo        int    `json:"classNo" yaml:"classNo"`
	Period         string `json:"period" yaml:"period"`
}

// FullName joins the name parts, skipping blanks.
func (c ClientRecord) FullName() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{c.FirstName, c.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Key returns a stable identifier for the record, preferring the member ID.
func (c ClientRecord) Key() string {
	if id := strings.TrimSpace(c.MemberID); id != "" {
		return id
	}
	return strings.ToLower(c.FullName() + "|" + strings.TrimSpace(c.Email))
}
