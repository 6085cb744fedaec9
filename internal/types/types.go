// Package types defines the canonical domain model shared by the API client,
// the data layer, and the terminal UI. The backend's legacy field duality
// (price/pricePaid, clicks/invoiceBilled, firstName/companyRepresentativeName)
// never leaks past the wire layer in internal/api; everything here holds one
// field per concept.
package types

import "time"

// Role gates navigation, data scope, and permitted actions.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleSales Role = "sales"
)

// Valid reports whether the role is one the client recognizes. Sessions with
// any other role are rejected and their token cleared.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSales
}

// UserStatus is the lifecycle flag on a user record.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// User is a CRM account. Sales users own leads; admins own everything.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	Phone     string     `json:"phone,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// LeadStatus is the pipeline stage of a lead.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

// LeadStatuses lists the pipeline stages in order.
var LeadStatuses = []LeadStatus{LeadNew, LeadContacted, LeadQualified, LeadConverted, LeadLost}

// LeadSource records where a lead came from.
type LeadSource string

const (
	SourceWebsite  LeadSource = "website"
	SourceReferral LeadSource = "referral"
	SourceCall     LeadSource = "call"
	SourceOther    LeadSource = "other"
)

// Lead is a prospective customer tracked through the status pipeline.
// AssignedTo is empty when the lead is unassigned.
type Lead struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	RepName       string     `json:"repName"`
	CompanyName   string     `json:"companyName"`
	PricePaid     float64    `json:"pricePaid"`
	InvoiceBilled float64    `json:"invoiceBilled"`
	Status        LeadStatus `json:"status"`
	Source        LeadSource `json:"source"`
	AssignedTo    string     `json:"assignedTo"`
	Notes         string     `json:"notes"`
	Brand         string     `json:"brand"`
	Product       string     `json:"product"`
	Location      string     `json:"location"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// UserTargets holds the admin-set monthly goals for one sales user together
// with the server-computed achieved figures. Achieved values are always
// server truth; the client never derives them incrementally.
type UserTargets struct {
	UserID          string  `json:"userId"`
	SalesTarget     float64 `json:"salesTarget"`
	InvoiceTarget   float64 `json:"invoiceTarget"`
	SalesAchieved   float64 `json:"salesAchieved"`
	InvoiceAchieved float64 `json:"invoiceAchieved"`
	Period          string  `json:"period"`
}

// Progress is achievement against target, in percent. Values above 100 mean
// over-achievement; nothing here clamps, only progress-bar widths do.
type Progress struct {
	Sales   float64
	Invoice float64
}
