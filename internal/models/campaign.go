package models

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCampaignStatus is assigned when a campaign is created without a status.
const DefaultCampaignStatus = "Draft"

const (
	campaignNameMinLen        = 3
	campaignNameMaxLen        = 100
	campaignDescriptionMaxLen = 500
)

// MaxCampaignBudget is the inclusive upper bound for a campaign budget.
var MaxCampaignBudget = decimal.NewFromInt(1_000_000)

func init() {
	// Budgets are written as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// CampaignDB represents a campaign row in the database
type CampaignDB struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description" db:"description"`
	StartDate   time.Time       `json:"start_date" db:"start_date"`
	EndDate     time.Time       `json:"end_date" db:"end_date"`
	Budget      decimal.Decimal `json:"budget" db:"budget"`
	Status      *string         `json:"status" db:"status"`
	CreatedBy   uuid.UUID       `json:"created_by" db:"created_by"` // Owning user, fixed at creation
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
	IsDeleted   bool            `json:"is_deleted" db:"is_deleted"` // Stored only; reads do not filter on it
}

// CampaignCreateRequest represents the JSON body for creating a campaign
// swagger:model CampaignCreateRequest
type CampaignCreateRequest struct {
	// Campaign name, 3 to 100 characters
	// required: true
	// example: Test Campaign
	Name *string `json:"name"`

	// Short description, at most 500 characters
	// example: A test campaign
	Description *string `json:"description"`

	// Start of the campaign
	// required: true
	// example: 2025-10-26T00:00:00
	StartDate *DateTime `json:"start_date"`

	// End of the campaign, strictly after start_date
	// required: true
	// example: 2025-12-26T00:00:00
	EndDate *DateTime `json:"end_date"`

	// Budget, greater than 0 and at most 1,000,000
	// required: true
	// example: 1000.0
	Budget *decimal.Decimal `json:"budget"`

	// Status, Draft when omitted
	// example: Draft
	Status *string `json:"status"`

	// Ignored; the authenticated caller becomes the owner
	CreatedBy *uuid.UUID `json:"created_by"`
}

// Validate checks field constraints and the date ordering.
func (r *CampaignCreateRequest) Validate() error {
	v := &ValidationError{}

	if r.Name == nil {
		v.add("name", "field required")
	} else {
		validateName(v, *r.Name)
	}
	if r.Description != nil {
		validateDescription(v, *r.Description)
	}
	if r.StartDate == nil {
		v.add("start_date", "field required")
	}
	if r.EndDate == nil {
		v.add("end_date", "field required")
	}
	if r.StartDate != nil && r.EndDate != nil {
		validateDateRange(v, r.StartDate.Time, r.EndDate.Time)
	}
	if r.Budget == nil {
		v.add("budget", "field required")
	} else {
		validateBudget(v, *r.Budget)
	}

	return v.err()
}

// ToCampaignDB builds the row to insert for the given owner.
// The request must have passed Validate.
func (r *CampaignCreateRequest) ToCampaignDB(ownerID uuid.UUID) *CampaignDB {
	status := DefaultCampaignStatus
	if r.Status != nil {
		status = *r.Status
	}
	return &CampaignDB{
		Name:        *r.Name,
		Description: r.Description,
		StartDate:   r.StartDate.UTC(),
		EndDate:     r.EndDate.UTC(),
		Budget:      *r.Budget,
		Status:      &status,
		CreatedBy:   ownerID,
	}
}

// CampaignUpdateRequest represents the JSON body for a partial campaign update.
// Only supplied fields are applied.
// swagger:model CampaignUpdateRequest
type CampaignUpdateRequest struct {
	Name        Optional[string]          `json:"name,omitzero" swaggertype:"string"`
	Description Optional[string]          `json:"description,omitzero" swaggertype:"string"`
	StartDate   Optional[DateTime]        `json:"start_date,omitzero" swaggertype:"string"`
	EndDate     Optional[DateTime]        `json:"end_date,omitzero" swaggertype:"string"`
	Budget      Optional[decimal.Decimal] `json:"budget,omitzero" swaggertype:"number"`
	Status      Optional[string]          `json:"status,omitzero" swaggertype:"string"`
	IsDeleted   Optional[bool]            `json:"is_deleted,omitzero" swaggertype:"boolean"`
}

// Validate checks supplied fields. Explicit null is only allowed for nullable columns,
// and the date ordering is only checked when both dates are supplied.
func (r *CampaignUpdateRequest) Validate() error {
	v := &ValidationError{}

	if r.Name.Null {
		v.add("name", "must not be null")
	} else if r.Name.Set {
		validateName(v, r.Name.Value)
	}
	if r.Description.Present() {
		validateDescription(v, r.Description.Value)
	}
	if r.StartDate.Null {
		v.add("start_date", "must not be null")
	}
	if r.EndDate.Null {
		v.add("end_date", "must not be null")
	}
	if r.StartDate.Present() && r.EndDate.Present() {
		validateDateRange(v, r.StartDate.Value.Time, r.EndDate.Value.Time)
	}
	if r.Budget.Null {
		v.add("budget", "must not be null")
	} else if r.Budget.Set {
		validateBudget(v, r.Budget.Value)
	}
	if r.IsDeleted.Null {
		v.add("is_deleted", "must not be null")
	}

	return v.err()
}

// Changes maps column names to new values for every supplied field.
// A nil value clears a nullable column.
func (r *CampaignUpdateRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Name.Set {
		changes["name"] = r.Name.Value
	}
	if r.Description.Set {
		changes["description"] = nullable(r.Description)
	}
	if r.StartDate.Set {
		changes["start_date"] = r.StartDate.Value.UTC()
	}
	if r.EndDate.Set {
		changes["end_date"] = r.EndDate.Value.UTC()
	}
	if r.Budget.Set {
		changes["budget"] = r.Budget.Value
	}
	if r.Status.Set {
		changes["status"] = nullable(r.Status)
	}
	if r.IsDeleted.Set {
		changes["is_deleted"] = r.IsDeleted.Value
	}
	return changes
}

func nullable(o Optional[string]) any {
	if o.Null {
		return nil
	}
	return o.Value
}

// CampaignResponse is the public representation of a campaign
// swagger:model CampaignResponse
type CampaignResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	StartDate   DateTime        `json:"start_date" swaggertype:"string" example:"2025-10-26T00:00:00"`
	EndDate     DateTime        `json:"end_date" swaggertype:"string" example:"2025-12-26T00:00:00"`
	Budget      decimal.Decimal `json:"budget" swaggertype:"number" example:"1000"`
	Status      *string         `json:"status"`
	CreatedBy   uuid.UUID       `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	IsDeleted   bool            `json:"is_deleted"`
}

// NewCampaignResponse shapes a stored campaign for output.
func NewCampaignResponse(c *CampaignDB) CampaignResponse {
	return CampaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   NewDateTime(c.StartDate),
		EndDate:     NewDateTime(c.EndDate),
		Budget:      c.Budget,
		Status:      c.Status,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		IsDeleted:   c.IsDeleted,
	}
}

// NewCampaignResponses shapes a page of stored campaigns.
func NewCampaignResponses(cs []*CampaignDB) []CampaignResponse {
	out := make([]CampaignResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewCampaignResponse(c))
	}
	return out
}

// CampaignCreateResponse wraps a created campaign
// swagger:model CampaignCreateResponse
type CampaignCreateResponse struct {
	Campaign CampaignResponse `json:"campaign"`
}

// CampaignUpdateResponse wraps an updated campaign
// swagger:model CampaignUpdateResponse
type CampaignUpdateResponse struct {
	// example: Campaign updated successfully
	Message  string           `json:"message"`
	Campaign CampaignResponse `json:"campaign"`
}

// MessageResponse carries a plain success message
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents any error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Campaign not found
	Error string `json:"error"`

	// Per-field problems, present on validation failures
	Details []FieldError `json:"details,omitempty"`
}

func validateName(v *ValidationError, name string) {
	n := utf8.RuneCountInString(name)
	if n < campaignNameMinLen || n > campaignNameMaxLen {
		v.add("name", "must be between 3 and 100 characters")
	}
}

func validateDescription(v *ValidationError, description string) {
	if utf8.RuneCountInString(description) > campaignDescriptionMaxLen {
		v.add("description", "must be at most 500 characters")
	}
}

func validateDateRange(v *ValidationError, start, end time.Time) {
	if !end.After(start) {
		v.add("end_date", "End date must be after start date.")
	}
}

func validateBudget(v *ValidationError, budget decimal.Decimal) {
	if !budget.IsPositive() || budget.GreaterThan(MaxCampaignBudget) {
		v.add("budget", "must be greater than 0 and at most 1,000,000")
	}
}
