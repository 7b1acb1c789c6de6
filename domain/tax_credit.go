package domain

// FilingStatus is the household/tax-unit category that selects income
// thresholds and phase-out bands.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingHeadOfHousehold FilingStatus = "headOfHousehold"
	FilingMarriedJoint    FilingStatus = "marriedJoint"
	FilingMarriedSeparate FilingStatus = "marriedSeparate"
)

// IsValid reports whether the filing status is one of the four known
// categories.
func (f FilingStatus) IsValid() bool {
	switch f {
	case FilingSingle, FilingHeadOfHousehold, FilingMarriedJoint, FilingMarriedSeparate:
		return true
	}
	return false
}

// Residency describes the filer's Colorado residency for the tax year.
type Residency string

const (
	ResidencyFullYear Residency = "full-year"
	ResidencyPartYear Residency = "part-year"
	ResidencyNo       Residency = "no"
)

func (r Residency) IsValid() bool {
	switch r {
	case ResidencyFullYear, ResidencyPartYear, ResidencyNo:
		return true
	}
	return false
}

// TriState is a yes/no answer that the user may not be sure about.
type TriState string

const (
	AnswerYes     TriState = "yes"
	AnswerNo      TriState = "no"
	AnswerNotSure TriState = "not-sure"
)

func (t TriState) IsValid() bool {
	switch t {
	case AnswerYes, AnswerNo, AnswerNotSure:
		return true
	}
	return false
}

// Relationship categorizes how a child is related to the filer.
type Relationship string

const (
	RelationshipBiological Relationship = "biological"
	RelationshipStep       Relationship = "step"
	RelationshipFoster     Relationship = "foster"
	RelationshipAdopted    Relationship = "adopted"
	RelationshipOther      Relationship = "other"
)

func (r Relationship) IsValid() bool {
	switch r {
	case RelationshipBiological, RelationshipStep, RelationshipFoster,
		RelationshipAdopted, RelationshipOther:
		return true
	}
	return false
}

// PayFrequency is how often the filer gets paid, used to annualize a
// per-period pay amount.
type PayFrequency string

const (
	PayWeekly      PayFrequency = "weekly"
	PayBiweekly    PayFrequency = "biweekly"
	PaySemiMonthly PayFrequency = "semi-monthly"
	PayMonthly     PayFrequency = "monthly"
	PayOther       PayFrequency = "other"
)

// CareWorkerType categorizes the kind of care work the filer does.
// CareWorkerNone (or an empty value) means the filer does not do care
// work that counts toward the credit.
type CareWorkerType string

const (
	CareWorkerNone         CareWorkerType = "none"
	CareWorkerChildCare    CareWorkerType = "childcare"
	CareWorkerHomeHealth   CareWorkerType = "homeHealth"
	CareWorkerPersonalCare CareWorkerType = "personalCare"
)

// ChildInfo holds the per-child answers collected by the wizard. A child
// has no identity beyond its position in the input list.
type ChildInfo struct {
	Age          int          `json:"age"`
	LivesWithYou TriState     `json:"livesWithYou"`
	Relationship Relationship `json:"relationship"`
	HasValidID   TriState     `json:"hasValidID"`
}

// TaxCreditInput is everything the rules engine needs to estimate the
// six credits. HasChildCareExpenses/ChildCareExpenses are collected by
// the wizard but not consulted by any calculator yet; they are kept as
// reserved fields.
type TaxCreditInput struct {
	FilingStatus         FilingStatus   `json:"filingStatus"`
	ColoradoResidency    Residency      `json:"coloradoResidency"`
	HasEarnedIncome      bool           `json:"hasEarnedIncome"`
	AnnualIncome         float64        `json:"annualIncome"`
	Children             []ChildInfo    `json:"children"`
	HasChildCareExpenses bool           `json:"hasChildCareExpenses"`
	ChildCareExpenses    float64        `json:"childCareExpenses"`
	IsCareWorker         bool           `json:"isCareWorker"`
	CareWorkerType       CareWorkerType `json:"careWorkerType,omitempty"`
	CareWorkerHours      float64        `json:"careWorkerHours,omitempty"`
}
