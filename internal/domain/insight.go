package domain

// InsightType categorizes a generated insight for icon/color selection.
type InsightType string

const (
	InsightTypeAlert       InsightType = "alert"
	InsightTypeOpportunity InsightType = "opportunity"
	InsightTypePattern     InsightType = "pattern"
)

// InsightImportance drives the priority badge on the insight card.
type InsightImportance string

const (
	ImportanceHigh   InsightImportance = "high"
	ImportanceMedium InsightImportance = "medium"
	ImportanceLow    InsightImportance = "low"
)

// Insight is one textual observation derived from the current summary.
type Insight struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        InsightType       `json:"type"`
	Importance  InsightImportance `json:"importance"`
}
