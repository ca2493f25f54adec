package models

// IssueKind classifies a validation or consistency finding.
type IssueKind string

const (
	IssueMissingPlan      IssueKind = "missing_plan"
	IssueOrphanReference  IssueKind = "orphan_reference"
	IssueDuplicatePlan    IssueKind = "duplicate_plan"
	IssueInvalidData      IssueKind = "invalid_data"
	IssueInconsistentData IssueKind = "inconsistent_data"
)

// Issue is a single validation or consistency finding. Issues are
// transient: they are produced by checks and never persisted.
type Issue struct {
	Kind     IssueKind    `json:"type" yaml:"type"`
	Message  string       `json:"message" yaml:"message"`
	ItemName string       `json:"itemName,omitempty" yaml:"itemName,omitempty"`
	PlanName string       `json:"planName,omitempty" yaml:"planName,omitempty"`
	Category CategoryType `json:"category,omitempty" yaml:"category,omitempty"`
	Fixable  bool         `json:"fixable" yaml:"fixable"`
}

// ValidationReport is the outcome of a plan-data or plan-reference check.
// Warnings do not affect IsValid.
type ValidationReport struct {
	IsValid  bool    `json:"isValid" yaml:"isValid"`
	Errors   []Issue `json:"errors" yaml:"errors"`
	Warnings []Issue `json:"warnings" yaml:"warnings"`
}

// ConsistencySummary aggregates counts over a consistency check.
type ConsistencySummary struct {
	TotalItems       int `json:"totalItems" yaml:"totalItems"`
	TotalPlans       int `json:"totalPlans" yaml:"totalPlans"`
	OrphanReferences int `json:"orphanReferences" yaml:"orphanReferences"`
	DuplicatePlans   int `json:"duplicatePlans" yaml:"duplicatePlans"`
	InvalidData      int `json:"invalidData" yaml:"invalidData"`
}

// ConsistencyReport is the outcome of a directory-versus-registry
// cross-check.
type ConsistencyReport struct {
	IsConsistent bool               `json:"isConsistent" yaml:"isConsistent"`
	Issues       []Issue            `json:"issues" yaml:"issues"`
	Summary      ConsistencySummary `json:"summary" yaml:"summary"`
}

// FixReport is the outcome of a repair run. Unfixable issues are always
// carried in RemainingIssues, never silently dropped.
type FixReport struct {
	Success         bool    `json:"success" yaml:"success"`
	FixedIssues     int     `json:"fixedIssues" yaml:"fixedIssues"`
	RemainingIssues []Issue `json:"remainingIssues" yaml:"remainingIssues"`
}
