package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a disclosure pipeline run record
type Run struct {
	ID             uuid.UUID  `json:"id"`
	TechnicalField string     `json:"technical_field"`
	Title          string     `json:"title"`
	Status         string     `json:"status"`
	Score          *float64   `json:"score,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// Run status values
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// ArtifactStep constants for known artifact types
const (
	StepSpecification    = "specification"
	StepSpecSummary      = "specification_summary"
	StepCollectedInfo    = "collected_information"
	StepCollectionReport = "collection_report"
	StepDraft            = "draft"
	StepReview           = "review"
	StepReviewReport     = "review_report"
	StepFinalDocument    = "final_document"
	StepSaveReport       = "save_report"
)

// Artifact category values
const (
	CategoryJSON     = "json"
	CategoryMarkdown = "markdown"
)
