package dtos

type SummarizeRequest struct {
	Company           string `json:"company" validate:"required,notblank"`
	Position          string `json:"position" validate:"required,notblank"`
	DateApplied       string `json:"dateApplied" validate:"required,notblank"`
	LinkToJobPosting  string `json:"linkToJobPosting" validate:"required,url"`
	ApplicationStatus string `json:"applicationStatus" validate:"required,notblank"`
}

type SummaryResult struct {
	Summary string `json:"summary"`
}

type DateExtractionRequest struct {
	ApplicationDetails string `json:"applicationDetails" validate:"required,notblank"`
}

// KeyDates holds the ISO dates found in free text. A nil field was not
// mentioned in the source text.
type KeyDates struct {
	ApplicationDate *string `json:"applicationDate,omitempty"`
	InterviewDate   *string `json:"interviewDate,omitempty"`
	OfferDate       *string `json:"offerDate,omitempty"`
	RejectionDate   *string `json:"rejectionDate,omitempty"`
}
