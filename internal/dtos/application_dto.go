package dtos

// ApplicationCreationRequest is the body of POST /applications.
type ApplicationCreationRequest struct {
	Company          string `json:"company" validate:"required,notblank"`
	Position         string `json:"position" validate:"required,notblank"`
	DateApplied      string `json:"dateApplied" validate:"required,datetime=2006-01-02"`
	Status           string `json:"status" validate:"omitempty,status"` // Defaults to "applied" if empty
	LinkToJobPosting string `json:"linkToJobPosting" validate:"required,url"`

	// Optional Fields
	Notes         string `json:"notes"`
	InterviewDate string `json:"interviewDate" validate:"omitempty,datetime=2006-01-02"`
	OfferDate     string `json:"offerDate" validate:"omitempty,datetime=2006-01-02"`
	RejectionDate string `json:"rejectionDate" validate:"omitempty,datetime=2006-01-02"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,status"`
	// Date of the milestone; today when empty
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
