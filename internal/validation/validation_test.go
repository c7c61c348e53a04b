package validation

import (
	"errors"
	"testing"

	"github.com/justsurfingit/job-tracker/internal/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSummarize() dtos.SummarizeRequest {
	return dtos.SummarizeRequest{
		Company:           "Acme",
		Position:          "Backend Engineer",
		DateApplied:       "2024-05-01",
		LinkToJobPosting:  "https://acme.example/jobs/1",
		ApplicationStatus: "applied",
	}
}

func TestValidate_SummarizeRequest(t *testing.T) {
	require.NoError(t, Validate(validSummarize()))

	tests := []struct {
		name   string
		mutate func(*dtos.SummarizeRequest)
		field  string
	}{
		{"missing link", func(r *dtos.SummarizeRequest) { r.LinkToJobPosting = "" }, "linkToJobPosting"},
		{"link not a url", func(r *dtos.SummarizeRequest) { r.LinkToJobPosting = "not a url" }, "linkToJobPosting"},
		{"blank company", func(r *dtos.SummarizeRequest) { r.Company = "   " }, "company"},
		{"missing position", func(r *dtos.SummarizeRequest) { r.Position = "" }, "position"},
		{"missing status", func(r *dtos.SummarizeRequest) { r.ApplicationStatus = "" }, "applicationStatus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSummarize()
			tt.mutate(&req)

			err := Validate(req)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestValidate_DateExtractionRequest(t *testing.T) {
	assert.NoError(t, Validate(dtos.DateExtractionRequest{ApplicationDetails: "Applied on 2024-03-01"}))

	err := Validate(dtos.DateExtractionRequest{})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "applicationDetails", vErr.Field)
	assert.Equal(t, "is required", vErr.Reason)
}

func TestValidate_ApplicationCreationRequest(t *testing.T) {
	req := dtos.ApplicationCreationRequest{
		Company:          "Acme",
		Position:         "SRE",
		DateApplied:      "2024-05-01",
		Status:           "interviewed",
		LinkToJobPosting: "https://acme.example/jobs/2",
	}
	require.NoError(t, Validate(req))

	req.Status = "ghosted"
	err := Validate(req)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "status", vErr.Field)

	req.Status = ""
	req.DateApplied = "05/01/2024"
	require.True(t, errors.As(Validate(req), &vErr))
	assert.Equal(t, "dateApplied", vErr.Field)
	assert.Contains(t, vErr.Error(), "2006-01-02")
}
