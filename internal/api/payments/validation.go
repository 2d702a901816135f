package payments

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// createParams holds the validated and parsed fields of a CreateRequest.
type createParams struct {
	projectID string
	amount    float64
	date      *time.Time
}

func validateCreate(req *CreateRequest) (createParams, error) {
	var p createParams

	p.projectID = strings.TrimSpace(req.ProjectID)
	if p.projectID == "" {
		return p, errors.New("projectId is required")
	}
	if req.Amount == nil {
		return p, errors.New("amount is required")
	}
	p.amount = *req.Amount

	if req.Date != "" {
		t, err := parseDate(req.Date)
		if err != nil {
			return p, fmt.Errorf("invalid date %q", req.Date)
		}
		p.date = &t
	}

	return p, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
