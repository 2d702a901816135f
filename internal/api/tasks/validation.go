package tasks

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// createParams holds the validated and parsed fields of a CreateRequest.
// Optional dates stay nil when the request omits them.
type createParams struct {
	projectID   string
	description string
	startDate   *time.Time
	endDate     *time.Time
	dueDate     *time.Time
}

func validateCreate(req *CreateRequest) (createParams, error) {
	var p createParams

	p.projectID = strings.TrimSpace(req.ProjectID)
	if p.projectID == "" {
		return p, errors.New("projectId is required")
	}
	p.description = strings.TrimSpace(req.Description)
	if p.description == "" {
		return p, errors.New("description is required")
	}

	var err error
	if p.startDate, err = parseOptionalDate(req.StartDate); err != nil {
		return p, fmt.Errorf("invalid startDate %q", req.StartDate)
	}
	if p.endDate, err = parseOptionalDate(req.EndDate); err != nil {
		return p, fmt.Errorf("invalid endDate %q", req.EndDate)
	}
	if p.dueDate, err = parseOptionalDate(req.DueDate); err != nil {
		return p, fmt.Errorf("invalid dueDate %q", req.DueDate)
	}

	return p, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
