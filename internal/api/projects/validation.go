package projects

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomgiova97/freelance-dashboard/internal/models"
)

// createParams holds the validated and parsed fields of a CreateRequest.
type createParams struct {
	title       string
	companyName string
	description string
	rate        models.CompensationRate
	startDate   time.Time
	endDate     time.Time
}

func validateCreate(req *CreateRequest) (createParams, error) {
	var p createParams

	p.title = strings.TrimSpace(req.Title)
	if p.title == "" {
		return p, errors.New("title is required")
	}
	p.companyName = strings.TrimSpace(req.CompanyName)
	if p.companyName == "" {
		return p, errors.New("companyName is required")
	}
	p.description = strings.TrimSpace(req.Description)

	p.rate = models.CompensationRate(req.CompensationRate)
	if !p.rate.Valid() {
		return p, errors.New("compensationRate must be one of daily, hourly, one-time, monthly, biweekly")
	}

	var err error
	p.startDate, err = parseDate(req.StartDate)
	if err != nil {
		return p, fmt.Errorf("invalid startDate %q", req.StartDate)
	}
	p.endDate, err = parseDate(req.EndDate)
	if err != nil {
		return p, fmt.Errorf("invalid endDate %q", req.EndDate)
	}

	return p, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("missing date")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
