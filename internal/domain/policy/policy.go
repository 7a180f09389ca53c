// Package policy maps an employee classification to the presence expected in
// one working day and to the synthetic credit granted on a paid holiday.
package policy

import (
	"errors"
	"fmt"
)

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
	EmploymentContract EmploymentType = "contract"
)

type WorkArrangement string

const (
	ArrangementRemote WorkArrangement = "remote"
	ArrangementOnSite WorkArrangement = "on_site"
)

type Classification struct {
	EmploymentType  EmploymentType
	WorkArrangement WorkArrangement
}

func (c Classification) String() string {
	return string(c.EmploymentType) + "+" + string(c.WorkArrangement)
}

// ErrUnknownClassification is returned for any pair without a configured rule.
// Defaulting to zero would silently zero out pay, so lookups fail loudly.
var ErrUnknownClassification = errors.New("unknown employee classification")

type Rule struct {
	RequiredSeconds      int
	HolidayCreditSeconds int
}

type Policy struct {
	rules map[Classification]Rule
}

// DefaultRules covers the remote arrangements the tracker accepts. On-site
// pairs are deliberately absent; on-site presence is handled by the attendance
// feature, not this engine.
func DefaultRules() map[Classification]Rule {
	return map[Classification]Rule{
		{EmploymentFullTime, ArrangementRemote}: {RequiredSeconds: 8 * 3600, HolidayCreditSeconds: 8 * 3600},
		{EmploymentPartTime, ArrangementRemote}: {RequiredSeconds: 4 * 3600, HolidayCreditSeconds: 4 * 3600},
	}
}

func New(rules map[Classification]Rule) *Policy {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Policy{rules: rules}
}

func (p *Policy) RequiredSeconds(c Classification) (int, error) {
	rule, ok := p.rules[c]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownClassification, c)
	}
	return rule.RequiredSeconds, nil
}

func (p *Policy) HolidayCreditSeconds(c Classification) (int, error) {
	rule, ok := p.rules[c]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownClassification, c)
	}
	return rule.HolidayCreditSeconds, nil
}
