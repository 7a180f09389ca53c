package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredSecondsDefaults(t *testing.T) {
	p := New(nil)

	fullTime, err := p.RequiredSeconds(Classification{EmploymentFullTime, ArrangementRemote})
	require.NoError(t, err)
	assert.Equal(t, 28800, fullTime)

	partTime, err := p.RequiredSeconds(Classification{EmploymentPartTime, ArrangementRemote})
	require.NoError(t, err)
	assert.Equal(t, 14400, partTime)
}

func TestHolidayCreditDefaults(t *testing.T) {
	p := New(nil)

	credit, err := p.HolidayCreditSeconds(Classification{EmploymentPartTime, ArrangementRemote})
	require.NoError(t, err)
	assert.Equal(t, 14400, credit)
}

func TestUnknownClassificationFailsLoudly(t *testing.T) {
	p := New(nil)

	_, err := p.RequiredSeconds(Classification{EmploymentContract, ArrangementRemote})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownClassification))

	_, err = p.HolidayCreditSeconds(Classification{EmploymentFullTime, ArrangementOnSite})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownClassification))
}

func TestCustomRuleTable(t *testing.T) {
	rules := DefaultRules()
	rules[Classification{EmploymentContract, ArrangementRemote}] = Rule{RequiredSeconds: 6 * 3600, HolidayCreditSeconds: 0}
	p := New(rules)

	required, err := p.RequiredSeconds(Classification{EmploymentContract, ArrangementRemote})
	require.NoError(t, err)
	assert.Equal(t, 21600, required)
}
