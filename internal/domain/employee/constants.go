package employee

const (
	SalaryTypeHourly      = "hourly"
	SalaryTypeMonthly     = "monthly"
	SalaryTypeProjectBase = "project_base"

	StatusActive   = "active"
	StatusInactive = "inactive"
)
