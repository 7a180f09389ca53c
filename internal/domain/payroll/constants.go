package payroll

const (
	StatusDraft = "draft"
	StatusPaid  = "paid"
)
