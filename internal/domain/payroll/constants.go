package payroll

const (
	RegimeNew = "new"
	RegimeOld = "old"
)

const monthsPerYear = 12
