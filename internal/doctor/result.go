package doctor

// Status classifies the outcome of a single check.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Result is the outcome of one doctor check.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
