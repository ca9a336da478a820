package domain

// Status is the binary pass/fail classification of one example run
type Status int

const (
	Passed Status = iota
	Failed
)

func (s Status) String() string {
	if s == Passed {
		return "passed"
	}
	return "failed"
}

// Verdict is the classification of a RunResult plus a short diagnostic
type Verdict struct {
	Status  Status
	Message string
}

// Pass builds a passing verdict
func Pass(message string) Verdict {
	return Verdict{Status: Passed, Message: message}
}

// Fail builds a failing verdict
func Fail(message string) Verdict {
	return Verdict{Status: Failed, Message: message}
}

// Passed reports whether the verdict is a pass
func (v Verdict) Passed() bool {
	return v.Status == Passed
}
