package interp

type Classification int

const (
	Exit Classification = iota
	Normal
	CommandOnly
	Unknown
	ParseError
)

var classNames = [...]string{
	Exit:        "exit",
	Normal:      "normal",
	CommandOnly: "command",
	Unknown:     "unknown",
	ParseError:  "error",
}

func (c Classification) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "invalid"
	}
	return classNames[c]
}

// Result is the outcome of one interpreted line.
type Result struct {
	Class Classification
	Verb  string
	// Message is the one-line status shown to the user.
	Message string
	Err     error
}
