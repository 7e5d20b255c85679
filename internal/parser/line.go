package parser

// Kind classifies a logical line of ini-style input
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindSection
	KindAssignment
)

// String returns a human-readable name for the line kind
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	case KindSection:
		return "section"
	case KindAssignment:
		return "assignment"
	default:
		return "unknown"
	}
}

// Op is an assignment operator
type Op string

const (
	OpSet      Op = "="  // assign, overwriting any previous value
	OpReplace  Op = "!=" // explicit overwrite (same effect as OpSet)
	OpFallback Op = "?=" // assign only if the key is unset
	OpAppend   Op = "+=" // append to the key's list, promoting a scalar
	OpUnion    Op = "^=" // append only if the value is not already present
)

// Line is one logical line of input after comment stripping and
// backslash continuation joining. Number is the 1-based physical line
// number of the first physical line the logical line spans.
type Line struct {
	Number  int
	Raw     string
	Kind    Kind
	Section string // section name, for KindSection
	Key     string // trimmed key, for KindAssignment
	Op      Op     // operator, for KindAssignment
	Value   string // trimmed, unquoted value, for KindAssignment
}
