package component

// Issue describes one validation finding keyed to the field it
// concerns.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Report is the result of validating a component. Warnings never
// affect Valid.
type Report struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// requiredProps lists per-kind property fields whose absence is a
// structural error, not a warning.
var requiredProps = map[Kind][]string{
	KindImage:  {"src"},
	KindLink:   {"href"},
	KindIframe: {"src"},
	KindVideo:  {"src"},
	KindAudio:  {"src"},
}

// recommendedProps lists per-kind property fields whose absence is
// only a warning.
var recommendedProps = map[Kind][]string{
	KindButton: {"label"},
	KindInput:  {"type"},
	KindImage:  {"alt"},
	KindLink:   {"content"},
	KindSelect: {"options"},
}

// Validate checks a component's structure and kind-specific fields.
// Structural problems (empty id, unknown kind, negative dimensions)
// and missing mandatory kind fields are errors; soft omissions are
// warnings.
func Validate(c *Component) Report {
	report := Report{Valid: true}

	fail := func(field, msg string) {
		report.Valid = false
		report.Errors = append(report.Errors, Issue{Field: field, Message: msg})
	}
	warn := func(field, msg string) {
		report.Warnings = append(report.Warnings, Issue{Field: field, Message: msg})
	}

	if c.ID == "" {
		fail("id", "id must not be empty")
	}
	if !c.Kind.Valid() {
		fail("kind", "unrecognized kind "+string(c.Kind))
		return report
	}
	if c.Size.Width < 0 || c.Size.Height < 0 {
		fail("size", "dimensions must not be negative")
	}

	for _, field := range requiredProps[c.Kind] {
		if propEmpty(c.Props, field) {
			fail("props."+field, string(c.Kind)+" requires "+field)
		}
	}
	for _, field := range recommendedProps[c.Kind] {
		if propEmpty(c.Props, field) {
			warn("props."+field, string(c.Kind)+" should declare "+field)
		}
	}

	return report
}

// propEmpty reports whether a property is absent or empty for
// validation purposes. Empty strings and empty slices count as absent;
// other present values do not.
func propEmpty(props map[string]any, field string) bool {
	if props == nil {
		return true
	}
	v, ok := props[field]
	if !ok {
		return true
	}
	switch val := v.(type) {
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case nil:
		return true
	default:
		return false
	}
}
