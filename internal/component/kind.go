package component

// Kind identifies the type of a canvas component.
type Kind string

const (
	// KindText is a single-line text element.
	KindText Kind = "text"
	// KindTextarea is a multi-line text element.
	KindTextarea Kind = "textarea"
	// KindImage is an image element.
	KindImage Kind = "image"
	// KindButton is a clickable button.
	KindButton Kind = "button"
	// KindInput is a single-line form input.
	KindInput Kind = "input"
	// KindCheckbox is a checkbox input.
	KindCheckbox Kind = "checkbox"
	// KindRadio is a radio-button input.
	KindRadio Kind = "radio"
	// KindSelect is a dropdown select input.
	KindSelect Kind = "select"
	// KindContainer is a generic block container.
	KindContainer Kind = "container"
	// KindFlex is a flexbox layout container.
	KindFlex Kind = "flex"
	// KindGrid is a grid layout container.
	KindGrid Kind = "grid"
	// KindForm is a form container.
	KindForm Kind = "form"
	// KindDivider is a horizontal rule.
	KindDivider Kind = "divider"
	// KindSpacer is an empty spacing element.
	KindSpacer Kind = "spacer"
	// KindLink is a hyperlink element.
	KindLink Kind = "link"
	// KindVideo is a video element.
	KindVideo Kind = "video"
	// KindAudio is an audio element.
	KindAudio Kind = "audio"
	// KindIframe is an embedded frame.
	KindIframe Kind = "iframe"
	// KindTable is a data table.
	KindTable Kind = "table"
	// KindList is an ordered or unordered list.
	KindList Kind = "list"
)

// Kinds returns every recognized kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindText, KindTextarea, KindImage, KindButton, KindInput,
		KindCheckbox, KindRadio, KindSelect, KindContainer, KindFlex,
		KindGrid, KindForm, KindDivider, KindSpacer, KindLink,
		KindVideo, KindAudio, KindIframe, KindTable, KindList,
	}
}

// Valid returns true if k is a recognized kind.
func (k Kind) Valid() bool {
	_, ok := kindDefaults[k]
	return ok
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// IsContainer returns true for kinds that host child content.
func (k Kind) IsContainer() bool {
	switch k {
	case KindContainer, KindFlex, KindGrid, KindForm:
		return true
	default:
		return false
	}
}
