package component

import "canvaskit/internal/geometry"

// kindDefault holds the factory defaults for one kind.
type kindDefault struct {
	size  geometry.Size
	props map[string]any
}

// kindDefaults is the closed table of recognized kinds. Membership in
// this table defines Kind.Valid.
var kindDefaults = map[Kind]kindDefault{
	KindText: {
		size:  geometry.Size{Width: 120, Height: 24},
		props: map[string]any{"content": "Text", "fontSize": 14},
	},
	KindTextarea: {
		size:  geometry.Size{Width: 240, Height: 96},
		props: map[string]any{"content": "", "rows": 4},
	},
	KindImage: {
		size:  geometry.Size{Width: 160, Height: 120},
		props: map[string]any{"src": "", "alt": ""},
	},
	KindButton: {
		size:  geometry.Size{Width: 96, Height: 36},
		props: map[string]any{"variant": "primary"},
	},
	KindInput: {
		size:  geometry.Size{Width: 200, Height: 32},
		props: map[string]any{"type": "text", "placeholder": ""},
	},
	KindCheckbox: {
		size:  geometry.Size{Width: 20, Height: 20},
		props: map[string]any{"checked": false, "label": ""},
	},
	KindRadio: {
		size:  geometry.Size{Width: 20, Height: 20},
		props: map[string]any{"checked": false, "group": "", "label": ""},
	},
	KindSelect: {
		size:  geometry.Size{Width: 200, Height: 32},
		props: map[string]any{"options": []any{}, "placeholder": "Select..."},
	},
	KindContainer: {
		size:  geometry.Size{Width: 320, Height: 240},
		props: map[string]any{"background": "transparent"},
	},
	KindFlex: {
		size:  geometry.Size{Width: 320, Height: 120},
		props: map[string]any{"direction": "row", "gap": 8, "align": "center", "justify": "start"},
	},
	KindGrid: {
		size:  geometry.Size{Width: 320, Height: 240},
		props: map[string]any{"columns": 3, "gap": 8},
	},
	KindForm: {
		size:  geometry.Size{Width: 320, Height: 280},
		props: map[string]any{"action": "", "method": "post"},
	},
	KindDivider: {
		size:  geometry.Size{Width: 240, Height: 2},
		props: map[string]any{"thickness": 1},
	},
	KindSpacer: {
		size:  geometry.Size{Width: 40, Height: 40},
		props: map[string]any{},
	},
	KindLink: {
		size:  geometry.Size{Width: 100, Height: 20},
		props: map[string]any{"href": "", "content": "Link"},
	},
	KindVideo: {
		size:  geometry.Size{Width: 320, Height: 180},
		props: map[string]any{"src": "", "controls": true},
	},
	KindAudio: {
		size:  geometry.Size{Width: 240, Height: 40},
		props: map[string]any{"src": "", "controls": true},
	},
	KindIframe: {
		size:  geometry.Size{Width: 320, Height: 240},
		props: map[string]any{"src": ""},
	},
	KindTable: {
		size:  geometry.Size{Width: 320, Height: 160},
		props: map[string]any{"rows": 3, "columns": 3, "header": true},
	},
	KindList: {
		size:  geometry.Size{Width: 160, Height: 120},
		props: map[string]any{"ordered": false, "items": []any{}},
	},
}

// DefaultSize returns the factory default size for a kind, or the
// zero size for unrecognized kinds.
func DefaultSize(kind Kind) geometry.Size {
	return kindDefaults[kind].size
}

// DefaultProps returns a fresh copy of the default property bag for a
// kind. Unrecognized kinds yield an empty bag.
func DefaultProps(kind Kind) map[string]any {
	def, ok := kindDefaults[kind]
	if !ok {
		return map[string]any{}
	}
	return copyProps(def.props)
}
