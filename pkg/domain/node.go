package domain

type NodePropertyType string

const (
	NodePropertyType_String       NodePropertyType = "string"
	NodePropertyType_Text         NodePropertyType = "text"
	NodePropertyType_TagInput     NodePropertyType = "tag_input"
	NodePropertyType_Integer      NodePropertyType = "integer"
	NodePropertyType_Boolean      NodePropertyType = "boolean"
	NodePropertyType_Date         NodePropertyType = "date"
	NodePropertyType_CodeEditor   NodePropertyType = "code_editor"
	NodePropertyType_Endpoint     NodePropertyType = "endpoint"
	NodePropertyType_ListTagInput NodePropertyType = "list_tag_input"
)

// NodeProperty describes one input field of an action, trigger or credential
// form. Conditional visibility (DependsOn/ShowIf/HideIf) is declarative data
// consumed by the platform's field renderer, never branching code in the
// connector itself.
type NodeProperty struct {
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Required    bool             `json:"required"`
	Hidden      bool             `json:"hidden"`
	Type        NodePropertyType `json:"type"`
	IsSecret    bool             `json:"is_secret,omitempty"`

	// Dynamic behavior
	DependsOn *DependsOn `json:"depends_on,omitempty"`
	HideIf    *HideIf    `json:"hide_if,omitempty"`
	ShowIf    *ShowIf    `json:"show_if,omitempty"`

	// UI display
	Placeholder string `json:"placeholder,omitempty"`
	Help        string `json:"help,omitempty"`
	Default     any    `json:"default,omitempty"`

	Options []NodePropertyOption `json:"options,omitempty"`

	// Dynamic data loading
	Peekable     bool                    `json:"peekable"`
	PeekableType IntegrationPeekableType `json:"peekable_type,omitempty"`
}

type NodePropertyOption struct {
	Label       string `json:"label"`
	Value       any    `json:"value"`
	Description string `json:"description"`
}

type DependsOn struct {
	PropertyKey string `json:"property_key"`
	Value       any    `json:"value"`
}

type HideIf struct {
	PropertyKey string `json:"property_key"`
	Values      []any  `json:"values"`
}

type ShowIf struct {
	PropertyKey string `json:"property_key"`
	Values      []any  `json:"values"`
}
