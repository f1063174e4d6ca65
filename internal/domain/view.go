package domain

type ViewMode string

func (v ViewMode) String() string {
	return string(v)
}

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// ContainerClass is the CSS class the directory container carries in this mode
func (v ViewMode) ContainerClass() string {
	return string(v) + "-view"
}

var ViewModes = []ViewMode{ViewGrid, ViewList}
