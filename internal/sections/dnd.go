package sections

// DragState enumerates the phases of one drag interaction.
type DragState int

// Drag interaction states.
const (
	StateIdle DragState = iota
	StateDragging
	StateHovering
)

func (s DragState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateHovering:
		return "hovering"
	default:
		return "unknown"
	}
}

// DragController models drag-and-drop reordering as an explicit state
// machine, independent of any UI toolkit's drag events:
//
//	Idle --DragStart--> Dragging --DragOver--> Hovering --Drop--> Idle
//
// DragEnd resets to Idle from any state, whether or not a drop happened.
// Hover marking is purely visual feedback; the order mutates only on Drop.
type DragController struct {
	model    *Model
	state    DragState
	sourceID string
	targetID string
}

// NewDragController creates a controller bound to a section order model.
func NewDragController(model *Model) *DragController {
	return &DragController{model: model}
}

// State returns the current drag state with its transient section markers.
func (d *DragController) State() (state DragState, sourceID, targetID string) {
	return d.state, d.sourceID, d.targetID
}

// DragStart remembers the dragged section. Starting a drag on an unknown
// section leaves the controller idle.
func (d *DragController) DragStart(sectionID string) {
	if d.model.index(sectionID) < 0 {
		return
	}
	d.state = StateDragging
	d.sourceID = sectionID
	d.targetID = ""
}

// DragOver marks the current drop candidate. No order mutation happens here.
func (d *DragController) DragOver(sectionID string) {
	if d.state == StateIdle {
		return
	}
	if d.model.index(sectionID) < 0 {
		return
	}
	d.state = StateHovering
	d.targetID = sectionID
}

// Drop commits the reorder when a valid target is hovered. Dropping on the
// source section, or with no target, is a silent no-op. The transient markers
// are cleared either way.
func (d *DragController) Drop() error {
	defer d.reset()

	if d.state != StateHovering || d.targetID == d.sourceID {
		return nil
	}
	return d.model.Reorder(d.sourceID, d.targetID)
}

// DragEnd clears the transient drag markers regardless of whether a drop
// occurred. Aborted drags pass through here.
func (d *DragController) DragEnd() {
	d.reset()
}

func (d *DragController) reset() {
	d.state = StateIdle
	d.sourceID = ""
	d.targetID = ""
}
