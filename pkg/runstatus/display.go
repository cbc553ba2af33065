package runstatus

// ColorToken is a named color of the console's design system.
type ColorToken struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PatternFly chart color tokens used to render run statuses.
var (
	ColorSuccess   = ColorToken{Name: "chart_color_green_400", Value: "#4cb140"}
	ColorFailure   = ColorToken{Name: "global_danger_color_100", Value: "#c9190b"}
	ColorRunning   = ColorToken{Name: "chart_color_blue_300", Value: "#0066cc"}
	ColorPending   = ColorToken{Name: "chart_color_blue_100", Value: "#8bc1f7"}
	ColorSkipped   = ColorToken{Name: "chart_color_black_400", Value: "#8a8d90"}
	ColorCancelled = ColorToken{Name: "chart_color_black_500", Value: "#4f5255"}
)

// Display is the presentation of a run status.
type Display struct {
	Message string     `json:"message"`
	Color   ColorToken `json:"color"`
}

var defaultDisplay = Display{Message: "PipelineRun not started yet", Color: ColorPending}

// displays is never modified after package initialization.
var displays = map[RunStatus]Display{
	StatusSucceeded:          {Message: "Succeeded", Color: ColorSuccess},
	StatusFailed:             {Message: "Failed", Color: ColorFailure},
	StatusFailedToStart:      {Message: "PipelineRun failed to start", Color: ColorFailure},
	StatusRunning:            {Message: "Running", Color: ColorRunning},
	StatusInProgress:         {Message: "Running", Color: ColorRunning},
	StatusSkipped:            {Message: "Skipped", Color: ColorSkipped},
	StatusCancelled:          {Message: "Cancelled", Color: ColorCancelled},
	StatusIdle:               {Message: "Pending", Color: ColorPending},
	StatusPending:            {Message: "Pending", Color: ColorPending},
	StatusPipelineNotStarted: defaultDisplay,
}

// DisplayFor returns the presentation of the given run status.
// Unknown statuses, including StatusUndefined, are presented as
// "not started yet".
func DisplayFor(s RunStatus) Display {
	if d, ok := displays[s]; ok {
		return d
	}
	return defaultDisplay
}

// DisplayEntry is a run status together with its presentation.
type DisplayEntry struct {
	Status RunStatus `json:"status"`
	Display
}

// DisplayTable returns the presentation of all defined run statuses in the
// order of Statuses.
func DisplayTable() []DisplayEntry {
	result := make([]DisplayEntry, 0, len(allStatuses))
	for _, s := range allStatuses {
		result = append(result, DisplayEntry{Status: s, Display: DisplayFor(s)})
	}
	return result
}
