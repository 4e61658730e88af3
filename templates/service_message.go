package templates

import (
	"bytes"
	"text/template"

	"ferry-schedule-service/internal/domain/entity"
)

// MessageData carries the values interpolated into service status messages
type MessageData struct {
	FirstDeparture string
	TideStart      string
	TideEnd        string
}

var serviceMessages = map[entity.ServiceStatus]*template.Template{
	entity.ServiceBeforeStart: template.Must(template.New("before_start").Parse(
		"Services haven't started yet. First boat at {{.FirstDeparture}}.")),
	entity.ServiceClosed: template.Must(template.New("closed").Parse(
		"No more boats today. Next service starts at {{.FirstDeparture}} tomorrow.")),
	entity.ServiceTideBreak: template.Must(template.New("tide_break").Parse(
		"Services paused due to high tide (approx. {{.TideStart}} to {{.TideEnd}}). Please wait for the next slot.")),
}

// ServiceMessage renders the human message for an overall service status.
// Running services have no message.
func ServiceMessage(status entity.ServiceStatus, data MessageData) string {
	tmpl, ok := serviceMessages[status]
	if !ok {
		return ""
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return ""
	}
	return buf.String()
}
