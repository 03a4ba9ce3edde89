// internal/ui/recorder.go
package ui

type Notification struct {
	Level   Level
	Message string
}

type OutputCall struct {
	Title   string
	Heading string
	Text    string
}

// Recorder is a Notifier that keeps everything it is told.
type Recorder struct {
	Notifications []Notification
	Statuses      []string
	Outputs       []OutputCall
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(level Level, msg string) {
	r.Notifications = append(r.Notifications, Notification{Level: level, Message: msg})
}

func (r *Recorder) Status(msg string) {
	r.Statuses = append(r.Statuses, msg)
}

func (r *Recorder) Output(title, heading, text string) {
	r.Outputs = append(r.Outputs, OutputCall{Title: title, Heading: heading, Text: text})
}

// Count returns how many notifications of level were recorded.
func (r *Recorder) Count(level Level) int {
	n := 0
	for _, note := range r.Notifications {
		if note.Level == level {
			n++
		}
	}
	return n
}
