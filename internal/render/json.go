package render

import (
	"encoding/json"
	"io"

	"github.com/x1024/shkolo-cli/models"
)

// envelope is the document every report emits in JSON mode. The cache
// fields flatten into the top level next to success and data.
type envelope struct {
	Success bool `json:"success"`
	models.CacheInfo
	Data any `json:"data"`
}

// apiError is the document emitted when a JSON-mode command fails.
type apiError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// JSON renders reports as a success/cached/cached_at/data envelope,
// one document per command.
type JSON struct {
	w io.Writer
}

// NewJSON returns a JSON renderer writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

func (j *JSON) write(v any) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Report emits data wrapped in the success envelope.
func (j *JSON) Report(data any, info models.CacheInfo) error {
	return j.write(envelope{Success: true, CacheInfo: info, Data: data})
}

// Error emits the failure envelope for err.
func (j *JSON) Error(err error) error {
	return j.write(apiError{Error: err.Error()})
}

// Homework emits the per-pupil homework sections, or the account's own
// fallback data for student accounts.
func (j *JSON) Homework(r *models.HomeworkReport) error {
	if r.StudentAccount {
		return j.Report(r.Fallback, r.Cache)
	}
	return j.Report(r.Sections, r.Cache)
}

// Grades emits the per-pupil grade sections.
func (j *JSON) Grades(r *models.GradesReport) error {
	return j.Report(r.Sections, r.Cache)
}

// Schedule emits the per-pupil schedule sections, or the account's own
// lessons for student accounts.
func (j *JSON) Schedule(r *models.ScheduleReport) error {
	if r.StudentAccount {
		return j.Report(r.MySchedule, r.Cache)
	}
	return j.Report(r.Sections, r.Cache)
}

// Absences emits the per-pupil absence sections.
func (j *JSON) Absences(r *models.AbsencesReport) error {
	return j.Report(r.Sections, r.Cache)
}

// Summary emits the per-pupil day summaries.
func (j *JSON) Summary(r *models.SummaryReport) error {
	return j.Report(r.Sections, r.Cache)
}

// Notifications emits one page of the notification feed.
func (j *JSON) Notifications(items []models.Notification) error {
	return j.Report(items, models.CacheInfo{})
}

// Events emits the school-wide events and the per-pupil invitations.
func (j *JSON) Events(r *models.EventsReport) error {
	data := map[string]any{
		"events":      r.Events,
		"invitations": r.Sections,
	}
	return j.Report(data, r.Cache)
}
