package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// GradeEntry is a single grade record. Which value field is populated
// depends on the school and the grading system in use: regular grades
// fill grade/grade_raw, junior (icon) grades fill icon plus the
// numerical equivalent.
type GradeEntry struct {
	Grade          FlexString `json:"grade"`
	GradeRaw       FlexString `json:"grade_raw"`
	NumericalValue FlexString `json:"numerical_value"`
	Icon           string     `json:"icon"`
}

// Value extracts the displayable grade token, trying grade, then
// grade_raw, then numerical_value. Returns "" when the entry carries
// no usable value.
func (e GradeEntry) Value() string {
	if e.Grade != "" {
		return e.Grade.String()
	}
	if e.GradeRaw != "" {
		return e.GradeRaw.String()
	}
	return e.NumericalValue.String()
}

// TermGrades is a list of grade entries for one term. The API encodes
// it either as a JSON array or as an object keyed by grade id; the
// object form is decoded in document order so the grades keep their
// server-side chronology.
type TermGrades []GradeEntry

// UnmarshalJSON implements [json.Unmarshaler].
func (t *TermGrades) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}

	if data[0] == '[' {
		var entries []GradeEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return err
		}
		*t = entries
		return nil
	}

	if data[0] != '{' {
		// scalar forms carry no entry detail; treat as a bare grade token
		var v FlexString
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		if v == "" {
			*t = nil
			return nil
		}
		*t = TermGrades{{Grade: v}}
		return nil
	}

	// Walk the object with a decoder instead of unmarshalling into a
	// map: map iteration would shuffle the grades, while the token
	// stream preserves document order.
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}

	var entries []GradeEntry
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return err
		}
		var e GradeEntry
		if err := dec.Decode(&e); err != nil {
			return err
		}
		entries = append(entries, e)
	}
	*t = entries

	return nil
}

// Values returns the non-empty grade tokens in document order.
func (t TermGrades) Values() []string {
	var values []string
	for _, e := range t {
		if v := e.Value(); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// First returns the first non-empty grade token, used for the
// single-valued term-final and annual fields.
func (t TermGrades) First() string {
	for _, e := range t {
		if v := e.Value(); v != "" {
			return v
		}
	}
	return ""
}

// CourseGrades is one course row from the grades summary endpoint.
// Every term field tolerates both the array and the keyed-object
// encoding.
type CourseGrades struct {
	TargetName string     `json:"target_name"`
	CourseName string     `json:"course_name"`
	Term1      TermGrades `json:"term1"`
	Term2      TermGrades `json:"term2"`
	Term1Final TermGrades `json:"term1final"`
	Term2Final TermGrades `json:"term2final"`
	Annual     TermGrades `json:"annual"`
}

// GradesSummaryResponse is the payload of the grades summary endpoint.
// The course list arrives under either "grades" or "courses".
type GradesSummaryResponse struct {
	Grades  []CourseGrades `json:"grades"`
	Courses []CourseGrades `json:"courses"`
}

// CourseList returns whichever course list the response carried.
func (r GradesSummaryResponse) CourseList() []CourseGrades {
	if r.Grades != nil {
		return r.Grades
	}
	return r.Courses
}

// CourseReport is the normalized per-course grade summary.
type CourseReport struct {
	Subject     string   `json:"subject"`
	Term1Grades []string `json:"term1_grades,omitempty"`
	Term2Grades []string `json:"term2_grades,omitempty"`
	Term1Final  string   `json:"term1_final,omitempty"`
	Term2Final  string   `json:"term2_final,omitempty"`
	Annual      string   `json:"annual,omitempty"`
}

// NewCourseReport normalizes one summary row. The subject prefers
// target_name over course_name.
func NewCourseReport(cg CourseGrades) CourseReport {
	subject := cg.TargetName
	if subject == "" {
		subject = cg.CourseName
	}
	if subject == "" {
		subject = "Unknown"
	}

	return CourseReport{
		Subject:     subject,
		Term1Grades: cg.Term1.Values(),
		Term2Grades: cg.Term2.Values(),
		Term1Final:  cg.Term1Final.First(),
		Term2Final:  cg.Term2Final.First(),
		Annual:      cg.Annual.First(),
	}
}

// HasGrades reports whether the course carries anything worth showing.
func (c CourseReport) HasGrades() bool {
	return len(c.Term1Grades) > 0 || len(c.Term2Grades) > 0 ||
		c.Term1Final != "" || c.Term2Final != "" || c.Annual != ""
}

// gradeIcons maps junior-grade icon tokens to their emoji rendering.
var gradeIcons = map[string]string{
	"starO":  "⭐",
	"star":   "⭐",
	"heartO": "❤️",
	"heart":  "❤️",
	"smileO": "😊",
	"smile":  "😊",
	"mehO":   "😐",
	"meh":    "😐",
	"frownO": "😟",
	"frown":  "😟",
}

// GradeIcon maps an icon token to its emoji; other tokens pass through
// unchanged.
func GradeIcon(token string) string {
	if icon, ok := gradeIcons[token]; ok {
		return icon
	}
	return token
}

// GradeAverage computes the arithmetic mean of a grade token list.
// The average only exists when every token parses as a number; a
// single icon or textual grade makes the whole list non-averageable.
func GradeAverage(tokens []string) (float64, bool) {
	if len(tokens) == 0 {
		return 0, false
	}

	var sum float64
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return 0, false
		}
		sum += v
	}

	return sum / float64(len(tokens)), true
}
