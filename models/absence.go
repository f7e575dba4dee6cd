package models

// AbsenceItem is one entry from the absences endpoint.
type AbsenceItem struct {
	ID                  FlexString `json:"id"`
	Date                string     `json:"date"`
	SchoolHour          FlexInt    `json:"school_hour"`
	CourseName          string     `json:"course_name"`
	CourseShortName     string     `json:"course_short_name"`
	AbsenceTypeID       FlexInt    `json:"absence_type_id"`
	AbsenceExcuseTypeID FlexInt    `json:"absence_excuse_type_id"`
	AbsenceComment      string     `json:"absence_comment"`
	CreatedBy           string     `json:"created_by"`
}

// AbsencesResponse is the payload of the absences endpoint.
type AbsencesResponse struct {
	Absences []AbsenceItem `json:"absences"`
}

// Absence is a normalized absence record.
type Absence struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	DateSort  string `json:"date_sort"`
	Hour      int64  `json:"hour"`
	Subject   string `json:"subject"`
	Excused   bool   `json:"excused"`
	Comment   string `json:"comment,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
}

// NewAbsence normalizes one absences entry. Excuse type id 1 means the
// absence was excused; 0, null or anything else counts as unexcused.
func NewAbsence(item AbsenceItem) Absence {
	subject := item.CourseShortName
	if subject == "" {
		subject = item.CourseName
	}
	if subject == "" {
		subject = "Unknown"
	}

	return Absence{
		ID:        item.ID.String(),
		Date:      item.Date,
		DateSort:  SortableDate(item.Date),
		Hour:      item.SchoolHour.Int64(),
		Subject:   subject,
		Excused:   item.AbsenceExcuseTypeID == 1,
		Comment:   item.AbsenceComment,
		CreatedBy: item.CreatedBy,
	}
}
