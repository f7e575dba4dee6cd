package cache

import "strconv"

// KeyStudents caches the pupil list of the account.
const KeyStudents = "students"

// KeyHomework caches the collected homework of one pupil.
func KeyHomework(pupilID int64) string {
	return "homework_" + strconv.FormatInt(pupilID, 10)
}

// KeyGrades caches the grades summary of one pupil.
func KeyGrades(pupilID int64) string {
	return "grades_" + strconv.FormatInt(pupilID, 10)
}

// KeySchedule caches one pupil's schedule for one date.
func KeySchedule(pupilID int64, date string) string {
	return "schedule_" + strconv.FormatInt(pupilID, 10) + "_" + date
}

// KeyEvents caches the event invitations of one pupil.
func KeyEvents(pupilID int64) string {
	return "events_" + strconv.FormatInt(pupilID, 10)
}

// KeyAbsences caches the absences of one pupil.
func KeyAbsences(pupilID int64) string {
	return "absences_" + strconv.FormatInt(pupilID, 10)
}
