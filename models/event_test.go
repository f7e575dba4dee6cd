package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsResponse_Forms(t *testing.T) {
	for _, raw := range []string{
		`[{"title":"Екскурзия"}]`,
		`{"data":[{"title":"Екскурзия"}]}`,
		`{"invitations":[{"title":"Екскурзия"}]}`,
	} {
		var resp EventsResponse
		require.NoError(t, json.Unmarshal([]byte(raw), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Екскурзия", resp.Items[0].Title)
	}
}

func TestNewEvent_TestTypeRange(t *testing.T) {
	for typ, want := range map[int64]bool{11: false, 12: true, 13: true, 14: true, 15: true, 16: false, 0: false} {
		e := NewEvent(EventItem{Title: "t", Type: FlexInt(typ)})
		assert.Equal(t, want, e.IsTest, "type %d", typ)
	}
}

func TestNewEvent_Fallbacks(t *testing.T) {
	e := NewEvent(EventItem{Name: "Спортен празник", Date: "2026-05-17"})

	assert.Equal(t, "Спортен празник", e.Title)
	assert.Equal(t, "2026-05-17", e.StartDate)

	assert.Equal(t, "Untitled", NewEvent(EventItem{}).Title)
}

func TestScheduleResponse_HoursSorted(t *testing.T) {
	var resp ScheduleResponse
	raw := []byte(`{"scheduleHours":[{"school_hour":3,"course_name":"C"},{"school_hour":1,"course_name":"A"},{"school_hour":2,"course_name":"B"}]}`)
	require.NoError(t, json.Unmarshal(raw, &resp))

	hours := resp.Hours()

	require.Len(t, hours, 3)
	assert.Equal(t, "A", hours[0].CourseName)
	assert.Equal(t, "C", hours[2].CourseName)
}

func TestScheduleResponse_DataFallback(t *testing.T) {
	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal([]byte(`{"data":[{"school_hour":1}]}`), &resp))
	assert.Len(t, resp.Hours(), 1)
}

func TestNewAbsence_ExcuseType(t *testing.T) {
	excused := NewAbsence(AbsenceItem{Date: "10.03.2026", AbsenceExcuseTypeID: 1, CourseShortName: "БЕЛ"})
	assert.True(t, excused.Excused)
	assert.Equal(t, "2026-03-10", excused.DateSort)
	assert.Equal(t, "БЕЛ", excused.Subject)

	assert.False(t, NewAbsence(AbsenceItem{}).Excused)
	assert.False(t, NewAbsence(AbsenceItem{AbsenceExcuseTypeID: 2}).Excused)
}

func TestTasksResponse_Forms(t *testing.T) {
	for _, raw := range []string{
		`[{"title":"Домашно"}]`,
		`{"assigned":[{"title":"Домашно"}]}`,
		`{"data":[{"title":"Домашно"}]}`,
	} {
		var resp TasksResponse
		require.NoError(t, json.Unmarshal([]byte(raw), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Домашно", resp.Items[0].DisplayTitle())
	}
}
