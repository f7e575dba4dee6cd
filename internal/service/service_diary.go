package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/x1024/shkolo-cli/internal/adapter"
	"github.com/x1024/shkolo-cli/internal/cache"
	"github.com/x1024/shkolo-cli/internal/config"
	"github.com/x1024/shkolo-cli/internal/logger"
	"github.com/x1024/shkolo-cli/internal/validators"
	"github.com/x1024/shkolo-cli/models"
)

type diaryService struct {
	api     adapter.ShkoloAPI
	fetcher *cachedFetcher
	logger  *logger.Logger
}

// NewDiaryService returns a DiaryService that keeps report data in
// repo. Pass a nil repo to fetch everything live.
func NewDiaryService(api adapter.ShkoloAPI, repo cache.Repository, cfg *config.Config, logger *logger.Logger) DiaryService {
	return &diaryService{
		api:     api,
		fetcher: newFetcher(repo, cfg),
		logger:  logger,
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// terminal reports whether a best-effort fetch error has to abort the
// whole operation anyway: an expired session always does, as does a
// transport failure, which would just repeat on every later call.
func terminal(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrRequestFailed)
}

// selectStudents filters pupils by a selector: a 1-based index or a
// case-insensitive name fragment. An empty or unmatched selector keeps
// everyone.
func selectStudents(students []models.Pupil, selector string) []models.Pupil {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return students
	}

	if idx, err := strconv.Atoi(selector); err == nil && idx >= 1 && idx <= len(students) {
		return students[idx-1 : idx]
	}

	fragment := strings.ToLower(selector)
	var matched []models.Pupil
	for _, student := range students {
		if strings.Contains(strings.ToLower(student.Name), fragment) {
			matched = append(matched, student)
		}
	}
	if len(matched) == 0 {
		return students
	}
	return matched
}

// Students implements [DiaryService].
func (d *diaryService) Students(ctx context.Context, opts FetchOptions) ([]models.Pupil, models.CacheInfo, error) {
	return fetchThrough(ctx, d.fetcher, cache.KeyStudents, opts, func(ctx context.Context) ([]models.Pupil, error) {
		resp, err := d.api.Pupils(ctx)
		if err != nil {
			return nil, err
		}
		return resp.Pupils(), nil
	})
}

// Homework implements [DiaryService].
func (d *diaryService) Homework(ctx context.Context, selector string, opts FetchOptions) (*models.HomeworkReport, error) {
	students, _, err := d.Students(ctx, opts)
	if err != nil {
		return nil, err
	}

	if len(students) == 0 {
		fallback, err := d.accountFallback(ctx)
		if err != nil {
			return nil, err
		}
		return &models.HomeworkReport{StudentAccount: true, Fallback: fallback}, nil
	}

	report := &models.HomeworkReport{Sections: []models.StudentHomework{}}
	for _, student := range selectStudents(students, selector) {
		homework, info, err := d.studentHomework(ctx, student.ID, opts)
		if err != nil {
			return nil, err
		}
		if info.Cached && !report.Cache.Cached {
			report.Cache = info
		}
		report.Sections = append(report.Sections, models.StudentHomework{Student: student, Homework: homework})
	}
	return report, nil
}

// studentHomework aggregates one pupil's homework across all courses
// that report a non-zero homework count. A failing course list is
// skipped rather than failing the pupil.
func (d *diaryService) studentHomework(ctx context.Context, studentID int64, opts FetchOptions) ([]models.Homework, models.CacheInfo, error) {
	return fetchThrough(ctx, d.fetcher, cache.KeyHomework(studentID), opts, func(ctx context.Context) ([]models.Homework, error) {
		courses, err := d.api.HomeworkCourses(ctx, studentID)
		if err != nil {
			return nil, err
		}

		log := logger.FromContext(ctx)
		homework := []models.Homework{}
		for _, course := range courses.Courses {
			cycGroupID := course.CycGroupID.Int64()
			if cycGroupID == 0 {
				continue
			}
			if courses.Counts[strconv.FormatInt(cycGroupID, 10)] == 0 {
				continue
			}

			list, err := d.api.HomeworkList(ctx, cycGroupID)
			if err != nil {
				if errors.Is(err, adapter.ErrUnauthorized) {
					return nil, err
				}
				log.Debug().Err(err).Int64("cyc_group_id", cycGroupID).Msg("skipping course homework list")
				continue
			}
			for _, item := range list.Homeworks {
				homework = append(homework, models.NewHomework(item, course.Subject()))
			}
		}

		sort.SliceStable(homework, func(i, j int) bool {
			return homework[i].DateSort > homework[j].DateSort
		})
		return homework, nil
	})
}

// Grades implements [DiaryService].
func (d *diaryService) Grades(ctx context.Context, selector string, opts FetchOptions) (*models.GradesReport, error) {
	students, _, err := d.Students(ctx, opts)
	if err != nil {
		return nil, err
	}

	if len(students) == 0 {
		return &models.GradesReport{StudentAccount: true, Sections: []models.StudentGrades{}}, nil
	}

	report := &models.GradesReport{Sections: []models.StudentGrades{}}
	for _, student := range selectStudents(students, selector) {
		courses, info, err := d.studentGrades(ctx, student.ID, opts)
		if err != nil {
			return nil, err
		}
		if info.Cached && !report.Cache.Cached {
			report.Cache = info
		}
		report.Sections = append(report.Sections, models.StudentGrades{Student: student, Courses: courses})
	}
	return report, nil
}

func (d *diaryService) studentGrades(ctx context.Context, studentID int64, opts FetchOptions) ([]models.CourseReport, models.CacheInfo, error) {
	return fetchThrough(ctx, d.fetcher, cache.KeyGrades(studentID), opts, func(ctx context.Context) ([]models.CourseReport, error) {
		resp, err := d.api.GradesSummary(ctx, studentID)
		if err != nil {
			return nil, err
		}

		courses := []models.CourseReport{}
		for _, cg := range resp.CourseList() {
			if report := models.NewCourseReport(cg); report.HasGrades() {
				courses = append(courses, report)
			}
		}
		return courses, nil
	})
}

// Schedule implements [DiaryService].
func (d *diaryService) Schedule(ctx context.Context, selector, date string, opts FetchOptions) (*models.ScheduleReport, error) {
	if date == "" {
		date = today()
	} else if err := validators.Date(date); err != nil {
		return nil, err
	}

	students, _, err := d.Students(ctx, opts)
	if err != nil {
		return nil, err
	}

	report := &models.ScheduleReport{Date: date, Sections: []models.StudentSchedule{}}
	if len(students) == 0 {
		report.StudentAccount = true
		report.MySchedule = []models.ScheduleHour{}
		resp, err := d.api.ScheduleHours(ctx, date)
		switch {
		case err == nil:
			report.MySchedule = resp.Hours()
		case terminal(err):
			return nil, err
		default:
			logger.FromContext(ctx).Debug().Err(err).Msg("own schedule unavailable")
		}
		return report, nil
	}

	for _, student := range selectStudents(students, selector) {
		hours, info, err := d.studentSchedule(ctx, student.ID, date, opts)
		if err != nil {
			return nil, err
		}
		if info.Cached && !report.Cache.Cached {
			report.Cache = info
		}
		report.Sections = append(report.Sections, models.StudentSchedule{Student: student, Date: date, Hours: hours})
	}
	return report, nil
}

func (d *diaryService) studentSchedule(ctx context.Context, studentID int64, date string, opts FetchOptions) ([]models.ScheduleHour, models.CacheInfo, error) {
	return fetchThrough(ctx, d.fetcher, cache.KeySchedule(studentID, date), opts, func(ctx context.Context) ([]models.ScheduleHour, error) {
		resp, err := d.api.PupilScheduleHours(ctx, studentID, date)
		if err != nil {
			return nil, err
		}
		return resp.Hours(), nil
	})
}

// Absences implements [DiaryService].
func (d *diaryService) Absences(ctx context.Context, selector string, opts FetchOptions) (*models.AbsencesReport, error) {
	students, _, err := d.Students(ctx, opts)
	if err != nil {
		return nil, err
	}

	if len(students) == 0 {
		return &models.AbsencesReport{StudentAccount: true, Sections: []models.StudentAbsences{}}, nil
	}

	report := &models.AbsencesReport{Sections: []models.StudentAbsences{}}
	for _, student := range selectStudents(students, selector) {
		absences, info, err := d.studentAbsences(ctx, student.ID, opts)
		if err != nil {
			return nil, err
		}
		if info.Cached && !report.Cache.Cached {
			report.Cache = info
		}
		report.Sections = append(report.Sections, models.StudentAbsences{Student: student, Absences: absences})
	}
	return report, nil
}

func (d *diaryService) studentAbsences(ctx context.Context, studentID int64, opts FetchOptions) ([]models.Absence, models.CacheInfo, error) {
	return fetchThrough(ctx, d.fetcher, cache.KeyAbsences(studentID), opts, func(ctx context.Context) ([]models.Absence, error) {
		resp, err := d.api.Absences(ctx, studentID)
		if err != nil {
			return nil, err
		}

		absences := make([]models.Absence, 0, len(resp.Absences))
		for _, item := range resp.Absences {
			absences = append(absences, models.NewAbsence(item))
		}
		sort.SliceStable(absences, func(i, j int) bool {
			return absences[i].DateSort > absences[j].DateSort
		})
		return absences, nil
	})
}

// Summary implements [DiaryService]. The report is marked cached when
// the students list came from the cache; the per-pupil fetches still
// follow the usual policy.
func (d *diaryService) Summary(ctx context.Context, opts FetchOptions) (*models.SummaryReport, error) {
	students, info, err := d.Students(ctx, opts)
	if err != nil {
		return nil, err
	}

	report := &models.SummaryReport{
		Sections: []models.StudentSummary{},
		Cache:    models.CacheInfo{Cached: info.Cached},
	}
	date := today()
	for _, student := range students {
		hours, _, err := d.studentSchedule(ctx, student.ID, date, opts)
		if err != nil {
			return nil, err
		}
		homework, _, err := d.studentHomework(ctx, student.ID, opts)
		if err != nil {
			return nil, err
		}
		courses, _, err := d.studentGrades(ctx, student.ID, opts)
		if err != nil {
			return nil, err
		}

		if len(homework) > 5 {
			homework = homework[:5]
		}
		report.Sections = append(report.Sections, models.StudentSummary{
			Student:        student,
			TodaySchedule:  hours,
			RecentHomework: homework,
			GradesCount:    len(courses),
		})
	}
	return report, nil
}

// Prime implements [DiaryService]. Individual pupil fetches that fail
// are logged and skipped so one broken course cannot stop the refresh;
// expired sessions and transport failures abort it.
func (d *diaryService) Prime(ctx context.Context) ([]models.Pupil, error) {
	opts := FetchOptions{Refresh: true}
	students, _, err := d.Students(ctx, opts)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	date := today()
	for _, student := range students {
		if _, _, err := d.studentHomework(ctx, student.ID, opts); err != nil {
			if terminal(err) {
				return nil, err
			}
			log.Debug().Err(err).Int64("pupil_id", student.ID).Msg("homework refresh failed")
		}
		if _, _, err := d.studentGrades(ctx, student.ID, opts); err != nil {
			if terminal(err) {
				return nil, err
			}
			log.Debug().Err(err).Int64("pupil_id", student.ID).Msg("grades refresh failed")
		}
		if _, _, err := d.studentSchedule(ctx, student.ID, date, opts); err != nil {
			if terminal(err) {
				return nil, err
			}
			log.Debug().Err(err).Int64("pupil_id", student.ID).Msg("schedule refresh failed")
		}
	}
	return students, nil
}

// Invalidate implements [DiaryService].
func (d *diaryService) Invalidate(ctx context.Context, studentID int64, date string) error {
	if d.fetcher.repo == nil || d.fetcher.disabled {
		return nil
	}
	if date == "" {
		date = today()
	}

	keys := []string{
		cache.KeyHomework(studentID),
		cache.KeyGrades(studentID),
		cache.KeySchedule(studentID, date),
		cache.KeyAbsences(studentID),
		cache.KeyEvents(studentID),
	}
	for _, key := range keys {
		if err := d.fetcher.repo.Delete(ctx, key); err != nil {
			return fmt.Errorf("invalidate %s: %w", key, err)
		}
	}
	return nil
}

// accountFallback collects what a pupil-less account can still see:
// its own schedule for today and its assigned tasks. Both endpoints
// are probes, so an ordinary API error just leaves its section empty.
func (d *diaryService) accountFallback(ctx context.Context) (*models.StudentFallback, error) {
	log := logger.FromContext(ctx)
	fallback := &models.StudentFallback{
		TodaySchedule: []models.ScheduleHour{},
		Tasks:         []models.TaskItem{},
	}

	schedule, err := d.api.ScheduleHours(ctx, today())
	switch {
	case err == nil:
		fallback.TodaySchedule = schedule.Hours()
	case terminal(err):
		return nil, err
	default:
		log.Debug().Err(err).Msg("own schedule unavailable")
	}

	tasks, err := d.api.AssignedTasks(ctx)
	switch {
	case err == nil:
		if tasks.Items != nil {
			fallback.Tasks = tasks.Items
		}
	case terminal(err):
		return nil, err
	default:
		log.Debug().Err(err).Msg("assigned tasks unavailable")
	}

	return fallback, nil
}
