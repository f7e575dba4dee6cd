package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/x1024/shkolo-cli/models"
)

func (a *app) exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a report to an XLSX workbook",
	}
	cmd.AddCommand(a.exportGradesCommand(), a.exportScheduleCommand())
	return cmd
}

func (a *app) exportGradesCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Export grades, one sheet per pupil",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			if err := a.restore(ctx); err != nil {
				return err
			}
			report, err := a.services.Diary.Grades(ctx, a.student, a.fetchOptions())
			if err != nil {
				return err
			}
			if len(report.Sections) == 0 {
				return errors.New("no pupils to export")
			}
			path := out
			if path == "" {
				path = fmt.Sprintf("shkolo-grades-%s.xlsx", time.Now().Format("2006-01-02"))
			}
			if err := writeGradesWorkbook(report, path); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Exported grades to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default shkolo-grades-<date>.xlsx)")
	return cmd
}

func (a *app) exportScheduleCommand() *cobra.Command {
	var out, date string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Export the schedule for a date, one sheet per pupil",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			if err := a.restore(ctx); err != nil {
				return err
			}
			report, err := a.services.Diary.Schedule(ctx, a.student, date, a.fetchOptions())
			if err != nil {
				return err
			}
			if len(report.Sections) == 0 {
				return errors.New("no pupils to export")
			}
			path := out
			if path == "" {
				path = fmt.Sprintf("shkolo-schedule-%s.xlsx", report.Date)
			}
			if err := writeScheduleWorkbook(report, path); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Exported schedule to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default shkolo-schedule-<date>.xlsx)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "date as YYYY-MM-DD (default today)")
	return cmd
}

func writeGradesWorkbook(report *models.GradesReport, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := headerStyle(f)
	if err != nil {
		return err
	}
	for i, section := range report.Sections {
		sheet, err := addSheet(f, i, section.Student.Name)
		if err != nil {
			return err
		}
		cols := []any{"Course", "Term 1", "Term 1 Final", "Term 2", "Term 2 Final", "Annual"}
		if err := f.SetSheetRow(sheet, "A1", &cols); err != nil {
			return fmt.Errorf("writing header row: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", "F1", header); err != nil {
			return fmt.Errorf("styling header row: %w", err)
		}
		for row, course := range section.Courses {
			cell, err := excelize.CoordinatesToCellName(1, row+2)
			if err != nil {
				return err
			}
			values := []any{
				course.Subject,
				strings.Join(course.Term1Grades, ", "),
				course.Term1Final,
				strings.Join(course.Term2Grades, ", "),
				course.Term2Final,
				course.Annual,
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return fmt.Errorf("writing grade row: %w", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeScheduleWorkbook(report *models.ScheduleReport, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := headerStyle(f)
	if err != nil {
		return err
	}
	for i, section := range report.Sections {
		sheet, err := addSheet(f, i, section.Student.Name)
		if err != nil {
			return err
		}
		cols := []any{"Hour", "From", "To", "Course", "Teacher", "Room", "Topic"}
		if err := f.SetSheetRow(sheet, "A1", &cols); err != nil {
			return fmt.Errorf("writing header row: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", "G1", header); err != nil {
			return fmt.Errorf("styling header row: %w", err)
		}
		for row, hour := range section.Hours {
			cell, err := excelize.CoordinatesToCellName(1, row+2)
			if err != nil {
				return err
			}
			values := []any{
				hour.SchoolHour.Int64(),
				hour.FromTime,
				hour.ToTime,
				hour.Subject(),
				hour.TeacherName,
				hour.RoomName,
				hour.Topic,
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return fmt.Errorf("writing schedule row: %w", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return 0, fmt.Errorf("creating header style: %w", err)
	}
	return style, nil
}

// addSheet names the i-th sheet after the pupil, reusing the default
// first sheet and creating the rest.
func addSheet(f *excelize.File, i int, name string) (string, error) {
	sheet := sheetName(name)
	if i == 0 {
		if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
			return "", fmt.Errorf("renaming sheet: %w", err)
		}
		return sheet, nil
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return "", fmt.Errorf("adding sheet: %w", err)
	}
	return sheet, nil
}

// sheetName strips the characters Excel forbids in sheet names and
// enforces the 31-character limit.
func sheetName(name string) string {
	replacer := strings.NewReplacer(
		"[", "", "]", "", ":", "", "*", "", "?", "", "/", "-", "\\", "-",
	)
	s := strings.TrimSpace(replacer.Replace(name))
	if s == "" {
		s = "Pupil"
	}
	runes := []rune(s)
	if len(runes) > 31 {
		s = string(runes[:31])
	}
	return s
}
