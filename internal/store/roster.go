package store

import (
	"context"
	"fmt"

	"github.com/abhisek/paceseed/ent"
	"github.com/abhisek/paceseed/ent/assignment"
	"github.com/abhisek/paceseed/ent/coursemodule"
	"github.com/abhisek/paceseed/ent/educator"
	"github.com/abhisek/paceseed/ent/enrollment"
	"github.com/abhisek/paceseed/ent/group"
	"github.com/abhisek/paceseed/ent/lesson"
	"github.com/abhisek/paceseed/ent/question"
	"github.com/abhisek/paceseed/ent/studentprofile"
)

type rosterRepo struct {
	client *ent.Client
}

func (r *rosterRepo) EnsureEducator(ctx context.Context, data EducatorData) error {
	exists, err := r.client.Educator.Query().
		Where(educator.PublicID(data.PublicID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check educator: %w", err)
	}
	if exists {
		return nil
	}

	_, err = r.client.Educator.Create().
		SetPublicID(data.PublicID).
		SetName(data.Name).
		SetEmail(data.Email).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create educator: %w", err)
	}
	return nil
}

func (r *rosterRepo) EnsureGroup(ctx context.Context, data GroupData) error {
	exists, err := r.client.Group.Query().
		Where(group.PublicID(data.PublicID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check group: %w", err)
	}
	if exists {
		return nil
	}

	_, err = r.client.Group.Create().
		SetPublicID(data.PublicID).
		SetName(data.Name).
		SetEducatorID(data.EducatorID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

func (r *rosterRepo) HasGroup(ctx context.Context, publicID string) (bool, error) {
	exists, err := r.client.Group.Query().
		Where(group.PublicID(publicID)).Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check group: %w", err)
	}
	return exists, nil
}

func (r *rosterRepo) CreateModule(ctx context.Context, groupID string, position int, module ModuleRow) error {
	_, err := r.client.CourseModule.Create().
		SetPublicID(module.PublicID).
		SetGroupID(groupID).
		SetTitle(module.Title).
		SetPosition(position).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create module %s: %w", module.PublicID, err)
	}

	for li, l := range module.Lessons {
		if l.AssignmentID != "" {
			_, err := r.client.Assignment.Create().
				SetPublicID(l.AssignmentID).
				SetGroupID(groupID).
				SetTitle(l.Title + " mastery check").
				SetKind("mastery-check").
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create mastery check for %s: %w", l.PublicID, err)
			}
		}

		builder := r.client.Lesson.Create().
			SetPublicID(l.PublicID).
			SetModuleID(module.PublicID).
			SetTitle(l.Title).
			SetPosition(li)
		if l.AssignmentID != "" {
			builder = builder.SetAssignmentID(l.AssignmentID)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create lesson %s: %w", l.PublicID, err)
		}

		for qi, q := range l.Questions {
			qb := r.client.Question.Create().
				SetPublicID(q.PublicID).
				SetLessonID(l.PublicID).
				SetPosition(qi).
				SetAssignmentQuestionID(q.AssignmentQuestionID).
				SetPrompt(q.Prompt)
			if q.KnowledgeComponentID != "" {
				qb = qb.SetKnowledgeComponentID(q.KnowledgeComponentID)
			}
			if _, err := qb.Save(ctx); err != nil {
				return fmt.Errorf("create question %s: %w", q.PublicID, err)
			}
		}
	}

	return nil
}

func (r *rosterRepo) CreateAssessment(ctx context.Context, groupID, publicID, title string) error {
	_, err := r.client.Assignment.Create().
		SetPublicID(publicID).
		SetGroupID(groupID).
		SetTitle(title).
		SetKind("assessment").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create assessment %s: %w", publicID, err)
	}
	return nil
}

func (r *rosterRepo) EnrollStudents(ctx context.Context, groupID string, students []StudentData) error {
	for i, s := range students {
		_, err := r.client.StudentProfile.Create().
			SetPublicID(s.ProfileID).
			SetDisplayName(s.DisplayName).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create student profile %s: %w", s.ProfileID, err)
		}

		_, err = r.client.Enrollment.Create().
			SetPublicID(s.EnrollmentID).
			SetGroupID(groupID).
			SetStudentProfileID(s.ProfileID).
			SetDisplayName(s.DisplayName).
			SetPosition(i).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create enrollment %s: %w", s.EnrollmentID, err)
		}
	}
	return nil
}

func (r *rosterRepo) Modules(ctx context.Context, groupID string) ([]ModuleRow, error) {
	mods, err := r.client.CourseModule.Query().
		Where(coursemodule.GroupID(groupID)).
		Order(ent.Asc(coursemodule.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query modules: %w", err)
	}

	out := make([]ModuleRow, 0, len(mods))
	for _, m := range mods {
		row := ModuleRow{PublicID: m.PublicID, Title: m.Title}

		lessons, err := r.client.Lesson.Query().
			Where(lesson.ModuleID(m.PublicID)).
			Order(ent.Asc(lesson.FieldPosition)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("query lessons for %s: %w", m.PublicID, err)
		}

		for _, l := range lessons {
			lrow := LessonRow{PublicID: l.PublicID, Title: l.Title, AssignmentID: l.AssignmentID}

			questions, err := r.client.Question.Query().
				Where(question.LessonID(l.PublicID)).
				Order(ent.Asc(question.FieldPosition)).
				All(ctx)
			if err != nil {
				return nil, fmt.Errorf("query questions for %s: %w", l.PublicID, err)
			}
			for _, q := range questions {
				lrow.Questions = append(lrow.Questions, QuestionRow{
					PublicID:             q.PublicID,
					AssignmentQuestionID: q.AssignmentQuestionID,
					KnowledgeComponentID: q.KnowledgeComponentID,
					Prompt:               q.Prompt,
				})
			}
			row.Lessons = append(row.Lessons, lrow)
		}
		out = append(out, row)
	}

	return out, nil
}

func (r *rosterRepo) Enrollments(ctx context.Context, groupID string) ([]EnrollmentRow, error) {
	rows, err := r.client.Enrollment.Query().
		Where(enrollment.GroupID(groupID)).
		Order(ent.Asc(enrollment.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query enrollments: %w", err)
	}

	out := make([]EnrollmentRow, 0, len(rows))
	for _, e := range rows {
		out = append(out, EnrollmentRow{
			PublicID:         e.PublicID,
			StudentProfileID: e.StudentProfileID,
			DisplayName:      e.DisplayName,
			Position:         e.Position,
		})
	}
	return out, nil
}

// DeleteGroupRoster removes the group's content and roster from the
// leaves up: questions, lessons, assignments, modules, enrollments,
// profiles, then the group row itself.
func (r *rosterRepo) DeleteGroupRoster(ctx context.Context, groupID string) error {
	moduleIDs, err := r.client.CourseModule.Query().
		Where(coursemodule.GroupID(groupID)).
		Select(coursemodule.FieldPublicID).
		Strings(ctx)
	if err != nil {
		return fmt.Errorf("list modules: %w", err)
	}

	lessonIDs, err := r.client.Lesson.Query().
		Where(lesson.ModuleIDIn(moduleIDs...)).
		Select(lesson.FieldPublicID).
		Strings(ctx)
	if err != nil {
		return fmt.Errorf("list lessons: %w", err)
	}

	if _, err := r.client.Question.Delete().
		Where(question.LessonIDIn(lessonIDs...)).Exec(ctx); err != nil {
		return fmt.Errorf("delete questions: %w", err)
	}
	if _, err := r.client.Lesson.Delete().
		Where(lesson.ModuleIDIn(moduleIDs...)).Exec(ctx); err != nil {
		return fmt.Errorf("delete lessons: %w", err)
	}
	if _, err := r.client.Assignment.Delete().
		Where(assignment.GroupID(groupID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete assignments: %w", err)
	}
	if _, err := r.client.CourseModule.Delete().
		Where(coursemodule.GroupID(groupID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete modules: %w", err)
	}

	profileIDs, err := r.client.Enrollment.Query().
		Where(enrollment.GroupID(groupID)).
		Select(enrollment.FieldStudentProfileID).
		Strings(ctx)
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}
	if _, err := r.client.Enrollment.Delete().
		Where(enrollment.GroupID(groupID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete enrollments: %w", err)
	}
	if _, err := r.client.StudentProfile.Delete().
		Where(studentprofile.PublicIDIn(profileIDs...)).Exec(ctx); err != nil {
		return fmt.Errorf("delete student profiles: %w", err)
	}

	grp, err := r.client.Group.Query().
		Where(group.PublicID(groupID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("load group: %w", err)
	}
	educatorID := grp.EducatorID

	if _, err := r.client.Group.Delete().
		Where(group.PublicID(groupID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}

	// Drop the educator only when no other group still references it.
	remaining, err := r.client.Group.Query().
		Where(group.EducatorID(educatorID)).Count(ctx)
	if err != nil {
		return fmt.Errorf("count educator groups: %w", err)
	}
	if remaining == 0 {
		if _, err := r.client.Educator.Delete().
			Where(educator.PublicID(educatorID)).Exec(ctx); err != nil {
			return fmt.Errorf("delete educator: %w", err)
		}
	}

	return nil
}
