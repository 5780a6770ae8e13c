// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentResponseEventsColumns holds the columns for the "assessment_response_events" table.
	AssessmentResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
		{Name: "enrollment_id", Type: field.TypeString},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "questions_answered", Type: field.TypeInt},
	}
	// AssessmentResponseEventsTable holds the schema information for the "assessment_response_events" table.
	AssessmentResponseEventsTable = &schema.Table{
		Name:       "assessment_response_events",
		Columns:    AssessmentResponseEventsColumns,
		PrimaryKey: []*schema.Column{AssessmentResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentresponseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssessmentResponseEventsColumns[1]},
			},
			{
				Name:    "assessmentresponseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentResponseEventsColumns[2]},
			},
			{
				Name:    "assessmentresponseevent_group_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentResponseEventsColumns[3]},
			},
			{
				Name:    "assessmentresponseevent_enrollment_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentResponseEventsColumns[4]},
			},
			{
				Name:    "assessmentresponseevent_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentResponseEventsColumns[5]},
			},
		},
	}
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "public_id", Type: field.TypeString, Unique: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_public_id",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[1]},
			},
			{
				Name:    "assignment_group_id_kind",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[2], AssignmentsColumns[4]},
			},
		},
	}
	// AssignmentCompletionEventsColumns holds the columns for the "assignment_completion_events" table.
	AssignmentCompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
		{Name: "enrollment_id", Type: field.TypeString},
		{Name: "assignment_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "delayed", Type: field.TypeBool, Default: false},
	}
	// AssignmentCompletionEventsTable holds the schema information for the "assignment_completion_events" table.
	AssignmentCompletionEventsTable = &schema.Table{
		Name:       "assignment_completion_events",
		Columns:    AssignmentCompletionEventsColumns,
		PrimaryKey: []*schema.Column{AssignmentCompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assignmentcompletionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssignmentCompletionEventsColumns[1]},
			},
			{
				Name:    "assignmentcompletionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssignmentCompletionEventsColumns[2]},
			},
			{
				Name:    "assignmentcompletionevent_group_id",
				Unique:  false,
				Columns: []*schema.Column{AssignmentCompletionEventsColumns[3]},
			},
			{
				Name:    "assignmentcompletionevent_enrollment_id",
				Unique:  false,
				Columns: []*schema.Column{AssignmentCompletionEventsColumns[4]},
			},
			{
				Name:    "assignmentcompletionevent_assignment_id",
				Unique:  false,
				Columns: []*schema.Column{AssignmentCompletionEventsColumns[5]},
			},
		},
	}
	// AttendanceEventsColumns holds the columns for the "attendance_events" table.
	AttendanceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
		{Name: "enrollment_id", Type: field.TypeString},
		{Name: "date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeString},
	}
	// AttendanceEventsTable holds the schema information for the "attendance_events" table.
	AttendanceEventsTable = &schema.Table{
		Name:       "attendance_events",
		Columns:    AttendanceEventsColumns,
		PrimaryKey: []*schema.Column{AttendanceEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attendanceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttendanceEventsColumns[1]},
			},
			{
				Name:    "attendanceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttendanceEventsColumns[2]},
			},
			{
				Name:    "attendanceevent_group_id",
				Unique:  false,
				Columns: []*schema.Column{AttendanceEventsColumns[3]},
			},
			{
				Name:    "attendanceevent_enrollment_id",
				Unique:  false,
				Columns: []*schema.Column{AttendanceEventsColumns[4]},
			},
			{
				Name:    "attendanceevent_date",
				Unique:  false,
				Columns: []*schema.Column{AttendanceEventsColumns[5]},
			},
			{
				Name:    "attendanceevent_status",
				Unique:  false,
				Columns: []*schema.Column{AttendanceEventsColumns[6]},
			},
		},
	}
	// CourseModulesColumns holds the columns for the "course_modules" table.
	CourseModulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "public_id", Type: field.TypeString, Unique: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
	}
	// CourseModulesTable holds the schema information for the "course_modules" table.
	CourseModulesTable = &schema.Table{
		Name:       "course_modules",
		Columns:    CourseModulesColumns,
		PrimaryKey: []*schema.Column{CourseModulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "coursemodule_public_id",
				Unique:  false,
				Columns: []*schema.Column{CourseModulesColumns[1]},
			},
			{
				Name:    "coursemodule_group_id_position",
				Unique:  false,
				Columns: []*schema.Column{CourseModulesColumns[2], CourseModulesColumns[4]},
			},
		},
	}
	// EducatorsColumns holds the columns for the "educators" table.
	EducatorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "public_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
	}
	// EducatorsTable holds the schema information for the "educators" table.
	EducatorsTable = &schema.Table{
		Name:       "educators",
		Columns:    EducatorsColumns,
		PrimaryKey: []*schema.Column{EducatorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "educator_public_id",
				Unique:  false,
				Columns: []*schema.Column{EducatorsColumns[1]},
			},
		},
	}
	// EnrollmentsColumns holds the columns for the "enrollments" table.
	EnrollmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "public_id", Type: field.TypeString, Unique: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "student_profile_id", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
	}
	// EnrollmentsTable holds the schema information for the "enrollments" table.
	EnrollmentsTable = &schema.Table{
		Name:       "enrollments",
		Columns:    EnrollmentsColumns,
		PrimaryKey: []*schema.Column{EnrollmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "enrollment_public_id",
				Unique:  false,
				Columns: []*schema.Column{EnrollmentsColumns[1]},
			},
			{
				Name:    "enrollment_group_id_position",
				Unique:  false,
				Columns: []*schema.Column{EnrollmentsColumns[2], EnrollmentsColumns[5]},
			},
		},
	}
	// FeedbackEventsColumns holds the columns for the "feedback_events" table.
	FeedbackEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
		{Name: "enrollment_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "comment", Type: field.TypeString},
		{Name: "tone", Type: field.TypeString},
		{Name: "generator", Type: field.TypeString},
	}
	// FeedbackEventsTable holds the schema information for the "feedback_events" table.
	FeedbackEventsTable = &schema.Table{
		Name:       "feedback_events",
		Columns:    FeedbackEventsColumns,
		PrimaryKey: []*schema.Column{FeedbackEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedbackevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[1]},
			},
			{
				Name:    "feedbackevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[2]},
			},
			{
				Name:    "feedbackevent_group_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[3]},
			},
			{
				Name:    "feedbackevent_enrollment_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[4]},
			},
			{
				Name:    "feedbackevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[5]},
			},
		},
	}
	// GroupsColumns holds the columns for the "groups" table.
	GroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "public_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "educator_id", Type: field.TypeString},
	}
	// GroupsTable holds the schema information for the "groups" table.
	GroupsTable = &schema.Table{
		Name:       "groups",
		Columns:    GroupsColumns,
		PrimaryKey: []*schema.Column{GroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "group_public_id",
				Unique:  false,
				Columns: []*schema.Column{GroupsColumns[1]},
			},
			{
				Name:    "group_educator_id",
				Unique:  false,
				Columns: []*schema.Column{GroupsColumns[3]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "public_id", Type: field.TypeString, Unique: true},
		{Name: "module_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "assignment_id", Type: field.TypeString, Nullable: true},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_public_id",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[1]},
			},
			{
				Name:    "lesson_module_id_position",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[2], LessonsColumns[4]},
			},
		},
	}
	// LessonCompletionEventsColumns holds the columns for the "lesson_completion_events" table.
	LessonCompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
		{Name: "enrollment_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "questions_answered", Type: field.TypeInt},
	}
	// LessonCompletionEventsTable holds the schema information for the "lesson_completion_events" table.
	LessonCompletionEventsTable = &schema.Table{
		Name:       "lesson_completion_events",
		Columns:    LessonCompletionEventsColumns,
		PrimaryKey: []*schema.Column{LessonCompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessoncompletionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonCompletionEventsColumns[1]},
			},
			{
				Name:    "lessoncompletionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonCompletionEventsColumns[2]},
			},
			{
				Name:    "lessoncompletionevent_group_id",
				Unique:  false,
				Columns: []*schema.Column{LessonCompletionEventsColumns[3]},
			},
			{
				Name:    "lessoncompletionevent_enrollment_id",
				Unique:  false,
				Columns: []*schema.Column{LessonCompletionEventsColumns[4]},
			},
			{
				Name:    "lessoncompletionevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonCompletionEventsColumns[5]},
			},
		},
	}
	// PointEventsColumns holds the columns for the "point_events" table.
	PointEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
		{Name: "enrollment_id", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
	}
	// PointEventsTable holds the schema information for the "point_events" table.
	PointEventsTable = &schema.Table{
		Name:       "point_events",
		Columns:    PointEventsColumns,
		PrimaryKey: []*schema.Column{PointEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pointevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[1]},
			},
			{
				Name:    "pointevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[2]},
			},
			{
				Name:    "pointevent_group_id",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[3]},
			},
			{
				Name:    "pointevent_enrollment_id",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[4]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "public_id", Type: field.TypeString, Unique: true},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "assignment_question_id", Type: field.TypeString},
		{Name: "knowledge_component_id", Type: field.TypeString, Nullable: true},
		{Name: "prompt", Type: field.TypeString},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_public_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_lesson_id_position",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[2], QuestionsColumns[3]},
			},
		},
	}
	// QuestionEventsColumns holds the columns for the "question_events" table.
	QuestionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
		{Name: "enrollment_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "assignment_question_id", Type: field.TypeString},
		{Name: "knowledge_component_id", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool, Default: true},
	}
	// QuestionEventsTable holds the schema information for the "question_events" table.
	QuestionEventsTable = &schema.Table{
		Name:       "question_events",
		Columns:    QuestionEventsColumns,
		PrimaryKey: []*schema.Column{QuestionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[1]},
			},
			{
				Name:    "questionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[2]},
			},
			{
				Name:    "questionevent_group_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[3]},
			},
			{
				Name:    "questionevent_enrollment_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[4]},
			},
			{
				Name:    "questionevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[5]},
			},
			{
				Name:    "questionevent_action",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[9]},
			},
		},
	}
	// StudentProfilesColumns holds the columns for the "student_profiles" table.
	StudentProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "public_id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
	}
	// StudentProfilesTable holds the schema information for the "student_profiles" table.
	StudentProfilesTable = &schema.Table{
		Name:       "student_profiles",
		Columns:    StudentProfilesColumns,
		PrimaryKey: []*schema.Column{StudentProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studentprofile_public_id",
				Unique:  false,
				Columns: []*schema.Column{StudentProfilesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentResponseEventsTable,
		AssignmentsTable,
		AssignmentCompletionEventsTable,
		AttendanceEventsTable,
		CourseModulesTable,
		EducatorsTable,
		EnrollmentsTable,
		FeedbackEventsTable,
		GroupsTable,
		LessonsTable,
		LessonCompletionEventsTable,
		PointEventsTable,
		QuestionsTable,
		QuestionEventsTable,
		StudentProfilesTable,
	}
)

func init() {
}
