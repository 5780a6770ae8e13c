// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/paceseed/ent/assessmentresponseevent"
	"github.com/abhisek/paceseed/ent/assignment"
	"github.com/abhisek/paceseed/ent/assignmentcompletionevent"
	"github.com/abhisek/paceseed/ent/attendanceevent"
	"github.com/abhisek/paceseed/ent/coursemodule"
	"github.com/abhisek/paceseed/ent/educator"
	"github.com/abhisek/paceseed/ent/enrollment"
	"github.com/abhisek/paceseed/ent/feedbackevent"
	"github.com/abhisek/paceseed/ent/group"
	"github.com/abhisek/paceseed/ent/lesson"
	"github.com/abhisek/paceseed/ent/lessoncompletionevent"
	"github.com/abhisek/paceseed/ent/pointevent"
	"github.com/abhisek/paceseed/ent/question"
	"github.com/abhisek/paceseed/ent/questionevent"
	"github.com/abhisek/paceseed/ent/schema"
	"github.com/abhisek/paceseed/ent/studentprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentresponseeventMixin := schema.AssessmentResponseEvent{}.Mixin()
	assessmentresponseeventMixinFields0 := assessmentresponseeventMixin[0].Fields()
	_ = assessmentresponseeventMixinFields0
	assessmentresponseeventFields := schema.AssessmentResponseEvent{}.Fields()
	_ = assessmentresponseeventFields
	// assessmentresponseeventDescTimestamp is the schema descriptor for timestamp field.
	assessmentresponseeventDescTimestamp := assessmentresponseeventMixinFields0[1].Descriptor()
	// assessmentresponseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentresponseevent.DefaultTimestamp = assessmentresponseeventDescTimestamp.Default.(func() time.Time)
	// assessmentresponseeventDescGroupID is the schema descriptor for group_id field.
	assessmentresponseeventDescGroupID := assessmentresponseeventMixinFields0[2].Descriptor()
	// assessmentresponseevent.GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	assessmentresponseevent.GroupIDValidator = assessmentresponseeventDescGroupID.Validators[0].(func(string) error)
	// assessmentresponseeventDescEnrollmentID is the schema descriptor for enrollment_id field.
	assessmentresponseeventDescEnrollmentID := assessmentresponseeventFields[0].Descriptor()
	// assessmentresponseevent.EnrollmentIDValidator is a validator for the "enrollment_id" field. It is called by the builders before save.
	assessmentresponseevent.EnrollmentIDValidator = assessmentresponseeventDescEnrollmentID.Validators[0].(func(string) error)
	// assessmentresponseeventDescAssessmentID is the schema descriptor for assessment_id field.
	assessmentresponseeventDescAssessmentID := assessmentresponseeventFields[1].Descriptor()
	// assessmentresponseevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessmentresponseevent.AssessmentIDValidator = assessmentresponseeventDescAssessmentID.Validators[0].(func(string) error)
	assignmentFields := schema.Assignment{}.Fields()
	_ = assignmentFields
	// assignmentDescPublicID is the schema descriptor for public_id field.
	assignmentDescPublicID := assignmentFields[0].Descriptor()
	// assignment.PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	assignment.PublicIDValidator = assignmentDescPublicID.Validators[0].(func(string) error)
	// assignmentDescGroupID is the schema descriptor for group_id field.
	assignmentDescGroupID := assignmentFields[1].Descriptor()
	// assignment.GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	assignment.GroupIDValidator = assignmentDescGroupID.Validators[0].(func(string) error)
	// assignmentDescTitle is the schema descriptor for title field.
	assignmentDescTitle := assignmentFields[2].Descriptor()
	// assignment.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	assignment.TitleValidator = assignmentDescTitle.Validators[0].(func(string) error)
	// assignmentDescKind is the schema descriptor for kind field.
	assignmentDescKind := assignmentFields[3].Descriptor()
	// assignment.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	assignment.KindValidator = assignmentDescKind.Validators[0].(func(string) error)
	assignmentcompletioneventMixin := schema.AssignmentCompletionEvent{}.Mixin()
	assignmentcompletioneventMixinFields0 := assignmentcompletioneventMixin[0].Fields()
	_ = assignmentcompletioneventMixinFields0
	assignmentcompletioneventFields := schema.AssignmentCompletionEvent{}.Fields()
	_ = assignmentcompletioneventFields
	// assignmentcompletioneventDescTimestamp is the schema descriptor for timestamp field.
	assignmentcompletioneventDescTimestamp := assignmentcompletioneventMixinFields0[1].Descriptor()
	// assignmentcompletionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assignmentcompletionevent.DefaultTimestamp = assignmentcompletioneventDescTimestamp.Default.(func() time.Time)
	// assignmentcompletioneventDescGroupID is the schema descriptor for group_id field.
	assignmentcompletioneventDescGroupID := assignmentcompletioneventMixinFields0[2].Descriptor()
	// assignmentcompletionevent.GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	assignmentcompletionevent.GroupIDValidator = assignmentcompletioneventDescGroupID.Validators[0].(func(string) error)
	// assignmentcompletioneventDescEnrollmentID is the schema descriptor for enrollment_id field.
	assignmentcompletioneventDescEnrollmentID := assignmentcompletioneventFields[0].Descriptor()
	// assignmentcompletionevent.EnrollmentIDValidator is a validator for the "enrollment_id" field. It is called by the builders before save.
	assignmentcompletionevent.EnrollmentIDValidator = assignmentcompletioneventDescEnrollmentID.Validators[0].(func(string) error)
	// assignmentcompletioneventDescAssignmentID is the schema descriptor for assignment_id field.
	assignmentcompletioneventDescAssignmentID := assignmentcompletioneventFields[1].Descriptor()
	// assignmentcompletionevent.AssignmentIDValidator is a validator for the "assignment_id" field. It is called by the builders before save.
	assignmentcompletionevent.AssignmentIDValidator = assignmentcompletioneventDescAssignmentID.Validators[0].(func(string) error)
	// assignmentcompletioneventDescLessonID is the schema descriptor for lesson_id field.
	assignmentcompletioneventDescLessonID := assignmentcompletioneventFields[2].Descriptor()
	// assignmentcompletionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	assignmentcompletionevent.LessonIDValidator = assignmentcompletioneventDescLessonID.Validators[0].(func(string) error)
	// assignmentcompletioneventDescDelayed is the schema descriptor for delayed field.
	assignmentcompletioneventDescDelayed := assignmentcompletioneventFields[4].Descriptor()
	// assignmentcompletionevent.DefaultDelayed holds the default value on creation for the delayed field.
	assignmentcompletionevent.DefaultDelayed = assignmentcompletioneventDescDelayed.Default.(bool)
	attendanceeventMixin := schema.AttendanceEvent{}.Mixin()
	attendanceeventMixinFields0 := attendanceeventMixin[0].Fields()
	_ = attendanceeventMixinFields0
	attendanceeventFields := schema.AttendanceEvent{}.Fields()
	_ = attendanceeventFields
	// attendanceeventDescTimestamp is the schema descriptor for timestamp field.
	attendanceeventDescTimestamp := attendanceeventMixinFields0[1].Descriptor()
	// attendanceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attendanceevent.DefaultTimestamp = attendanceeventDescTimestamp.Default.(func() time.Time)
	// attendanceeventDescGroupID is the schema descriptor for group_id field.
	attendanceeventDescGroupID := attendanceeventMixinFields0[2].Descriptor()
	// attendanceevent.GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	attendanceevent.GroupIDValidator = attendanceeventDescGroupID.Validators[0].(func(string) error)
	// attendanceeventDescEnrollmentID is the schema descriptor for enrollment_id field.
	attendanceeventDescEnrollmentID := attendanceeventFields[0].Descriptor()
	// attendanceevent.EnrollmentIDValidator is a validator for the "enrollment_id" field. It is called by the builders before save.
	attendanceevent.EnrollmentIDValidator = attendanceeventDescEnrollmentID.Validators[0].(func(string) error)
	// attendanceeventDescStatus is the schema descriptor for status field.
	attendanceeventDescStatus := attendanceeventFields[2].Descriptor()
	// attendanceevent.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	attendanceevent.StatusValidator = attendanceeventDescStatus.Validators[0].(func(string) error)
	coursemoduleFields := schema.CourseModule{}.Fields()
	_ = coursemoduleFields
	// coursemoduleDescPublicID is the schema descriptor for public_id field.
	coursemoduleDescPublicID := coursemoduleFields[0].Descriptor()
	// coursemodule.PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	coursemodule.PublicIDValidator = coursemoduleDescPublicID.Validators[0].(func(string) error)
	// coursemoduleDescGroupID is the schema descriptor for group_id field.
	coursemoduleDescGroupID := coursemoduleFields[1].Descriptor()
	// coursemodule.GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	coursemodule.GroupIDValidator = coursemoduleDescGroupID.Validators[0].(func(string) error)
	// coursemoduleDescTitle is the schema descriptor for title field.
	coursemoduleDescTitle := coursemoduleFields[2].Descriptor()
	// coursemodule.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	coursemodule.TitleValidator = coursemoduleDescTitle.Validators[0].(func(string) error)
	// coursemoduleDescPosition is the schema descriptor for position field.
	coursemoduleDescPosition := coursemoduleFields[3].Descriptor()
	// coursemodule.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	coursemodule.PositionValidator = coursemoduleDescPosition.Validators[0].(func(int) error)
	educatorFields := schema.Educator{}.Fields()
	_ = educatorFields
	// educatorDescPublicID is the schema descriptor for public_id field.
	educatorDescPublicID := educatorFields[0].Descriptor()
	// educator.PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	educator.PublicIDValidator = educatorDescPublicID.Validators[0].(func(string) error)
	// educatorDescName is the schema descriptor for name field.
	educatorDescName := educatorFields[1].Descriptor()
	// educator.NameValidator is a validator for the "name" field. It is called by the builders before save.
	educator.NameValidator = educatorDescName.Validators[0].(func(string) error)
	// educatorDescEmail is the schema descriptor for email field.
	educatorDescEmail := educatorFields[2].Descriptor()
	// educator.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	educator.EmailValidator = educatorDescEmail.Validators[0].(func(string) error)
	enrollmentFields := schema.Enrollment{}.Fields()
	_ = enrollmentFields
	// enrollmentDescPublicID is the schema descriptor for public_id field.
	enrollmentDescPublicID := enrollmentFields[0].Descriptor()
	// enrollment.PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	enrollment.PublicIDValidator = enrollmentDescPublicID.Validators[0].(func(string) error)
	// enrollmentDescGroupID is the schema descriptor for group_id field.
	enrollmentDescGroupID := enrollmentFields[1].Descriptor()
	// enrollment.GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	enrollment.GroupIDValidator = enrollmentDescGroupID.Validators[0].(func(string) error)
	// enrollmentDescStudentProfileID is the schema descriptor for student_profile_id field.
	enrollmentDescStudentProfileID := enrollmentFields[2].Descriptor()
	// enrollment.StudentProfileIDValidator is a validator for the "student_profile_id" field. It is called by the builders before save.
	enrollment.StudentProfileIDValidator = enrollmentDescStudentProfileID.Validators[0].(func(string) error)
	// enrollmentDescDisplayName is the schema descriptor for display_name field.
	enrollmentDescDisplayName := enrollmentFields[3].Descriptor()
	// enrollment.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	enrollment.DisplayNameValidator = enrollmentDescDisplayName.Validators[0].(func(string) error)
	// enrollmentDescPosition is the schema descriptor for position field.
	enrollmentDescPosition := enrollmentFields[4].Descriptor()
	// enrollment.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	enrollment.PositionValidator = enrollmentDescPosition.Validators[0].(func(int) error)
	feedbackeventMixin := schema.FeedbackEvent{}.Mixin()
	feedbackeventMixinFields0 := feedbackeventMixin[0].Fields()
	_ = feedbackeventMixinFields0
	feedbackeventFields := schema.FeedbackEvent{}.Fields()
	_ = feedbackeventFields
	// feedbackeventDescTimestamp is the schema descriptor for timestamp field.
	feedbackeventDescTimestamp := feedbackeventMixinFields0[1].Descriptor()
	// feedbackevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	feedbackevent.DefaultTimestamp = feedbackeventDescTimestamp.Default.(func() time.Time)
	// feedbackeventDescGroupID is the schema descriptor for group_id field.
	feedbackeventDescGroupID := feedbackeventMixinFields0[2].Descriptor()
	// feedbackevent.GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	feedbackevent.GroupIDValidator = feedbackeventDescGroupID.Validators[0].(func(string) error)
	// feedbackeventDescEnrollmentID is the schema descriptor for enrollment_id field.
	feedbackeventDescEnrollmentID := feedbackeventFields[0].Descriptor()
	// feedbackevent.EnrollmentIDValidator is a validator for the "enrollment_id" field. It is called by the builders before save.
	feedbackevent.EnrollmentIDValidator = feedbackeventDescEnrollmentID.Validators[0].(func(string) error)
	// feedbackeventDescLessonID is the schema descriptor for lesson_id field.
	feedbackeventDescLessonID := feedbackeventFields[1].Descriptor()
	// feedbackevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	feedbackevent.LessonIDValidator = feedbackeventDescLessonID.Validators[0].(func(string) error)
	// feedbackeventDescComment is the schema descriptor for comment field.
	feedbackeventDescComment := feedbackeventFields[2].Descriptor()
	// feedbackevent.CommentValidator is a validator for the "comment" field. It is called by the builders before save.
	feedbackevent.CommentValidator = feedbackeventDescComment.Validators[0].(func(string) error)
	// feedbackeventDescTone is the schema descriptor for tone field.
	feedbackeventDescTone := feedbackeventFields[3].Descriptor()
	// feedbackevent.ToneValidator is a validator for the "tone" field. It is called by the builders before save.
	feedbackevent.ToneValidator = feedbackeventDescTone.Validators[0].(func(string) error)
	// feedbackeventDescGenerator is the schema descriptor for generator field.
	feedbackeventDescGenerator := feedbackeventFields[4].Descriptor()
	// feedbackevent.GeneratorValidator is a validator for the "generator" field. It is called by the builders before save.
	feedbackevent.GeneratorValidator = feedbackeventDescGenerator.Validators[0].(func(string) error)
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescPublicID is the schema descriptor for public_id field.
	groupDescPublicID := groupFields[0].Descriptor()
	// group.PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	group.PublicIDValidator = groupDescPublicID.Validators[0].(func(string) error)
	// groupDescName is the schema descriptor for name field.
	groupDescName := groupFields[1].Descriptor()
	// group.NameValidator is a validator for the "name" field. It is called by the builders before save.
	group.NameValidator = groupDescName.Validators[0].(func(string) error)
	// groupDescEducatorID is the schema descriptor for educator_id field.
	groupDescEducatorID := groupFields[2].Descriptor()
	// group.EducatorIDValidator is a validator for the "educator_id" field. It is called by the builders before save.
	group.EducatorIDValidator = groupDescEducatorID.Validators[0].(func(string) error)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescPublicID is the schema descriptor for public_id field.
	lessonDescPublicID := lessonFields[0].Descriptor()
	// lesson.PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	lesson.PublicIDValidator = lessonDescPublicID.Validators[0].(func(string) error)
	// lessonDescModuleID is the schema descriptor for module_id field.
	lessonDescModuleID := lessonFields[1].Descriptor()
	// lesson.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	lesson.ModuleIDValidator = lessonDescModuleID.Validators[0].(func(string) error)
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[2].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescPosition is the schema descriptor for position field.
	lessonDescPosition := lessonFields[3].Descriptor()
	// lesson.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	lesson.PositionValidator = lessonDescPosition.Validators[0].(func(int) error)
	lessoncompletioneventMixin := schema.LessonCompletionEvent{}.Mixin()
	lessoncompletioneventMixinFields0 := lessoncompletioneventMixin[0].Fields()
	_ = lessoncompletioneventMixinFields0
	lessoncompletioneventFields := schema.LessonCompletionEvent{}.Fields()
	_ = lessoncompletioneventFields
	// lessoncompletioneventDescTimestamp is the schema descriptor for timestamp field.
	lessoncompletioneventDescTimestamp := lessoncompletioneventMixinFields0[1].Descriptor()
	// lessoncompletionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessoncompletionevent.DefaultTimestamp = lessoncompletioneventDescTimestamp.Default.(func() time.Time)
	// lessoncompletioneventDescGroupID is the schema descriptor for group_id field.
	lessoncompletioneventDescGroupID := lessoncompletioneventMixinFields0[2].Descriptor()
	// lessoncompletionevent.GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	lessoncompletionevent.GroupIDValidator = lessoncompletioneventDescGroupID.Validators[0].(func(string) error)
	// lessoncompletioneventDescEnrollmentID is the schema descriptor for enrollment_id field.
	lessoncompletioneventDescEnrollmentID := lessoncompletioneventFields[0].Descriptor()
	// lessoncompletionevent.EnrollmentIDValidator is a validator for the "enrollment_id" field. It is called by the builders before save.
	lessoncompletionevent.EnrollmentIDValidator = lessoncompletioneventDescEnrollmentID.Validators[0].(func(string) error)
	// lessoncompletioneventDescLessonID is the schema descriptor for lesson_id field.
	lessoncompletioneventDescLessonID := lessoncompletioneventFields[1].Descriptor()
	// lessoncompletionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessoncompletionevent.LessonIDValidator = lessoncompletioneventDescLessonID.Validators[0].(func(string) error)
	// lessoncompletioneventDescModuleID is the schema descriptor for module_id field.
	lessoncompletioneventDescModuleID := lessoncompletioneventFields[2].Descriptor()
	// lessoncompletionevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	lessoncompletionevent.ModuleIDValidator = lessoncompletioneventDescModuleID.Validators[0].(func(string) error)
	pointeventMixin := schema.PointEvent{}.Mixin()
	pointeventMixinFields0 := pointeventMixin[0].Fields()
	_ = pointeventMixinFields0
	pointeventFields := schema.PointEvent{}.Fields()
	_ = pointeventFields
	// pointeventDescTimestamp is the schema descriptor for timestamp field.
	pointeventDescTimestamp := pointeventMixinFields0[1].Descriptor()
	// pointevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pointevent.DefaultTimestamp = pointeventDescTimestamp.Default.(func() time.Time)
	// pointeventDescGroupID is the schema descriptor for group_id field.
	pointeventDescGroupID := pointeventMixinFields0[2].Descriptor()
	// pointevent.GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	pointevent.GroupIDValidator = pointeventDescGroupID.Validators[0].(func(string) error)
	// pointeventDescEnrollmentID is the schema descriptor for enrollment_id field.
	pointeventDescEnrollmentID := pointeventFields[0].Descriptor()
	// pointevent.EnrollmentIDValidator is a validator for the "enrollment_id" field. It is called by the builders before save.
	pointevent.EnrollmentIDValidator = pointeventDescEnrollmentID.Validators[0].(func(string) error)
	// pointeventDescPoints is the schema descriptor for points field.
	pointeventDescPoints := pointeventFields[1].Descriptor()
	// pointevent.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	pointevent.PointsValidator = pointeventDescPoints.Validators[0].(func(int) error)
	// pointeventDescReason is the schema descriptor for reason field.
	pointeventDescReason := pointeventFields[2].Descriptor()
	// pointevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	pointevent.ReasonValidator = pointeventDescReason.Validators[0].(func(string) error)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescPublicID is the schema descriptor for public_id field.
	questionDescPublicID := questionFields[0].Descriptor()
	// question.PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	question.PublicIDValidator = questionDescPublicID.Validators[0].(func(string) error)
	// questionDescLessonID is the schema descriptor for lesson_id field.
	questionDescLessonID := questionFields[1].Descriptor()
	// question.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	question.LessonIDValidator = questionDescLessonID.Validators[0].(func(string) error)
	// questionDescPosition is the schema descriptor for position field.
	questionDescPosition := questionFields[2].Descriptor()
	// question.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	question.PositionValidator = questionDescPosition.Validators[0].(func(int) error)
	// questionDescAssignmentQuestionID is the schema descriptor for assignment_question_id field.
	questionDescAssignmentQuestionID := questionFields[3].Descriptor()
	// question.AssignmentQuestionIDValidator is a validator for the "assignment_question_id" field. It is called by the builders before save.
	question.AssignmentQuestionIDValidator = questionDescAssignmentQuestionID.Validators[0].(func(string) error)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[5].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	questioneventMixin := schema.QuestionEvent{}.Mixin()
	questioneventMixinFields0 := questioneventMixin[0].Fields()
	_ = questioneventMixinFields0
	questioneventFields := schema.QuestionEvent{}.Fields()
	_ = questioneventFields
	// questioneventDescTimestamp is the schema descriptor for timestamp field.
	questioneventDescTimestamp := questioneventMixinFields0[1].Descriptor()
	// questionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	questionevent.DefaultTimestamp = questioneventDescTimestamp.Default.(func() time.Time)
	// questioneventDescGroupID is the schema descriptor for group_id field.
	questioneventDescGroupID := questioneventMixinFields0[2].Descriptor()
	// questionevent.GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	questionevent.GroupIDValidator = questioneventDescGroupID.Validators[0].(func(string) error)
	// questioneventDescEnrollmentID is the schema descriptor for enrollment_id field.
	questioneventDescEnrollmentID := questioneventFields[0].Descriptor()
	// questionevent.EnrollmentIDValidator is a validator for the "enrollment_id" field. It is called by the builders before save.
	questionevent.EnrollmentIDValidator = questioneventDescEnrollmentID.Validators[0].(func(string) error)
	// questioneventDescLessonID is the schema descriptor for lesson_id field.
	questioneventDescLessonID := questioneventFields[1].Descriptor()
	// questionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	questionevent.LessonIDValidator = questioneventDescLessonID.Validators[0].(func(string) error)
	// questioneventDescQuestionID is the schema descriptor for question_id field.
	questioneventDescQuestionID := questioneventFields[2].Descriptor()
	// questionevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	questionevent.QuestionIDValidator = questioneventDescQuestionID.Validators[0].(func(string) error)
	// questioneventDescAssignmentQuestionID is the schema descriptor for assignment_question_id field.
	questioneventDescAssignmentQuestionID := questioneventFields[3].Descriptor()
	// questionevent.AssignmentQuestionIDValidator is a validator for the "assignment_question_id" field. It is called by the builders before save.
	questionevent.AssignmentQuestionIDValidator = questioneventDescAssignmentQuestionID.Validators[0].(func(string) error)
	// questioneventDescAction is the schema descriptor for action field.
	questioneventDescAction := questioneventFields[5].Descriptor()
	// questionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	questionevent.ActionValidator = questioneventDescAction.Validators[0].(func(string) error)
	// questioneventDescCorrect is the schema descriptor for correct field.
	questioneventDescCorrect := questioneventFields[6].Descriptor()
	// questionevent.DefaultCorrect holds the default value on creation for the correct field.
	questionevent.DefaultCorrect = questioneventDescCorrect.Default.(bool)
	studentprofileFields := schema.StudentProfile{}.Fields()
	_ = studentprofileFields
	// studentprofileDescPublicID is the schema descriptor for public_id field.
	studentprofileDescPublicID := studentprofileFields[0].Descriptor()
	// studentprofile.PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	studentprofile.PublicIDValidator = studentprofileDescPublicID.Validators[0].(func(string) error)
	// studentprofileDescDisplayName is the schema descriptor for display_name field.
	studentprofileDescDisplayName := studentprofileFields[1].Descriptor()
	// studentprofile.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	studentprofile.DisplayNameValidator = studentprofileDescDisplayName.Validators[0].(func(string) error)
}
