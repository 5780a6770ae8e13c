package seeder

import (
	"fmt"

	"github.com/abhisek/paceseed/internal/store"
)

// Sandbox fixture IDs. Everything seeded carries the "sandbox-" prefix
// so cleanup can never touch real rows.
const (
	EducatorID   = "sandbox-educator-1"
	AssessmentID = "sandbox-assessment-1"
)

// studentNames is the synthetic roster name pool. Rosters larger than
// the pool get a numeric suffix.
var studentNames = []string{
	"Maya Lindqvist", "Omar Haddad", "Ines Moreau", "Jonas Weber",
	"Priya Nair", "Lucas Ferreira", "Amara Osei", "Felix Brandt",
	"Sofia Marchetti", "Daniel Kovacs", "Leila Benali", "Tomas Vrba",
	"Hana Sato", "Mateo Alvarez", "Nadia Petrova", "Oliver Jensen",
	"Zara Iqbal", "Emil Lindgren", "Clara Dubois", "Ravi Menon",
	"Alma Virtanen", "Theo Papadopoulos", "Yuki Tanaka", "Lena Hoffmann",
}

// StudentFixtures builds n synthetic students in roster order.
func StudentFixtures(n int) []store.StudentData {
	out := make([]store.StudentData, 0, n)
	for i := 0; i < n; i++ {
		name := studentNames[i%len(studentNames)]
		if i >= len(studentNames) {
			name = fmt.Sprintf("%s %d", name, i/len(studentNames)+1)
		}
		out = append(out, store.StudentData{
			ProfileID:    fmt.Sprintf("sandbox-student-%02d", i+1),
			EnrollmentID: fmt.Sprintf("sandbox-enrollment-%02d", i+1),
			DisplayName:  name,
		})
	}
	return out
}

// EducatorFixture is the sandbox teacher account.
func EducatorFixture() store.EducatorData {
	return store.EducatorData{
		PublicID: EducatorID,
		Name:     "Sandbox Teacher",
		Email:    "sandbox-teacher@example.com",
	}
}

// GroupFixture is the sandbox group row.
func GroupFixture(groupID string) store.GroupData {
	return store.GroupData{
		PublicID:   groupID,
		Name:       "Sandbox Demo Class",
		EducatorID: EducatorID,
	}
}

// CurriculumFixture is the fixed demo curriculum: three sequential
// modules of uneven size, every lesson gated by a mastery check. One
// question carries no knowledge component, which suppresses its shown
// event in the pacing engine.
func CurriculumFixture() []store.ModuleRow {
	return []store.ModuleRow{
		{
			PublicID: "sandbox-module-1",
			Title:    "Place Value and Rounding",
			Lessons: []store.LessonRow{
				lessonFixture(1, 1, "Reading large numbers", 3),
				lessonFixture(1, 2, "Rounding to the nearest ten", 4),
			},
		},
		{
			PublicID: "sandbox-module-2",
			Title:    "Multi-Digit Multiplication",
			Lessons: []store.LessonRow{
				lessonFixture(2, 1, "Multiplying by one-digit numbers", 4),
				lessonFixture(2, 2, "Area models", 3),
				lessonFixture(2, 3, "Two-digit by two-digit", 5),
			},
		},
		{
			PublicID: "sandbox-module-3",
			Title:    "Fractions",
			Lessons: []store.LessonRow{
				lessonFixture(3, 1, "Fractions on a number line", 3),
				lessonFixture(3, 2, "Equivalent fractions", 4),
			},
		},
	}
}

func lessonFixture(mod, les int, title string, questions int) store.LessonRow {
	row := store.LessonRow{
		PublicID:     fmt.Sprintf("sandbox-lesson-%d-%d", mod, les),
		Title:        title,
		AssignmentID: fmt.Sprintf("sandbox-check-%d-%d", mod, les),
	}
	for q := 1; q <= questions; q++ {
		kc := fmt.Sprintf("sandbox-kc-%d-%d", mod, les)
		// The last question of every third lesson has no knowledge
		// component, mirroring ungraded warm-up content.
		if q == questions && (mod+les)%3 == 0 {
			kc = ""
		}
		row.Questions = append(row.Questions, store.QuestionRow{
			PublicID:             fmt.Sprintf("sandbox-question-%d-%d-%d", mod, les, q),
			AssignmentQuestionID: fmt.Sprintf("sandbox-aq-%d-%d-%d", mod, les, q),
			KnowledgeComponentID: kc,
			Prompt:               fmt.Sprintf("Practice question %d for %s", q, title),
		})
	}
	return row
}
