package feedback

import (
	"context"
	"fmt"
)

// cannedTexts holds comment templates per tone. The %s slots are the
// student's first name and the lesson title.
var cannedTexts = map[string][]string{
	"praise": {
		"Excellent work on %[2]s, %[1]s. Every answer landed first try.",
		"%[1]s flew through %[2]s. Ready for something harder.",
		"Really strong session on %[2]s. Keep this streak going, %[1]s.",
	},
	"encouragement": {
		"Good progress on %[2]s, %[1]s. One or two slips, nothing a quick review won't fix.",
		"%[1]s is getting the hang of %[2]s. A little more practice will make it stick.",
		"Solid effort on %[2]s. Revisit the last two questions when you get a chance, %[1]s.",
	},
	"guidance": {
		"%[2]s gave %[1]s some trouble. Let's go over the worked examples together.",
		"Tough session on %[2]s. We'll slow down and rebuild this one step by step, %[1]s.",
		"%[1]s should redo the practice set for %[2]s before the next check.",
	},
}

// CannedGenerator picks from a fixed comment pool. Selection is a pure
// function of the input, so reruns produce identical comments.
type CannedGenerator struct{}

// NewCanned creates the canned generator.
func NewCanned() *CannedGenerator {
	return &CannedGenerator{}
}

func (g *CannedGenerator) Comment(_ context.Context, in Input) (*Comment, error) {
	tone := ToneFor(in.Score)
	pool := cannedTexts[tone]

	sum := 0
	for _, c := range in.StudentName + in.LessonTitle {
		sum += int(c)
	}
	text := fmt.Sprintf(pool[sum%len(pool)], in.StudentName, in.LessonTitle)

	if in.Delayed {
		text += " Nice to see this wrapped up, even a few days late."
	}

	return &Comment{Text: text, Tone: tone, Generator: "canned"}, nil
}
