package report

import (
	"github.com/jiwoohan/record-analyzer/internal/model"
	"github.com/jiwoohan/record-analyzer/internal/rubric"
)

// TextField names one of the scalar text fields of an evaluation result.
type TextField string

const (
	FieldStudentName    TextField = "studentName"
	FieldTagline        TextField = "tagline"
	FieldCoreCompetency TextField = "coreCompetency"
	FieldKeyStrengths   TextField = "keyStrengths"
	FieldSuggestions    TextField = "suggestions"
)

// ExampleField names one attribute of an activity or inquiry example.
type ExampleField string

const (
	FieldTag         ExampleField = "tag"
	FieldTitle       ExampleField = "title"
	FieldDescription ExampleField = "description"
)

// Editor holds the live edited projection of an evaluation result. Every
// accepted edit produces a fresh EvaluationResult that shares untouched
// maps, slices and elements with its predecessor; siblings of an edited
// element are never reordered or dropped. Rejected edits leave the current
// snapshot untouched. Editor itself is not safe for concurrent use; callers
// serialize access (the session repository does).
type Editor struct {
	current model.EvaluationResult
}

// NewEditor wraps a received evaluation result for editing.
func NewEditor(result model.EvaluationResult) *Editor {
	return &Editor{current: result}
}

// Snapshot returns the current edited evaluation result.
func (e *Editor) Snapshot() model.EvaluationResult {
	return e.current
}

// SetScore replaces the score of one criterion, keeping its justification.
// The edit is silently rejected when the key is unknown, absent from the
// result, or the value is outside [3, MaxScoreOf(key)]. It reports whether
// the edit was applied.
func (e *Editor) SetScore(key rubric.Key, score int) bool {
	if !rubric.Contains(key) {
		return false
	}
	item, ok := e.current.Scores[key]
	if !ok {
		return false
	}
	if score < rubric.MinScore || score > rubric.MaxScoreOf(key) {
		return false
	}
	scores := make(map[rubric.Key]model.ScoreItem, len(e.current.Scores))
	for k, v := range e.current.Scores {
		scores[k] = v
	}
	item.Score = score
	scores[key] = item

	next := e.current
	next.Scores = scores
	e.current = next
	return true
}

// SetTextField replaces one scalar text field wholesale. Any string is
// accepted, including empty. Unknown field names are a no-op.
func (e *Editor) SetTextField(field TextField, value string) bool {
	next := e.current
	switch field {
	case FieldStudentName:
		next.StudentName = value
	case FieldTagline:
		next.Tagline = value
	case FieldCoreCompetency:
		next.CoreCompetency = value
	case FieldKeyStrengths:
		next.KeyStrengths = value
	case FieldSuggestions:
		next.Suggestions = value
	default:
		return false
	}
	e.current = next
	return true
}

// SetActivityField replaces one attribute of one representative activity.
// Out-of-range indexes and the tag field (activities have none) are no-ops.
func (e *Editor) SetActivityField(index int, field ExampleField, value string) bool {
	if index < 0 || index >= len(e.current.RepresentativeActivities) {
		return false
	}
	activities := make([]model.RepresentativeActivity, len(e.current.RepresentativeActivities))
	copy(activities, e.current.RepresentativeActivities)
	switch field {
	case FieldTitle:
		activities[index].Title = value
	case FieldDescription:
		activities[index].Description = value
	default:
		return false
	}
	next := e.current
	next.RepresentativeActivities = activities
	e.current = next
	return true
}

// SetExcellentExampleField replaces one attribute of one excellent inquiry
// example, leaving its siblings value-identical.
func (e *Editor) SetExcellentExampleField(index int, field ExampleField, value string) bool {
	if index < 0 || index >= len(e.current.InquiryExcellentExamples) {
		return false
	}
	examples := make([]model.InquiryExample, len(e.current.InquiryExcellentExamples))
	copy(examples, e.current.InquiryExcellentExamples)
	if !setExampleField(&examples[index], field, value) {
		return false
	}
	next := e.current
	next.InquiryExcellentExamples = examples
	e.current = next
	return true
}

// SetImprovementExampleField replaces one attribute of the singleton
// improvement example.
func (e *Editor) SetImprovementExampleField(field ExampleField, value string) bool {
	next := e.current
	if !setExampleField(&next.InquiryImprovementExample, field, value) {
		return false
	}
	e.current = next
	return true
}

func setExampleField(ex *model.InquiryExample, field ExampleField, value string) bool {
	switch field {
	case FieldTag:
		ex.Tag = value
	case FieldTitle:
		ex.Title = value
	case FieldDescription:
		ex.Description = value
	default:
		return false
	}
	return true
}
