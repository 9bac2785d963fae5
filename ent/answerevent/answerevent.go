// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionNumber holds the string denoting the question_number field in the database.
	FieldQuestionNumber = "question_number"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldStudentAnswer holds the string denoting the student_answer field in the database.
	FieldStudentAnswer = "student_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldPointsAwarded holds the string denoting the points_awarded field in the database.
	FieldPointsAwarded = "points_awarded"
	// FieldMaxPoints holds the string denoting the max_points field in the database.
	FieldMaxPoints = "max_points"
	// FieldReferenceAnswer holds the string denoting the reference_answer field in the database.
	FieldReferenceAnswer = "reference_answer"
	// FieldTimeSecs holds the string denoting the time_secs field in the database.
	FieldTimeSecs = "time_secs"
	// FieldHintUsed holds the string denoting the hint_used field in the database.
	FieldHintUsed = "hint_used"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldQuestionNumber,
	FieldKind,
	FieldDifficulty,
	FieldQuestionText,
	FieldStudentAnswer,
	FieldCorrect,
	FieldPointsAwarded,
	FieldMaxPoints,
	FieldReferenceAnswer,
	FieldTimeSecs,
	FieldHintUsed,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
	// StudentAnswerValidator is a validator for the "student_answer" field. It is called by the builders before save.
	StudentAnswerValidator func(string) error
	// DefaultReferenceAnswer holds the default value on creation for the "reference_answer" field.
	DefaultReferenceAnswer string
	// DefaultHintUsed holds the default value on creation for the "hint_used" field.
	DefaultHintUsed bool
)

// OrderOption defines the ordering options for the AnswerEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByQuestionNumber orders the results by the question_number field.
func ByQuestionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionNumber, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByStudentAnswer orders the results by the student_answer field.
func ByStudentAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByPointsAwarded orders the results by the points_awarded field.
func ByPointsAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsAwarded, opts...).ToFunc()
}

// ByMaxPoints orders the results by the max_points field.
func ByMaxPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxPoints, opts...).ToFunc()
}

// ByReferenceAnswer orders the results by the reference_answer field.
func ByReferenceAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceAnswer, opts...).ToFunc()
}

// ByTimeSecs orders the results by the time_secs field.
func ByTimeSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSecs, opts...).ToFunc()
}

// ByHintUsed orders the results by the hint_used field.
func ByHintUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintUsed, opts...).ToFunc()
}
