// Code generated by ent, DO NOT EDIT.

package module

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the module type in the database.
	Label = "module"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPathID holds the string denoting the path_id field in the database.
	FieldPathID = "path_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldOrderIndex holds the string denoting the order_index field in the database.
	FieldOrderIndex = "order_index"
	// FieldIsCompleted holds the string denoting the is_completed field in the database.
	FieldIsCompleted = "is_completed"
	// FieldIsUnlocked holds the string denoting the is_unlocked field in the database.
	FieldIsUnlocked = "is_unlocked"
	// FieldTotalLessons holds the string denoting the total_lessons field in the database.
	FieldTotalLessons = "total_lessons"
	// FieldCompletedLessons holds the string denoting the completed_lessons field in the database.
	FieldCompletedLessons = "completed_lessons"
	// Table holds the table name of the module in the database.
	Table = "modules"
)

// Columns holds all SQL columns for module fields.
var Columns = []string{
	FieldID,
	FieldPathID,
	FieldTitle,
	FieldDescription,
	FieldOrderIndex,
	FieldIsCompleted,
	FieldIsUnlocked,
	FieldTotalLessons,
	FieldCompletedLessons,
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
	// PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	PathIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultIsCompleted holds the default value on creation for the "is_completed" field.
	DefaultIsCompleted bool
	// DefaultIsUnlocked holds the default value on creation for the "is_unlocked" field.
	DefaultIsUnlocked bool
	// DefaultTotalLessons holds the default value on creation for the "total_lessons" field.
	DefaultTotalLessons int
	// DefaultCompletedLessons holds the default value on creation for the "completed_lessons" field.
	DefaultCompletedLessons int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the Module queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPathID orders the results by the path_id field.
func ByPathID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByOrderIndex orders the results by the order_index field.
func ByOrderIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderIndex, opts...).ToFunc()
}

// ByIsCompleted orders the results by the is_completed field.
func ByIsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCompleted, opts...).ToFunc()
}

// ByIsUnlocked orders the results by the is_unlocked field.
func ByIsUnlocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsUnlocked, opts...).ToFunc()
}

// ByTotalLessons orders the results by the total_lessons field.
func ByTotalLessons(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalLessons, opts...).ToFunc()
}

// ByCompletedLessons orders the results by the completed_lessons field.
func ByCompletedLessons(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedLessons, opts...).ToFunc()
}
