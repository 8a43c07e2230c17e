// Code generated by ent, DO NOT EDIT.

package module

import (
	"entgo.io/ent/dialect/sql"
	"github.com/sagelearn/sage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Module {
	return predicate.Module(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Module {
	return predicate.Module(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Module {
	return predicate.Module(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Module {
	return predicate.Module(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Module {
	return predicate.Module(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Module {
	return predicate.Module(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Module {
	return predicate.Module(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Module {
	return predicate.Module(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Module {
	return predicate.Module(sql.FieldContainsFold(FieldID, id))
}

// PathID applies equality check predicate on the "path_id" field. It's identical to PathIDEQ.
func PathID(v string) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldPathID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldDescription, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldOrderIndex, v))
}

// IsCompleted applies equality check predicate on the "is_completed" field. It's identical to IsCompletedEQ.
func IsCompleted(v bool) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldIsCompleted, v))
}

// IsUnlocked applies equality check predicate on the "is_unlocked" field. It's identical to IsUnlockedEQ.
func IsUnlocked(v bool) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldIsUnlocked, v))
}

// TotalLessons applies equality check predicate on the "total_lessons" field. It's identical to TotalLessonsEQ.
func TotalLessons(v int) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldTotalLessons, v))
}

// CompletedLessons applies equality check predicate on the "completed_lessons" field. It's identical to CompletedLessonsEQ.
func CompletedLessons(v int) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldCompletedLessons, v))
}

// PathIDEQ applies the EQ predicate on the "path_id" field.
func PathIDEQ(v string) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldPathID, v))
}

// PathIDNEQ applies the NEQ predicate on the "path_id" field.
func PathIDNEQ(v string) predicate.Module {
	return predicate.Module(sql.FieldNEQ(FieldPathID, v))
}

// PathIDIn applies the In predicate on the "path_id" field.
func PathIDIn(vs ...string) predicate.Module {
	return predicate.Module(sql.FieldIn(FieldPathID, vs...))
}

// PathIDNotIn applies the NotIn predicate on the "path_id" field.
func PathIDNotIn(vs ...string) predicate.Module {
	return predicate.Module(sql.FieldNotIn(FieldPathID, vs...))
}

// PathIDGT applies the GT predicate on the "path_id" field.
func PathIDGT(v string) predicate.Module {
	return predicate.Module(sql.FieldGT(FieldPathID, v))
}

// PathIDGTE applies the GTE predicate on the "path_id" field.
func PathIDGTE(v string) predicate.Module {
	return predicate.Module(sql.FieldGTE(FieldPathID, v))
}

// PathIDLT applies the LT predicate on the "path_id" field.
func PathIDLT(v string) predicate.Module {
	return predicate.Module(sql.FieldLT(FieldPathID, v))
}

// PathIDLTE applies the LTE predicate on the "path_id" field.
func PathIDLTE(v string) predicate.Module {
	return predicate.Module(sql.FieldLTE(FieldPathID, v))
}

// PathIDContains applies the Contains predicate on the "path_id" field.
func PathIDContains(v string) predicate.Module {
	return predicate.Module(sql.FieldContains(FieldPathID, v))
}

// PathIDHasPrefix applies the HasPrefix predicate on the "path_id" field.
func PathIDHasPrefix(v string) predicate.Module {
	return predicate.Module(sql.FieldHasPrefix(FieldPathID, v))
}

// PathIDHasSuffix applies the HasSuffix predicate on the "path_id" field.
func PathIDHasSuffix(v string) predicate.Module {
	return predicate.Module(sql.FieldHasSuffix(FieldPathID, v))
}

// PathIDEqualFold applies the EqualFold predicate on the "path_id" field.
func PathIDEqualFold(v string) predicate.Module {
	return predicate.Module(sql.FieldEqualFold(FieldPathID, v))
}

// PathIDContainsFold applies the ContainsFold predicate on the "path_id" field.
func PathIDContainsFold(v string) predicate.Module {
	return predicate.Module(sql.FieldContainsFold(FieldPathID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Module {
	return predicate.Module(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Module {
	return predicate.Module(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Module {
	return predicate.Module(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Module {
	return predicate.Module(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Module {
	return predicate.Module(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Module {
	return predicate.Module(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Module {
	return predicate.Module(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Module {
	return predicate.Module(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Module {
	return predicate.Module(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Module {
	return predicate.Module(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Module {
	return predicate.Module(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Module {
	return predicate.Module(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Module {
	return predicate.Module(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Module {
	return predicate.Module(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Module {
	return predicate.Module(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Module {
	return predicate.Module(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Module {
	return predicate.Module(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Module {
	return predicate.Module(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Module {
	return predicate.Module(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Module {
	return predicate.Module(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Module {
	return predicate.Module(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Module {
	return predicate.Module(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Module {
	return predicate.Module(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Module {
	return predicate.Module(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Module {
	return predicate.Module(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Module {
	return predicate.Module(sql.FieldContainsFold(FieldDescription, v))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.Module {
	return predicate.Module(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.Module {
	return predicate.Module(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.Module {
	return predicate.Module(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.Module {
	return predicate.Module(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.Module {
	return predicate.Module(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.Module {
	return predicate.Module(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.Module {
	return predicate.Module(sql.FieldLTE(FieldOrderIndex, v))
}

// IsCompletedEQ applies the EQ predicate on the "is_completed" field.
func IsCompletedEQ(v bool) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldIsCompleted, v))
}

// IsCompletedNEQ applies the NEQ predicate on the "is_completed" field.
func IsCompletedNEQ(v bool) predicate.Module {
	return predicate.Module(sql.FieldNEQ(FieldIsCompleted, v))
}

// IsUnlockedEQ applies the EQ predicate on the "is_unlocked" field.
func IsUnlockedEQ(v bool) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldIsUnlocked, v))
}

// IsUnlockedNEQ applies the NEQ predicate on the "is_unlocked" field.
func IsUnlockedNEQ(v bool) predicate.Module {
	return predicate.Module(sql.FieldNEQ(FieldIsUnlocked, v))
}

// TotalLessonsEQ applies the EQ predicate on the "total_lessons" field.
func TotalLessonsEQ(v int) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldTotalLessons, v))
}

// TotalLessonsNEQ applies the NEQ predicate on the "total_lessons" field.
func TotalLessonsNEQ(v int) predicate.Module {
	return predicate.Module(sql.FieldNEQ(FieldTotalLessons, v))
}

// TotalLessonsIn applies the In predicate on the "total_lessons" field.
func TotalLessonsIn(vs ...int) predicate.Module {
	return predicate.Module(sql.FieldIn(FieldTotalLessons, vs...))
}

// TotalLessonsNotIn applies the NotIn predicate on the "total_lessons" field.
func TotalLessonsNotIn(vs ...int) predicate.Module {
	return predicate.Module(sql.FieldNotIn(FieldTotalLessons, vs...))
}

// TotalLessonsGT applies the GT predicate on the "total_lessons" field.
func TotalLessonsGT(v int) predicate.Module {
	return predicate.Module(sql.FieldGT(FieldTotalLessons, v))
}

// TotalLessonsGTE applies the GTE predicate on the "total_lessons" field.
func TotalLessonsGTE(v int) predicate.Module {
	return predicate.Module(sql.FieldGTE(FieldTotalLessons, v))
}

// TotalLessonsLT applies the LT predicate on the "total_lessons" field.
func TotalLessonsLT(v int) predicate.Module {
	return predicate.Module(sql.FieldLT(FieldTotalLessons, v))
}

// TotalLessonsLTE applies the LTE predicate on the "total_lessons" field.
func TotalLessonsLTE(v int) predicate.Module {
	return predicate.Module(sql.FieldLTE(FieldTotalLessons, v))
}

// CompletedLessonsEQ applies the EQ predicate on the "completed_lessons" field.
func CompletedLessonsEQ(v int) predicate.Module {
	return predicate.Module(sql.FieldEQ(FieldCompletedLessons, v))
}

// CompletedLessonsNEQ applies the NEQ predicate on the "completed_lessons" field.
func CompletedLessonsNEQ(v int) predicate.Module {
	return predicate.Module(sql.FieldNEQ(FieldCompletedLessons, v))
}

// CompletedLessonsIn applies the In predicate on the "completed_lessons" field.
func CompletedLessonsIn(vs ...int) predicate.Module {
	return predicate.Module(sql.FieldIn(FieldCompletedLessons, vs...))
}

// CompletedLessonsNotIn applies the NotIn predicate on the "completed_lessons" field.
func CompletedLessonsNotIn(vs ...int) predicate.Module {
	return predicate.Module(sql.FieldNotIn(FieldCompletedLessons, vs...))
}

// CompletedLessonsGT applies the GT predicate on the "completed_lessons" field.
func CompletedLessonsGT(v int) predicate.Module {
	return predicate.Module(sql.FieldGT(FieldCompletedLessons, v))
}

// CompletedLessonsGTE applies the GTE predicate on the "completed_lessons" field.
func CompletedLessonsGTE(v int) predicate.Module {
	return predicate.Module(sql.FieldGTE(FieldCompletedLessons, v))
}

// CompletedLessonsLT applies the LT predicate on the "completed_lessons" field.
func CompletedLessonsLT(v int) predicate.Module {
	return predicate.Module(sql.FieldLT(FieldCompletedLessons, v))
}

// CompletedLessonsLTE applies the LTE predicate on the "completed_lessons" field.
func CompletedLessonsLTE(v int) predicate.Module {
	return predicate.Module(sql.FieldLTE(FieldCompletedLessons, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Module) predicate.Module {
	return predicate.Module(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Module) predicate.Module {
	return predicate.Module(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Module) predicate.Module {
	return predicate.Module(sql.NotPredicates(p))
}
