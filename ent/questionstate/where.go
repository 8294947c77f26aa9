// Code generated by ent, DO NOT EDIT.

package questionstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nvarma/quizfeed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEQ(FieldQuestionID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEQ(FieldStatus, v))
}

// AnswerIndex applies equality check predicate on the "answer_index" field. It's identical to AnswerIndexEQ.
func AnswerIndex(v int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEQ(FieldAnswerIndex, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEQ(FieldResolvedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldContainsFold(FieldQuestionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldContainsFold(FieldStatus, v))
}

// AnswerIndexEQ applies the EQ predicate on the "answer_index" field.
func AnswerIndexEQ(v int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEQ(FieldAnswerIndex, v))
}

// AnswerIndexNEQ applies the NEQ predicate on the "answer_index" field.
func AnswerIndexNEQ(v int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNEQ(FieldAnswerIndex, v))
}

// AnswerIndexIn applies the In predicate on the "answer_index" field.
func AnswerIndexIn(vs ...int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldIn(FieldAnswerIndex, vs...))
}

// AnswerIndexNotIn applies the NotIn predicate on the "answer_index" field.
func AnswerIndexNotIn(vs ...int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNotIn(FieldAnswerIndex, vs...))
}

// AnswerIndexGT applies the GT predicate on the "answer_index" field.
func AnswerIndexGT(v int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldGT(FieldAnswerIndex, v))
}

// AnswerIndexGTE applies the GTE predicate on the "answer_index" field.
func AnswerIndexGTE(v int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldGTE(FieldAnswerIndex, v))
}

// AnswerIndexLT applies the LT predicate on the "answer_index" field.
func AnswerIndexLT(v int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldLT(FieldAnswerIndex, v))
}

// AnswerIndexLTE applies the LTE predicate on the "answer_index" field.
func AnswerIndexLTE(v int) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldLTE(FieldAnswerIndex, v))
}

// AnswerIndexIsNil applies the IsNil predicate on the "answer_index" field.
func AnswerIndexIsNil() predicate.QuestionState {
	return predicate.QuestionState(sql.FieldIsNull(FieldAnswerIndex))
}

// AnswerIndexNotNil applies the NotNil predicate on the "answer_index" field.
func AnswerIndexNotNil() predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNotNull(FieldAnswerIndex))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.QuestionState {
	return predicate.QuestionState(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.QuestionState {
	return predicate.QuestionState(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.QuestionState {
	return predicate.QuestionState(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionState) predicate.QuestionState {
	return predicate.QuestionState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionState) predicate.QuestionState {
	return predicate.QuestionState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionState) predicate.QuestionState {
	return predicate.QuestionState(sql.NotPredicates(p))
}
