// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"github.com/nvarma/quizfeed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// Qid applies equality check predicate on the "qid" field. It's identical to QidEQ.
func Qid(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQid, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldText, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopic, v))
}

// Subtopic applies equality check predicate on the "subtopic" field. It's identical to SubtopicEQ.
func Subtopic(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubtopic, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldBranch, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSeq, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldFingerprint, v))
}

// QidEQ applies the EQ predicate on the "qid" field.
func QidEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQid, v))
}

// QidNEQ applies the NEQ predicate on the "qid" field.
func QidNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQid, v))
}

// QidIn applies the In predicate on the "qid" field.
func QidIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQid, vs...))
}

// QidNotIn applies the NotIn predicate on the "qid" field.
func QidNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQid, vs...))
}

// QidGT applies the GT predicate on the "qid" field.
func QidGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQid, v))
}

// QidGTE applies the GTE predicate on the "qid" field.
func QidGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQid, v))
}

// QidLT applies the LT predicate on the "qid" field.
func QidLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQid, v))
}

// QidLTE applies the LTE predicate on the "qid" field.
func QidLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQid, v))
}

// QidContains applies the Contains predicate on the "qid" field.
func QidContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQid, v))
}

// QidHasPrefix applies the HasPrefix predicate on the "qid" field.
func QidHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQid, v))
}

// QidHasSuffix applies the HasSuffix predicate on the "qid" field.
func QidHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQid, v))
}

// QidEqualFold applies the EqualFold predicate on the "qid" field.
func QidEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQid, v))
}

// QidContainsFold applies the ContainsFold predicate on the "qid" field.
func QidContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQid, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldText, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldTags))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldTopic, v))
}

// SubtopicEQ applies the EQ predicate on the "subtopic" field.
func SubtopicEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubtopic, v))
}

// SubtopicNEQ applies the NEQ predicate on the "subtopic" field.
func SubtopicNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubtopic, v))
}

// SubtopicIn applies the In predicate on the "subtopic" field.
func SubtopicIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubtopic, vs...))
}

// SubtopicNotIn applies the NotIn predicate on the "subtopic" field.
func SubtopicNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubtopic, vs...))
}

// SubtopicGT applies the GT predicate on the "subtopic" field.
func SubtopicGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSubtopic, v))
}

// SubtopicGTE applies the GTE predicate on the "subtopic" field.
func SubtopicGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSubtopic, v))
}

// SubtopicLT applies the LT predicate on the "subtopic" field.
func SubtopicLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSubtopic, v))
}

// SubtopicLTE applies the LTE predicate on the "subtopic" field.
func SubtopicLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSubtopic, v))
}

// SubtopicContains applies the Contains predicate on the "subtopic" field.
func SubtopicContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSubtopic, v))
}

// SubtopicHasPrefix applies the HasPrefix predicate on the "subtopic" field.
func SubtopicHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSubtopic, v))
}

// SubtopicHasSuffix applies the HasSuffix predicate on the "subtopic" field.
func SubtopicHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSubtopic, v))
}

// SubtopicEqualFold applies the EqualFold predicate on the "subtopic" field.
func SubtopicEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSubtopic, v))
}

// SubtopicContainsFold applies the ContainsFold predicate on the "subtopic" field.
func SubtopicContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSubtopic, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldBranch, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDifficulty, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSeq, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldFingerprint, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
