// Code generated by ent, DO NOT EDIT.

package topicweight

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nvarma/quizfeed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldUserID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldTopic, v))
}

// Subtopic applies equality check predicate on the "subtopic" field. It's identical to SubtopicEQ.
func Subtopic(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldSubtopic, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldBranch, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldScore, v))
}

// SampleCount applies equality check predicate on the "sample_count" field. It's identical to SampleCountEQ.
func SampleCount(v int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldSampleCount, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldLastUpdated, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldContainsFold(FieldUserID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldContainsFold(FieldTopic, v))
}

// SubtopicEQ applies the EQ predicate on the "subtopic" field.
func SubtopicEQ(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldSubtopic, v))
}

// SubtopicNEQ applies the NEQ predicate on the "subtopic" field.
func SubtopicNEQ(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNEQ(FieldSubtopic, v))
}

// SubtopicIn applies the In predicate on the "subtopic" field.
func SubtopicIn(vs ...string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldIn(FieldSubtopic, vs...))
}

// SubtopicNotIn applies the NotIn predicate on the "subtopic" field.
func SubtopicNotIn(vs ...string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNotIn(FieldSubtopic, vs...))
}

// SubtopicGT applies the GT predicate on the "subtopic" field.
func SubtopicGT(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGT(FieldSubtopic, v))
}

// SubtopicGTE applies the GTE predicate on the "subtopic" field.
func SubtopicGTE(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGTE(FieldSubtopic, v))
}

// SubtopicLT applies the LT predicate on the "subtopic" field.
func SubtopicLT(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLT(FieldSubtopic, v))
}

// SubtopicLTE applies the LTE predicate on the "subtopic" field.
func SubtopicLTE(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLTE(FieldSubtopic, v))
}

// SubtopicContains applies the Contains predicate on the "subtopic" field.
func SubtopicContains(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldContains(FieldSubtopic, v))
}

// SubtopicHasPrefix applies the HasPrefix predicate on the "subtopic" field.
func SubtopicHasPrefix(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldHasPrefix(FieldSubtopic, v))
}

// SubtopicHasSuffix applies the HasSuffix predicate on the "subtopic" field.
func SubtopicHasSuffix(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldHasSuffix(FieldSubtopic, v))
}

// SubtopicEqualFold applies the EqualFold predicate on the "subtopic" field.
func SubtopicEqualFold(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEqualFold(FieldSubtopic, v))
}

// SubtopicContainsFold applies the ContainsFold predicate on the "subtopic" field.
func SubtopicContainsFold(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldContainsFold(FieldSubtopic, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldContainsFold(FieldBranch, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLTE(FieldScore, v))
}

// SampleCountEQ applies the EQ predicate on the "sample_count" field.
func SampleCountEQ(v int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldSampleCount, v))
}

// SampleCountNEQ applies the NEQ predicate on the "sample_count" field.
func SampleCountNEQ(v int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNEQ(FieldSampleCount, v))
}

// SampleCountIn applies the In predicate on the "sample_count" field.
func SampleCountIn(vs ...int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldIn(FieldSampleCount, vs...))
}

// SampleCountNotIn applies the NotIn predicate on the "sample_count" field.
func SampleCountNotIn(vs ...int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNotIn(FieldSampleCount, vs...))
}

// SampleCountGT applies the GT predicate on the "sample_count" field.
func SampleCountGT(v int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGT(FieldSampleCount, v))
}

// SampleCountGTE applies the GTE predicate on the "sample_count" field.
func SampleCountGTE(v int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGTE(FieldSampleCount, v))
}

// SampleCountLT applies the LT predicate on the "sample_count" field.
func SampleCountLT(v int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLT(FieldSampleCount, v))
}

// SampleCountLTE applies the LTE predicate on the "sample_count" field.
func SampleCountLTE(v int) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLTE(FieldSampleCount, v))
}

// RecentIsNil applies the IsNil predicate on the "recent" field.
func RecentIsNil() predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldIsNull(FieldRecent))
}

// RecentNotNil applies the NotNil predicate on the "recent" field.
func RecentNotNil() predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNotNull(FieldRecent))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.TopicWeight {
	return predicate.TopicWeight(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicWeight) predicate.TopicWeight {
	return predicate.TopicWeight(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicWeight) predicate.TopicWeight {
	return predicate.TopicWeight(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicWeight) predicate.TopicWeight {
	return predicate.TopicWeight(sql.NotPredicates(p))
}
