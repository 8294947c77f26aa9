// Code generated by ent, DO NOT EDIT.

package weightchangeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nvarma/quizfeed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldEventID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldUserID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldTopic, v))
}

// Subtopic applies equality check predicate on the "subtopic" field. It's identical to SubtopicEQ.
func Subtopic(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldSubtopic, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldBranch, v))
}

// Delta applies equality check predicate on the "delta" field. It's identical to DeltaEQ.
func Delta(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldDelta, v))
}

// SkipCompensationApplied applies equality check predicate on the "skip_compensation_applied" field. It's identical to SkipCompensationAppliedEQ.
func SkipCompensationApplied(v bool) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldSkipCompensationApplied, v))
}

// SkipCompensationTopic applies equality check predicate on the "skip_compensation_topic" field. It's identical to SkipCompensationTopicEQ.
func SkipCompensationTopic(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldSkipCompensationTopic, v))
}

// SkipCompensationSubtopic applies equality check predicate on the "skip_compensation_subtopic" field. It's identical to SkipCompensationSubtopicEQ.
func SkipCompensationSubtopic(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldSkipCompensationSubtopic, v))
}

// SkipCompensationBranch applies equality check predicate on the "skip_compensation_branch" field. It's identical to SkipCompensationBranchEQ.
func SkipCompensationBranch(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldSkipCompensationBranch, v))
}

// Origin applies equality check predicate on the "origin" field. It's identical to OriginEQ.
func Origin(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldOrigin, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// SyncedAt applies equality check predicate on the "synced_at" field. It's identical to SyncedAtEQ.
func SyncedAt(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldSyncedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldContainsFold(FieldEventID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldContainsFold(FieldUserID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldContainsFold(FieldTopic, v))
}

// SubtopicEQ applies the EQ predicate on the "subtopic" field.
func SubtopicEQ(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldSubtopic, v))
}

// SubtopicNEQ applies the NEQ predicate on the "subtopic" field.
func SubtopicNEQ(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldSubtopic, v))
}

// SubtopicIn applies the In predicate on the "subtopic" field.
func SubtopicIn(vs ...string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIn(FieldSubtopic, vs...))
}

// SubtopicNotIn applies the NotIn predicate on the "subtopic" field.
func SubtopicNotIn(vs ...string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotIn(FieldSubtopic, vs...))
}

// SubtopicGT applies the GT predicate on the "subtopic" field.
func SubtopicGT(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGT(FieldSubtopic, v))
}

// SubtopicGTE applies the GTE predicate on the "subtopic" field.
func SubtopicGTE(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGTE(FieldSubtopic, v))
}

// SubtopicLT applies the LT predicate on the "subtopic" field.
func SubtopicLT(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLT(FieldSubtopic, v))
}

// SubtopicLTE applies the LTE predicate on the "subtopic" field.
func SubtopicLTE(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLTE(FieldSubtopic, v))
}

// SubtopicContains applies the Contains predicate on the "subtopic" field.
func SubtopicContains(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldContains(FieldSubtopic, v))
}

// SubtopicHasPrefix applies the HasPrefix predicate on the "subtopic" field.
func SubtopicHasPrefix(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldHasPrefix(FieldSubtopic, v))
}

// SubtopicHasSuffix applies the HasSuffix predicate on the "subtopic" field.
func SubtopicHasSuffix(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldHasSuffix(FieldSubtopic, v))
}

// SubtopicEqualFold applies the EqualFold predicate on the "subtopic" field.
func SubtopicEqualFold(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEqualFold(FieldSubtopic, v))
}

// SubtopicContainsFold applies the ContainsFold predicate on the "subtopic" field.
func SubtopicContainsFold(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldContainsFold(FieldSubtopic, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldContainsFold(FieldBranch, v))
}

// DeltaEQ applies the EQ predicate on the "delta" field.
func DeltaEQ(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldDelta, v))
}

// DeltaNEQ applies the NEQ predicate on the "delta" field.
func DeltaNEQ(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldDelta, v))
}

// DeltaIn applies the In predicate on the "delta" field.
func DeltaIn(vs ...float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIn(FieldDelta, vs...))
}

// DeltaNotIn applies the NotIn predicate on the "delta" field.
func DeltaNotIn(vs ...float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotIn(FieldDelta, vs...))
}

// DeltaGT applies the GT predicate on the "delta" field.
func DeltaGT(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGT(FieldDelta, v))
}

// DeltaGTE applies the GTE predicate on the "delta" field.
func DeltaGTE(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGTE(FieldDelta, v))
}

// DeltaLT applies the LT predicate on the "delta" field.
func DeltaLT(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLT(FieldDelta, v))
}

// DeltaLTE applies the LTE predicate on the "delta" field.
func DeltaLTE(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLTE(FieldDelta, v))
}

// SkipCompensationAppliedEQ applies the EQ predicate on the "skip_compensation_applied" field.
func SkipCompensationAppliedEQ(v bool) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldSkipCompensationApplied, v))
}

// SkipCompensationAppliedNEQ applies the NEQ predicate on the "skip_compensation_applied" field.
func SkipCompensationAppliedNEQ(v bool) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldSkipCompensationApplied, v))
}

// SkipCompensationTopicEQ applies the EQ predicate on the "skip_compensation_topic" field.
func SkipCompensationTopicEQ(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldSkipCompensationTopic, v))
}

// SkipCompensationTopicNEQ applies the NEQ predicate on the "skip_compensation_topic" field.
func SkipCompensationTopicNEQ(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldSkipCompensationTopic, v))
}

// SkipCompensationTopicIn applies the In predicate on the "skip_compensation_topic" field.
func SkipCompensationTopicIn(vs ...float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIn(FieldSkipCompensationTopic, vs...))
}

// SkipCompensationTopicNotIn applies the NotIn predicate on the "skip_compensation_topic" field.
func SkipCompensationTopicNotIn(vs ...float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotIn(FieldSkipCompensationTopic, vs...))
}

// SkipCompensationTopicGT applies the GT predicate on the "skip_compensation_topic" field.
func SkipCompensationTopicGT(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGT(FieldSkipCompensationTopic, v))
}

// SkipCompensationTopicGTE applies the GTE predicate on the "skip_compensation_topic" field.
func SkipCompensationTopicGTE(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGTE(FieldSkipCompensationTopic, v))
}

// SkipCompensationTopicLT applies the LT predicate on the "skip_compensation_topic" field.
func SkipCompensationTopicLT(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLT(FieldSkipCompensationTopic, v))
}

// SkipCompensationTopicLTE applies the LTE predicate on the "skip_compensation_topic" field.
func SkipCompensationTopicLTE(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLTE(FieldSkipCompensationTopic, v))
}

// SkipCompensationSubtopicEQ applies the EQ predicate on the "skip_compensation_subtopic" field.
func SkipCompensationSubtopicEQ(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldSkipCompensationSubtopic, v))
}

// SkipCompensationSubtopicNEQ applies the NEQ predicate on the "skip_compensation_subtopic" field.
func SkipCompensationSubtopicNEQ(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldSkipCompensationSubtopic, v))
}

// SkipCompensationSubtopicIn applies the In predicate on the "skip_compensation_subtopic" field.
func SkipCompensationSubtopicIn(vs ...float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIn(FieldSkipCompensationSubtopic, vs...))
}

// SkipCompensationSubtopicNotIn applies the NotIn predicate on the "skip_compensation_subtopic" field.
func SkipCompensationSubtopicNotIn(vs ...float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotIn(FieldSkipCompensationSubtopic, vs...))
}

// SkipCompensationSubtopicGT applies the GT predicate on the "skip_compensation_subtopic" field.
func SkipCompensationSubtopicGT(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGT(FieldSkipCompensationSubtopic, v))
}

// SkipCompensationSubtopicGTE applies the GTE predicate on the "skip_compensation_subtopic" field.
func SkipCompensationSubtopicGTE(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGTE(FieldSkipCompensationSubtopic, v))
}

// SkipCompensationSubtopicLT applies the LT predicate on the "skip_compensation_subtopic" field.
func SkipCompensationSubtopicLT(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLT(FieldSkipCompensationSubtopic, v))
}

// SkipCompensationSubtopicLTE applies the LTE predicate on the "skip_compensation_subtopic" field.
func SkipCompensationSubtopicLTE(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLTE(FieldSkipCompensationSubtopic, v))
}

// SkipCompensationBranchEQ applies the EQ predicate on the "skip_compensation_branch" field.
func SkipCompensationBranchEQ(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldSkipCompensationBranch, v))
}

// SkipCompensationBranchNEQ applies the NEQ predicate on the "skip_compensation_branch" field.
func SkipCompensationBranchNEQ(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldSkipCompensationBranch, v))
}

// SkipCompensationBranchIn applies the In predicate on the "skip_compensation_branch" field.
func SkipCompensationBranchIn(vs ...float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIn(FieldSkipCompensationBranch, vs...))
}

// SkipCompensationBranchNotIn applies the NotIn predicate on the "skip_compensation_branch" field.
func SkipCompensationBranchNotIn(vs ...float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotIn(FieldSkipCompensationBranch, vs...))
}

// SkipCompensationBranchGT applies the GT predicate on the "skip_compensation_branch" field.
func SkipCompensationBranchGT(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGT(FieldSkipCompensationBranch, v))
}

// SkipCompensationBranchGTE applies the GTE predicate on the "skip_compensation_branch" field.
func SkipCompensationBranchGTE(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGTE(FieldSkipCompensationBranch, v))
}

// SkipCompensationBranchLT applies the LT predicate on the "skip_compensation_branch" field.
func SkipCompensationBranchLT(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLT(FieldSkipCompensationBranch, v))
}

// SkipCompensationBranchLTE applies the LTE predicate on the "skip_compensation_branch" field.
func SkipCompensationBranchLTE(v float64) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLTE(FieldSkipCompensationBranch, v))
}

// OriginEQ applies the EQ predicate on the "origin" field.
func OriginEQ(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldOrigin, v))
}

// OriginNEQ applies the NEQ predicate on the "origin" field.
func OriginNEQ(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldOrigin, v))
}

// OriginIn applies the In predicate on the "origin" field.
func OriginIn(vs ...string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIn(FieldOrigin, vs...))
}

// OriginNotIn applies the NotIn predicate on the "origin" field.
func OriginNotIn(vs ...string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotIn(FieldOrigin, vs...))
}

// OriginGT applies the GT predicate on the "origin" field.
func OriginGT(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGT(FieldOrigin, v))
}

// OriginGTE applies the GTE predicate on the "origin" field.
func OriginGTE(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGTE(FieldOrigin, v))
}

// OriginLT applies the LT predicate on the "origin" field.
func OriginLT(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLT(FieldOrigin, v))
}

// OriginLTE applies the LTE predicate on the "origin" field.
func OriginLTE(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLTE(FieldOrigin, v))
}

// OriginContains applies the Contains predicate on the "origin" field.
func OriginContains(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldContains(FieldOrigin, v))
}

// OriginHasPrefix applies the HasPrefix predicate on the "origin" field.
func OriginHasPrefix(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldHasPrefix(FieldOrigin, v))
}

// OriginHasSuffix applies the HasSuffix predicate on the "origin" field.
func OriginHasSuffix(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldHasSuffix(FieldOrigin, v))
}

// OriginEqualFold applies the EqualFold predicate on the "origin" field.
func OriginEqualFold(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEqualFold(FieldOrigin, v))
}

// OriginContainsFold applies the ContainsFold predicate on the "origin" field.
func OriginContainsFold(v string) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldContainsFold(FieldOrigin, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// SyncedAtEQ applies the EQ predicate on the "synced_at" field.
func SyncedAtEQ(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldEQ(FieldSyncedAt, v))
}

// SyncedAtNEQ applies the NEQ predicate on the "synced_at" field.
func SyncedAtNEQ(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNEQ(FieldSyncedAt, v))
}

// SyncedAtIn applies the In predicate on the "synced_at" field.
func SyncedAtIn(vs ...time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIn(FieldSyncedAt, vs...))
}

// SyncedAtNotIn applies the NotIn predicate on the "synced_at" field.
func SyncedAtNotIn(vs ...time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotIn(FieldSyncedAt, vs...))
}

// SyncedAtGT applies the GT predicate on the "synced_at" field.
func SyncedAtGT(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGT(FieldSyncedAt, v))
}

// SyncedAtGTE applies the GTE predicate on the "synced_at" field.
func SyncedAtGTE(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldGTE(FieldSyncedAt, v))
}

// SyncedAtLT applies the LT predicate on the "synced_at" field.
func SyncedAtLT(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLT(FieldSyncedAt, v))
}

// SyncedAtLTE applies the LTE predicate on the "synced_at" field.
func SyncedAtLTE(v time.Time) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldLTE(FieldSyncedAt, v))
}

// SyncedAtIsNil applies the IsNil predicate on the "synced_at" field.
func SyncedAtIsNil() predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldIsNull(FieldSyncedAt))
}

// SyncedAtNotNil applies the NotNil predicate on the "synced_at" field.
func SyncedAtNotNil() predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.FieldNotNull(FieldSyncedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WeightChangeEvent) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WeightChangeEvent) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WeightChangeEvent) predicate.WeightChangeEvent {
	return predicate.WeightChangeEvent(sql.NotPredicates(p))
}
