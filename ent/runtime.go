// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nvarma/quizfeed/ent/question"
	"github.com/nvarma/quizfeed/ent/questionstate"
	"github.com/nvarma/quizfeed/ent/schema"
	"github.com/nvarma/quizfeed/ent/topicweight"
	"github.com/nvarma/quizfeed/ent/weightchangeevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQid is the schema descriptor for qid field.
	questionDescQid := questionFields[0].Descriptor()
	// question.QidValidator is a validator for the "qid" field. It is called by the builders before save.
	question.QidValidator = questionDescQid.Validators[0].(func(string) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[1].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescTopic is the schema descriptor for topic field.
	questionDescTopic := questionFields[3].Descriptor()
	// question.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	question.TopicValidator = questionDescTopic.Validators[0].(func(string) error)
	// questionDescSubtopic is the schema descriptor for subtopic field.
	questionDescSubtopic := questionFields[4].Descriptor()
	// question.DefaultSubtopic holds the default value on creation for the subtopic field.
	question.DefaultSubtopic = questionDescSubtopic.Default.(string)
	// questionDescBranch is the schema descriptor for branch field.
	questionDescBranch := questionFields[5].Descriptor()
	// question.DefaultBranch holds the default value on creation for the branch field.
	question.DefaultBranch = questionDescBranch.Default.(string)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[6].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(int)
	// questionDescFingerprint is the schema descriptor for fingerprint field.
	questionDescFingerprint := questionFields[8].Descriptor()
	// question.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	question.FingerprintValidator = questionDescFingerprint.Validators[0].(func(string) error)
	questionstateFields := schema.QuestionState{}.Fields()
	_ = questionstateFields
	// questionstateDescUserID is the schema descriptor for user_id field.
	questionstateDescUserID := questionstateFields[0].Descriptor()
	// questionstate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	questionstate.UserIDValidator = questionstateDescUserID.Validators[0].(func(string) error)
	// questionstateDescQuestionID is the schema descriptor for question_id field.
	questionstateDescQuestionID := questionstateFields[1].Descriptor()
	// questionstate.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	questionstate.QuestionIDValidator = questionstateDescQuestionID.Validators[0].(func(string) error)
	// questionstateDescStatus is the schema descriptor for status field.
	questionstateDescStatus := questionstateFields[2].Descriptor()
	// questionstate.DefaultStatus holds the default value on creation for the status field.
	questionstate.DefaultStatus = questionstateDescStatus.Default.(string)
	topicweightFields := schema.TopicWeight{}.Fields()
	_ = topicweightFields
	// topicweightDescUserID is the schema descriptor for user_id field.
	topicweightDescUserID := topicweightFields[0].Descriptor()
	// topicweight.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	topicweight.UserIDValidator = topicweightDescUserID.Validators[0].(func(string) error)
	// topicweightDescTopic is the schema descriptor for topic field.
	topicweightDescTopic := topicweightFields[1].Descriptor()
	// topicweight.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	topicweight.TopicValidator = topicweightDescTopic.Validators[0].(func(string) error)
	// topicweightDescSubtopic is the schema descriptor for subtopic field.
	topicweightDescSubtopic := topicweightFields[2].Descriptor()
	// topicweight.DefaultSubtopic holds the default value on creation for the subtopic field.
	topicweight.DefaultSubtopic = topicweightDescSubtopic.Default.(string)
	// topicweightDescBranch is the schema descriptor for branch field.
	topicweightDescBranch := topicweightFields[3].Descriptor()
	// topicweight.DefaultBranch holds the default value on creation for the branch field.
	topicweight.DefaultBranch = topicweightDescBranch.Default.(string)
	// topicweightDescSampleCount is the schema descriptor for sample_count field.
	topicweightDescSampleCount := topicweightFields[5].Descriptor()
	// topicweight.DefaultSampleCount holds the default value on creation for the sample_count field.
	topicweight.DefaultSampleCount = topicweightDescSampleCount.Default.(int)
	weightchangeeventFields := schema.WeightChangeEvent{}.Fields()
	_ = weightchangeeventFields
	// weightchangeeventDescEventID is the schema descriptor for event_id field.
	weightchangeeventDescEventID := weightchangeeventFields[0].Descriptor()
	// weightchangeevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	weightchangeevent.EventIDValidator = weightchangeeventDescEventID.Validators[0].(func(string) error)
	// weightchangeeventDescUserID is the schema descriptor for user_id field.
	weightchangeeventDescUserID := weightchangeeventFields[1].Descriptor()
	// weightchangeevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	weightchangeevent.UserIDValidator = weightchangeeventDescUserID.Validators[0].(func(string) error)
	// weightchangeeventDescTopic is the schema descriptor for topic field.
	weightchangeeventDescTopic := weightchangeeventFields[2].Descriptor()
	// weightchangeevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	weightchangeevent.TopicValidator = weightchangeeventDescTopic.Validators[0].(func(string) error)
	// weightchangeeventDescSubtopic is the schema descriptor for subtopic field.
	weightchangeeventDescSubtopic := weightchangeeventFields[3].Descriptor()
	// weightchangeevent.DefaultSubtopic holds the default value on creation for the subtopic field.
	weightchangeevent.DefaultSubtopic = weightchangeeventDescSubtopic.Default.(string)
	// weightchangeeventDescBranch is the schema descriptor for branch field.
	weightchangeeventDescBranch := weightchangeeventFields[4].Descriptor()
	// weightchangeevent.DefaultBranch holds the default value on creation for the branch field.
	weightchangeevent.DefaultBranch = weightchangeeventDescBranch.Default.(string)
	// weightchangeeventDescSkipCompensationApplied is the schema descriptor for skip_compensation_applied field.
	weightchangeeventDescSkipCompensationApplied := weightchangeeventFields[6].Descriptor()
	// weightchangeevent.DefaultSkipCompensationApplied holds the default value on creation for the skip_compensation_applied field.
	weightchangeevent.DefaultSkipCompensationApplied = weightchangeeventDescSkipCompensationApplied.Default.(bool)
	// weightchangeeventDescSkipCompensationTopic is the schema descriptor for skip_compensation_topic field.
	weightchangeeventDescSkipCompensationTopic := weightchangeeventFields[7].Descriptor()
	// weightchangeevent.DefaultSkipCompensationTopic holds the default value on creation for the skip_compensation_topic field.
	weightchangeevent.DefaultSkipCompensationTopic = weightchangeeventDescSkipCompensationTopic.Default.(float64)
	// weightchangeeventDescSkipCompensationSubtopic is the schema descriptor for skip_compensation_subtopic field.
	weightchangeeventDescSkipCompensationSubtopic := weightchangeeventFields[8].Descriptor()
	// weightchangeevent.DefaultSkipCompensationSubtopic holds the default value on creation for the skip_compensation_subtopic field.
	weightchangeevent.DefaultSkipCompensationSubtopic = weightchangeeventDescSkipCompensationSubtopic.Default.(float64)
	// weightchangeeventDescSkipCompensationBranch is the schema descriptor for skip_compensation_branch field.
	weightchangeeventDescSkipCompensationBranch := weightchangeeventFields[9].Descriptor()
	// weightchangeevent.DefaultSkipCompensationBranch holds the default value on creation for the skip_compensation_branch field.
	weightchangeevent.DefaultSkipCompensationBranch = weightchangeeventDescSkipCompensationBranch.Default.(float64)
	// weightchangeeventDescOrigin is the schema descriptor for origin field.
	weightchangeeventDescOrigin := weightchangeeventFields[10].Descriptor()
	// weightchangeevent.DefaultOrigin holds the default value on creation for the origin field.
	weightchangeevent.DefaultOrigin = weightchangeeventDescOrigin.Default.(string)
	// weightchangeeventDescCreatedAt is the schema descriptor for created_at field.
	weightchangeeventDescCreatedAt := weightchangeeventFields[11].Descriptor()
	// weightchangeevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	weightchangeevent.DefaultCreatedAt = weightchangeeventDescCreatedAt.Default.(func() time.Time)
}
