// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "qid", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "subtopic", Type: field.TypeString, Default: ""},
		{Name: "branch", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeInt, Default: 0},
		{Name: "seq", Type: field.TypeInt64, Unique: true},
		{Name: "fingerprint", Type: field.TypeString, Unique: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_topic",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[4]},
			},
			{
				Name:    "question_topic_subtopic",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[4], QuestionsColumns[5]},
			},
		},
	}
	// QuestionStatesColumns holds the columns for the "question_states" table.
	QuestionStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "unanswered"},
		{Name: "answer_index", Type: field.TypeInt, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// QuestionStatesTable holds the schema information for the "question_states" table.
	QuestionStatesTable = &schema.Table{
		Name:       "question_states",
		Columns:    QuestionStatesColumns,
		PrimaryKey: []*schema.Column{QuestionStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionstate_user_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{QuestionStatesColumns[1], QuestionStatesColumns[2]},
			},
			{
				Name:    "questionstate_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{QuestionStatesColumns[1], QuestionStatesColumns[3]},
			},
		},
	}
	// TopicWeightsColumns holds the columns for the "topic_weights" table.
	TopicWeightsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "subtopic", Type: field.TypeString, Default: ""},
		{Name: "branch", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "sample_count", Type: field.TypeInt, Default: 0},
		{Name: "recent", Type: field.TypeJSON, Nullable: true},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// TopicWeightsTable holds the schema information for the "topic_weights" table.
	TopicWeightsTable = &schema.Table{
		Name:       "topic_weights",
		Columns:    TopicWeightsColumns,
		PrimaryKey: []*schema.Column{TopicWeightsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicweight_user_id_topic_subtopic_branch",
				Unique:  true,
				Columns: []*schema.Column{TopicWeightsColumns[1], TopicWeightsColumns[2], TopicWeightsColumns[3], TopicWeightsColumns[4]},
			},
			{
				Name:    "topicweight_user_id",
				Unique:  false,
				Columns: []*schema.Column{TopicWeightsColumns[1]},
			},
		},
	}
	// WeightChangeEventsColumns holds the columns for the "weight_change_events" table.
	WeightChangeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "subtopic", Type: field.TypeString, Default: ""},
		{Name: "branch", Type: field.TypeString, Default: ""},
		{Name: "delta", Type: field.TypeFloat64},
		{Name: "skip_compensation_applied", Type: field.TypeBool, Default: false},
		{Name: "skip_compensation_topic", Type: field.TypeFloat64, Default: 0},
		{Name: "skip_compensation_subtopic", Type: field.TypeFloat64, Default: 0},
		{Name: "skip_compensation_branch", Type: field.TypeFloat64, Default: 0},
		{Name: "origin", Type: field.TypeString, Default: "local"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "synced_at", Type: field.TypeTime, Nullable: true},
	}
	// WeightChangeEventsTable holds the schema information for the "weight_change_events" table.
	WeightChangeEventsTable = &schema.Table{
		Name:       "weight_change_events",
		Columns:    WeightChangeEventsColumns,
		PrimaryKey: []*schema.Column{WeightChangeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "weightchangeevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{WeightChangeEventsColumns[2]},
			},
			{
				Name:    "weightchangeevent_synced_at",
				Unique:  false,
				Columns: []*schema.Column{WeightChangeEventsColumns[13]},
			},
			{
				Name:    "weightchangeevent_origin_created_at",
				Unique:  false,
				Columns: []*schema.Column{WeightChangeEventsColumns[11], WeightChangeEventsColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QuestionsTable,
		QuestionStatesTable,
		TopicWeightsTable,
		WeightChangeEventsTable,
	}
)

func init() {
}
