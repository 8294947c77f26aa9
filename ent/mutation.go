// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nvarma/quizfeed/ent/predicate"
	"github.com/nvarma/quizfeed/ent/question"
	"github.com/nvarma/quizfeed/ent/questionstate"
	"github.com/nvarma/quizfeed/ent/topicweight"
	"github.com/nvarma/quizfeed/ent/weightchangeevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeQuestion          = "Question"
	TypeQuestionState     = "QuestionState"
	TypeTopicWeight       = "TopicWeight"
	TypeWeightChangeEvent = "WeightChangeEvent"
)

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	qid           *string
	text          *string
	tags          *[]string
	appendtags    []string
	topic         *string
	subtopic      *string
	branch        *string
	difficulty    *int
	adddifficulty *int
	seq           *int64
	addseq        *int64
	fingerprint   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Question, error)
	predicates    []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id int) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQid sets the "qid" field.
func (m *QuestionMutation) SetQid(s string) {
	m.qid = &s
}

// Qid returns the value of the "qid" field in the mutation.
func (m *QuestionMutation) Qid() (r string, exists bool) {
	v := m.qid
	if v == nil {
		return
	}
	return *v, true
}

// OldQid returns the old "qid" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQid: %w", err)
	}
	return oldValue.Qid, nil
}

// ResetQid resets all changes to the "qid" field.
func (m *QuestionMutation) ResetQid() {
	m.qid = nil
}

// SetText sets the "text" field.
func (m *QuestionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *QuestionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *QuestionMutation) ResetText() {
	m.text = nil
}

// SetTags sets the "tags" field.
func (m *QuestionMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *QuestionMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *QuestionMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *QuestionMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *QuestionMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[question.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *QuestionMutation) TagsCleared() bool {
	_, ok := m.clearedFields[question.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *QuestionMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, question.FieldTags)
}

// SetTopic sets the "topic" field.
func (m *QuestionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *QuestionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *QuestionMutation) ResetTopic() {
	m.topic = nil
}

// SetSubtopic sets the "subtopic" field.
func (m *QuestionMutation) SetSubtopic(s string) {
	m.subtopic = &s
}

// Subtopic returns the value of the "subtopic" field in the mutation.
func (m *QuestionMutation) Subtopic() (r string, exists bool) {
	v := m.subtopic
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopic returns the old "subtopic" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSubtopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopic: %w", err)
	}
	return oldValue.Subtopic, nil
}

// ResetSubtopic resets all changes to the "subtopic" field.
func (m *QuestionMutation) ResetSubtopic() {
	m.subtopic = nil
}

// SetBranch sets the "branch" field.
func (m *QuestionMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *QuestionMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *QuestionMutation) ResetBranch() {
	m.branch = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *QuestionMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *QuestionMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *QuestionMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *QuestionMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *QuestionMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetSeq sets the "seq" field.
func (m *QuestionMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *QuestionMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *QuestionMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *QuestionMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *QuestionMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *QuestionMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *QuestionMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *QuestionMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.qid != nil {
		fields = append(fields, question.FieldQid)
	}
	if m.text != nil {
		fields = append(fields, question.FieldText)
	}
	if m.tags != nil {
		fields = append(fields, question.FieldTags)
	}
	if m.topic != nil {
		fields = append(fields, question.FieldTopic)
	}
	if m.subtopic != nil {
		fields = append(fields, question.FieldSubtopic)
	}
	if m.branch != nil {
		fields = append(fields, question.FieldBranch)
	}
	if m.difficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.seq != nil {
		fields = append(fields, question.FieldSeq)
	}
	if m.fingerprint != nil {
		fields = append(fields, question.FieldFingerprint)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldQid:
		return m.Qid()
	case question.FieldText:
		return m.Text()
	case question.FieldTags:
		return m.Tags()
	case question.FieldTopic:
		return m.Topic()
	case question.FieldSubtopic:
		return m.Subtopic()
	case question.FieldBranch:
		return m.Branch()
	case question.FieldDifficulty:
		return m.Difficulty()
	case question.FieldSeq:
		return m.Seq()
	case question.FieldFingerprint:
		return m.Fingerprint()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldQid:
		return m.OldQid(ctx)
	case question.FieldText:
		return m.OldText(ctx)
	case question.FieldTags:
		return m.OldTags(ctx)
	case question.FieldTopic:
		return m.OldTopic(ctx)
	case question.FieldSubtopic:
		return m.OldSubtopic(ctx)
	case question.FieldBranch:
		return m.OldBranch(ctx)
	case question.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case question.FieldSeq:
		return m.OldSeq(ctx)
	case question.FieldFingerprint:
		return m.OldFingerprint(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldQid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQid(v)
		return nil
	case question.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case question.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case question.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case question.FieldSubtopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopic(v)
		return nil
	case question.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case question.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case question.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case question.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.addseq != nil {
		fields = append(fields, question.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldDifficulty:
		return m.AddedDifficulty()
	case question.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case question.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldTags) {
		fields = append(fields, question.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldQid:
		m.ResetQid()
		return nil
	case question.FieldText:
		m.ResetText()
		return nil
	case question.FieldTags:
		m.ResetTags()
		return nil
	case question.FieldTopic:
		m.ResetTopic()
		return nil
	case question.FieldSubtopic:
		m.ResetSubtopic()
		return nil
	case question.FieldBranch:
		m.ResetBranch()
		return nil
	case question.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case question.FieldSeq:
		m.ResetSeq()
		return nil
	case question.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// QuestionStateMutation represents an operation that mutates the QuestionState nodes in the graph.
type QuestionStateMutation struct {
	config
	op              Op
	typ             string
	id              *int
	user_id         *string
	question_id     *string
	status          *string
	answer_index    *int
	addanswer_index *int
	resolved_at     *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*QuestionState, error)
	predicates      []predicate.QuestionState
}

var _ ent.Mutation = (*QuestionStateMutation)(nil)

// questionstateOption allows management of the mutation configuration using functional options.
type questionstateOption func(*QuestionStateMutation)

// newQuestionStateMutation creates new mutation for the QuestionState entity.
func newQuestionStateMutation(c config, op Op, opts ...questionstateOption) *QuestionStateMutation {
	m := &QuestionStateMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionStateID sets the ID field of the mutation.
func withQuestionStateID(id int) questionstateOption {
	return func(m *QuestionStateMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionState
		)
		m.oldValue = func(ctx context.Context) (*QuestionState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionState sets the old QuestionState of the mutation.
func withQuestionState(node *QuestionState) questionstateOption {
	return func(m *QuestionStateMutation) {
		m.oldValue = func(context.Context) (*QuestionState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *QuestionStateMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QuestionStateMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QuestionState entity.
// If the QuestionState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionStateMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QuestionStateMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *QuestionStateMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuestionStateMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the QuestionState entity.
// If the QuestionState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionStateMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuestionStateMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetStatus sets the "status" field.
func (m *QuestionStateMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *QuestionStateMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QuestionState entity.
// If the QuestionState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionStateMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QuestionStateMutation) ResetStatus() {
	m.status = nil
}

// SetAnswerIndex sets the "answer_index" field.
func (m *QuestionStateMutation) SetAnswerIndex(i int) {
	m.answer_index = &i
	m.addanswer_index = nil
}

// AnswerIndex returns the value of the "answer_index" field in the mutation.
func (m *QuestionStateMutation) AnswerIndex() (r int, exists bool) {
	v := m.answer_index
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerIndex returns the old "answer_index" field's value of the QuestionState entity.
// If the QuestionState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionStateMutation) OldAnswerIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerIndex: %w", err)
	}
	return oldValue.AnswerIndex, nil
}

// AddAnswerIndex adds i to the "answer_index" field.
func (m *QuestionStateMutation) AddAnswerIndex(i int) {
	if m.addanswer_index != nil {
		*m.addanswer_index += i
	} else {
		m.addanswer_index = &i
	}
}

// AddedAnswerIndex returns the value that was added to the "answer_index" field in this mutation.
func (m *QuestionStateMutation) AddedAnswerIndex() (r int, exists bool) {
	v := m.addanswer_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearAnswerIndex clears the value of the "answer_index" field.
func (m *QuestionStateMutation) ClearAnswerIndex() {
	m.answer_index = nil
	m.addanswer_index = nil
	m.clearedFields[questionstate.FieldAnswerIndex] = struct{}{}
}

// AnswerIndexCleared returns if the "answer_index" field was cleared in this mutation.
func (m *QuestionStateMutation) AnswerIndexCleared() bool {
	_, ok := m.clearedFields[questionstate.FieldAnswerIndex]
	return ok
}

// ResetAnswerIndex resets all changes to the "answer_index" field.
func (m *QuestionStateMutation) ResetAnswerIndex() {
	m.answer_index = nil
	m.addanswer_index = nil
	delete(m.clearedFields, questionstate.FieldAnswerIndex)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *QuestionStateMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *QuestionStateMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the QuestionState entity.
// If the QuestionState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionStateMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *QuestionStateMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[questionstate.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *QuestionStateMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[questionstate.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *QuestionStateMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, questionstate.FieldResolvedAt)
}

// Where appends a list predicates to the QuestionStateMutation builder.
func (m *QuestionStateMutation) Where(ps ...predicate.QuestionState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionState).
func (m *QuestionStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionStateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, questionstate.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, questionstate.FieldQuestionID)
	}
	if m.status != nil {
		fields = append(fields, questionstate.FieldStatus)
	}
	if m.answer_index != nil {
		fields = append(fields, questionstate.FieldAnswerIndex)
	}
	if m.resolved_at != nil {
		fields = append(fields, questionstate.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionstate.FieldUserID:
		return m.UserID()
	case questionstate.FieldQuestionID:
		return m.QuestionID()
	case questionstate.FieldStatus:
		return m.Status()
	case questionstate.FieldAnswerIndex:
		return m.AnswerIndex()
	case questionstate.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionstate.FieldUserID:
		return m.OldUserID(ctx)
	case questionstate.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case questionstate.FieldStatus:
		return m.OldStatus(ctx)
	case questionstate.FieldAnswerIndex:
		return m.OldAnswerIndex(ctx)
	case questionstate.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionstate.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case questionstate.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case questionstate.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case questionstate.FieldAnswerIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerIndex(v)
		return nil
	case questionstate.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionStateMutation) AddedFields() []string {
	var fields []string
	if m.addanswer_index != nil {
		fields = append(fields, questionstate.FieldAnswerIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionstate.FieldAnswerIndex:
		return m.AddedAnswerIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionstate.FieldAnswerIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnswerIndex(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionstate.FieldAnswerIndex) {
		fields = append(fields, questionstate.FieldAnswerIndex)
	}
	if m.FieldCleared(questionstate.FieldResolvedAt) {
		fields = append(fields, questionstate.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionStateMutation) ClearField(name string) error {
	switch name {
	case questionstate.FieldAnswerIndex:
		m.ClearAnswerIndex()
		return nil
	case questionstate.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown QuestionState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionStateMutation) ResetField(name string) error {
	switch name {
	case questionstate.FieldUserID:
		m.ResetUserID()
		return nil
	case questionstate.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case questionstate.FieldStatus:
		m.ResetStatus()
		return nil
	case questionstate.FieldAnswerIndex:
		m.ResetAnswerIndex()
		return nil
	case questionstate.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown QuestionState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestionState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestionState edge %s", name)
}

// TopicWeightMutation represents an operation that mutates the TopicWeight nodes in the graph.
type TopicWeightMutation struct {
	config
	op              Op
	typ             string
	id              *int
	user_id         *string
	topic           *string
	subtopic        *string
	branch          *string
	score           *float64
	addscore        *float64
	sample_count    *int
	addsample_count *int
	recent          *[]bool
	appendrecent    []bool
	last_updated    *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TopicWeight, error)
	predicates      []predicate.TopicWeight
}

var _ ent.Mutation = (*TopicWeightMutation)(nil)

// topicweightOption allows management of the mutation configuration using functional options.
type topicweightOption func(*TopicWeightMutation)

// newTopicWeightMutation creates new mutation for the TopicWeight entity.
func newTopicWeightMutation(c config, op Op, opts ...topicweightOption) *TopicWeightMutation {
	m := &TopicWeightMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicWeight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicWeightID sets the ID field of the mutation.
func withTopicWeightID(id int) topicweightOption {
	return func(m *TopicWeightMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicWeight
		)
		m.oldValue = func(ctx context.Context) (*TopicWeight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicWeight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicWeight sets the old TopicWeight of the mutation.
func withTopicWeight(node *TopicWeight) topicweightOption {
	return func(m *TopicWeightMutation) {
		m.oldValue = func(context.Context) (*TopicWeight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicWeightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicWeightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicWeightMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicWeightMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicWeight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TopicWeightMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TopicWeightMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TopicWeight entity.
// If the TopicWeight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicWeightMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TopicWeightMutation) ResetUserID() {
	m.user_id = nil
}

// SetTopic sets the "topic" field.
func (m *TopicWeightMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *TopicWeightMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the TopicWeight entity.
// If the TopicWeight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicWeightMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *TopicWeightMutation) ResetTopic() {
	m.topic = nil
}

// SetSubtopic sets the "subtopic" field.
func (m *TopicWeightMutation) SetSubtopic(s string) {
	m.subtopic = &s
}

// Subtopic returns the value of the "subtopic" field in the mutation.
func (m *TopicWeightMutation) Subtopic() (r string, exists bool) {
	v := m.subtopic
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopic returns the old "subtopic" field's value of the TopicWeight entity.
// If the TopicWeight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicWeightMutation) OldSubtopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopic: %w", err)
	}
	return oldValue.Subtopic, nil
}

// ResetSubtopic resets all changes to the "subtopic" field.
func (m *TopicWeightMutation) ResetSubtopic() {
	m.subtopic = nil
}

// SetBranch sets the "branch" field.
func (m *TopicWeightMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *TopicWeightMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the TopicWeight entity.
// If the TopicWeight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicWeightMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *TopicWeightMutation) ResetBranch() {
	m.branch = nil
}

// SetScore sets the "score" field.
func (m *TopicWeightMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *TopicWeightMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the TopicWeight entity.
// If the TopicWeight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicWeightMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *TopicWeightMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *TopicWeightMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *TopicWeightMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetSampleCount sets the "sample_count" field.
func (m *TopicWeightMutation) SetSampleCount(i int) {
	m.sample_count = &i
	m.addsample_count = nil
}

// SampleCount returns the value of the "sample_count" field in the mutation.
func (m *TopicWeightMutation) SampleCount() (r int, exists bool) {
	v := m.sample_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleCount returns the old "sample_count" field's value of the TopicWeight entity.
// If the TopicWeight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicWeightMutation) OldSampleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleCount: %w", err)
	}
	return oldValue.SampleCount, nil
}

// AddSampleCount adds i to the "sample_count" field.
func (m *TopicWeightMutation) AddSampleCount(i int) {
	if m.addsample_count != nil {
		*m.addsample_count += i
	} else {
		m.addsample_count = &i
	}
}

// AddedSampleCount returns the value that was added to the "sample_count" field in this mutation.
func (m *TopicWeightMutation) AddedSampleCount() (r int, exists bool) {
	v := m.addsample_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSampleCount resets all changes to the "sample_count" field.
func (m *TopicWeightMutation) ResetSampleCount() {
	m.sample_count = nil
	m.addsample_count = nil
}

// SetRecent sets the "recent" field.
func (m *TopicWeightMutation) SetRecent(b []bool) {
	m.recent = &b
	m.appendrecent = nil
}

// Recent returns the value of the "recent" field in the mutation.
func (m *TopicWeightMutation) Recent() (r []bool, exists bool) {
	v := m.recent
	if v == nil {
		return
	}
	return *v, true
}

// OldRecent returns the old "recent" field's value of the TopicWeight entity.
// If the TopicWeight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicWeightMutation) OldRecent(ctx context.Context) (v []bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecent: %w", err)
	}
	return oldValue.Recent, nil
}

// AppendRecent adds b to the "recent" field.
func (m *TopicWeightMutation) AppendRecent(b []bool) {
	m.appendrecent = append(m.appendrecent, b...)
}

// AppendedRecent returns the list of values that were appended to the "recent" field in this mutation.
func (m *TopicWeightMutation) AppendedRecent() ([]bool, bool) {
	if len(m.appendrecent) == 0 {
		return nil, false
	}
	return m.appendrecent, true
}

// ClearRecent clears the value of the "recent" field.
func (m *TopicWeightMutation) ClearRecent() {
	m.recent = nil
	m.appendrecent = nil
	m.clearedFields[topicweight.FieldRecent] = struct{}{}
}

// RecentCleared returns if the "recent" field was cleared in this mutation.
func (m *TopicWeightMutation) RecentCleared() bool {
	_, ok := m.clearedFields[topicweight.FieldRecent]
	return ok
}

// ResetRecent resets all changes to the "recent" field.
func (m *TopicWeightMutation) ResetRecent() {
	m.recent = nil
	m.appendrecent = nil
	delete(m.clearedFields, topicweight.FieldRecent)
}

// SetLastUpdated sets the "last_updated" field.
func (m *TopicWeightMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *TopicWeightMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the TopicWeight entity.
// If the TopicWeight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicWeightMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *TopicWeightMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// Where appends a list predicates to the TopicWeightMutation builder.
func (m *TopicWeightMutation) Where(ps ...predicate.TopicWeight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicWeightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicWeightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicWeight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicWeightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicWeightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicWeight).
func (m *TopicWeightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicWeightMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, topicweight.FieldUserID)
	}
	if m.topic != nil {
		fields = append(fields, topicweight.FieldTopic)
	}
	if m.subtopic != nil {
		fields = append(fields, topicweight.FieldSubtopic)
	}
	if m.branch != nil {
		fields = append(fields, topicweight.FieldBranch)
	}
	if m.score != nil {
		fields = append(fields, topicweight.FieldScore)
	}
	if m.sample_count != nil {
		fields = append(fields, topicweight.FieldSampleCount)
	}
	if m.recent != nil {
		fields = append(fields, topicweight.FieldRecent)
	}
	if m.last_updated != nil {
		fields = append(fields, topicweight.FieldLastUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicWeightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicweight.FieldUserID:
		return m.UserID()
	case topicweight.FieldTopic:
		return m.Topic()
	case topicweight.FieldSubtopic:
		return m.Subtopic()
	case topicweight.FieldBranch:
		return m.Branch()
	case topicweight.FieldScore:
		return m.Score()
	case topicweight.FieldSampleCount:
		return m.SampleCount()
	case topicweight.FieldRecent:
		return m.Recent()
	case topicweight.FieldLastUpdated:
		return m.LastUpdated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicWeightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicweight.FieldUserID:
		return m.OldUserID(ctx)
	case topicweight.FieldTopic:
		return m.OldTopic(ctx)
	case topicweight.FieldSubtopic:
		return m.OldSubtopic(ctx)
	case topicweight.FieldBranch:
		return m.OldBranch(ctx)
	case topicweight.FieldScore:
		return m.OldScore(ctx)
	case topicweight.FieldSampleCount:
		return m.OldSampleCount(ctx)
	case topicweight.FieldRecent:
		return m.OldRecent(ctx)
	case topicweight.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown TopicWeight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicWeightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicweight.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case topicweight.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case topicweight.FieldSubtopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopic(v)
		return nil
	case topicweight.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case topicweight.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case topicweight.FieldSampleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleCount(v)
		return nil
	case topicweight.FieldRecent:
		v, ok := value.([]bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecent(v)
		return nil
	case topicweight.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown TopicWeight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicWeightMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, topicweight.FieldScore)
	}
	if m.addsample_count != nil {
		fields = append(fields, topicweight.FieldSampleCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicWeightMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicweight.FieldScore:
		return m.AddedScore()
	case topicweight.FieldSampleCount:
		return m.AddedSampleCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicWeightMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicweight.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case topicweight.FieldSampleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSampleCount(v)
		return nil
	}
	return fmt.Errorf("unknown TopicWeight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicWeightMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topicweight.FieldRecent) {
		fields = append(fields, topicweight.FieldRecent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicWeightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicWeightMutation) ClearField(name string) error {
	switch name {
	case topicweight.FieldRecent:
		m.ClearRecent()
		return nil
	}
	return fmt.Errorf("unknown TopicWeight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicWeightMutation) ResetField(name string) error {
	switch name {
	case topicweight.FieldUserID:
		m.ResetUserID()
		return nil
	case topicweight.FieldTopic:
		m.ResetTopic()
		return nil
	case topicweight.FieldSubtopic:
		m.ResetSubtopic()
		return nil
	case topicweight.FieldBranch:
		m.ResetBranch()
		return nil
	case topicweight.FieldScore:
		m.ResetScore()
		return nil
	case topicweight.FieldSampleCount:
		m.ResetSampleCount()
		return nil
	case topicweight.FieldRecent:
		m.ResetRecent()
		return nil
	case topicweight.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown TopicWeight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicWeightMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicWeightMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicWeightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicWeightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicWeightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicWeightMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicWeightMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TopicWeight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicWeightMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TopicWeight edge %s", name)
}

// WeightChangeEventMutation represents an operation that mutates the WeightChangeEvent nodes in the graph.
type WeightChangeEventMutation struct {
	config
	op                            Op
	typ                           string
	id                            *int
	event_id                      *string
	user_id                       *string
	topic                         *string
	subtopic                      *string
	branch                        *string
	delta                         *float64
	adddelta                      *float64
	skip_compensation_applied     *bool
	skip_compensation_topic       *float64
	addskip_compensation_topic    *float64
	skip_compensation_subtopic    *float64
	addskip_compensation_subtopic *float64
	skip_compensation_branch      *float64
	addskip_compensation_branch   *float64
	origin                        *string
	created_at                    *time.Time
	synced_at                     *time.Time
	clearedFields                 map[string]struct{}
	done                          bool
	oldValue                      func(context.Context) (*WeightChangeEvent, error)
	predicates                    []predicate.WeightChangeEvent
}

var _ ent.Mutation = (*WeightChangeEventMutation)(nil)

// weightchangeeventOption allows management of the mutation configuration using functional options.
type weightchangeeventOption func(*WeightChangeEventMutation)

// newWeightChangeEventMutation creates new mutation for the WeightChangeEvent entity.
func newWeightChangeEventMutation(c config, op Op, opts ...weightchangeeventOption) *WeightChangeEventMutation {
	m := &WeightChangeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWeightChangeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWeightChangeEventID sets the ID field of the mutation.
func withWeightChangeEventID(id int) weightchangeeventOption {
	return func(m *WeightChangeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WeightChangeEvent
		)
		m.oldValue = func(ctx context.Context) (*WeightChangeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WeightChangeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWeightChangeEvent sets the old WeightChangeEvent of the mutation.
func withWeightChangeEvent(node *WeightChangeEvent) weightchangeeventOption {
	return func(m *WeightChangeEventMutation) {
		m.oldValue = func(context.Context) (*WeightChangeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WeightChangeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WeightChangeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WeightChangeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WeightChangeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WeightChangeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *WeightChangeEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *WeightChangeEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the WeightChangeEvent entity.
// If the WeightChangeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightChangeEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *WeightChangeEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetUserID sets the "user_id" field.
func (m *WeightChangeEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WeightChangeEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the WeightChangeEvent entity.
// If the WeightChangeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightChangeEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WeightChangeEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetTopic sets the "topic" field.
func (m *WeightChangeEventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *WeightChangeEventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the WeightChangeEvent entity.
// If the WeightChangeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightChangeEventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *WeightChangeEventMutation) ResetTopic() {
	m.topic = nil
}

// SetSubtopic sets the "subtopic" field.
func (m *WeightChangeEventMutation) SetSubtopic(s string) {
	m.subtopic = &s
}

// Subtopic returns the value of the "subtopic" field in the mutation.
func (m *WeightChangeEventMutation) Subtopic() (r string, exists bool) {
	v := m.subtopic
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopic returns the old "subtopic" field's value of the WeightChangeEvent entity.
// If the WeightChangeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightChangeEventMutation) OldSubtopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopic: %w", err)
	}
	return oldValue.Subtopic, nil
}

// ResetSubtopic resets all changes to the "subtopic" field.
func (m *WeightChangeEventMutation) ResetSubtopic() {
	m.subtopic = nil
}

// SetBranch sets the "branch" field.
func (m *WeightChangeEventMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *WeightChangeEventMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the WeightChangeEvent entity.
// If the WeightChangeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightChangeEventMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *WeightChangeEventMutation) ResetBranch() {
	m.branch = nil
}

// SetDelta sets the "delta" field.
func (m *WeightChangeEventMutation) SetDelta(f float64) {
	m.delta = &f
	m.adddelta = nil
}

// Delta returns the value of the "delta" field in the mutation.
func (m *WeightChangeEventMutation) Delta() (r float64, exists bool) {
	v := m.delta
	if v == nil {
		return
	}
	return *v, true
}

// OldDelta returns the old "delta" field's value of the WeightChangeEvent entity.
// If the WeightChangeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightChangeEventMutation) OldDelta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelta: %w", err)
	}
	return oldValue.Delta, nil
}

// AddDelta adds f to the "delta" field.
func (m *WeightChangeEventMutation) AddDelta(f float64) {
	if m.adddelta != nil {
		*m.adddelta += f
	} else {
		m.adddelta = &f
	}
}

// AddedDelta returns the value that was added to the "delta" field in this mutation.
func (m *WeightChangeEventMutation) AddedDelta() (r float64, exists bool) {
	v := m.adddelta
	if v == nil {
		return
	}
	return *v, true
}

// ResetDelta resets all changes to the "delta" field.
func (m *WeightChangeEventMutation) ResetDelta() {
	m.delta = nil
	m.adddelta = nil
}

// SetSkipCompensationApplied sets the "skip_compensation_applied" field.
func (m *WeightChangeEventMutation) SetSkipCompensationApplied(b bool) {
	m.skip_compensation_applied = &b
}

// SkipCompensationApplied returns the value of the "skip_compensation_applied" field in the mutation.
func (m *WeightChangeEventMutation) SkipCompensationApplied() (r bool, exists bool) {
	v := m.skip_compensation_applied
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipCompensationApplied returns the old "skip_compensation_applied" field's value of the WeightChangeEvent entity.
// If the WeightChangeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightChangeEventMutation) OldSkipCompensationApplied(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipCompensationApplied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipCompensationApplied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipCompensationApplied: %w", err)
	}
	return oldValue.SkipCompensationApplied, nil
}

// ResetSkipCompensationApplied resets all changes to the "skip_compensation_applied" field.
func (m *WeightChangeEventMutation) ResetSkipCompensationApplied() {
	m.skip_compensation_applied = nil
}

// SetSkipCompensationTopic sets the "skip_compensation_topic" field.
func (m *WeightChangeEventMutation) SetSkipCompensationTopic(f float64) {
	m.skip_compensation_topic = &f
	m.addskip_compensation_topic = nil
}

// SkipCompensationTopic returns the value of the "skip_compensation_topic" field in the mutation.
func (m *WeightChangeEventMutation) SkipCompensationTopic() (r float64, exists bool) {
	v := m.skip_compensation_topic
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipCompensationTopic returns the old "skip_compensation_topic" field's value of the WeightChangeEvent entity.
// If the WeightChangeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightChangeEventMutation) OldSkipCompensationTopic(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipCompensationTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipCompensationTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipCompensationTopic: %w", err)
	}
	return oldValue.SkipCompensationTopic, nil
}

// AddSkipCompensationTopic adds f to the "skip_compensation_topic" field.
func (m *WeightChangeEventMutation) AddSkipCompensationTopic(f float64) {
	if m.addskip_compensation_topic != nil {
		*m.addskip_compensation_topic += f
	} else {
		m.addskip_compensation_topic = &f
	}
}

// AddedSkipCompensationTopic returns the value that was added to the "skip_compensation_topic" field in this mutation.
func (m *WeightChangeEventMutation) AddedSkipCompensationTopic() (r float64, exists bool) {
	v := m.addskip_compensation_topic
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipCompensationTopic resets all changes to the "skip_compensation_topic" field.
func (m *WeightChangeEventMutation) ResetSkipCompensationTopic() {
	m.skip_compensation_topic = nil
	m.addskip_compensation_topic = nil
}

// SetSkipCompensationSubtopic sets the "skip_compensation_subtopic" field.
func (m *WeightChangeEventMutation) SetSkipCompensationSubtopic(f float64) {
	m.skip_compensation_subtopic = &f
	m.addskip_compensation_subtopic = nil
}

// SkipCompensationSubtopic returns the value of the "skip_compensation_subtopic" field in the mutation.
func (m *WeightChangeEventMutation) SkipCompensationSubtopic() (r float64, exists bool) {
	v := m.skip_compensation_subtopic
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipCompensationSubtopic returns the old "skip_compensation_subtopic" field's value of the WeightChangeEvent entity.
// If the WeightChangeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightChangeEventMutation) OldSkipCompensationSubtopic(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipCompensationSubtopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipCompensationSubtopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipCompensationSubtopic: %w", err)
	}
	return oldValue.SkipCompensationSubtopic, nil
}

// AddSkipCompensationSubtopic adds f to the "skip_compensation_subtopic" field.
func (m *WeightChangeEventMutation) AddSkipCompensationSubtopic(f float64) {
	if m.addskip_compensation_subtopic != nil {
		*m.addskip_compensation_subtopic += f
	} else {
		m.addskip_compensation_subtopic = &f
	}
}

// AddedSkipCompensationSubtopic returns the value that was added to the "skip_compensation_subtopic" field in this mutation.
func (m *WeightChangeEventMutation) AddedSkipCompensationSubtopic() (r float64, exists bool) {
	v := m.addskip_compensation_subtopic
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipCompensationSubtopic resets all changes to the "skip_compensation_subtopic" field.
func (m *WeightChangeEventMutation) ResetSkipCompensationSubtopic() {
	m.skip_compensation_subtopic = nil
	m.addskip_compensation_subtopic = nil
}

// SetSkipCompensationBranch sets the "skip_compensation_branch" field.
func (m *WeightChangeEventMutation) SetSkipCompensationBranch(f float64) {
	m.skip_compensation_branch = &f
	m.addskip_compensation_branch = nil
}

// SkipCompensationBranch returns the value of the "skip_compensation_branch" field in the mutation.
func (m *WeightChangeEventMutation) SkipCompensationBranch() (r float64, exists bool) {
	v := m.skip_compensation_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipCompensationBranch returns the old "skip_compensation_branch" field's value of the WeightChangeEvent entity.
// If the WeightChangeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightChangeEventMutation) OldSkipCompensationBranch(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipCompensationBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipCompensationBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipCompensationBranch: %w", err)
	}
	return oldValue.SkipCompensationBranch, nil
}

// AddSkipCompensationBranch adds f to the "skip_compensation_branch" field.
func (m *WeightChangeEventMutation) AddSkipCompensationBranch(f float64) {
	if m.addskip_compensation_branch != nil {
		*m.addskip_compensation_branch += f
	} else {
		m.addskip_compensation_branch = &f
	}
}

// AddedSkipCompensationBranch returns the value that was added to the "skip_compensation_branch" field in this mutation.
func (m *WeightChangeEventMutation) AddedSkipCompensationBranch() (r float64, exists bool) {
	v := m.addskip_compensation_branch
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipCompensationBranch resets all changes to the "skip_compensation_branch" field.
func (m *WeightChangeEventMutation) ResetSkipCompensationBranch() {
	m.skip_compensation_branch = nil
	m.addskip_compensation_branch = nil
}

// SetOrigin sets the "origin" field.
func (m *WeightChangeEventMutation) SetOrigin(s string) {
	m.origin = &s
}

// Origin returns the value of the "origin" field in the mutation.
func (m *WeightChangeEventMutation) Origin() (r string, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the WeightChangeEvent entity.
// If the WeightChangeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightChangeEventMutation) OldOrigin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ResetOrigin resets all changes to the "origin" field.
func (m *WeightChangeEventMutation) ResetOrigin() {
	m.origin = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WeightChangeEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WeightChangeEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WeightChangeEvent entity.
// If the WeightChangeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightChangeEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WeightChangeEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSyncedAt sets the "synced_at" field.
func (m *WeightChangeEventMutation) SetSyncedAt(t time.Time) {
	m.synced_at = &t
}

// SyncedAt returns the value of the "synced_at" field in the mutation.
func (m *WeightChangeEventMutation) SyncedAt() (r time.Time, exists bool) {
	v := m.synced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncedAt returns the old "synced_at" field's value of the WeightChangeEvent entity.
// If the WeightChangeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightChangeEventMutation) OldSyncedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncedAt: %w", err)
	}
	return oldValue.SyncedAt, nil
}

// ClearSyncedAt clears the value of the "synced_at" field.
func (m *WeightChangeEventMutation) ClearSyncedAt() {
	m.synced_at = nil
	m.clearedFields[weightchangeevent.FieldSyncedAt] = struct{}{}
}

// SyncedAtCleared returns if the "synced_at" field was cleared in this mutation.
func (m *WeightChangeEventMutation) SyncedAtCleared() bool {
	_, ok := m.clearedFields[weightchangeevent.FieldSyncedAt]
	return ok
}

// ResetSyncedAt resets all changes to the "synced_at" field.
func (m *WeightChangeEventMutation) ResetSyncedAt() {
	m.synced_at = nil
	delete(m.clearedFields, weightchangeevent.FieldSyncedAt)
}

// Where appends a list predicates to the WeightChangeEventMutation builder.
func (m *WeightChangeEventMutation) Where(ps ...predicate.WeightChangeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WeightChangeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WeightChangeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WeightChangeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WeightChangeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WeightChangeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WeightChangeEvent).
func (m *WeightChangeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WeightChangeEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.event_id != nil {
		fields = append(fields, weightchangeevent.FieldEventID)
	}
	if m.user_id != nil {
		fields = append(fields, weightchangeevent.FieldUserID)
	}
	if m.topic != nil {
		fields = append(fields, weightchangeevent.FieldTopic)
	}
	if m.subtopic != nil {
		fields = append(fields, weightchangeevent.FieldSubtopic)
	}
	if m.branch != nil {
		fields = append(fields, weightchangeevent.FieldBranch)
	}
	if m.delta != nil {
		fields = append(fields, weightchangeevent.FieldDelta)
	}
	if m.skip_compensation_applied != nil {
		fields = append(fields, weightchangeevent.FieldSkipCompensationApplied)
	}
	if m.skip_compensation_topic != nil {
		fields = append(fields, weightchangeevent.FieldSkipCompensationTopic)
	}
	if m.skip_compensation_subtopic != nil {
		fields = append(fields, weightchangeevent.FieldSkipCompensationSubtopic)
	}
	if m.skip_compensation_branch != nil {
		fields = append(fields, weightchangeevent.FieldSkipCompensationBranch)
	}
	if m.origin != nil {
		fields = append(fields, weightchangeevent.FieldOrigin)
	}
	if m.created_at != nil {
		fields = append(fields, weightchangeevent.FieldCreatedAt)
	}
	if m.synced_at != nil {
		fields = append(fields, weightchangeevent.FieldSyncedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WeightChangeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case weightchangeevent.FieldEventID:
		return m.EventID()
	case weightchangeevent.FieldUserID:
		return m.UserID()
	case weightchangeevent.FieldTopic:
		return m.Topic()
	case weightchangeevent.FieldSubtopic:
		return m.Subtopic()
	case weightchangeevent.FieldBranch:
		return m.Branch()
	case weightchangeevent.FieldDelta:
		return m.Delta()
	case weightchangeevent.FieldSkipCompensationApplied:
		return m.SkipCompensationApplied()
	case weightchangeevent.FieldSkipCompensationTopic:
		return m.SkipCompensationTopic()
	case weightchangeevent.FieldSkipCompensationSubtopic:
		return m.SkipCompensationSubtopic()
	case weightchangeevent.FieldSkipCompensationBranch:
		return m.SkipCompensationBranch()
	case weightchangeevent.FieldOrigin:
		return m.Origin()
	case weightchangeevent.FieldCreatedAt:
		return m.CreatedAt()
	case weightchangeevent.FieldSyncedAt:
		return m.SyncedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WeightChangeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case weightchangeevent.FieldEventID:
		return m.OldEventID(ctx)
	case weightchangeevent.FieldUserID:
		return m.OldUserID(ctx)
	case weightchangeevent.FieldTopic:
		return m.OldTopic(ctx)
	case weightchangeevent.FieldSubtopic:
		return m.OldSubtopic(ctx)
	case weightchangeevent.FieldBranch:
		return m.OldBranch(ctx)
	case weightchangeevent.FieldDelta:
		return m.OldDelta(ctx)
	case weightchangeevent.FieldSkipCompensationApplied:
		return m.OldSkipCompensationApplied(ctx)
	case weightchangeevent.FieldSkipCompensationTopic:
		return m.OldSkipCompensationTopic(ctx)
	case weightchangeevent.FieldSkipCompensationSubtopic:
		return m.OldSkipCompensationSubtopic(ctx)
	case weightchangeevent.FieldSkipCompensationBranch:
		return m.OldSkipCompensationBranch(ctx)
	case weightchangeevent.FieldOrigin:
		return m.OldOrigin(ctx)
	case weightchangeevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case weightchangeevent.FieldSyncedAt:
		return m.OldSyncedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WeightChangeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeightChangeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case weightchangeevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case weightchangeevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case weightchangeevent.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case weightchangeevent.FieldSubtopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopic(v)
		return nil
	case weightchangeevent.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case weightchangeevent.FieldDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelta(v)
		return nil
	case weightchangeevent.FieldSkipCompensationApplied:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipCompensationApplied(v)
		return nil
	case weightchangeevent.FieldSkipCompensationTopic:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipCompensationTopic(v)
		return nil
	case weightchangeevent.FieldSkipCompensationSubtopic:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipCompensationSubtopic(v)
		return nil
	case weightchangeevent.FieldSkipCompensationBranch:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipCompensationBranch(v)
		return nil
	case weightchangeevent.FieldOrigin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case weightchangeevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case weightchangeevent.FieldSyncedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WeightChangeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WeightChangeEventMutation) AddedFields() []string {
	var fields []string
	if m.adddelta != nil {
		fields = append(fields, weightchangeevent.FieldDelta)
	}
	if m.addskip_compensation_topic != nil {
		fields = append(fields, weightchangeevent.FieldSkipCompensationTopic)
	}
	if m.addskip_compensation_subtopic != nil {
		fields = append(fields, weightchangeevent.FieldSkipCompensationSubtopic)
	}
	if m.addskip_compensation_branch != nil {
		fields = append(fields, weightchangeevent.FieldSkipCompensationBranch)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WeightChangeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case weightchangeevent.FieldDelta:
		return m.AddedDelta()
	case weightchangeevent.FieldSkipCompensationTopic:
		return m.AddedSkipCompensationTopic()
	case weightchangeevent.FieldSkipCompensationSubtopic:
		return m.AddedSkipCompensationSubtopic()
	case weightchangeevent.FieldSkipCompensationBranch:
		return m.AddedSkipCompensationBranch()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeightChangeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case weightchangeevent.FieldDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDelta(v)
		return nil
	case weightchangeevent.FieldSkipCompensationTopic:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipCompensationTopic(v)
		return nil
	case weightchangeevent.FieldSkipCompensationSubtopic:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipCompensationSubtopic(v)
		return nil
	case weightchangeevent.FieldSkipCompensationBranch:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipCompensationBranch(v)
		return nil
	}
	return fmt.Errorf("unknown WeightChangeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WeightChangeEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(weightchangeevent.FieldSyncedAt) {
		fields = append(fields, weightchangeevent.FieldSyncedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WeightChangeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WeightChangeEventMutation) ClearField(name string) error {
	switch name {
	case weightchangeevent.FieldSyncedAt:
		m.ClearSyncedAt()
		return nil
	}
	return fmt.Errorf("unknown WeightChangeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WeightChangeEventMutation) ResetField(name string) error {
	switch name {
	case weightchangeevent.FieldEventID:
		m.ResetEventID()
		return nil
	case weightchangeevent.FieldUserID:
		m.ResetUserID()
		return nil
	case weightchangeevent.FieldTopic:
		m.ResetTopic()
		return nil
	case weightchangeevent.FieldSubtopic:
		m.ResetSubtopic()
		return nil
	case weightchangeevent.FieldBranch:
		m.ResetBranch()
		return nil
	case weightchangeevent.FieldDelta:
		m.ResetDelta()
		return nil
	case weightchangeevent.FieldSkipCompensationApplied:
		m.ResetSkipCompensationApplied()
		return nil
	case weightchangeevent.FieldSkipCompensationTopic:
		m.ResetSkipCompensationTopic()
		return nil
	case weightchangeevent.FieldSkipCompensationSubtopic:
		m.ResetSkipCompensationSubtopic()
		return nil
	case weightchangeevent.FieldSkipCompensationBranch:
		m.ResetSkipCompensationBranch()
		return nil
	case weightchangeevent.FieldOrigin:
		m.ResetOrigin()
		return nil
	case weightchangeevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case weightchangeevent.FieldSyncedAt:
		m.ResetSyncedAt()
		return nil
	}
	return fmt.Errorf("unknown WeightChangeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WeightChangeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WeightChangeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WeightChangeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WeightChangeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WeightChangeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WeightChangeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WeightChangeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WeightChangeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WeightChangeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WeightChangeEvent edge %s", name)
}
