package journal

import (
	"strings"

	"entgo.io/ent"
	entschema "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	"github.com/abhisek/persona/ent/schema"
)

const answerEventsTable = "answer_events"

// answerEventsSchema builds the answer_events table from the AnswerEvent
// ent schema: an auto-increment id followed by the mixin fields and the
// entity's own fields, with the same index names ent gives them.
func answerEventsSchema() *entschema.Table {
	def := schema.AnswerEvent{}

	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range def.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, def.Fields()...)
	indexes = append(indexes, def.Indexes()...)

	id := &entschema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &entschema.Table{
		Name:       answerEventsTable,
		Columns:    []*entschema.Column{id},
		PrimaryKey: []*entschema.Column{id},
	}

	byName := map[string]*entschema.Column{}
	for _, f := range fields {
		d := f.Descriptor()
		c := &entschema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
		}
		t.Columns = append(t.Columns, c)
		byName[d.Name] = c
	}

	for _, ix := range indexes {
		d := ix.Descriptor()
		idx := &entschema.Index{
			Name:   "answerevent_" + strings.Join(d.Fields, "_"),
			Unique: d.Unique,
		}
		for _, name := range d.Fields {
			idx.Columns = append(idx.Columns, byName[name])
		}
		t.Indexes = append(t.Indexes, idx)
	}
	return t
}
