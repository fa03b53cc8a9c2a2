package namesync

import (
	"context"
	"errors"
	"testing"

	"gamecatalog/admin/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Writer that records every call and can fail on a chosen one.
type recorder struct {
	calls  []string
	failAt int // 1-based call number to fail, 0 = never
	err    error
}

func (r *recorder) record(call string) error {
	r.calls = append(r.calls, call)
	if r.failAt == len(r.calls) {
		return r.err
	}
	return nil
}

func (r *recorder) AddName(_ context.Context, _ uint, n catalog.GameName) (*catalog.GameName, error) {
	op := Op{Kind: Add, Language: n.Language, Value: n.Value, DefaultName: n.DefaultName}
	if err := r.record(op.String()); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *recorder) UpdateName(_ context.Context, _ uint, id uint, n catalog.GameName) (*catalog.GameName, error) {
	op := Op{Kind: Update, NameID: id, Value: n.Value, DefaultName: n.DefaultName}
	if err := r.record(op.String()); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *recorder) DeleteName(_ context.Context, _ uint, id uint) error {
	return r.record(Op{Kind: Delete, NameID: id}.String())
}

func name(id uint, lang, value string, def bool) catalog.GameName {
	return catalog.GameName{ID: id, Language: lang, Value: value, DefaultName: def}
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name     string
		original []catalog.GameName
		edited   []catalog.GameName
		want     []string
	}{
		{
			name:   "new language is added",
			edited: []catalog.GameName{name(0, "en", "Foo", true)},
			want:   []string{`add(en, "Foo", true)`},
		},
		{
			name:     "unchanged entries issue nothing",
			original: []catalog.GameName{name(1, "en", "Foo", true), name(2, "vi", "Bar", false)},
			edited:   []catalog.GameName{name(0, "en", "Foo", true), name(0, "vi", "Bar", false)},
			want:     nil,
		},
		{
			name:     "missing language is deleted",
			original: []catalog.GameName{name(1, "en", "Foo", true), name(2, "vi", "Bar", false)},
			edited:   []catalog.GameName{name(0, "en", "Foo", true)},
			want:     []string{"delete(2)"},
		},
		{
			name:     "whitespace text counts as removed",
			original: []catalog.GameName{name(1, "en", "Foo", true), name(2, "vi", "Bar", false)},
			edited:   []catalog.GameName{name(0, "en", "Foo", true), name(0, "vi", " \t ", false)},
			want:     []string{"delete(2)"},
		},
		{
			name:     "only becoming default is an update",
			original: []catalog.GameName{name(1, "en", "Foo", false)},
			edited:   []catalog.GameName{name(0, "en", "Foo", true)},
			want:     []string{`update(1, "Foo", true)`},
		},
		{
			name:     "changed text is an update",
			original: []catalog.GameName{name(1, "en", "Foo", true)},
			edited:   []catalog.GameName{name(0, "en", "Foo 2", true)},
			want:     []string{`update(1, "Foo 2", true)`},
		},
		{
			name:     "blank new language is ignored",
			original: nil,
			edited:   []catalog.GameName{name(0, "fr", "", false)},
			want:     nil,
		},
		{
			name:     "add blank and new language",
			original: []catalog.GameName{name(1, "en", "Foo", true), name(2, "vi", "Bar", false)},
			edited:   []catalog.GameName{name(0, "en", "Foo", true), name(0, "vi", "", false), name(0, "fr", "Baz", false)},
			want:     []string{`add(fr, "Baz", false)`, "delete(2)"},
		},
		{
			name:     "losing default alone issues nothing",
			original: []catalog.GameName{name(1, "en", "Foo", true)},
			edited:   []catalog.GameName{name(0, "en", "Foo", false), name(0, "ja", "Foo-jp", true)},
			want:     []string{`add(ja, "Foo-jp", true)`},
		},
		{
			name:     "adds and updates keep edited order, deletes follow original order",
			original: []catalog.GameName{name(1, "en", "A", true), name(2, "vi", "B", false), name(3, "fr", "C", false)},
			edited:   []catalog.GameName{name(0, "ja", "D", false), name(0, "en", "A2", true)},
			want:     []string{`add(ja, "D", false)`, `update(1, "A2", true)`, "delete(2)", "delete(3)"},
		},
		{
			name:     "duplicate edited language keeps the first entry",
			original: []catalog.GameName{name(1, "en", "Foo", true)},
			edited:   []catalog.GameName{name(0, "en", "Foo", true), name(0, "en", "", false)},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, op := range Plan(tt.original, tt.edited) {
				got = append(got, op.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSync_IssuesPlanSequentially(t *testing.T) {
	w := &recorder{}
	s := New(w, nil)

	original := []catalog.GameName{name(1, "en", "Foo", true), name(2, "vi", "Bar", false)}
	edited := []catalog.GameName{name(0, "en", "Foo", true), name(0, "vi", "", false), name(0, "fr", "Baz", false)}

	require.NoError(t, s.Sync(context.Background(), 7, original, edited))
	assert.Equal(t, []string{`add(fr, "Baz", false)`, "delete(2)"}, w.calls)
}

func TestSync_HaltsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	w := &recorder{failAt: 2, err: boom}
	s := New(w, nil)

	original := []catalog.GameName{name(1, "en", "A", true), name(2, "vi", "B", false), name(3, "fr", "C", false)}
	edited := []catalog.GameName{name(0, "ja", "D", false), name(0, "en", "A2", true)}

	err := s.Sync(context.Background(), 7, original, edited)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var partial *PartialError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.Applied)
	assert.Equal(t, 4, partial.Total)
	assert.Equal(t, Update, partial.Op.Kind)

	// Nothing after the failed write was attempted, nothing before it was undone.
	assert.Equal(t, []string{`add(ja, "D", false)`, `update(1, "A2", true)`}, w.calls)
}

func TestSync_NothingToDo(t *testing.T) {
	w := &recorder{}
	original := []catalog.GameName{name(1, "en", "Foo", true)}

	require.NoError(t, New(w, nil).Sync(context.Background(), 1, original, []catalog.GameName{name(0, "en", "Foo", true)}))
	assert.Empty(t, w.calls)
}
