// File: notebook.go
// Title: Notebook Application
// Description: Exposes the SQLite note store as an interpreter
//              capability. Statements like "add note" or "find" operate
//              on a per-instance notebook once one is created.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package notebook

import (
	"context"
	"fmt"

	"github.com/msto63/parley"
	"github.com/msto63/parley/binder"
	"github.com/msto63/parley/utils/stringx"
)

// Notebook is the interpreter-facing capability over a note store.
type Notebook struct {
	path  string
	store *Store
	ops   *binder.OperationTable
}

// Factory returns a parley application factory for a notebook at the
// given database path. An empty path selects the default location.
func Factory(path string) parley.Factory {
	return func(in *parley.Interpreter) (binder.Capability, error) {
		return Open(path)
	}
}

// New is the default factory, storing notes under DefaultPath.
func New(in *parley.Interpreter) (binder.Capability, error) {
	return Open("")
}

// Open opens a notebook at the given database path.
func Open(path string) (*Notebook, error) {
	store, err := OpenStore(path)
	if err != nil {
		return nil, err
	}

	nb := &Notebook{path: stringx.FirstNonBlank(path, DefaultPath), store: store}
	nb.ops = nb.buildOperations()
	return nb, nil
}

// Operations implements binder.Capability.
func (nb *Notebook) Operations() *binder.OperationTable {
	return nb.ops
}

// Describe implements binder.Describer.
func (nb *Notebook) Describe() string {
	return fmt.Sprintf("notebook (%s)", nb.path)
}

// Close releases the underlying store.
func (nb *Notebook) Close() error {
	return nb.store.Close()
}

func (nb *Notebook) buildOperations() *binder.OperationTable {
	ops := binder.NewOperationTable()

	ops.MustRegister(&binder.Operation{
		Name: "add note",
		Params: []binder.Param{
			{Name: "text"},
			{Name: "tag", Default: "", HasDefault: true},
		},
		Doc: "Stores a note.\n" +
			"text: the note text\n" +
			"tag: optional tag for grouping",
		Fn: nb.opAdd,
	})

	ops.MustRegister(&binder.Operation{
		Name: "list notes",
		Params: []binder.Param{
			{Name: "tag", Default: "", HasDefault: true},
			{Name: "limit", Default: 20.0, HasDefault: true},
		},
		Doc: "Lists stored notes, newest first.\n" +
			"tag: only notes with this tag\n" +
			"limit: maximum number of notes",
		Fn: nb.opList,
	})

	ops.MustRegister(&binder.Operation{
		Name: "find",
		Params: []binder.Param{
			{Name: "term"},
		},
		Doc: "Finds notes containing a term.\n" +
			"term: text to search for",
		Fn: nb.opFind,
	})

	ops.MustRegister(&binder.Operation{
		Name: "remove note",
		Params: []binder.Param{
			{Name: "id"},
		},
		Doc: "Removes a note.\n" +
			"id: numeric id of the note",
		Fn: nb.opRemove,
	})

	ops.MustRegister(&binder.Operation{
		Name: "count notes",
		Doc:  "Returns the number of stored notes.",
		Fn:   nb.opCount,
	})

	ops.MustRegister(&binder.Operation{
		Name: "clear notes",
		Doc:  "Removes every note.",
		Fn:   nb.opClear,
	})

	ops.MustRegister(&binder.Operation{
		Name: "tags",
		Doc:  "Lists the tags in use.",
		Fn:   nb.opTags,
	})

	return ops
}

func (nb *Notebook) opAdd(ctx context.Context, args binder.Args) (any, error) {
	note, err := nb.store.Add(ctx, args.String("text"), args.String("tag"))
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("note %d added", note.ID), nil
}

func (nb *Notebook) opList(ctx context.Context, args binder.Args) (any, error) {
	limit, _ := args.Float("limit")
	notes, err := nb.store.List(ctx, args.String("tag"), int(limit))
	if err != nil {
		return nil, err
	}
	return notesTable(notes), nil
}

func (nb *Notebook) opFind(ctx context.Context, args binder.Args) (any, error) {
	notes, err := nb.store.Find(ctx, args.String("term"))
	if err != nil {
		return nil, err
	}
	return notesTable(notes), nil
}

func (nb *Notebook) opRemove(ctx context.Context, args binder.Args) (any, error) {
	id, ok := args.Float("id")
	if !ok {
		return nil, fmt.Errorf("note id must be numeric, got %q", args.String("id"))
	}

	removed, err := nb.store.Remove(ctx, int64(id))
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, fmt.Errorf("no note with id %d", int64(id))
	}
	return fmt.Sprintf("note %d removed", int64(id)), nil
}

func (nb *Notebook) opCount(ctx context.Context, args binder.Args) (any, error) {
	return nb.store.Count(ctx)
}

func (nb *Notebook) opClear(ctx context.Context, args binder.Args) (any, error) {
	if err := nb.store.Clear(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

func (nb *Notebook) opTags(ctx context.Context, args binder.Args) (any, error) {
	tags, err := nb.store.Tags(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]any, len(tags))
	for i, tag := range tags {
		out[i] = tag
	}
	return out, nil
}

// notesTable renders notes as table rows with a header line. A nil
// result projects as "<none>".
func notesTable(notes []*Note) any {
	if len(notes) == 0 {
		return nil
	}

	rows := [][]string{{"id", "tag", "created", "text"}}
	for _, n := range notes {
		rows = append(rows, []string{
			fmt.Sprintf("%d", n.ID),
			n.Tag,
			n.CreatedAt.Format("2006-01-02 15:04"),
			n.Text,
		})
	}
	return rows
}
