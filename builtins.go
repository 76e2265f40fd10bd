// File: builtins.go
// Title: Built-in Interpreter Operations
// Description: Registers the interpreter's own operation table: session
//              control, application lifecycle, variable management and
//              introspection. These operations are always reachable as
//              the fallback receiver behind the active target.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package parley

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/msto63/parley/binder"
	"github.com/msto63/parley/core/log"
	"github.com/msto63/parley/docstr"
	"github.com/msto63/parley/env"
	"github.com/msto63/parley/utils/stringx"
)

// builtinTable builds the interpreter's own operation table.
func (in *Interpreter) builtinTable() (*binder.OperationTable, error) {
	table := binder.NewOperationTable()

	ops := []*binder.Operation{
		{
			Name: "create",
			Params: []binder.Param{
				{Name: "app"},
			},
			Doc: "Creates an instance of a registered application.\n" +
				"app: name of the application to instantiate",
			Fn: in.opCreate,
		},
		{
			Name: "delete",
			Params: []binder.Param{
				{Name: "name"},
			},
			Doc: "Removes a variable from the session.\n" +
				"name: name of the variable to remove",
			Fn: in.opDelete,
		},
		{
			Name: "use",
			Params: []binder.Param{
				{Name: "name"},
			},
			Doc: "Makes a variable the active target. Subsequent statements\n" +
				"without an explicit target are tried against it first.\n" +
				"name: name of the variable holding the new target",
			Fn: in.opUse,
		},
		{
			Name: "drop target",
			Doc:  "Clears the active target.",
			Fn:   in.opDropTarget,
		},
		{
			Name: "clear session",
			Doc:  "Resets the session: all variables, the active target and the statement log.",
			Fn:   in.opClearSession,
		},
		{
			Name: "save session",
			Params: []binder.Param{
				{Name: "path", Default: ".", HasDefault: true},
			},
			Doc: "Writes the accepted statements of this session to a file.\n" +
				"path: directory the session file is written to",
			Fn: in.opSaveSession,
		},
		{
			Name: "list",
			Doc:  "Lists the registered application names.",
			Fn:   in.opList,
		},
		{
			Name: "show",
			Params: []binder.Param{
				{Name: "value"},
			},
			Doc: "Shows a value. A word naming a variable shows the variable's\n" +
				"value, anything else is shown as given.\n" +
				"value: value or variable name to show",
			Fn: in.opShow,
		},
		{
			Name: "options",
			Doc:  "Describes the operations and variables currently available.",
			Fn:   in.opOptions,
		},
		{
			Name: "vars",
			Doc:  "Lists the session variables and their values.",
			Fn:   in.opVars,
		},
		{
			Name: "exit",
			Doc:  "Ends the session.",
			Fn:   in.opExit,
		},
	}

	for _, op := range ops {
		if err := table.Register(op); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func (in *Interpreter) opCreate(ctx context.Context, args binder.Args) (any, error) {
	name := args.String("app")
	factory, ok := in.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown application %q, registered: %s",
			name, strings.Join(in.appNames(), ", "))
	}

	instance, err := factory(in)
	if err != nil {
		return nil, fmt.Errorf("creating application %q: %w", name, err)
	}

	in.logger.Info("application created", log.Fields{"app": name})
	return instance, nil
}

func (in *Interpreter) opDelete(ctx context.Context, args binder.Args) (any, error) {
	name := args.String("name")
	if !in.environ.Delete(name) {
		return nil, binder.UnknownVariablef("unknown variable %q", name)
	}
	return nil, nil
}

func (in *Interpreter) opUse(ctx context.Context, args binder.Args) (any, error) {
	name := args.String("name")
	value, ok := in.environ.Lookup(name)
	if !ok {
		return nil, binder.UnknownVariablef("unknown variable %q", name)
	}

	// The first use displaces the interpreter itself, so previousTarget
	// always points one step back.
	if _, active := in.environ.Active(); !active {
		in.environ.Set(env.PreviousTarget, in)
	}
	in.environ.SetActive(value)
	return nil, nil
}

func (in *Interpreter) opDropTarget(ctx context.Context, args binder.Args) (any, error) {
	in.environ.DropActive()
	return nil, nil
}

func (in *Interpreter) opClearSession(ctx context.Context, args binder.Args) (any, error) {
	in.environ.Reset()
	return nil, nil
}

func (in *Interpreter) opSaveSession(ctx context.Context, args binder.Args) (any, error) {
	path, err := in.environ.SaveSession(args.String("path"))
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("session saved to %s", path), nil
}

func (in *Interpreter) opList(ctx context.Context, args binder.Args) (any, error) {
	names := in.appNames()
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out, nil
}

func (in *Interpreter) opShow(ctx context.Context, args binder.Args) (any, error) {
	value := args.Get("value")
	if name, ok := value.(string); ok {
		if bound, found := in.environ.Lookup(name); found {
			return bound, nil
		}
	}
	return value, nil
}

// opOptions renders the target, operation and variable inventory of the
// session as a table. Operation parameters carry their doc string
// annotations when present.
func (in *Interpreter) opOptions(ctx context.Context, args binder.Args) (any, error) {
	rows := [][]string{
		{"kind", "name", "parameters", "description"},
	}

	tables := []*binder.OperationTable{}
	if active, ok := in.environ.Active(); ok {
		recv := binder.ReceiverFor("target", active)
		rows = append(rows, []string{"target", "(active)", "", recv.Describe()})
		tables = append(tables, recv.Table())
	}
	tables = append(tables, in.self)

	for _, table := range tables {
		for _, op := range table.Operations() {
			doc := docstr.Parse(op.Doc)
			rows = append(rows, []string{"operation", op.Name, annotateParams(op, doc), doc.Head})
		}
	}

	for _, name := range in.environ.Names() {
		value, _ := in.environ.Lookup(name)
		rows = append(rows, []string{"variable", name, "", describeValue(value)})
	}

	return rows, nil
}

func (in *Interpreter) opVars(ctx context.Context, args binder.Args) (any, error) {
	names := in.environ.Names()
	if len(names) == 0 {
		return nil, nil
	}

	rows := [][]string{{"name", "value"}}
	for _, name := range names {
		value, _ := in.environ.Lookup(name)
		rows = append(rows, []string{name, describeValue(value)})
	}
	return rows, nil
}

func (in *Interpreter) opExit(ctx context.Context, args binder.Args) (any, error) {
	return nil, ErrSessionEnd
}

// appNames returns the registered application names in sorted order.
func (in *Interpreter) appNames() []string {
	names := make([]string, 0, len(in.factories))
	for name := range in.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// annotateParams renders an operation's parameter list, folding in the
// per-parameter descriptions from its doc string.
func annotateParams(op *binder.Operation, doc docstr.Doc) string {
	parts := make([]string, len(op.Params))
	for i, p := range op.Params {
		part := p.Name
		if p.HasDefault {
			part = fmt.Sprintf("%s=%v", p.Name, p.Default)
		}
		if desc, ok := doc.Param(p.Name); ok && desc != "" {
			part += " (" + desc + ")"
		}
		parts[i] = part
	}
	return strings.Join(parts, ", ")
}

// describeValue renders a short display form of a variable value.
func describeValue(v any) string {
	if d, ok := v.(binder.Describer); ok {
		return d.Describe()
	}
	return stringx.Truncate(fmt.Sprint(v), 48, "...")
}
