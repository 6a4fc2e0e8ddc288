package app

import (
	"fmt"
	"io"

	"github.com/vk/symtab/symbol"
)

// treeRenderer prints one line per visited symbol, indenting children.
// It embeds UnimplementedVisitor so any variant it forgets to handle
// fails the traversal instead of vanishing from the report.
type treeRenderer struct {
	symbol.UnimplementedVisitor
	w      io.Writer
	indent int
}

func (r *treeRenderer) line(s fmt.Stringer) error {
	for i := 0; i < r.indent; i++ {
		if _, err := fmt.Fprint(r.w, "  "); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w, s)
	return err
}

func (r *treeRenderer) VisitModule(m *symbol.Module) error {
	if err := r.line(m); err != nil {
		return err
	}
	r.indent++
	defer func() { r.indent-- }()
	return m.VisitChildren(r)
}

func (r *treeRenderer) VisitImport(i *symbol.Import) error {
	return r.line(i)
}

func (r *treeRenderer) VisitVariable(v *symbol.Variable) error {
	return r.line(v)
}

func (r *treeRenderer) VisitClass(c *symbol.Class) error {
	return r.line(c)
}

func (r *treeRenderer) VisitFunction(f *symbol.Function) error {
	if err := r.line(f); err != nil {
		return err
	}
	r.indent++
	defer func() { r.indent-- }()
	return f.VisitChildren(r)
}

func (r *treeRenderer) VisitParameter(p *symbol.Parameter) error {
	return r.line(p)
}

// renderTree walks the unit through the visitor and prints every symbol.
func renderTree(w io.Writer, unit *symbol.Module) error {
	return unit.Accept(&treeRenderer{w: w})
}

// renderSignatures synthesizes and prints the signature of every function
// declaration, in insertion order.
func renderSignatures(w io.Writer, unit *symbol.Module) error {
	for _, decl := range unit.Declarations().ByKind(symbol.KindFunction) {
		fn, ok := decl.(*symbol.Function)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", fn.Name(), fn.Signature()); err != nil {
			return err
		}
	}
	return nil
}

// renderLocals prints every live-object symbol with its kind, capture
// mode, and current value.
func renderLocals(w io.Writer, table *symbol.LocalTable) error {
	return table.Each(func(l *symbol.Local) error {
		mode := "owned"
		if l.Weak() {
			mode = "weak"
		}
		v, err := l.Value()
		if err != nil {
			_, werr := fmt.Fprintf(w, "%s %s (%s) = <collected>\n", l.Kind(), l.QualifiedName(), mode)
			return werr
		}
		_, err = fmt.Fprintf(w, "%s %s (%s) = %v\n", l.Kind(), l.QualifiedName(), mode, v)
		return err
	})
}
