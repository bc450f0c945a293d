package filesystem

import (
	"fmt"
	"io"
	"strings"

	"github.com/selectdb/design_patterns/pkg/xerror"
	"github.com/selectdb/design_patterns/pkg/xmetrics"
)

const (
	IndentUnit = "  "
	MaxDepth   = 256
)

var (
	ErrCycle        = xerror.NewWithoutStack(xerror.FileSystem, "component would contain itself")
	ErrNilComponent = xerror.NewWithoutStack(xerror.FileSystem, "nil component")
	ErrTooDeep      = xerror.NewWithoutStack(xerror.FileSystem, "tree exceeds max depth")
)

type FileSystemComponent interface {
	Name() string
	// Print writes the component at indent and then its children one level deeper
	Print(out io.Writer, indent int) error
}

// Composite is a component with children, Walk and the cycle check in
// Directory.Add descend through it
type Composite interface {
	FileSystemComponent
	Children() []FileSystemComponent
}

func printLine(out io.Writer, indent int, name string) error {
	if indent > MaxDepth {
		return xerror.XWrapf(ErrTooDeep, "print %s at indent %d", name, indent)
	}
	if indent < 0 {
		indent = 0
	}

	if _, err := fmt.Fprintf(out, "%s%s\n", strings.Repeat(IndentUnit, indent), name); err != nil {
		return xerror.Wrapf(err, xerror.FileSystem, "print %s", name)
	}
	xmetrics.NodePrinted()
	return nil
}

// Walk visits component and its descendants in depth-first pre-order,
// children in insertion order, stopping at the first error returned by fn
func Walk(component FileSystemComponent, fn func(c FileSystemComponent, depth int) error) error {
	return walk(component, 0, fn)
}

func walk(component FileSystemComponent, depth int, fn func(FileSystemComponent, int) error) error {
	if depth > MaxDepth {
		return xerror.XWrapf(ErrTooDeep, "walk %s at depth %d", component.Name(), depth)
	}
	if err := fn(component, depth); err != nil {
		return err
	}

	composite, ok := component.(Composite)
	if !ok {
		return nil
	}
	for _, child := range composite.Children() {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// checkDepth fails when any node of the tree rooted at component would be
// printed deeper than MaxDepth
func checkDepth(component FileSystemComponent, indent int) error {
	if indent < 0 {
		indent = 0
	}
	return Walk(component, func(c FileSystemComponent, depth int) error {
		if indent+depth > MaxDepth {
			return xerror.XWrapf(ErrTooDeep, "print %s at indent %d", c.Name(), indent+depth)
		}
		return nil
	})
}

// Count returns the number of components in the tree rooted at component
func Count(component FileSystemComponent) int {
	count := 0
	_ = Walk(component, func(FileSystemComponent, int) error {
		count++
		return nil
	})
	return count
}
