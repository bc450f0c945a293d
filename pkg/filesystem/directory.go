package filesystem

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/selectdb/design_patterns/pkg/xerror"
)

// Directory is a composite, children are kept in insertion order
type Directory struct {
	name     string
	children []FileSystemComponent
}

var _ Composite = (*Directory)(nil)

func NewDirectory(name string) *Directory {
	return &Directory{
		name:     name,
		children: make([]FileSystemComponent, 0),
	}
}

func (d *Directory) Name() string {
	return d.name
}

// Add appends component, a composite that already contains d can not be added
func (d *Directory) Add(component FileSystemComponent) error {
	if component == nil {
		return xerror.XWrapf(ErrNilComponent, "add to %s", d.name)
	}

	if err := d.checkCycle(component); err != nil {
		return err
	}

	log.Tracef("add %s to %s", component.Name(), d.name)
	d.children = append(d.children, component)
	return nil
}

// checkCycle fails when d is component or one of its descendants
func (d *Directory) checkCycle(component FileSystemComponent) error {
	return Walk(component, func(c FileSystemComponent, _ int) error {
		if dir, ok := c.(*Directory); ok && dir == d {
			return xerror.XWrapf(ErrCycle, "add %s to %s", component.Name(), d.name)
		}
		return nil
	})
}

func (d *Directory) Children() []FileSystemComponent {
	children := make([]FileSystemComponent, len(d.children))
	copy(children, d.children)
	return children
}

// Print checks the depth of the whole tree first, a too deep tree writes nothing
func (d *Directory) Print(out io.Writer, indent int) error {
	if err := checkDepth(d, indent); err != nil {
		return err
	}
	return d.print(out, indent)
}

func (d *Directory) print(out io.Writer, indent int) error {
	if err := printLine(out, indent, d.name); err != nil {
		return err
	}

	for _, child := range d.children {
		var err error
		if dir, ok := child.(*Directory); ok {
			err = dir.print(out, indent+1)
		} else {
			err = child.Print(out, indent+1)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
