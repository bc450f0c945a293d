package filesystem

import "io"

// File is a leaf
type File struct {
	name string
}

func NewFile(name string) *File {
	return &File{name: name}
}

func (f *File) Name() string {
	return f.name
}

func (f *File) Print(out io.Writer, indent int) error {
	return printLine(out, indent, f.name)
}
