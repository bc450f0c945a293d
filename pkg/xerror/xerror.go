package xerror

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

type ErrorCategory interface {
	Name() string
}

var (
	Normal     = newErrorCategory("normal")
	Weather    = newErrorCategory("weather")
	Payment    = newErrorCategory("payment")
	FileSystem = newErrorCategory("filesystem")
)

type xErrorCategory struct {
	name string
}

func (e xErrorCategory) Name() string {
	return e.name
}

func newErrorCategory(name string) ErrorCategory {
	return &xErrorCategory{
		name: name,
	}
}

// a wrapped error with error category, the stack is carried by the outer pkg/errors wrapper
type XError struct {
	category ErrorCategory
	err      error
}

func (e *XError) Category() ErrorCategory {
	return e.category
}

// return the innerest xerror message
func (e *XError) Error() string {
	var inner *XError
	if stderrors.As(e.err, &inner) {
		return inner.Error()
	}

	return fmt.Sprintf("[%s] %s", e.category.Name(), e.err.Error())
}

func (e *XError) Unwrap() error {
	return e.err
}

// NewWithoutStack builds a sentinel, return it through XWrapf to attach a stack
func NewWithoutStack(errCategory ErrorCategory, message string) *XError {
	return &XError{
		category: errCategory,
		err:      stderrors.New(message),
	}
}

func Wrap(err error, errCategory ErrorCategory, message string) error {
	if err == nil {
		return nil
	}

	err = &XError{
		category: errCategory,
		err:      err,
	}
	return errors.Wrap(err, message)
}

func Wrapf(err error, errCategory ErrorCategory, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	err = &XError{
		category: errCategory,
		err:      err,
	}
	return errors.Wrapf(err, format, args...)
}

// XWrapf keeps the category of xerr, used to return sentinel errors with context
func XWrapf(xerr *XError, format string, args ...interface{}) error {
	return errors.Wrapf(xerr, format, args...)
}
