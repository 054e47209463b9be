package fsv

import (
	"errors"
	"fmt"
)

// ErrOutOfRange 下标越界错误
var ErrOutOfRange = errors.New("index out of range")

// ErrDuplicatePredicate 过滤器重复注册错误
var ErrDuplicatePredicate = errors.New("predicate already registered")

// RangeError records the operation and the offending index.
type RangeError struct {
	Op    string
	Index int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("fsv: %s(%d): %v", e.Op, e.Index, ErrOutOfRange)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
