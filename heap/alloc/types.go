package alloc

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Ref is a payload reference: the arena offset of the payload's first byte.
// The zero Ref is the null reference; no payload can start at offset 0
// because a header always precedes it.
type Ref = uint64

// Origin is the call site that requested an operation, retained for
// diagnostics and leak reporting.
type Origin struct {
	File string
	Line int
}

// Here captures the caller's source location.
func Here() Origin {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return Origin{}
	}
	return Origin{File: filepath.Base(file), Line: line}
}

func (o Origin) String() string {
	file := o.File
	if file == "" {
		file = "?"
	}
	return fmt.Sprintf("%s:%d", file, o.Line)
}
