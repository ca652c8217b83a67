package ioarchive

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/mdverse/mddx/pkg/errcode"
)

func OpenError(path string, err error) error {
	msg := "Cannot open archive <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveOpenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open zip archive: %w",
			fn, err),
	}
}

func EntryNotFoundError(path, pattern string) error {
	msg := "Archive <em>%s</em> has no <em>%s</em> entry"
	vars := []any{path, pattern}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveEntryNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no entry matches %s in %s",
			fn, pattern, path),
	}
}

func EntryReadError(name string, err error) error {
	msg := "Cannot read archive entry <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveEntryReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read archive entry: %w",
			fn, err),
	}
}
