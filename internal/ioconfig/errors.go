package ioconfig

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/mdverse/mddx/pkg/errcode"
)

func ReadConfigError(path string, err error) error {
	msg := "Cannot read config file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadConfigError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read config: %w",
			fn, err),
	}
}

func ParseConfigError(path string, err error) error {
	msg := "Config file <em>%s</em> is malformed"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParseConfigError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse config: %w",
			fn, err),
	}
}
