package gocert

import (
	"errors"
	"fmt"
)

// Error kinds reported by Generate. Any of them means no artifact was produced.
var (
	ErrMissingAsset   = errors.New("template asset missing")
	ErrTemplateDecode = errors.New("template decode failed")
	ErrEncode         = errors.New("artifact encoding failed")
	ErrRender         = errors.New("render failed")
)

// RenderError describes why a certificate produced no artifacts.
type RenderError struct {
	Kind  error
	Asset string
	Err   error
}

func (e *RenderError) Error() string {
	msg := e.Kind.Error()
	if e.Asset != "" {
		msg += " (" + e.Asset + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *RenderError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func renderErr(kind error, asset string, err error) error {
	return &RenderError{Kind: kind, Asset: asset, Err: err}
}

func recoveredErr(v any) error {
	if err, ok := v.(error); ok {
		return renderErr(ErrRender, "", err)
	}
	return renderErr(ErrRender, "", fmt.Errorf("%v", v))
}
