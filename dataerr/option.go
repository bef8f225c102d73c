package dataerr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option  { return func(e *Error) { e.Message = msg } }
func WithKind(k Kind) Option         { return func(e *Error) { e.Kind = k } }
func WithPath(path string) Option    { return func(e *Error) { e.Path = path } }
func WithNamespace(ns string) Option { return func(e *Error) { e.Namespace = ns } }
