package dumperr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithFile(name string) Option   { return func(e *Error) { e.File = name } }
func WithRecord(kind string) Option { return func(e *Error) { e.Record = kind } }
func WithID(id uint32) Option       { return func(e *Error) { e.ID = id } }
func WithCause(cause error) Option  { return func(e *Error) { e.Cause = cause } }

func WithPosition(line, col int) Option {
	return func(e *Error) { e.Line, e.Column = line, col }
}

// Annotate applies opts to the *Error in err's chain, filling only
// fields that are still empty, and returns err. Errors that are not
// *Error are returned unchanged.
func Annotate(err error, opts ...Option) error {
	e := As(err)
	if e == nil || isSentinel(e) || e == ErrClosed {
		return err
	}
	var patch Error
	for _, opt := range opts {
		opt(&patch)
	}
	if e.File == "" {
		e.File = patch.File
	}
	if e.Record == "" {
		e.Record = patch.Record
	}
	if e.ID == 0 {
		e.ID = patch.ID
	}
	if e.Line == 0 {
		e.Line, e.Column = patch.Line, patch.Column
	}
	if e.Message == "" {
		e.Message = patch.Message
	}
	return err
}
