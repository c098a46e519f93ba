package error

// Coded is implemented by every typed domain error. ErrorCode is stable and
// shown to clients; Reason is the human-readable message without the
// wrapped cause.
type Coded interface {
	error
	ErrorCode() string
	Reason() string
}

// Failure is the shared shape of the typed domain errors. C is the error
// code type of one domain, e.g. CategoryErrorCode.
type Failure[C ~string] struct {
	Code    C
	Message string
	Err     error
}

func newFailure[C ~string](code C, message string, err error) *Failure[C] {
	return &Failure[C]{Code: code, Message: message, Err: err}
}

func (f *Failure[C]) Error() string {
	if f.Err != nil {
		return f.Message + ": " + f.Err.Error()
	}
	return f.Message
}

func (f *Failure[C]) Unwrap() error {
	return f.Err
}

func (f *Failure[C]) ErrorCode() string {
	return string(f.Code)
}

func (f *Failure[C]) Reason() string {
	return f.Message
}
