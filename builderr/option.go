package builderr

// Option is an Error option function
type Option func(*Error)

func WithOp(op string) Option         { return func(e *Error) { e.Op = op } }
func WithDetail(detail string) Option { return func(e *Error) { e.Detail = detail } }
