package errors

// ErrorPayload is the caller-facing shape of a failed operation. The short
// classification message is always present; Details carries the underlying
// cause and context only when verbose diagnostics are enabled.
type ErrorPayload struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// Payload converts an error into its caller-facing payload. Verbose mode
// gates everything beyond the short classification: the structured details
// and the underlying cause chain.
func Payload(err error, verbose bool) ErrorPayload {
	if err == nil {
		return ErrorPayload{}
	}

	se, ok := err.(*SeekError)
	if !ok {
		se = Wrap(ErrCodeInternal, err)
	}

	p := ErrorPayload{
		Error: se.Message,
		Code:  se.Code,
	}

	if !verbose {
		return p
	}

	p.Details = make(map[string]string, len(se.Details)+1)
	for k, v := range se.Details {
		p.Details[k] = v
	}
	if se.Cause != nil {
		p.Details["cause"] = se.Cause.Error()
	}
	if len(p.Details) == 0 {
		p.Details = nil
	}
	return p
}
