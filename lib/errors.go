package lib

// CoreError identifies a structured failure surfaced by this package. Values
// are stable and safe to match with errors.Is after any amount of wrapping.
type CoreError string

func (e CoreError) Error() string {
	return string(e)
}

const (
	// ErrorInvalidConfig covers construction-time failures: an empty recipe,
	// an unsupported width, a nonce length outside [1, 255], or a challenge
	// value whose length cannot ever satisfy its predicate.
	ErrorInvalidConfig CoreError = "ErrorInvalidConfig"

	// ErrorBufferTooSmall is returned when the nonce region would splice
	// past the end of the data buffer.
	ErrorBufferTooSmall CoreError = "ErrorBufferTooSmall"

	// ErrorNonceSpaceExhausted is returned when the nonce region wrapped to
	// all zeros without any candidate satisfying the challenge.
	ErrorNonceSpaceExhausted CoreError = "ErrorNonceSpaceExhausted"

	// ErrorIoFailure is returned when a message source fails with anything
	// other than a clean EOF.
	ErrorIoFailure CoreError = "ErrorIoFailure"
)
