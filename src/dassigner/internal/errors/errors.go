package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderr.Is(err, target)
}

var (
	// NoMessageOnWireError reports that the request is missing its parameters.
	NoMessageOnWireError = New("no message on wire")
	// EmptyPromptError reports that a prompt was blank after trimming.
	EmptyPromptError = New("Prompt is required and cannot be empty.")
	// EmptyTitleError reports that a project title was blank after trimming.
	EmptyTitleError = New("Title is required and cannot be empty.")
	// UnsupportedTargetError reports a conversion target other than React or Vue.
	UnsupportedTargetError = New(`Framework must be either "React" or "Vue".`)
	// UnknownExampleError reports an example index outside the catalog.
	UnknownExampleError = New("unknown example")
	// StaleResultError reports a model result that arrived after the project or design it was requested for was replaced.
	StaleResultError = New("The active design changed before the result arrived. The result was discarded.")
)

// IsBadRequest reports whether the error is a bad request from the caller.
func IsBadRequest(e error) bool {
	return stderr.Is(e, NoMessageOnWireError) ||
		stderr.Is(e, EmptyPromptError) ||
		stderr.Is(e, EmptyTitleError) ||
		stderr.Is(e, UnsupportedTargetError) ||
		stderr.Is(e, UnknownExampleError)
}
