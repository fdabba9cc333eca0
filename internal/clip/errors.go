package clip

// Error taxonomy for the clipping pipeline. The HTTP layer maps
// ValidationError to 400 and everything else to 500.

// ValidationError reports a malformed or inconsistent clip request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StreamResolutionError reports a failure to obtain a direct stream URL.
type StreamResolutionError struct {
	Message string
	Err     error
}

func (e *StreamResolutionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *StreamResolutionError) Unwrap() error {
	return e.Err
}

// ExtractionError reports a failure to produce the trimmed clip file.
type ExtractionError struct {
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// PublishError reports a failure to upload the clip to object storage.
type PublishError struct {
	Message string
	Err     error
}

func (e *PublishError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *PublishError) Unwrap() error {
	return e.Err
}
