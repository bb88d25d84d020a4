package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldUserAgent  = "user_agent"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldWindowDays     = "window_days"
	FieldStateFilter    = "state_filter"
	FieldJobsConsidered = "jobs_considered"
	FieldJobID          = "job_id"
	FieldJobState       = "job_state"
	FieldSource         = "source"
	FieldExitCode       = "exit_code"
)
