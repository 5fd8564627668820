package logging

const (
	// ServiceName is the name the sink registers under in a service locator.
	ServiceName = "pusher-logging"
	emptyString = ""
)

// Structured field names written by the sink alongside the formatted message.
const (
	EventFieldName    = "event"
	CategoryFieldName = "category"
	ContextFieldName  = "context"
)

const (
	consoleFormatConsole = "console"
	consoleFormatJSON    = "json"

	defaultLogDir  = "logs"
	defaultExeName = "pusher"
)

const (
	errMsgNilConfig      = "Logging config is nil."
	errMsgNilService     = "Logger service is nil."
	errMsgConfigInvalid  = "Logging configuration is invalid."
	errMsgUnknownLevel   = "Unknown logging level"
	errMsgNoChannels     = "No logging channels enabled."
	errMsgReadConfig     = "Reading logging config file failed."
	errMsgParseConfig    = "Parsing logging config file failed."
	errMsgLogDir         = "Failed to create logs directory."
	errMsgWorkingDir     = "Failed to resolve working directory."
	errMsgCloseFile      = "Failed to close log file."
	errMsgAlreadyStarted = "Logger service is already initialized."
)

// Error enrichment fields written when a context value is an error.
const (
	ErrorChainFieldName   = "error_chain"
	ErrorRootFieldName    = "error_root"
	ErrorHistoryFieldName = "error_history"
	ErrorOpsFieldName     = "error_ops"
	ErrorRootOpFieldName  = "error_root_op"
)
