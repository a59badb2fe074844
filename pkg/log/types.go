package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // development | production
	Encoding     string // console | json
	ColorEnabled bool

	// FilePath, when set, also writes JSON logs to a rotating file.
	FilePath   string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

type ctxKey string

const (
	ctxKeyRequestID ctxKey = "request_id"
	ctxKeyUserID    ctxKey = "user_id"
)
