package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	// QwenCompatibleBaseURL is DashScope's OpenAI-compatible endpoint.
	QwenCompatibleBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
