package types

// AIConfig holds settings for the generative AI conversion backend.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "gemini-2.5-pro").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API. Usually left empty
	// here and resolved from the environment or the secrets directory.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// RenderConfig holds settings for page rasterization.
type RenderConfig struct {
	// DPI is the render resolution for page images (default 200).
	DPI int `json:"dpi" yaml:"dpi"`
}

// WorkerConfig holds settings for the conversion worker.
type WorkerConfig struct {
	// PreviewWidth is the maximum rune width of the progress preview
	// emitted per page (default 80).
	PreviewWidth int `json:"preview_width" yaml:"preview_width"`
}

// Config groups all settings for the converter.
type Config struct {
	AI     AIConfig     `json:"ai" yaml:"ai"`
	Render RenderConfig `json:"render" yaml:"render"`
	Worker WorkerConfig `json:"worker" yaml:"worker"`

	// ConfigsPath is the file holding saved input/output path pairs.
	ConfigsPath string `json:"configs_path" yaml:"configs_path"`

	// HistoryDir is the directory holding the run history database.
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// SecretsDir is the directory holding API key files.
	SecretsDir string `json:"secrets_dir" yaml:"secrets_dir"`
}
