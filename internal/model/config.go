package model

// Config holds the complete neolex configuration
type Config struct {
	Data       DataConfig       `yaml:"data" mapstructure:"data"`
	Novels     NovelsConfig     `yaml:"novels" mapstructure:"novels"`
	Annotation AnnotationConfig `yaml:"annotation" mapstructure:"annotation"`
	Dictionary DictionaryConfig `yaml:"dictionary" mapstructure:"dictionary"`
	Cache      CacheConfig      `yaml:"cache" mapstructure:"cache"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
}

// DataConfig defines the on-disk layout of pipeline intermediates
type DataConfig struct {
	Root        string `yaml:"root" mapstructure:"root"`                 // Base data directory
	ArchivePath string `yaml:"archive_path" mapstructure:"archive_path"` // Gutenberg-dammit ZIP
}

// NovelsConfig maps each genre to its configured novels (title -> author)
type NovelsConfig struct {
	SciFi   map[string]string `yaml:"scifi" mapstructure:"scifi"`
	Romance map[string]string `yaml:"romance" mapstructure:"romance"`
}

// ByGenre returns the configured novels for a genre
func (n NovelsConfig) ByGenre(g Genre) map[string]string {
	switch g {
	case GenreSciFi:
		return n.SciFi
	case GenreRomance:
		return n.Romance
	default:
		return nil
	}
}

// AnnotationConfig configures the external NLP annotation service
type AnnotationConfig struct {
	Provider  string  `yaml:"provider" mapstructure:"provider"`     // "openai", "spacy", ""
	Model     string  `yaml:"model" mapstructure:"model"`           // Provider-specific model name
	APIKey    string  `yaml:"-" mapstructure:"-"`                   // Never persisted
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`     // Custom endpoint (spacy-server)
	Timeout   int     `yaml:"timeout" mapstructure:"timeout"`       // Seconds per request
	ChunkSize int     `yaml:"chunk_size" mapstructure:"chunk_size"` // Max chars per annotation request
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"` // Requests per second
	RateBurst int     `yaml:"rate_burst" mapstructure:"rate_burst"`

	// Proxy settings for the spacy provider
	HTTPProxy  string `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy" mapstructure:"https_proxy"`
}

// DictionaryConfig configures exclusion dictionary construction
type DictionaryConfig struct {
	CutoffYear          int `yaml:"cutoff_year" mapstructure:"cutoff_year"`                   // Author death year bound for the corpus
	MinTokenLen         int `yaml:"min_token_len" mapstructure:"min_token_len"`               // Corpus tokens shorter than this are dropped
	BatchSize           int `yaml:"batch_size" mapstructure:"batch_size"`                     // Corpus records per batch
	CheckpointFrequency int `yaml:"checkpoint_frequency" mapstructure:"checkpoint_frequency"` // Records between checkpoint saves
	RecordLimit         int `yaml:"record_limit" mapstructure:"record_limit"`                 // 0 = no limit
}

// CacheConfig configures the annotation result cache
type CacheConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir      string `yaml:"dir" mapstructure:"dir"`
	TTLHours int    `yaml:"ttl_hours" mapstructure:"ttl_hours"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose  bool   `yaml:"verbose" mapstructure:"verbose"`
	JSONPath string `yaml:"json_path" mapstructure:"json_path"` // Optional metrics JSON output
}

// DefaultConfig returns the configuration used by the published study
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Root:        "data",
			ArchivePath: "gutenberg-dammit-files-v002.zip",
		},
		Novels: NovelsConfig{
			SciFi: map[string]string{
				"The War in the Air": "H. G. Wells",          // 1908
				"A Princess of Mars": "Edgar Rice Burroughs", // 1912
				"The Night Land":     "William Hope Hodgson", // 1912
			},
			Romance: map[string]string{
				"Three Weeks": "Elinor Glyn",             // 1907
				"The Shuttle": "Frances Hodgson Burnett", // 1907
				"The Rosary":  "Florence L. Barclay",     // 1909
			},
		},
		Annotation: AnnotationConfig{
			Provider:  "spacy",
			BaseURL:   "http://localhost:8080",
			Timeout:   120,
			ChunkSize: 50000,
			RateLimit: 2.0,
			RateBurst: 5,
		},
		Dictionary: DictionaryConfig{
			CutoffYear:          1900,
			MinTokenLen:         2,
			BatchSize:           20,
			CheckpointFrequency: 5,
		},
		Cache: CacheConfig{
			Enabled:  true,
			Dir:      "", // Defaults to <data.root>/cache
			TTLHours: 24 * 30,
		},
		Output: OutputConfig{},
	}
}
