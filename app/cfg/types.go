package cfg

type Cfg struct {
	// HTTP server configuration
	Port         string
	BaseUrl      string
	APIAccessKey string

	// Upload handling
	MaxUploadSize int64
	DBPath        string
	SchemaFile    string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
