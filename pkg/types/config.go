package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	Feed FeedConfig

	// File downloads
	FileBucket        string `envconfig:"FILE_BUCKET" default:"vendorhub-files"`
	DownloadURLTTLSec uint   `envconfig:"DOWNLOAD_URL_TTL_SEC" default:"600"`
}

// FeedConfig carries the home feed tuning knobs. The defaults match the
// behavior the mobile clients were built against; treat them as policy, not
// law.
type FeedConfig struct {
	SectionSize           int  `envconfig:"FEED_SECTION_SIZE" default:"8"`
	CandidateSize         int  `envconfig:"FEED_CANDIDATE_SIZE" default:"60"`
	CategoryGridSize      int  `envconfig:"FEED_CATEGORY_GRID_SIZE" default:"10"`
	CategorySectionCount  int  `envconfig:"FEED_CATEGORY_SECTION_COUNT" default:"4"`
	MaxSectionAppearances int  `envconfig:"FEED_MAX_SECTION_APPEARANCES" default:"2"`
	BuildTimeoutSec       uint `envconfig:"FEED_BUILD_TIMEOUT_SEC" default:"5"`
}
