package iiif

// ImageProfile contains the technical properties about the service.
type ImageProfile struct {
	Context   string   `json:"@context,omitempty"`
	ID        string   `json:"@id,omitempty"`
	Type      string   `json:"@type,omitempty"` // empty or iiif:ImageProfile
	Formats   []string `json:"formats"`
	MaxArea   int      `json:"maxArea,omitempty"`
	MaxHeight int      `json:"maxHeight,omitempty"`
	MaxWidth  int      `json:"maxWidth,omitempty"`
	Qualities []string `json:"qualities"`
	Supports  []string `json:"supports,omitempty"`
}

// Image contains the technical properties about an image.
type Image struct {
	Context  string        `json:"@context"`
	ID       string        `json:"@id"`
	Type     string        `json:"@type,omitempty"` // empty or iiif:Image
	Protocol string        `json:"protocol"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Profile  []interface{} `json:"profile"`
}

// Extent is the size in pixels of a source image.
type Extent struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Config stores the IIIF server configuration.
type Config struct {
	Host      string      `toml:"host"`
	Port      int         `toml:"port"`
	Images    string      `toml:"images"`
	Catalog   string      `toml:"catalog"`
	MaxWidth  int         `toml:"maxWidth"`
	MaxHeight int         `toml:"maxHeight"`
	MaxArea   int         `toml:"maxArea"`
	Cache     CacheConfig `toml:"cache"`
}

// CacheConfig represents the configuration information regarding the cache.
type CacheConfig struct {
	HTTP        int64  `toml:"http"`
	Extents     string `toml:"extents"`
	ExtentsSize int64
}
