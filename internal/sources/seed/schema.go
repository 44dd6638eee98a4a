package seed

// SiteEntry is one site in the seed file.
type SiteEntry struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Icon string `yaml:"icon"`
}

// GroupEntry is a named group with its sites.
type GroupEntry struct {
	Name  string      `yaml:"name"`
	Sites []SiteEntry `yaml:"sites"`
}

// File is the root structure of the seed YAML.
type File struct {
	Groups []GroupEntry `yaml:"groups"`
}
