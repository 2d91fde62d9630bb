package homepage

// ServicesConfig is a gethomepage services.yaml: a list of single-key
// group maps, each holding a list of single-key service maps. The list
// shape keeps the file order of groups and services.
type ServicesConfig []map[string][]map[string]ServiceProps

// ServiceProps are the service fields the importer reads. Widgets, pings
// and monitors are ignored.
type ServiceProps struct {
	Href        string `yaml:"href"`
	Icon        string `yaml:"icon,omitempty"`
	Description string `yaml:"description,omitempty"`
}
