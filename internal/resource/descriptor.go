package resource

// FilterKind is the declared type of one filter field.
type FilterKind int

const (
	FilterText FilterKind = iota
	FilterEnum
	FilterInt
)

// FilterField declares one filterable field of a resource: its kind, its
// default, and the accepted values for enums. The sentinel value "all"
// always means "no filter" for enum fields.
type FilterField struct {
	Name    string
	Kind    FilterKind
	Default string
	Values  []string
}

// Descriptor is the capability description of one managed resource. The
// whole module — repository, actions, cached queries, HTTP delivery — is
// parameterized by it, so adding a resource means writing one descriptor
// plus a schema instead of copying five layers.
type Descriptor struct {
	// Name is the resource segment in console routes and cache keys.
	Name string

	// BasePath is the upstream REST path, e.g. "/news".
	BasePath string

	// DefaultLimit is the page size when the client does not ask for one.
	DefaultLimit int

	// Filters lists the accepted non-pagination filter fields.
	Filters []FilterField
}

// Field returns the declared filter field by name.
func (d Descriptor) Field(name string) (FilterField, bool) {
	for _, f := range d.Filters {
		if f.Name == name {
			return f, true
		}
	}
	return FilterField{}, false
}
