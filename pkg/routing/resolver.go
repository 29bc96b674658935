package routing

import "edgeorigin/pkg/models"

// Resolution is the outcome of resolving a request path against a region
// or POP code.
type Resolution struct {
	Origin   models.Origin `json:"origin"`
	Category Category      `json:"category"`
	Region   Region        `json:"region"`
	POP      string        `json:"pop,omitempty"`
}

// Resolver composes the path classifier, the POP table, and the origin
// catalog. Every lookup is total: any input, however malformed, bottoms
// out at a defined origin. Refusing to serve from the edge is worse than
// serving from a best-guess bucket.
type Resolver struct {
	catalog *Catalog
}

// NewResolver creates a resolver over the given catalog. A nil catalog
// selects the compiled-in default.
func NewResolver(catalog *Catalog) *Resolver {
	if catalog == nil {
		catalog = Default()
	}
	return &Resolver{catalog: catalog}
}

// Catalog returns the catalog this resolver reads from.
func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// Resolve classifies the path and returns the origin serving its category
// in the region. Unrecognized regions resolve as DefaultRegion.
func (r *Resolver) Resolve(path string, region Region) Resolution {
	if _, ok := backendForRegion[region]; !ok {
		region = DefaultRegion
	}
	category := Classify(path)
	return Resolution{
		Origin:   r.catalog.Lookup(category, region),
		Category: category,
		Region:   region,
	}
}

// ResolveForPOP resolves the path for the region of the given edge POP
// code. An empty code is treated as DefaultPOP.
func (r *Resolver) ResolveForPOP(path, pop string) Resolution {
	code := normalizePOP(pop)
	if code == "" {
		code = DefaultPOP
	}
	resolution := r.Resolve(path, RegionForPOP(code))
	resolution.POP = code
	return resolution
}
