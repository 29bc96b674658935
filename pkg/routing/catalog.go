package routing

import (
	"fmt"
	"sort"

	"edgeorigin/pkg/models"
)

// Names of the two pre-provisioned network backends. The bucket-level
// fields of an origin vary per category and region; the backend identity
// set does not.
const (
	BackendEU = "eu_origin"
	BackendUS = "us_origin"
)

// backendForRegion pins each region to its backend.
var backendForRegion = map[Region]string{
	RegionEU: BackendEU,
	RegionUS: BackendUS,
}

// Entry declares the origin serving one category in one region.
type Entry struct {
	Category Category      `json:"category"`
	Region   Region        `json:"region"`
	Origin   models.Origin `json:"origin"`
}

type catalogKey struct {
	category Category
	region   Region
}

// Catalog is the immutable (Category, Region) -> Origin registry. It is
// built and validated once at startup and read-only afterwards, so it is
// safe for unbounded concurrent lookups.
type Catalog struct {
	origins map[catalogKey]models.Origin
}

// NewCatalog builds a catalog from entries. Every (category, region) pair
// must be declared exactly once with a well-formed, internally consistent
// origin; any gap or inconsistency is a configuration defect reported at
// construction time, never at request time.
func NewCatalog(entries []Entry) (*Catalog, error) {
	origins := make(map[catalogKey]models.Origin, len(entries))
	for _, entry := range entries {
		if err := validateEntry(entry); err != nil {
			return nil, err
		}
		key := catalogKey{entry.Category, entry.Region}
		if _, exists := origins[key]; exists {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateEntry, entry.Category, entry.Region)
		}
		origins[key] = entry.Origin
	}

	for _, category := range Categories() {
		for _, region := range Regions() {
			if _, ok := origins[catalogKey{category, region}]; !ok {
				return nil, fmt.Errorf("%w: %s/%s", ErrMissingEntry, category, region)
			}
		}
	}

	return &Catalog{origins: origins}, nil
}

// MustNewCatalog is NewCatalog that panics on a configuration defect.
// Intended for the compiled-in catalog, where a defect must stop the
// process before it serves traffic.
func MustNewCatalog(entries []Entry) *Catalog {
	catalog, err := NewCatalog(entries)
	if err != nil {
		panic(err)
	}
	return catalog
}

func validateEntry(entry Entry) error {
	origin := entry.Origin
	if origin.BackendName == "" || origin.BucketName == "" || origin.BucketHost == "" {
		return fmt.Errorf("%w: %s/%s", ErrIncompleteOrigin, entry.Category, entry.Region)
	}

	backend, ok := backendForRegion[entry.Region]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, entry.Region)
	}
	if origin.BackendName != backend {
		return fmt.Errorf("%w: %s/%s declares %q, region backend is %q",
			ErrBackendMismatch, entry.Category, entry.Region, origin.BackendName, backend)
	}

	token, ok := RegionFromBucketHost(origin.BucketHost)
	if !ok {
		return fmt.Errorf("%w: %s/%s host %q", ErrMalformedBucketHost, entry.Category, entry.Region, origin.BucketHost)
	}
	hostRegion, ok := regionForToken(token)
	if !ok || hostRegion != entry.Region {
		return fmt.Errorf("%w: %s/%s host %q", ErrHostRegionMismatch, entry.Category, entry.Region, origin.BucketHost)
	}

	return nil
}

// Lookup returns the origin serving the category in the region. Unknown
// categories fall back to Images and unknown regions to DefaultRegion, so
// the lookup is total over arbitrary input.
func (c *Catalog) Lookup(category Category, region Region) models.Origin {
	if _, ok := backendForRegion[region]; !ok {
		region = DefaultRegion
	}
	origin, ok := c.origins[catalogKey{category, region}]
	if !ok {
		origin = c.origins[catalogKey{CategoryImages, region}]
	}
	return origin
}

// DefaultOrigin returns the region's default origin. The default is
// defined to be the Images origin, not a separate bucket.
func (c *Catalog) DefaultOrigin(region Region) models.Origin {
	return c.Lookup(CategoryImages, region)
}

// OriginForPOP is the legacy coarse lookup for call sites that only know
// the edge POP: it maps the POP straight to its region's default origin.
// Derived from the catalog so it cannot drift from Lookup.
func (c *Catalog) OriginForPOP(pop string) models.Origin {
	return c.DefaultOrigin(RegionForPOP(pop))
}

// Entries returns the catalog contents in stable category-then-region
// order, for dumps and offline checks.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c.origins))
	for _, category := range Categories() {
		for _, region := range Regions() {
			entries = append(entries, Entry{
				Category: category,
				Region:   region,
				Origin:   c.origins[catalogKey{category, region}],
			})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].Region < entries[j].Region
	})
	return entries
}

// BucketHosts returns the distinct bucket hosts referenced by the catalog,
// sorted.
func (c *Catalog) BucketHosts() []string {
	seen := make(map[string]struct{})
	for _, origin := range c.origins {
		seen[origin.BucketHost] = struct{}{}
	}
	hosts := make([]string, 0, len(seen))
	for host := range seen {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts
}
