package routing

import (
	"regexp"
	"sort"
	"strings"
)

// Region identifies which of the two serving regions an origin lives in.
type Region string

const (
	RegionEU Region = "eu"
	RegionUS Region = "us"
)

// DefaultRegion is used for POP codes missing from the table. The table
// skews heavily US; unknown edges are treated the same way.
const DefaultRegion = RegionUS

// DefaultPOP is the edge code assumed when none is supplied, e.g. when
// running against a local test server.
const DefaultPOP = "SJC"

// Regions returns both serving regions.
func Regions() []Region {
	return []Region{RegionEU, RegionUS}
}

// ParseRegion normalizes a free-form region string against the Region
// enumeration. The second return value is false for unrecognized input.
func ParseRegion(s string) (Region, bool) {
	switch Region(strings.ToLower(strings.TrimSpace(s))) {
	case RegionEU:
		return RegionEU, true
	case RegionUS:
		return RegionUS, true
	}
	return "", false
}

// popRegions maps edge POP codes to serving regions:
// North America, South America, Asia/Pacific => US; Europe, Africa => EU.
var popRegions = map[string]Region{
	"AMS": RegionEU,
	"WDC": RegionUS,
	"IAD": RegionUS,
	"BWI": RegionUS,
	"DCA": RegionUS,
	"ATL": RegionUS,
	"FTY": RegionUS,
	"PDK": RegionUS,
	"AKL": RegionUS,
	"BOG": RegionUS,
	"BOS": RegionUS,
	"BNE": RegionUS,
	"EZE": RegionUS,
	"CPT": RegionEU,
	"MAA": RegionUS,
	"ORD": RegionUS,
	"LOT": RegionUS,
	"CHI": RegionUS,
	"MDW": RegionUS,
	"PWK": RegionUS,
	"CMH": RegionUS,
	"LCK": RegionUS,
	"CPH": RegionEU,
	"CWB": RegionUS,
	"DFW": RegionUS,
	"DAL": RegionUS,
	"DEL": RegionUS,
	"DEN": RegionUS,
	"DTW": RegionUS,
	"DXB": RegionUS,
	"DUB": RegionEU,
	"FOR": RegionUS,
	"FRA": RegionEU,
	"HHN": RegionEU,
	"FJR": RegionUS,
	"GNV": RegionUS,
	"ACC": RegionEU,
	"HEL": RegionEU,
	"HKG": RegionUS,
	"HNL": RegionUS,
	"IAH": RegionUS,
	"HYD": RegionUS,
	"JAX": RegionUS,
	"JNB": RegionEU,
	"MCI": RegionUS,
	"CCU": RegionUS,
	"KUL": RegionUS,
	"LIM": RegionUS,
	"LCY": RegionEU,
	"LHR": RegionEU,
	"LON": RegionEU,
	"LGB": RegionUS,
	"SMO": RegionUS,
	"BUR": RegionUS,
	"MAD": RegionEU,
	"MAN": RegionEU,
	"MNL": RegionUS,
	"MRS": RegionEU,
	"MEL": RegionUS,
	"MIA": RegionUS,
	"MXP": RegionEU,
	"LIN": RegionEU,
	"MSP": RegionUS,
	"STP": RegionUS,
	"YUL": RegionUS,
	"BOM": RegionUS,
	"MUC": RegionEU,
	"LGA": RegionUS,
	"EWR": RegionUS,
	"ITM": RegionUS,
	"OSL": RegionEU,
	"PAO": RegionUS,
	"CDG": RegionEU,
	"PER": RegionUS,
	"PHX": RegionUS,
	"PDX": RegionUS,
	"GIG": RegionUS,
	"FCO": RegionEU,
	"SJC": RegionUS,
	"SCL": RegionUS,
	"CGH": RegionUS,
	"GRU": RegionUS,
	"SEA": RegionUS,
	"BFI": RegionUS,
	"ICN": RegionUS,
	"QPG": RegionUS,
	"SOF": RegionEU,
	"STL": RegionUS,
	"BMA": RegionEU,
	"SYD": RegionUS,
	"TYO": RegionUS,
	"HND": RegionUS,
	"NRT": RegionUS,
	"YYZ": RegionUS,
	"YVR": RegionUS,
	"VIE": RegionEU,
	"WLG": RegionUS,
}

// RegionForPOP returns the serving region for an edge POP code. Codes
// missing from the table resolve to DefaultRegion, so the lookup is total.
func RegionForPOP(pop string) Region {
	if region, ok := popRegions[normalizePOP(pop)]; ok {
		return region
	}
	return DefaultRegion
}

// KnownPOP reports whether the code is present in the POP table.
func KnownPOP(pop string) bool {
	_, ok := popRegions[normalizePOP(pop)]
	return ok
}

// POPs returns every known POP code in sorted order.
func POPs() []string {
	codes := make([]string, 0, len(popRegions))
	for code := range popRegions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func normalizePOP(pop string) string {
	return strings.ToUpper(strings.TrimSpace(pop))
}

// bucketHostPattern matches storage hosts shaped like
// s3.<region-token>.<provider-domain>. The provider domain must have at
// least two labels, so a bare trailing token is not mistaken for one.
var bucketHostPattern = regexp.MustCompile(`^s3\.([a-z0-9-]+)\.[a-z0-9][a-z0-9-]*(\.[a-z0-9-]+)+$`)

// RegionFromBucketHost extracts the provider region token from a storage
// host name. It exists for catalog consistency checks, not for request
// resolution; the second return value is false when the host does not fit
// the pattern.
func RegionFromBucketHost(host string) (string, bool) {
	match := bucketHostPattern.FindStringSubmatch(host)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// regionForToken maps a provider region token such as "eu-central-003" to
// a serving region by its leading prefix.
func regionForToken(token string) (Region, bool) {
	switch {
	case strings.HasPrefix(token, "eu-"):
		return RegionEU, true
	case strings.HasPrefix(token, "us-"):
		return RegionUS, true
	}
	return "", false
}
