package routing

import "errors"

var (
	// ErrMissingEntry is returned when the catalog lacks an entry for some
	// (category, region) pair.
	ErrMissingEntry = errors.New("catalog entry missing")

	// ErrDuplicateEntry is returned when a (category, region) pair is
	// declared more than once.
	ErrDuplicateEntry = errors.New("catalog entry duplicated")

	// ErrIncompleteOrigin is returned when an origin record has an empty
	// backend name, bucket name, or bucket host.
	ErrIncompleteOrigin = errors.New("incomplete origin record")

	// ErrUnknownRegion is returned when an entry declares a region outside
	// the Region enumeration.
	ErrUnknownRegion = errors.New("unknown region")

	// ErrBackendMismatch is returned when an entry's backend name is not
	// the pre-provisioned backend of its region.
	ErrBackendMismatch = errors.New("backend does not match region")

	// ErrMalformedBucketHost is returned when a bucket host does not fit
	// the s3.<region-token>.<provider-domain> pattern.
	ErrMalformedBucketHost = errors.New("malformed bucket host")

	// ErrHostRegionMismatch is returned when a bucket host's region token
	// disagrees with the entry's declared region.
	ErrHostRegionMismatch = errors.New("bucket host region does not match entry region")
)
