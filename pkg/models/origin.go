package models

// Origin identifies the storage backend that serves a piece of content.
type Origin struct {
	// BackendName matches the name of a pre-provisioned network backend.
	BackendName string `json:"backend_name"`
	// BucketName is the logical storage container to serve from.
	BucketName string `json:"bucket_name"`
	// BucketHost is the DNS host the bucket is reachable on.
	BucketHost string `json:"bucket_host"`
}

// VersionResponse reports the service build version.
type VersionResponse struct {
	Version string `json:"version"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// PopResponse describes the region assignment of a single POP code.
type PopResponse struct {
	Code   string `json:"code"`
	Region string `json:"region"`
	// Known is false when the code is absent from the POP table and the
	// default-region fallback applied.
	Known bool `json:"known"`
}

// PopListResponse lists every POP code in the table.
type PopListResponse struct {
	Pops []PopResponse `json:"pops"`
}
