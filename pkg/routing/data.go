package routing

import "edgeorigin/pkg/models"

const (
	euBucketHost = "s3.eu-central-003.backblazeb2.com"
	usBucketHost = "s3.us-west-004.backblazeb2.com"
)

// defaultEntries is the bucket layout of the production deployment. Bucket
// names and hosts vary per category and region; backend names are pinned
// to the two pre-provisioned backends.
var defaultEntries = []Entry{
	{CategoryImages, RegionEU, models.Origin{BackendName: BackendEU, BucketName: "images-shobl-cache", BucketHost: euBucketHost}},
	{CategoryImages, RegionUS, models.Origin{BackendName: BackendUS, BucketName: "images-shobl-cache-us", BucketHost: usBucketHost}},
	{CategoryGames, RegionEU, models.Origin{BackendName: BackendEU, BucketName: "games-shobl", BucketHost: euBucketHost}},
	{CategoryGames, RegionUS, models.Origin{BackendName: BackendUS, BucketName: "games-shobl-us", BucketHost: usBucketHost}},
	{CategoryMusic, RegionEU, models.Origin{BackendName: BackendEU, BucketName: "music-shobl", BucketHost: euBucketHost}},
	{CategoryMusic, RegionUS, models.Origin{BackendName: BackendUS, BucketName: "music-shobl-us", BucketHost: usBucketHost}},
	{CategoryVideo, RegionEU, models.Origin{BackendName: BackendEU, BucketName: "videos-shobl", BucketHost: euBucketHost}},
	{CategoryVideo, RegionUS, models.Origin{BackendName: BackendUS, BucketName: "videos-shobl-us", BucketHost: usBucketHost}},
	{CategoryComics, RegionEU, models.Origin{BackendName: BackendEU, BucketName: "comics-shobl", BucketHost: euBucketHost}},
	{CategoryComics, RegionUS, models.Origin{BackendName: BackendUS, BucketName: "comics-shobl-us", BucketHost: usBucketHost}},
	{CategoryArt, RegionEU, models.Origin{BackendName: BackendEU, BucketName: "art-shobl", BucketHost: euBucketHost}},
	{CategoryArt, RegionUS, models.Origin{BackendName: BackendUS, BucketName: "art-shobl-us", BucketHost: usBucketHost}},
	{CategoryPublicImages, RegionEU, models.Origin{BackendName: BackendEU, BucketName: "images-public-seo", BucketHost: euBucketHost}},
	{CategoryPublicImages, RegionUS, models.Origin{BackendName: BackendUS, BucketName: "images-public-seo-us", BucketHost: usBucketHost}},
}

// defaultCatalog fails the process at init if the compiled-in layout has a
// defect. A catalog gap must never surface at request time.
var defaultCatalog = MustNewCatalog(defaultEntries)

// Default returns the process-wide catalog built from the compiled-in
// bucket layout.
func Default() *Catalog {
	return defaultCatalog
}
