package routing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResolverTestSuite tests the composed resolution path.
type ResolverTestSuite struct {
	suite.Suite
	resolver *Resolver
}

// SetupSuite runs once before all tests.
func (s *ResolverTestSuite) SetupSuite() {
	s.resolver = NewResolver(nil)
}

// TestResolveBackendFollowsRegion tests that the backend name is decided
// by the region alone, for every category prefix.
func (s *ResolverTestSuite) TestResolveBackendFollowsRegion() {
	paths := []string{
		"games/foo.png",
		"art/piece.jpg",
		"music/track.mp3",
		"videos/clip.mp4",
		"comics/issue-1.cbz",
		"images-public/banner.png",
		"anything/else.bin",
		"",
	}

	for _, path := range paths {
		s.Equal(BackendEU, s.resolver.Resolve(path, RegionEU).Origin.BackendName, path)
		s.Equal(BackendUS, s.resolver.Resolve(path, RegionUS).Origin.BackendName, path)
	}
}

// TestResolveCategorySelection tests that the resolved bucket follows the
// path category.
func (s *ResolverTestSuite) TestResolveCategorySelection() {
	resolution := s.resolver.Resolve("games/foo.png", RegionEU)
	s.Equal(CategoryGames, resolution.Category)
	s.Equal("games-shobl", resolution.Origin.BucketName)

	resolution = s.resolver.Resolve("comics/issue.cbz", RegionUS)
	s.Equal(CategoryComics, resolution.Category)
	s.Equal("comics-shobl-us", resolution.Origin.BucketName)

	resolution = s.resolver.Resolve("random/x", RegionUS)
	s.Equal(CategoryImages, resolution.Category)
	s.Equal("images-shobl-cache-us", resolution.Origin.BucketName)
}

// TestResolveUnknownRegion tests that malformed regions still resolve.
func (s *ResolverTestSuite) TestResolveUnknownRegion() {
	resolution := s.resolver.Resolve("games/foo.png", Region("mars"))
	s.Equal(DefaultRegion, resolution.Region)
	s.Equal(s.resolver.Resolve("games/foo.png", DefaultRegion).Origin, resolution.Origin)
}

// TestResolveForPOP tests POP-driven resolution on both sides of the split.
func (s *ResolverTestSuite) TestResolveForPOP() {
	resolution := s.resolver.ResolveForPOP("music/track.mp3", "AMS")
	s.Equal(RegionEU, resolution.Region)
	s.Equal("AMS", resolution.POP)
	s.Equal("music-shobl", resolution.Origin.BucketName)

	resolution = s.resolver.ResolveForPOP("music/track.mp3", "sjc")
	s.Equal(RegionUS, resolution.Region)
	s.Equal("SJC", resolution.POP)
	s.Equal("music-shobl-us", resolution.Origin.BucketName)
}

// TestResolveForPOPFallbacks tests unknown and empty POP codes.
func (s *ResolverTestSuite) TestResolveForPOPFallbacks() {
	resolution := s.resolver.ResolveForPOP("art/piece.jpg", "ZZZ")
	s.Equal(DefaultRegion, resolution.Region)
	s.Equal("ZZZ", resolution.POP)

	resolution = s.resolver.ResolveForPOP("art/piece.jpg", "")
	s.Equal(DefaultPOP, resolution.POP)
	s.Equal(RegionForPOP(DefaultPOP), resolution.Region)
}

// TestResolveIdempotent tests that identical inputs yield identical
// resolutions.
func (s *ResolverTestSuite) TestResolveIdempotent() {
	first := s.resolver.Resolve("videos/clip.mp4", RegionEU)
	second := s.resolver.Resolve("videos/clip.mp4", RegionEU)
	s.Equal(first, second)

	firstPOP := s.resolver.ResolveForPOP("videos/clip.mp4", "LHR")
	secondPOP := s.resolver.ResolveForPOP("videos/clip.mp4", "LHR")
	s.Equal(firstPOP, secondPOP)
}

// TestResolveConcurrent tests unsynchronized parallel reads against the
// shared catalog.
func (s *ResolverTestSuite) TestResolveConcurrent() {
	const goroutines = 32

	codes := POPs()
	results := make([]Resolution, goroutines)

	var waitGroup sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		waitGroup.Add(1)
		go func(n int) {
			defer waitGroup.Done()
			results[n] = s.resolver.ResolveForPOP("images-public/banner.png", codes[n%len(codes)])
		}(i)
	}
	waitGroup.Wait()

	for i, resolution := range results {
		s.Equal(CategoryPublicImages, resolution.Category, codes[i%len(codes)])
		s.NotEmpty(resolution.Origin.BucketHost)
	}
}

// TestNewResolverExplicitCatalog tests resolving over a caller-built
// catalog.
func (s *ResolverTestSuite) TestNewResolverExplicitCatalog() {
	catalog, err := NewCatalog(defaultEntries)
	s.Require().NoError(err)

	resolver := NewResolver(catalog)
	s.Same(catalog, resolver.Catalog())
	s.Equal(s.resolver.Resolve("games/x", RegionEU), resolver.Resolve("games/x", RegionEU))
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
