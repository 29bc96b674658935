package routing

import "strings"

// Category is the semantic content type inferred from a request path.
type Category string

const (
	CategoryImages       Category = "images"
	CategoryGames        Category = "games"
	CategoryMusic        Category = "music"
	CategoryVideo        Category = "video"
	CategoryComics       Category = "comics"
	CategoryArt          Category = "art"
	CategoryPublicImages Category = "public-images"
)

// Categories returns every known category. Images comes first: it is the
// fallback for paths no prefix rule matches.
func Categories() []Category {
	return []Category{
		CategoryImages,
		CategoryGames,
		CategoryMusic,
		CategoryVideo,
		CategoryComics,
		CategoryArt,
		CategoryPublicImages,
	}
}

// prefixRule assigns a category to paths starting with a prefix.
type prefixRule struct {
	prefix   string
	category Category
}

// classifierRules are evaluated in order, first match wins. Matching is
// case-sensitive and exact-prefix: "gamesX/" does not match "games/".
var classifierRules = []prefixRule{
	{"games/", CategoryGames},
	{"art/", CategoryArt},
	{"music/", CategoryMusic},
	{"audio/", CategoryMusic},
	{"videos/", CategoryVideo},
	{"video/", CategoryVideo},
	{"comics/", CategoryComics},
	{"images-public/", CategoryPublicImages},
}

// Classify maps a request path to its content category. Paths are treated
// as relative; a single leading slash is tolerated. Anything no rule
// matches, including the empty path, classifies as CategoryImages.
func Classify(path string) Category {
	path = strings.TrimPrefix(path, "/")
	for _, rule := range classifierRules {
		if strings.HasPrefix(path, rule.prefix) {
			return rule.category
		}
	}
	return CategoryImages
}
