package topics

// defaultRelations seeds the shipped topic neighborhood. The closure in
// New makes each pair bidirectional, so only one direction is listed.
var defaultRelations = map[string][]string{
	"science":    {"technology", "nature", "space"},
	"space":      {"nature"},
	"technology": {"video-games"},
	"history":    {"geography", "politics", "mythology"},
	"geography":  {"nature", "travel"},
	"politics":   {"economics"},
	"art":        {"literature", "music", "film"},
	"film":       {"music", "television"},
	"television": {"video-games"},
	"literature": {"mythology"},
	"sports":     {"travel"},
	"food":       {"travel", "nature"},
}

// Default returns the graph built from the shipped relations.
func Default() *Graph {
	return New(defaultRelations)
}
