package domain

import "strings"

// Emotions is the fixed set of labels a dream can be tagged with.
var Emotions = []string{
	"Happy",
	"Sad",
	"Anxious",
	"Excited",
	"Confused",
	"Scared",
	"Peaceful",
	"Angry",
	"Surprised",
	"Awe",
}

var emotionIndex = func() map[string]string {
	m := make(map[string]string, len(Emotions))
	for _, e := range Emotions {
		m[strings.ToLower(e)] = e
	}
	return m
}()

// CanonicalEmotion maps a label to its canonical spelling.
// Matching ignores case and surrounding whitespace.
func CanonicalEmotion(label string) (string, bool) {
	e, ok := emotionIndex[strings.ToLower(strings.TrimSpace(label))]
	return e, ok
}
