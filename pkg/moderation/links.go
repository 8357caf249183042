package moderation

import "regexp"

type SegmentKind string

const (
	SegmentText SegmentKind = "text"
	SegmentLink SegmentKind = "link"
)

// Segment is a run of message text. Concatenating the values of all segments
// returned by Linkify reproduces the input.
type Segment struct {
	Kind  SegmentKind `json:"kind"`
	Value string      `json:"value"`
}

var linkPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://[^\s]+`)

// Linkify splits text into plain and link segments in their original order.
func Linkify(text string) []Segment {
	if text == "" {
		return nil
	}

	var out []Segment
	last := 0
	for _, loc := range linkPattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			out = append(out, Segment{Kind: SegmentText, Value: text[last:loc[0]]})
		}
		out = append(out, Segment{Kind: SegmentLink, Value: text[loc[0]:loc[1]]})
		last = loc[1]
	}
	if last < len(text) {
		out = append(out, Segment{Kind: SegmentText, Value: text[last:]})
	}
	return out
}
