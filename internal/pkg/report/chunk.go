package report

import "strings"

// ChunkText splits text into segments of at most limit characters, breaking
// only on line boundaries. Joining the segments with "\n" reconstructs the
// input exactly. A single line longer than the limit becomes its own oversized
// segment rather than being cut mid-line. Empty input yields no segments.
func ChunkText(text string, limit int) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	var chunks []string

	cur := lines[0]
	for _, line := range lines[1:] {
		if len(cur)+1+len(line) > limit {
			chunks = append(chunks, cur)
			cur = line
		} else {
			cur = cur + "\n" + line
		}
	}
	return append(chunks, cur)
}
