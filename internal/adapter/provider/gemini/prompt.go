package gemini

import "fmt"

// InterpretPrompt builds the interpretation instruction for a dream.
func InterpretPrompt(dreamText string) string {
	return fmt.Sprintf(`You are a dream interpreter. Analyze the following dream for its symbols, emotional tone, and potential meaning. Break down the analysis into overall meaning, key symbols and their meanings, and the emotional tone.

Dream: %s`, dreamText)
}

// ImagePrompt builds the illustration instruction for a dream.
func ImagePrompt(dreamText string) string {
	return fmt.Sprintf("Generate an artistic, visually evocative image based on the following dream description: %s. Capture the main themes and mood. This is for a dream journal app.", dreamText)
}
