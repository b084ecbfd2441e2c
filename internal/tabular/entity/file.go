package entity

// ProcessedPrefix is prepended to the stored name of a transformed file.
const ProcessedPrefix = "processed_"

// ProcessedName returns the name of the file derived from filename.
func ProcessedName(filename string) string {
	return ProcessedPrefix + filename
}
