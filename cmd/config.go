package cmd

// Config collects the command-line surface handed to the batch run.
type Config struct {
	// Generator
	Generator string
	Jobs      int

	// Path handling
	Marker    string // source root segment mirrored into output trees
	SourceExt string // extension accepted from directory inputs

	// Output behavior
	Verbose bool
	NoColor bool
}
