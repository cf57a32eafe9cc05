package models

// PageResult describes one retained page in the build output.
type PageResult struct {
	Number       int    `json:"number" yaml:"number"`
	Filename     string `json:"filename" yaml:"filename"`
	Title        string `json:"title" yaml:"title"`
	HeadingLevel int    `json:"heading_level" yaml:"heading_level"`
}

// BuildReport is the accumulator threaded through the pipeline and printed
// once at the end of a run. Warnings collect non-fatal problems, currently
// only missing code-pair images.
type BuildReport struct {
	Status           string       `json:"status" yaml:"status"`
	SourcePath       string       `json:"source_path" yaml:"source_path"`
	OutputDir        string       `json:"output_dir" yaml:"output_dir"`
	Language         string       `json:"language" yaml:"language"`
	Pages            []PageResult `json:"pages" yaml:"pages"`
	CodeFiles        []string     `json:"code_files,omitempty" yaml:"code_files,omitempty"`
	Warnings         []string     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	TotalTimeSeconds float64      `json:"total_time_seconds" yaml:"total_time_seconds"`
}
