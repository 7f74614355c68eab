package models

// Group is a set of paths sharing one base name.
type Group struct {
	Name  string   `json:"name" yaml:"name"`
	Paths []string `json:"paths" yaml:"paths"`
}

// Report is the result of one scan as written by every output format.
type Report struct {
	Root    string  `json:"root" yaml:"root"`
	Files   int     `json:"files" yaml:"files"`
	Ignored int     `json:"ignored" yaml:"ignored"`
	Unnamed int     `json:"unnamed" yaml:"unnamed"`
	Errors  int     `json:"errors" yaml:"errors"`
	Groups  []Group `json:"groups" yaml:"groups"`
}
