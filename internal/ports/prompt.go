package ports

// SelectOption is one choice offered by Prompter.Select
type SelectOption struct {
	Label string
	Value string
}

// Prompter asks the user for missing values.
// Enabled reports whether prompting is allowed at all; callers fall back
// to a required-value error when it is not.
type Prompter interface {
	Enabled() bool
	Input(title string) (string, error)
	Select(title string, options []SelectOption) (string, error)
}
