package manifest

// Caskfile represents the structure of a cask.yaml definition file.
// Each depends_on kind holds a sequence of declarations; resolvable kinds
// (cask, formula) declare identifier strings, other kinds declare free-form
// values that are carried through untouched.
type Caskfile struct {
	Token     string           `yaml:"token"`
	Name      string           `yaml:"name"`
	Desc      string           `yaml:"desc"`
	Homepage  string           `yaml:"homepage"`
	Version   string           `yaml:"version"`
	Tap       string           `yaml:"tap"`
	FromAPI   bool             `yaml:"from_api"`
	DependsOn map[string][]any `yaml:"depends_on"`
	Artifacts []any            `yaml:"artifacts"`
}
