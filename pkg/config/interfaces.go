package config

// Validator is implemented by configs that fill their own defaults and
// reject unusable values after loading.
type Validator interface {
	Validate() error
}
