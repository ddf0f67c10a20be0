package config

// Manifest represents the structure of the gradle.yaml type manifest.
type Manifest struct {
	Version string      `yaml:"version"`
	Loaders []LoaderDTO `yaml:"loaders"`
	Types   []TypeDTO   `yaml:"types"`
}

// LoaderDTO declares a class loader in the manifest.
type LoaderDTO struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent"`
}

// TypeDTO declares a task type in the manifest.
type TypeDTO struct {
	Name    string      `yaml:"name"`
	Parent  string      `yaml:"parent"`
	Loader  string      `yaml:"loader"`
	Methods []MethodDTO `yaml:"methods"`
}

// MethodDTO declares a method of a task type.
type MethodDTO struct {
	Name        string   `yaml:"name"`
	Static      bool     `yaml:"static"`
	Params      []string `yaml:"params"`
	Annotations []string `yaml:"annotations"`
}
