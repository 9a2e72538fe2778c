package config

// YAMLConfig mirrors shiplog.yaml. Pointer fields distinguish "absent" from
// an explicit zero.
type YAMLConfig struct {
	Shiplog YAMLShiplog `yaml:"shiplog"`
}

type YAMLShiplog struct {
	Export  YAMLExport  `yaml:"export"`
	Chart   YAMLChart   `yaml:"chart"`
	Display YAMLDisplay `yaml:"display"`
}

type YAMLExport struct {
	Dir      string `yaml:"dir"`
	Filename string `yaml:"filename"`
	Sheet    string `yaml:"sheet"`
}

type YAMLChart struct {
	Width    *int   `yaml:"width"`
	Filename string `yaml:"filename"`
}

type YAMLDisplay struct {
	Precision *int `yaml:"precision"`
}
