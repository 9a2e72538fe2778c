package domain

// Config represents the optional shiplog configuration loaded from shiplog.yaml.
type Config struct {
	Export  ExportConfig
	Chart   ChartConfig
	Display DisplayConfig
}

type ExportConfig struct {
	Dir      string
	Filename string
	Sheet    string
}

type ChartConfig struct {
	Width    int
	Filename string
}

type DisplayConfig struct {
	Precision int
}

// DefaultConfig provides sane defaults if shiplog.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Export: ExportConfig{
			Dir:      ".",
			Filename: "shipments.xlsx",
			Sheet:    "Shipments",
		},
		Chart: ChartConfig{
			Width:    40,
			Filename: "transit-chart.xlsx",
		},
		Display: DisplayConfig{
			Precision: 2,
		},
	}
}

// WorkspaceSpec describes where a workspace is scaffolded.
type WorkspaceSpec struct {
	Root string
}
