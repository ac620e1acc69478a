package options

// Config is the normalized option record for one run. Numeric options are
// float64 throughout and passed to the engine as given. It is built once by
// Normalize and handed around by value; nothing downstream mutates it.
type Config struct {
	Output      string  `json:"output,omitempty"`
	Types       bool    `json:"types"`
	KeepNames   bool    `json:"keepnames"`
	KeepGroups  bool    `json:"keepgroups"`
	Shadows     bool    `json:"shadows"`
	PrintWidth  float64 `json:"printwidth"`
	Meta        bool    `json:"meta"`
	Precision   float64 `json:"precision"`
	Draco       string  `json:"draco,omitempty"`
	Root        string  `json:"root,omitempty"`
	Instance    bool    `json:"instance"`
	InstanceAll bool    `json:"instanceall"`
	Transform   bool    `json:"transform"`
	Resolution  float64 `json:"resolution"`
	Simplify    bool    `json:"simplify"`
	Weld        float64 `json:"weld"`
	Ratio       float64 `json:"ratio"`
	Error       float64 `json:"error"`
	Debug       bool    `json:"debug"`
}

func Defaults() Config {
	return Config{
		PrintWidth: 1000,
		Precision:  2,
		Resolution: 1024,
		Weld:       0.0001,
		Ratio:      0.75,
		Error:      0.001,
	}
}

// UsageError means no input file was given. Callers print help and stop.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	if e == nil {
		return ""
	}
	return e.Reason
}
