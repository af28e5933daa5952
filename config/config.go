package config

// Shared flag variables bound by the cmd package. Keeping them here lets
// lower layers (display helpers, batch driver) read the active settings
// without importing cobra.
var (
	SnapshotFile string
	CallsFile    string
	IRDir        string

	Throttle       bool
	NoCache        bool
	Verbose        bool
	JSONOutputFile string
)
