// Package core provides a small, stable facade over linelint's scanner and
// engine for external integrations, such as editor plugins or build tools
// that want line-length results without shelling out.
//
// Example:
//
//	cfg := core.DefaultConfig()
//	cfg.Regions = []string{"figure", "equation"}
//	res, err := core.ScanFile("paper.tex", cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalViolations(os.Stdout, res.Violations)
package core
