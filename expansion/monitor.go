package expansion

// Monitor provides hooks to observe the expansion process.
// Implement this interface to track intermediate steps and results during expansion.
type Monitor interface {
	Start(query string)
	AfterTokenize(tokens []string)
	AfterStoplist(content []string)
	Truncated(dropped []string)
	UnknownToken(token string)
	Disambiguated(result Result)
	AfterNormalize(token string, terms []string)
	Finish(expansion *Expansion)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                      {}
func (n *noopMonitor) AfterTokenize(_ []string)            {}
func (n *noopMonitor) AfterStoplist(_ []string)            {}
func (n *noopMonitor) Truncated(_ []string)                {}
func (n *noopMonitor) UnknownToken(_ string)               {}
func (n *noopMonitor) Disambiguated(_ Result)              {}
func (n *noopMonitor) AfterNormalize(_ string, _ []string) {}
func (n *noopMonitor) Finish(_ *Expansion)                 {}
