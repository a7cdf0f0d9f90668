package diag

// Collector accumulates Diagnostics from every pipeline stage in the order
// they were reported. It is not safe for concurrent use; each pipeline stage
// runs sequentially and shares one Collector.
type Collector struct {
	diagnostics []Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add records d.
func (c *Collector) Add(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

// AddAll records every element of ds, in order.
func (c *Collector) AddAll(ds []Diagnostic) {
	c.diagnostics = append(c.diagnostics, ds...)
}

// All returns every Diagnostic collected so far, in report order.
func (c *Collector) All() []Diagnostic {
	return c.diagnostics
}

// Errors returns only the Diagnostics whose Fatal is true.
func (c *Collector) Errors() []Diagnostic {
	var out []Diagnostic
	for _, d := range c.diagnostics {
		if d.Fatal() {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any collected Diagnostic is Fatal. Pipeline
// stages after lexical/syntactic validation should stop once this is true.
func (c *Collector) HasErrors() bool {
	for _, d := range c.diagnostics {
		if d.Fatal() {
			return true
		}
	}
	return false
}

// Len returns the total number of Diagnostics collected, fatal or not.
func (c *Collector) Len() int {
	return len(c.diagnostics)
}
