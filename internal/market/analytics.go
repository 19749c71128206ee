package market

import "strings"

// Injector installs the third-party tracking bootstrap into the host page.
type Injector interface {
	// Initialized reports whether the host already runs the tracker.
	Initialized() bool
	Inject(measurementID string)
}

// NopInjector never installs anything and reports an uninitialised host.
type NopInjector struct{}

func (NopInjector) Initialized() bool { return false }
func (NopInjector) Inject(string)     {}

// Analytics holds the measurement id and applies it at most once per process.
type Analytics struct {
	injector Injector
	id       string
	applied  bool
}

func NewAnalytics(inj Injector) *Analytics {
	if inj == nil {
		inj = NopInjector{}
	}
	return &Analytics{injector: inj}
}

func (a *Analytics) ID() string {
	return a.id
}

// Applied reports whether this process has injected the tracker.
func (a *Analytics) Applied() bool {
	return a.applied
}

// Configure records id and injects the tracker when id is non-empty, nothing
// was injected yet and the host is not already tracking. It reports whether
// an injection happened.
func (a *Analytics) Configure(id string) bool {
	a.id = strings.TrimSpace(id)
	if a.id == "" || a.applied || a.injector.Initialized() {
		return false
	}
	a.injector.Inject(a.id)
	a.applied = true
	return true
}
