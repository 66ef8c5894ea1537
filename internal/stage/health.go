package stage

import "fmt"

// Health summarizes whether a classifier can run. Detail explains a classifier
// that is not ready; the orchestrator logs it once and skips the pass.
type Health struct {
	Name   string
	Ready  bool
	Detail string
}

// Healthy reports a ready classifier.
func Healthy(name string) Health {
	return Health{Name: name, Ready: true}
}

// Unhealthy reports a classifier that cannot run and why.
func Unhealthy(name, detail string) Health {
	return Health{Name: name, Detail: detail}
}

func (h Health) String() string {
	if h.Ready {
		return h.Name + ": ready"
	}
	if h.Detail == "" {
		return h.Name + ": unavailable"
	}
	return fmt.Sprintf("%s: unavailable (%s)", h.Name, h.Detail)
}
