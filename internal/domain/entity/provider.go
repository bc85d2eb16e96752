package entity

// Descriptor describes one registered provider. Descriptors are built once at
// process start and shared read-only across concurrent executions.
type Descriptor struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	BaseURL      string   `json:"base_url"`
	Capabilities []Action `json:"capabilities"`
}

// Supports reports whether the provider declares the given action.
func (d Descriptor) Supports(action Action) bool {
	for _, a := range d.Capabilities {
		if a == action {
			return true
		}
	}
	return false
}
