package dto

// VoiceQuery is the payload for the voice-command parsing endpoint.
type VoiceQuery struct {
	Command string `json:"command"`
}

// ParsedCommand is the structured interpretation of a voice command as
// returned by the language model.
type ParsedCommand struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	SemanticQuery string `json:"semanticQuery"`
	IsVague       bool   `json:"isVague,omitempty"`
	VagueContext  string `json:"vagueContext,omitempty"`
}

// ResolvedCommand augments a parsed command with the outcome of the
// vague-location resolution pass. OriginalOrigin/OriginalDestination are set
// only when the corresponding field was rewritten.
type ResolvedCommand struct {
	Origin              string   `json:"origin"`
	Destination         string   `json:"destination"`
	SemanticQuery       string   `json:"semanticQuery"`
	IsVague             bool     `json:"isVague,omitempty"`
	VagueContext        string   `json:"vagueContext,omitempty"`
	Resolved            bool     `json:"resolved,omitempty"`
	ResolutionMethods   []string `json:"resolution_methods,omitempty"`
	OriginalOrigin      string   `json:"original_origin,omitempty"`
	OriginalDestination string   `json:"original_destination,omitempty"`
}
