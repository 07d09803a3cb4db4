package models

// ProjectType selects which prompt template the generation orchestrator
// builds the system prompt from.
type ProjectType string

// Known project types. TypeComponent is the default when a request omits
// the type.
const (
	TypeComponent ProjectType = "component"
	TypeLanding   ProjectType = "landing"
	TypeDashboard ProjectType = "dashboard"
	TypeEcommerce ProjectType = "ecommerce"
	TypePortfolio ProjectType = "portfolio"
	TypeBlog      ProjectType = "blog"
	TypeSaaS      ProjectType = "saas"
	TypeFullstack ProjectType = "fullstack"
)

// Valid reports whether t is one of the known project types.
func (t ProjectType) Valid() bool {
	switch t {
	case TypeComponent, TypeLanding, TypeDashboard, TypeEcommerce,
		TypePortfolio, TypeBlog, TypeSaaS, TypeFullstack:
		return true
	}
	return false
}

// GenerationRequest is the transient input of the generation orchestrator.
// It is not persisted as a first-class entity.
type GenerationRequest struct {
	Prompt string      `json:"prompt"`
	Type   ProjectType `json:"type"`
}

// GenerationResult is the outcome of one successful generation: the cleaned
// source text, the provider that served it, and the vendor-reported token
// usage (zero when the vendor omits it).
type GenerationResult struct {
	Code       string `json:"code"`
	Provider   string `json:"provider"`
	TokensUsed int    `json:"tokensUsed,omitempty"`
}

// ImageResult carries a generated image as a base64 data URI together with
// the provider that served it.
type ImageResult struct {
	Image    string `json:"image"`
	Provider string `json:"provider"`
}

// ImageStyle is one entry of the static style catalog.
type ImageStyle struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Voice describes one synthesis voice offered by the TTS vendor.
type Voice struct {
	VoiceID  string `json:"voice_id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// VoiceAvailability is the {tts, stt} flag pair reported by the voice
// availability probe. Both flags derive from configured credentials only;
// no network call is made.
type VoiceAvailability struct {
	TTS bool `json:"tts"`
	STT bool `json:"stt"`
}
