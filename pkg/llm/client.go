package llm

// PolishInput carries perspective text plus enough anchor context for the
// model to keep the right register.
type PolishInput struct {
	Text        string
	AnchorName  string
	Focus       string
	Perspective string
}

// Polisher rewrites generated perspective text into natural spoken prose
// before synthesis. Implementations must return the rewritten text only.
type Polisher interface {
	Polish(input PolishInput) (string, error)
}
