package entity

// sourcePreviewLimit caps the content preview carried by a source
// descriptor. Longer content is cut and suffixed with an ellipsis.
const sourcePreviewLimit = 200

// SourceDescriptor is the response-facing projection of a grounding
// source, either document-derived or a web link.
type SourceDescriptor struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// NewSourceDescriptor builds a descriptor with the content preview
// truncated to the first 200 characters.
func NewSourceDescriptor(sourceType, name, url, content string) SourceDescriptor {
	return SourceDescriptor{
		Type:    sourceType,
		Name:    name,
		URL:     url,
		Content: PreviewContent(content),
	}
}

func PreviewContent(content string) string {
	runes := []rune(content)
	if len(runes) <= sourcePreviewLimit {
		return content
	}
	return string(runes[:sourcePreviewLimit]) + "..."
}
