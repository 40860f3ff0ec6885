package constant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	// DefaultSessionName is the placeholder name a session keeps until the
	// title generator replaces it after the first successful turn.
	DefaultSessionName = "Untitled Session"

	// Labels injected into the grounded context when web results are used.
	WebSearchSeparator = "--- Additional Information from Web Search ---"
	WebSearchSeedLabel = "Web Search Results:"

	NoInformationFoundMessage = "No relevant information found in documents or web search."

	// Source descriptor provenance tags.
	SourceTypeDocument = "document"
	SourceTypeImage    = "image"
	SourceTypeWeb      = "web"
)

const QueryRewriterPrompt = `You are a query rewriting expert. Rewrite the user's question so it is
optimized for semantic retrieval against a document index: expand abbreviations, resolve vague
wording, and keep every named entity. Reply with the rewritten query only, no explanation.

Question: `

const RagResponderSystemPrompt = `You are a knowledgeable teaching assistant. Answer the user's question
using the provided context when it is available. Ground every claim in the context or the listed
sources, and say so honestly when the available information does not cover the question. Be clear,
complete, and well organized.`

const TitleGeneratorPrompt = `Generate a short title (max 6 words) summarizing this conversation opener.
Reply with the title only, no quotes, no trailing punctuation.

Message: `
