// Package splitter turns a continuous text stream into display-sized
// sentences using a fixed four-stage pipeline: punctuation boundaries,
// grammatical comma splitting, connector-word splitting, and a
// dynamic-programming cut for overlong sentences. All grammatical decisions
// are driven by tokens from an external nlp.Annotator; the package never
// parses text itself.
package splitter
