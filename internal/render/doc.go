// Package render turns a classified lead into outreach copy: an email
// subject, an email body, and a LinkedIn connection message.
//
// Templates live in a fixed lookup table keyed by (priority, archetype):
// the archetype selects the copy family (tone, pain points) and the
// priority selects the subject variant within it. Rendering is plain
// placeholder substitution; the only error path is a template referencing
// a placeholder that has no corresponding lead field.
//
// The LinkedIn message is hard-capped at 300 characters because LinkedIn
// rejects longer connection notes. The built-in templates stay under the
// cap by construction; rune-safe truncation is the backstop for
// user-supplied templates and unusually long field values.
package render
